package tictactoe

import "github.com/the-debugger2/tic-tac-toe/internal/entity"

// Evaluate statically scores a position for player by sliding a run-length
// window over every row, column and diagonal, using the same origin bounds
// as the win detector. A window holding marks of only one side is worth
// ±10^count; contested and empty windows are worth nothing. Cheap and
// inexact, it only substitutes for search below the depth ceiling.
func Evaluate(board *entity.Board, runLength int, player entity.Mark) int {
	size := board.Size
	score := 0

	for row := 0; row < size; row++ {
		for col := 0; col+runLength <= size; col++ {
			score += windowScore(board, row, col, 0, 1, runLength, player)
		}
	}

	for row := 0; row+runLength <= size; row++ {
		for col := 0; col < size; col++ {
			score += windowScore(board, row, col, 1, 0, runLength, player)
		}
	}

	for row := 0; row+runLength <= size; row++ {
		for col := 0; col+runLength <= size; col++ {
			score += windowScore(board, row, col, 1, 1, runLength, player)
		}
	}

	for row := 0; row+runLength <= size; row++ {
		for col := runLength - 1; col < size; col++ {
			score += windowScore(board, row, col, 1, -1, runLength, player)
		}
	}

	return score
}

func windowScore(board *entity.Board, row, col, dRow, dCol, runLength int, player entity.Mark) int {
	opponent := player.Other()

	var mine, theirs int
	for i := 0; i < runLength; i++ {
		switch board.At(row+i*dRow, col+i*dCol) {
		case player:
			mine++
		case opponent:
			theirs++
		}
	}

	switch {
	case mine > 0 && theirs == 0:
		return pow10(mine)
	case theirs > 0 && mine == 0:
		return -pow10(theirs)
	default:
		return 0
	}
}

func pow10(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 10
	}

	return result
}

package tictactoe

import (
	"math/rand"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

// bestHeuristicMove picks a move for boards too large to search: take an
// immediate win, otherwise block the opponent's immediate win, otherwise
// grab the center or the first free corner, otherwise move at random.
// The first satisfied rule wins.
func bestHeuristicMove(game *entity.Game, player entity.Mark, rng *rand.Rand) (entity.Move, bool) {
	board := game.Board

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.Move{}, false
	}

	if move, ok := findWinningCell(board, game.RunLength, player, empty); ok {
		return move, true
	}

	if move, ok := findWinningCell(board, game.RunLength, player.Other(), empty); ok {
		return move, true
	}

	if move, ok := strategicCell(board); ok {
		return move, true
	}

	return empty[rng.Intn(len(empty))], true
}

// findWinningCell speculatively drops mark on each empty cell and checks
// whether that completes a run. The probe is retracted before the check
// result is acted on, so the board comes back unchanged.
func findWinningCell(board *entity.Board, runLength int, mark entity.Mark, empty []entity.Move) (entity.Move, bool) {
	for _, cell := range empty {
		board.Set(cell.Row, cell.Col, mark)
		winner, _, ok := entity.DetectWin(board, runLength)
		board.Remove(cell.Row, cell.Col)

		if ok && winner == mark {
			return cell, true
		}
	}

	return entity.Move{}, false
}

// strategicCell prefers the center, then the corners in a fixed order:
// top-left, top-right, bottom-left, bottom-right.
func strategicCell(board *entity.Board) (entity.Move, bool) {
	center := board.Size / 2
	if board.At(center, center) == entity.Empty {
		return entity.Move{Row: center, Col: center}, true
	}

	last := board.Size - 1
	corners := [4]entity.Move{
		{Row: 0, Col: 0},
		{Row: 0, Col: last},
		{Row: last, Col: 0},
		{Row: last, Col: last},
	}
	for _, corner := range corners {
		if board.At(corner.Row, corner.Col) == entity.Empty {
			return corner, true
		}
	}

	return entity.Move{}, false
}

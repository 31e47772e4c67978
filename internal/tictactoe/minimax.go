package tictactoe

import (
	"math"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

// Boards above this size are played with the heuristic cascade instead of
// exhaustive search.
const maxMinimaxBoardSize = 5

// Depth ceilings per board size, kept as data so they are easy to tune.
// 9 plies on a 3×3 board is the whole tree.
var searchDepthCeilings = map[int]int{
	3: 9,
	4: 6,
	5: 4,
}

const (
	winScore  = 1_000_000
	lossScore = -1_000_000
)

func searchDepthFor(size int) int {
	if depth, ok := searchDepthCeilings[size]; ok {
		return depth
	}

	return 4
}

// bestSearchMove runs depth-limited minimax with alpha-beta pruning from
// every empty cell and picks the strictly greatest score; on ties the
// first candidate in row-major order stays.
func bestSearchMove(game *entity.Game, player entity.Mark) (entity.Move, bool) {
	board := game.Board
	depth := searchDepthFor(board.Size)

	alpha, beta := math.MinInt, math.MaxInt
	bestScore := math.MinInt
	var bestMove entity.Move
	found := false

	for _, cell := range board.EmptyCells() {
		board.Set(cell.Row, cell.Col, player)
		score := minimax(board, game.RunLength, player, player.Other(), depth-1, 1, alpha, beta)
		board.Remove(cell.Row, cell.Col)

		if !found || score > bestScore {
			bestScore = score
			bestMove = cell
			found = true
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestMove, found
}

// minimax scores the position for player with toMove about to play. The
// board is shared and mutable: every placement is retracted before the
// score propagates, including on pruning exits, so the caller always gets
// its board back untouched. ply is the distance from the root; wins score
// lower the later they come and losses score higher the longer they are
// delayed.
func minimax(board *entity.Board, runLength int, player, toMove entity.Mark, depth, ply, alpha, beta int) int {
	if winner, _, ok := entity.DetectWin(board, runLength); ok {
		if winner == player {
			return winScore - ply
		}

		return lossScore + ply
	}

	if board.IsFull() {
		return 0
	}

	if depth == 0 {
		return Evaluate(board, runLength, player)
	}

	if toMove == player {
		best := math.MinInt
		for _, cell := range board.EmptyCells() {
			board.Set(cell.Row, cell.Col, toMove)
			score := minimax(board, runLength, player, toMove.Other(), depth-1, ply+1, alpha, beta)
			board.Remove(cell.Row, cell.Col)

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range board.EmptyCells() {
		board.Set(cell.Row, cell.Col, toMove)
		score := minimax(board, runLength, player, toMove.Other(), depth-1, ply+1, alpha, beta)
		board.Remove(cell.Row, cell.Col)

		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

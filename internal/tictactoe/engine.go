package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

// ComputeMove picks the next move for player on an ongoing game. Small
// boards are searched exhaustively within a per-size depth ceiling; larger
// boards fall back to the rule cascade to stay inside a practical time
// budget. The game itself is not mutated.
func ComputeMove(game *entity.Game, player entity.Mark, rng *rand.Rand) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, fmt.Errorf("cannot compute move: %w", err)
	}

	if game.Turn != player {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	var (
		move entity.Move
		ok   bool
	)
	if game.Board.Size > maxMinimaxBoardSize {
		move, ok = bestHeuristicMove(game, player, rng)
	} else {
		move, ok = bestSearchMove(game, player)
	}

	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return move, nil
}

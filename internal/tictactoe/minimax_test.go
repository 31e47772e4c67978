package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

func newOngoingGame(t *testing.T, size int) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("000", entity.WithBotType, size)
	require.NoError(t, err)
	game.Status = entity.StatusOngoing

	return game
}

func TestComputeMove_TakesImmediateWin(t *testing.T) {
	// Given: X has two in the top row and it is X's move
	game := newOngoingGame(t, 3)
	game.Board.Set(0, 0, entity.PlayerX)
	game.Board.Set(0, 1, entity.PlayerX)
	game.Board.Set(1, 1, entity.PlayerO)
	game.Board.Set(2, 2, entity.PlayerO)

	// When: computing X's move
	move, err := ComputeMove(game, entity.PlayerX, nil)

	// Then: X completes the row
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
}

func TestComputeMove_BlocksImmediateLoss(t *testing.T) {
	// Given: X threatens the top row and it is O's move
	game := newOngoingGame(t, 3)
	game.Board.Set(0, 0, entity.PlayerX)
	game.Board.Set(0, 1, entity.PlayerX)
	game.Board.Set(1, 1, entity.PlayerO)
	game.Turn = entity.PlayerO

	// When: computing O's move
	move, err := ComputeMove(game, entity.PlayerO, nil)

	// Then: O blocks at (0,2)
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
}

func TestComputeMove_TieBreaksRowMajor(t *testing.T) {
	// Given: X can win on the top row or the left column right now
	game := newOngoingGame(t, 3)
	game.Board.Set(0, 0, entity.PlayerX)
	game.Board.Set(0, 1, entity.PlayerX)
	game.Board.Set(1, 0, entity.PlayerX)
	game.Board.Set(1, 1, entity.PlayerO)
	game.Board.Set(2, 2, entity.PlayerO)
	game.Board.Set(1, 2, entity.PlayerO)

	// When: computing X's move
	move, err := ComputeMove(game, entity.PlayerX, nil)

	// Then: both wins score the same, so the first in row-major order stays
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
}

func TestComputeMove_LeavesBoardUntouched(t *testing.T) {
	// Given: a mid-game position
	game := newOngoingGame(t, 3)
	game.Board.Set(1, 1, entity.PlayerX)
	game.Board.Set(0, 0, entity.PlayerO)
	snapshot := game.Board.Clone()

	// When: computing a move for X
	_, err := ComputeMove(game, entity.PlayerX, nil)

	// Then: every speculative placement was retracted
	require.NoError(t, err)
	assert.Equal(t, snapshot.Cells, game.Board.Cells)
}

func TestComputeMove_NeverLosesPlayingSecond(t *testing.T) {
	// Perfect play on a 3×3 board never loses. Pit the search as O against
	// a random X across a handful of full games.
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 30; i++ {
		game := newOngoingGame(t, 3)

		for game.IsOngoing() {
			if game.Turn == entity.PlayerX {
				empty := game.Board.EmptyCells()
				move := empty[rng.Intn(len(empty))]
				require.NoError(t, game.MakeTurn(entity.PlayerX, move.Row, move.Col))

				continue
			}

			move, err := ComputeMove(game, entity.PlayerO, nil)
			require.NoError(t, err)
			require.NoError(t, game.MakeTurn(entity.PlayerO, move.Row, move.Col))
		}

		require.NotEqual(t, entity.PlayerX, game.Winner, "game %d: search lost to random play", i)
	}
}

func TestComputeMove_Errors(t *testing.T) {
	t.Run("refuses a game that has not started", func(t *testing.T) {
		game, err := entity.NewGame("000", entity.WithBotType, 3)
		require.NoError(t, err)

		_, err = ComputeMove(game, entity.PlayerX, nil)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("refuses a finished game", func(t *testing.T) {
		game := newOngoingGame(t, 3)
		game.Status = entity.StatusFinished

		_, err := ComputeMove(game, entity.PlayerX, nil)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("refuses to move out of turn", func(t *testing.T) {
		game := newOngoingGame(t, 3)

		_, err := ComputeMove(game, entity.PlayerO, nil)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestSearchDepthFor(t *testing.T) {
	assert.Equal(t, 9, searchDepthFor(3))
	assert.Equal(t, 6, searchDepthFor(4))
	assert.Equal(t, 4, searchDepthFor(5))
	assert.Equal(t, 4, searchDepthFor(12))
}

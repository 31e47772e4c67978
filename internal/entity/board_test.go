package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// When: creating a 4×4 board
	board := NewBoard(4)

	// Then: every cell is empty and the board reports accordingly
	require.Equal(t, 4, board.Size)
	require.Len(t, board.Cells, 16)
	for _, cell := range board.Cells {
		require.Equal(t, Empty, cell)
	}
	assert.False(t, board.IsFull())
	assert.Len(t, board.EmptyCells(), 16)
}

func TestBoard_Place(t *testing.T) {
	t.Run("places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3)

		// When: placing X at (1,2)
		err := board.Place(1, 2, PlayerX)

		// Then: exactly that cell changed
		require.NoError(t, err)
		require.Equal(t, PlayerX, board.At(1, 2))
		assert.Len(t, board.EmptyCells(), 8)
	})

	t.Run("rejects an occupied cell and mutates nothing", func(t *testing.T) {
		// Given: a board with X at (0,0)
		board := NewBoard(3)
		require.NoError(t, board.Place(0, 0, PlayerX))
		snapshot := board.Clone()

		// When: O tries the same cell
		err := board.Place(0, 0, PlayerO)

		// Then: ErrCellOccupied and the board is untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, snapshot.Cells, board.Cells)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3)

		// When/Then: every out-of-range coordinate fails with ErrInvalidCell
		for _, move := range []Move{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}} {
			err := board.Place(move.Row, move.Col, PlayerX)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
		assert.Len(t, board.EmptyCells(), 9)
	})
}

func TestBoard_Remove(t *testing.T) {
	// Given: a board with a speculative X at (2,2)
	board := NewBoard(3)
	board.Set(2, 2, PlayerX)

	// When: the mark is retracted
	board.Remove(2, 2)

	// Then: the cell is empty again
	require.Equal(t, Empty, board.At(2, 2))
	assert.Len(t, board.EmptyCells(), 9)
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 3×3 board filled except one cell
	board := NewBoard(3)
	for _, move := range board.EmptyCells() {
		if move.Row == 2 && move.Col == 2 {
			continue
		}
		board.Set(move.Row, move.Col, PlayerX)
	}

	// Then: not full until the last cell is taken
	require.False(t, board.IsFull())

	board.Set(2, 2, PlayerO)
	require.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one mark
	board := NewBoard(3)
	board.Set(0, 0, PlayerX)

	// When: cloning and mutating the clone
	clone := board.Clone()
	clone.Set(1, 1, PlayerO)

	// Then: the original is unaffected
	require.Equal(t, Empty, board.At(1, 1))
	require.Equal(t, PlayerX, clone.At(0, 0))
}

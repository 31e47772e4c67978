package entity

import (
	"fmt"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
)

// Move addresses a single board cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is an N×N grid of marks. An occupied cell never becomes empty
// again except through Remove, which exists so that search and the
// heuristic scans can retract speculative placements.
type Board struct {
	Size  int    `json:"size"`
	Cells []Mark `json:"cells"`
}

func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

func (that *Board) At(row, col int) Mark {
	return that.Cells[row*that.Size+col]
}

// Place puts a mark on an empty in-bounds cell. On error nothing is mutated.
func (that *Board) Place(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if that.At(row, col) != Empty {
		return apperror.ErrCellOccupied
	}

	that.Set(row, col, mark)

	return nil
}

// Set writes a cell without validation. Callers placing speculatively
// must pair every Set with a Remove on the same cell.
func (that *Board) Set(row, col int, mark Mark) {
	that.Cells[row*that.Size+col] = mark
}

// Remove retracts a mark, restoring the cell to empty.
func (that *Board) Remove(row, col int) {
	that.Cells[row*that.Size+col] = Empty
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyCells lists free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(that.Cells))
	for i, cell := range that.Cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / that.Size, Col: i % that.Size})
		}
	}

	return moves
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{Size: that.Size, Cells: cells}
}

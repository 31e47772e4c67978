package entity

// DetectWin reports whether any player owns a contiguous run of runLength
// equal marks, and returns that run's exact cells. Runs are scanned in a
// fixed order - rows, then columns, then ↘ diagonals, then ↙ diagonals -
// and only from origins where the whole run stays in bounds, so no run is
// ever checked twice. When one move completes several runs at once, the
// first one in scan order is the one reported.
func DetectWin(board *Board, runLength int) (Mark, []Move, bool) {
	size := board.Size

	// Rows.
	for row := 0; row < size; row++ {
		for col := 0; col+runLength <= size; col++ {
			if mark, line, ok := scanRun(board, row, col, 0, 1, runLength); ok {
				return mark, line, true
			}
		}
	}

	// Columns.
	for row := 0; row+runLength <= size; row++ {
		for col := 0; col < size; col++ {
			if mark, line, ok := scanRun(board, row, col, 1, 0, runLength); ok {
				return mark, line, true
			}
		}
	}

	// ↘ diagonals.
	for row := 0; row+runLength <= size; row++ {
		for col := 0; col+runLength <= size; col++ {
			if mark, line, ok := scanRun(board, row, col, 1, 1, runLength); ok {
				return mark, line, true
			}
		}
	}

	// ↙ diagonals.
	for row := 0; row+runLength <= size; row++ {
		for col := runLength - 1; col < size; col++ {
			if mark, line, ok := scanRun(board, row, col, 1, -1, runLength); ok {
				return mark, line, true
			}
		}
	}

	return Empty, nil, false
}

// scanRun checks runLength consecutive cells from an in-bounds origin
// along one direction. The board is only read, never written.
func scanRun(board *Board, row, col, dRow, dCol, runLength int) (Mark, []Move, bool) {
	first := board.At(row, col)
	if first == Empty {
		return Empty, nil, false
	}

	line := make([]Move, 0, runLength)
	line = append(line, Move{Row: row, Col: col})

	for i := 1; i < runLength; i++ {
		cellRow, cellCol := row+i*dRow, col+i*dCol
		if board.At(cellRow, cellCol) != first {
			return Empty, nil, false
		}
		line = append(line, Move{Row: cellRow, Col: cellCol})
	}

	return first, line, true
}

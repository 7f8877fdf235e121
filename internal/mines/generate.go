package mines

import "math/rand/v2"

// CreateBoard places p.Mines mines uniformly at random and computes adjacent
// mine counts for every safe cell.
//
// panics [AssertionError] if p is invalid
func CreateBoard(p Params, r *rand.Rand) *Board {
	if err := p.Validate(); err != nil {
		panic(AssertionError{err.Error()})
	}

	b := newBoard(p.Rows, p.Cols)

	/*
	 * Rejection sampling: a draw that lands on an existing mine is
	 * simply redrawn, so exactly p.Mines distinct cells end up mined.
	 */
	for planted := 0; planted < p.Mines; {
		cell := &b.Cells[b.index(r.IntN(p.Rows), r.IntN(p.Cols))]
		if !cell.IsMine {
			cell.IsMine = true
			planted++
		}
	}

	b.countMines()
	return b
}

// Mine cells keep a zero count.
func (b *Board) countMines() {
	for row := range b.Rows {
		for col := range b.Cols {
			cell := &b.Cells[b.index(row, col)]
			if cell.IsMine {
				continue
			}
			cell.AdjacentMines = b.countAdjacentMines(row, col)
		}
	}
}

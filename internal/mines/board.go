package mines

import (
	"fmt"
	"iter"
)

// Board is a rectangular grid of cells stored row-major.
type Board struct {
	Rows, Cols int
	Cells      []Cell
}

func newBoard(rows, cols int) *Board {
	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

func (b *Board) index(row, col int) int {
	return row*b.Cols + col
}

func (b *Board) coords(i int) (row, col int) {
	return i / b.Cols, i % b.Cols
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Rows && 0 <= col && col < b.Cols
}

// At returns the cell at row:col. It panics if the position is out of bounds.
func (b *Board) At(row, col int) *Cell {
	if !b.InBounds(row, col) {
		panic(AssertionError{fmt.Sprintf(
			"cell %d:%d out of %dx%d board", row, col, b.Rows, b.Cols,
		)})
	}
	return &b.Cells[b.index(row, col)]
}

// Neighbors yields the in-bounds positions of the Moore neighbourhood of
// row:col, excluding row:col itself.
func (b *Board) Neighbors(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := row+dr, col+dc
				if (dr != 0 || dc != 0) && b.InBounds(r, c) {
					if !yield(r, c) {
						return
					}
				}
			}
		}
	}
}

func (b *Board) countAdjacentMines(row, col int) (count int) {
	for r, c := range b.Neighbors(row, col) {
		if b.Cells[b.index(r, c)].IsMine {
			count++
		}
	}
	return
}

func (b *Board) MineCount() (count int) {
	for _, c := range b.Cells {
		if c.IsMine {
			count++
		}
	}
	return
}

func (b *Board) CountFlaggedCells() (count int) {
	for _, c := range b.Cells {
		if c.IsFlagged {
			count++
		}
	}
	return
}

// RevealMines opens every mine and leaves safe cells untouched.
func (b *Board) RevealMines() {
	for i := range b.Cells {
		if b.Cells[i].IsMine {
			b.Cells[i].IsOpen = true
		}
	}
}

// Cleared reports whether every non-mine cell is open. Mines need not be
// flagged.
func (b *Board) Cleared() bool {
	for _, c := range b.Cells {
		if !c.IsMine && !c.IsOpen {
			return false
		}
	}
	return true
}

func (b *Board) Clone() *Board {
	clone := newBoard(b.Rows, b.Cols)
	copy(clone.Cells, b.Cells)
	return clone
}

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.Cells))
	for i, c := range b.Cells {
		grid[i] = c.State()
	}
	return grid
}

func (b *Board) String() string {
	return b.Grid().ToString(b.Cols)
}

// FromLayout builds a board from rows of '*' (mine) and '.' (safe) runes and
// fills in adjacent mine counts.
func FromLayout(layout ...string) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidParams)
	}
	b := newBoard(len(layout), len(layout[0]))
	for row, line := range layout {
		if len(line) != b.Cols {
			return nil, fmt.Errorf(
				"%w: layout row %d has %d cells, want %d",
				ErrInvalidParams, row, len(line), b.Cols,
			)
		}
		for col := range len(line) {
			switch line[col] {
			case '*':
				b.Cells[b.index(row, col)].IsMine = true
			case '.':
			default:
				return nil, fmt.Errorf(
					"%w: unexpected %q at %d:%d",
					ErrInvalidParams, line[col], row, col,
				)
			}
		}
	}
	b.countMines()
	return b, nil
}

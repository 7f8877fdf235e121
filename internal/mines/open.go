package mines

import "github.com/gammazero/deque"

// OpenCell opens row:col and, if it has no adjacent mines, keeps opening
// neighbours until the region is bordered by numbered cells. Flags do not
// stop the cascade. Opening an open cell is a no-op. Returns the number of
// cells opened.
func (b *Board) OpenCell(row, col int) (opened int) {
	if !b.InBounds(row, col) {
		return 0
	}

	/*
	 * IsOpen doubles as the visited marker, so a cell may be pushed
	 * more than once but is only expanded the first time it is popped.
	 */
	var todo deque.Deque[int]
	todo.PushBack(b.index(row, col))

	for todo.Len() > 0 {
		i := todo.PopBack()
		cell := &b.Cells[i]
		if cell.IsOpen {
			continue
		}
		cell.IsOpen = true
		opened++

		if cell.IsMine || cell.AdjacentMines != 0 {
			continue
		}
		r, c := b.coords(i)
		for rr, cc := range b.Neighbors(r, c) {
			if j := b.index(rr, cc); !b.Cells[j].IsOpen {
				todo.PushBack(j)
			}
		}
	}

	return opened
}

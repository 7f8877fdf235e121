package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	IsMine        bool
	IsOpen        bool
	IsFlagged     bool
	AdjacentMines int
}

// ToggleFlag flips the flag. It does not look at IsOpen.
func (c *Cell) ToggleFlag() {
	c.IsFlagged = !c.IsFlagged
}

// State projects the cell into what a player is allowed to see.
func (c Cell) State() CellState {
	switch {
	case c.IsOpen && c.IsMine:
		return Mine
	case c.IsOpen:
		return CellState(c.AdjacentMines)
	case c.IsFlagged:
		return Flagged
	default:
		return Unknown
	}
}

type CellState int8

const (
	Unknown CellState = -2
	Flagged CellState = -1
	Mine    CellState = 64
	/*
	 * Each item of a [Grid] is one of the following values:
	 *
	 * 	- 0 to 8 mean the square is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the square is flagged.
	 *
	 * 	- -2 means the square is closed.
	 *
	 * 	- 64 means the square is an open mine.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged:
		return "F"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == Mine:
		return "*"
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

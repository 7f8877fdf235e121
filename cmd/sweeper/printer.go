package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

// printer writes the whole grid when the board changes and only the status
// line on clock ticks.
type printer struct {
	out  io.Writer
	last mines.Grid
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) Print(v game.View) {
	if p.last != nil && slices.Equal(p.last, v.Grid) {
		fmt.Fprintln(p.out, v.Header())
		return
	}
	p.last = v.Grid
	fmt.Fprint(p.out, v.String())
}

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRun(t *testing.T) {
	cfg := &config.Config{
		Game: config.Game{Query: "rows=2&cols=2&mines=1", Seed: 1},
	}
	in := strings.NewReader("p 0 0\nbogus\n\n# comment\nm flag\n")
	var out bytes.Buffer

	require.NoError(t, run(cfg, discard, in, &out))

	assert.Equal(t, 2, strings.Count(out.String(), "mode: reveal"))
	assert.Equal(t, 1, strings.Count(out.String(), "mode: flag"))
	assert.True(t, strings.HasPrefix(out.String(), "00:00  mines: 1  mode: reveal  playing\n# # \n# # \n"))
}

func TestRunRejectsBadParams(t *testing.T) {
	cfg := &config.Config{Game: config.Game{Query: "rows=2&cols=2&mines=4"}}
	err := run(cfg, discard, strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}

func TestReadCommands(t *testing.T) {
	in := strings.NewReader("o 1 1\n  \n# note\nx\nf 0 0\n")
	out := make(chan game.Command, 8)

	require.NoError(t, readCommands(context.Background(), discard, in, out))
	assert.Len(t, out, 2)
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)

	v := game.View{Rows: 1, Cols: 2, Grid: mines.Grid{mines.Unknown, mines.Flagged}}
	p.Print(v)
	v.TimeElapsed = 61
	p.Print(v)
	v.Grid = mines.Grid{1, mines.Flagged}
	p.Print(v)

	assert.Equal(t, ""+
		"00:00  mines: 0  mode: reveal  playing\n# F \n"+
		"01:01  mines: 0  mode: reveal  playing\n"+
		"01:01  mines: 0  mode: reveal  playing\n1 F \n",
		buf.String(),
	)
}

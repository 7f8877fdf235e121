package mines

import (
	"fmt"
	"maps"
	"slices"
)

type Params struct {
	Rows, Cols, Mines int
}

func (p Params) Unpack() (rows int, cols int, mines int) {
	return p.Rows, p.Cols, p.Mines
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.Mines)
}

// Validate reports whether a board can be generated from p. Generation with
// mines >= rows*cols would never terminate.
func (p Params) Validate() error {
	switch {
	case p.Rows <= 0 || p.Cols <= 0:
		return fmt.Errorf(
			"%w: dimensions must be positive (rows = %d, cols = %d)",
			ErrInvalidParams, p.Rows, p.Cols,
		)
	case p.Mines <= 0:
		return fmt.Errorf(
			"%w: mine count must be positive (mines = %d)",
			ErrInvalidParams, p.Mines,
		)
	case p.Mines >= p.Rows*p.Cols:
		return fmt.Errorf(
			"%w: too many mines for %dx%d board (mines = %d)",
			ErrInvalidParams, p.Rows, p.Cols, p.Mines,
		)
	}
	return nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

const DefaultPreset = "default"

var presets = map[string]Params{
	DefaultPreset:  {Rows: 10, Cols: 10, Mines: 10},
	"beginner":     {Rows: 9, Cols: 9, Mines: 10},
	"intermediate": {Rows: 16, Cols: 16, Mines: 40},
	"expert":       {Rows: 16, Cols: 30, Mines: 99},
}

func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

package game

import "fmt"

type Mode int

const (
	Reveal Mode = iota
	Flag
)

func (m Mode) String() string {
	switch m {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "reveal":
		return Reveal, nil
	case "flag":
		return Flag, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Action is a single user interaction with a cell.
type Action struct {
	Row, Col int
	Mode     Mode
}

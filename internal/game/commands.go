package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command is a parsed user instruction ready to be applied to a session.
type Command func(s *Session) error

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrOutOfBounds    = errors.New("invalid cell coordinates")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"p": 2,
	"m": 1,
	"t": 0,
	"r": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func cellCommand(args []string, apply func(s *Session, row, col int)) (Command, error) {
	row, col, err := parseRowCol(args)
	if err != nil {
		return nil, err
	}
	return func(s *Session) error {
		if !s.params.InBounds(row, col) {
			return fmt.Errorf("%w: %d:%d", ErrOutOfBounds, row, col)
		}
		apply(s, row, col)
		return nil
	}, nil
}

// ParseCommand parses a single line:
//
//	g            no-op, publishes state
//	o ROW COL    reveal
//	f ROW COL    toggle flag
//	p ROW COL    press in the current mode
//	m MODE       set mode (flag or reveal)
//	t            toggle mode
//	r            reset
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, ErrUnknownCommand
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return nil, fmt.Errorf("%w: %q takes %d", ErrBadArgs, parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return func(*Session) error { return nil }, nil
	case "o":
		return cellCommand(parts[1:], func(s *Session, row, col int) {
			s.Act(Action{Row: row, Col: col, Mode: Reveal})
		})
	case "f":
		return cellCommand(parts[1:], func(s *Session, row, col int) {
			s.Act(Action{Row: row, Col: col, Mode: Flag})
		})
	case "p":
		return cellCommand(parts[1:], (*Session).Press)
	case "m":
		mode, err := ParseMode(parts[1])
		if err != nil {
			return nil, err
		}
		return func(s *Session) error {
			s.SetMode(mode)
			return nil
		}, nil
	case "t":
		return func(s *Session) error {
			s.ToggleMode()
			return nil
		}, nil
	case "r":
		return func(s *Session) error {
			s.Reset()
			return nil
		}, nil
	}
	return nil, fmt.Errorf("invalid command")
}

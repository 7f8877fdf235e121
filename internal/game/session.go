package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/sweeper/internal/mines"
)

// Session owns a board and everything derived from it. It is not safe for
// concurrent use; see [Runner].
type Session struct {
	ID uuid.UUID

	// Now defaults to [time.Now].
	Now func() time.Time

	logger *slog.Logger
	params mines.Params
	rnd    *rand.Rand
	board  *mines.Board

	mode           Mode
	gameOver       bool
	gameWon        bool
	startTime      time.Time
	timeElapsed    int
	minesRemaining int
}

func New(logger *slog.Logger, params mines.Params, rnd *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("unable to start session: %w", err)
	}

	id := uuid.New()
	s := &Session{
		ID:     id,
		Now:    time.Now,
		logger: logger.With(slog.String("session", id.String())),
		params: params,
		rnd:    rnd,
		mode:   Reveal,
	}
	s.reset()

	s.logger.Info("session started", slog.String("params", params.String()))
	return s, nil
}

func (s *Session) reset() {
	s.board = mines.CreateBoard(s.params, s.rnd)
	s.gameOver = false
	s.gameWon = false
	s.startTime = time.Time{}
	s.timeElapsed = 0
	s.minesRemaining = s.params.Mines
}

// Reset discards the board and starts over with the same params. The input
// mode is kept.
func (s *Session) Reset() {
	s.reset()
	s.logger.Info("game reset")
}

func (s *Session) Params() mines.Params { return s.params }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) GameOver() bool { return s.gameOver }
func (s *Session) GameWon() bool { return s.gameWon }
func (s *Session) TimeElapsed() int { return s.timeElapsed }
func (s *Session) MinesRemaining() int { return s.minesRemaining }

func (s *Session) SetMode(m Mode) {
	s.mode = m
}

func (s *Session) ToggleMode() {
	if s.mode == Flag {
		s.mode = Reveal
	} else {
		s.mode = Flag
	}
}

func (s *Session) Terminal() bool {
	return s.gameOver || s.gameWon
}

// Active reports whether the clock is running.
func (s *Session) Active() bool {
	return !s.startTime.IsZero() && !s.Terminal()
}

// Board returns a copy of the current board.
func (s *Session) Board() *mines.Board {
	return s.board.Clone()
}

// Press applies an action at row:col in the current mode.
func (s *Session) Press(row, col int) {
	s.Act(Action{Row: row, Col: col, Mode: s.mode})
}

// Act applies a. Actions after a terminal state, outside the board, on an
// open cell or on a flagged cell in reveal mode are ignored.
func (s *Session) Act(a Action) {
	if s.Terminal() || !s.board.InBounds(a.Row, a.Col) {
		return
	}

	if s.startTime.IsZero() {
		s.startTime = s.Now()
		s.ensureSafeStart(a.Row, a.Col)
	}

	cell := s.board.At(a.Row, a.Col)

	switch a.Mode {
	case Flag:
		cell.ToggleFlag()
		s.minesRemaining = s.params.Mines - s.board.CountFlaggedCells()
	case Reveal:
		if cell.IsFlagged || cell.IsOpen {
			return
		}
		if cell.IsMine {
			s.gameOver = true
			s.board.RevealMines()
			s.logger.Info("game lost",
				slog.Int("row", a.Row), slog.Int("col", a.Col),
				slog.Int("elapsed", s.timeElapsed),
			)
			return
		}
		opened := s.board.OpenCell(a.Row, a.Col)
		s.logger.Debug("opened cells",
			slog.Int("row", a.Row), slog.Int("col", a.Col),
			slog.Int("count", opened),
		)
		if s.board.Cleared() {
			s.gameWon = true
			s.logger.Info("game won", slog.Int("elapsed", s.timeElapsed))
		}
	}
}

// ensureSafeStart regenerates the board until row:col is not a mine. The
// cell is looked up on the fresh board every time.
func (s *Session) ensureSafeStart(row, col int) {
	attempts := 0
	for s.board.At(row, col).IsMine {
		s.board = mines.CreateBoard(s.params, s.rnd)
		attempts++
	}
	if attempts > 0 {
		s.logger.Debug("regenerated board under first move",
			slog.Int("row", row), slog.Int("col", col),
			slog.Int("attempts", attempts),
		)
	}
}

// Tick updates the elapsed time while the session is active. It reports
// whether the value changed.
func (s *Session) Tick() bool {
	if !s.Active() {
		return false
	}
	elapsed := int(s.Now().Sub(s.startTime) / time.Second)
	if elapsed == s.timeElapsed {
		return false
	}
	s.timeElapsed = elapsed
	return true
}

package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vancomm/sweeper/internal/mines"
)

// View is a snapshot of a session. It shares no memory with the session.
type View struct {
	Session        uuid.UUID
	Rows, Cols     int
	Cells          []mines.Cell
	Grid           mines.Grid
	Mode           Mode
	GameOver       bool
	GameWon        bool
	TimeElapsed    int
	MinesRemaining int
}

func (s *Session) View() View {
	board := s.board.Clone()
	return View{
		Session:        s.ID,
		Rows:           board.Rows,
		Cols:           board.Cols,
		Cells:          board.Cells,
		Grid:           board.Grid(),
		Mode:           s.mode,
		GameOver:       s.gameOver,
		GameWon:        s.gameWon,
		TimeElapsed:    s.timeElapsed,
		MinesRemaining: s.minesRemaining,
	}
}

func (v View) Clock() string {
	return FormatTime(v.TimeElapsed)
}

func (v View) Status() string {
	switch {
	case v.GameOver:
		return "lost"
	case v.GameWon:
		return "won"
	default:
		return "playing"
	}
}

// Header is the one-line summary printed above the grid.
func (v View) Header() string {
	return fmt.Sprintf("%s  mines: %d  mode: %s  %s",
		v.Clock(), v.MinesRemaining, v.Mode, v.Status())
}

func (v View) String() string {
	var b strings.Builder
	b.WriteString(v.Header())
	b.WriteString("\n")
	b.WriteString(v.Grid.ToString(v.Cols))
	return b.String()
}

// FormatTime renders seconds as MM:SS. Minutes are not wrapped.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

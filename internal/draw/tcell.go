package draw

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// tcellColor maps palette colors to tcell colors.
func tcellColor(c Color) tcell.Color {
	switch c {
	case Black:
		return tcell.ColorBlack
	case White:
		return tcell.ColorWhite
	case Gray:
		return tcell.ColorGray
	case Red:
		return tcell.ColorRed
	case Yellow:
		return tcell.ColorYellow
	case Green:
		return tcell.ColorGreen
	case Cyan:
		return tcell.ColorAqua
	case Blue:
		return tcell.ColorBlue
	case Magenta:
		return tcell.ColorFuchsia
	case Orange:
		return tcell.ColorOrange
	default:
		return tcell.ColorDefault
	}
}

// TcellSurface composes frames on a Canvas and hands the cells to a tcell screen,
// which does its own diffing.
type TcellSurface struct {
	*Canvas
	screen tcell.Screen
}

// NewTcellSurface wraps an initialized tcell screen.
func NewTcellSurface(screen tcell.Screen, logicalWidth, logicalHeight float64) *TcellSurface {
	width, height := screen.Size()
	return &TcellSurface{
		Canvas: NewScaledCanvas(width, height, logicalWidth, logicalHeight),
		screen: screen,
	}
}

// Begin starts a frame, picking up any terminal resize.
func (s *TcellSurface) Begin() {
	width, height := s.screen.Size()
	s.Resize(width, height)
	s.Clear()
}

// Present copies the composed cells to the screen and shows them.
func (s *TcellSurface) Present() error {
	if s.screen == nil {
		return fmt.Errorf("present frame: no screen")
	}
	for row := 0; row < s.TerminalHeight(); row++ {
		for col := 0; col < s.TerminalWidth(); col++ {
			cell := s.CellAt(col, row)
			style := tcell.StyleDefault.Foreground(tcellColor(cell.FG)).Background(tcellColor(cell.BG))
			s.screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

var _ Surface = (*TcellSurface)(nil)

package object

import "github.com/tomz197/spacegame/internal/draw"

// Text is a simple drawable text run anchored in field coordinates.
type Text struct {
	X     float64
	Y     float64
	Value string
	Align draw.Align
	Color draw.Color
}

// Draw renders the text. Empty text draws nothing.
func (t Text) Draw(s draw.Surface) {
	if t.Value == "" {
		return
	}
	color := t.Color
	if color == draw.Transparent {
		color = draw.White
	}
	s.DrawText(t.X, t.Y, t.Value, t.Align, color)
}

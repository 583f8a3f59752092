package object

import (
	"strconv"

	"github.com/tomz197/spacegame/internal/draw"
)

// ScoreHint tuning.
const (
	ScoreHintLifetime = 45  // Ticks before a hint disappears
	scoreHintRise     = 1.0 // Units the hint floats up per tick
)

// ScoreHint is the floating "+N" shown where a shot scored.
type ScoreHint struct {
	X, Y     float64
	Value    int
	Lifetime int // Remaining ticks
}

// NewScoreHint creates a hint for value points at (x, y).
func NewScoreHint(x, y float64, value int) *ScoreHint {
	return &ScoreHint{X: x, Y: y, Value: value, Lifetime: ScoreHintLifetime}
}

// Update decays the hint by one tick. Returns false once it has expired.
func (h *ScoreHint) Update() bool {
	h.Lifetime--
	h.Y -= scoreHintRise
	return h.Lifetime > 0
}

// Draw renders the hint, fading to gray in its last third.
func (h *ScoreHint) Draw(s draw.Surface) {
	color := draw.Yellow
	if h.Lifetime < ScoreHintLifetime/3 {
		color = draw.Gray
	}
	s.DrawText(h.X, h.Y, "+"+strconv.Itoa(h.Value), draw.AlignCenter, color)
}

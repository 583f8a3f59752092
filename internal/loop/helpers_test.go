package loop

import (
	"slices"
	"time"

	"github.com/tomz197/spacegame/internal/draw"
)

// seqRandom returns a scripted sequence, then zeros.
type seqRandom struct {
	values []float64
}

func (r *seqRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// newTestGame builds a quiet game: stars at the origin, no AI turns, no enemy fire.
func newTestGame() *Game {
	return NewGame(&seqRandom{}, Options{})
}

// textRecorder keeps every text drawn during a frame.
type textRecorder struct {
	draw.Surface
	texts []string
}

func newTextRecorder() *textRecorder {
	return &textRecorder{Surface: draw.Discard}
}

func (r *textRecorder) DrawText(_, _ float64, text string, _ draw.Align, _ draw.Color) {
	r.texts = append(r.texts, text)
}

func (r *textRecorder) has(text string) bool {
	return slices.Contains(r.texts, text)
}

// tickN runs n frames of one sixtieth of a second.
func tickN(g *Game, n int) {
	for range n {
		g.Tick(draw.Discard, time.Second/60)
	}
}

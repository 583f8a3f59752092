package object

import (
	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// seqRandom replays a fixed sequence of samples, repeating the last one.
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// recordingSurface counts draw calls by kind.
type recordingSurface struct {
	draw.Surface
	sprites []*draw.Image
	fills   []physics.Rect
	texts   []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{Surface: draw.Discard}
}

func (s *recordingSurface) DrawSprite(img *draw.Image, src, dst physics.Rect) {
	s.sprites = append(s.sprites, img)
}

func (s *recordingSurface) FillRect(r physics.Rect, c draw.Color) {
	s.fills = append(s.fills, r)
}

func (s *recordingSurface) DrawText(x, y float64, text string, align draw.Align, c draw.Color) {
	s.texts = append(s.texts, text)
}

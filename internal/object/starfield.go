package object

import (
	"math"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// StarfieldOptions configures one background layer. Zero fields take defaults.
type StarfieldOptions struct {
	Stars   int        // Number of stars in the tile (default 200)
	Speed   float64    // Scroll speed in units per tick (default 0.1)
	MaxSize int        // Largest star edge in units (default 3)
	Color   draw.Color // Star color (default White)
}

// Star is one square in a starfield tile.
type Star struct {
	X, Y, Size float64
}

// Starfield is a vertically scrolling, seamlessly wrapping tile of stars.
// The tile is generated once; each frame only the scroll offset changes.
type Starfield struct {
	Width  float64
	Height float64
	Speed  float64
	PosY   float64 // Tile row shown at the top of the screen
	Color  draw.Color
	Stars  []Star
}

// NewStarfield generates a tile covering width×height with stars placed by rng.
func NewStarfield(width, height float64, opts StarfieldOptions, rng Random) *Starfield {
	if opts.Stars == 0 {
		opts.Stars = 200
	}
	if opts.Speed == 0 {
		opts.Speed = 0.1
	}
	if opts.MaxSize == 0 {
		opts.MaxSize = 3
	}
	if opts.Color == draw.Transparent {
		opts.Color = draw.White
	}

	sf := &Starfield{
		Width:  width,
		Height: height,
		Speed:  opts.Speed,
		PosY:   height,
		Color:  opts.Color,
		Stars:  make([]Star, opts.Stars),
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:    math.Floor(rng.Float64() * width),
			Y:    math.Floor(rng.Float64() * height),
			Size: math.Floor(rng.Float64()*float64(opts.MaxSize) + 1),
		}
	}
	return sf
}

// Scroll moves the tile down by one tick's worth, wrapping at the top.
func (sf *Starfield) Scroll() {
	sf.PosY -= sf.Speed
	if sf.PosY < 0 {
		sf.PosY = sf.Height
	}
}

// ScreenY returns where a star at tile row y currently appears.
func (sf *Starfield) ScreenY(y float64) float64 {
	sy := math.Mod(y-sf.PosY, sf.Height)
	if sy < 0 {
		sy += sf.Height
	}
	return sy
}

// Draw renders the visible stars.
func (sf *Starfield) Draw(s draw.Surface) {
	for _, star := range sf.Stars {
		s.FillRect(physics.RectFromSize(star.X, sf.ScreenY(star.Y), star.Size, star.Size), sf.Color)
	}
}

//go:generate go tool mockgen -destination=mocks/mock_surface.go -package=mocks . Surface

// Package draw implements the drawing surfaces the game renders onto.
//
// Game code never touches terminal cells directly. It issues sprite, rectangle
// and text operations in logical field coordinates against a Surface, and the
// backend scales them onto whatever terminal it is attached to.
package draw

import "github.com/tomz197/spacegame/internal/physics"

// Color is a palette index. The zero value is transparent.
type Color uint8

const (
	Transparent Color = iota
	Black
	White
	Gray
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
	Orange
)

// ansiFG returns the SGR foreground code for the color (39 = terminal default).
func (c Color) ansiFG() int {
	switch c {
	case Black:
		return 30
	case White:
		return 97
	case Gray:
		return 90
	case Red:
		return 91
	case Yellow:
		return 93
	case Green:
		return 92
	case Cyan:
		return 96
	case Blue:
		return 94
	case Magenta:
		return 95
	case Orange:
		return 33
	default:
		return 39
	}
}

// ansiBG returns the SGR background code for the color (49 = terminal default).
func (c Color) ansiBG() int {
	return c.ansiFG() + 10
}

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Surface is the set of primitive drawing operations available to game
// objects. Coordinates are logical field units; rectangles are closed.
type Surface interface {
	// Begin starts a new frame, discarding everything drawn so far.
	Begin()
	// DrawSprite copies the src region of img, scaled, into dst.
	DrawSprite(img *Image, src, dst physics.Rect)
	// FillRect paints a solid rectangle.
	FillRect(r physics.Rect, c Color)
	// StrokeRect paints the outline of a rectangle.
	StrokeRect(r physics.Rect, c Color)
	// DrawText writes text anchored at (x, y) according to align.
	DrawText(x, y float64, text string, align Align, c Color)
	// Present pushes the finished frame to the output device.
	Present() error
}

// Discard is a Surface on which all draw calls succeed without doing anything.
var Discard Surface = discard{}

type discard struct{}

func (discard) Begin()                                          {}
func (discard) DrawSprite(*Image, physics.Rect, physics.Rect)   {}
func (discard) FillRect(physics.Rect, Color)                    {}
func (discard) StrokeRect(physics.Rect, Color)                  {}
func (discard) DrawText(float64, float64, string, Align, Color) {}
func (discard) Present() error                                  { return nil }

package object

import (
	"math"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// Projectile is a bullet moving straight up or down the field.
type Projectile struct {
	X, Y          float64    // Top-left corner
	Width, Height float64    // Size in logical units
	Speed         float64    // Units per tick along Y; negative moves up
	Color         draw.Color // Also tells player and enemy shots apart
}

// NewProjectile creates a projectile fired from the muzzle point (x, y).
// The projectile is centred on x and placed one body length ahead of y
// in its direction of travel.
func NewProjectile(x, y, width, height, speed float64, color draw.Color) *Projectile {
	p := &Projectile{
		X:      math.Trunc(x - width/2),
		Width:  width,
		Height: height,
		Speed:  speed,
		Color:  color,
	}
	if speed < 0 {
		p.Y = y - height
	} else {
		p.Y = y + height
	}
	return p
}

// Advance moves the projectile one tick and reports whether it is still
// within the vertical extent of the field.
func (p *Projectile) Advance(fieldHeight float64) bool {
	p.Y += p.Speed
	return p.Y >= -p.Height && p.Y <= fieldHeight
}

// Hitbox returns the closed bounding rectangle of the projectile.
func (p *Projectile) Hitbox() physics.Rect {
	return physics.RectFromSize(p.X, p.Y, p.Width, p.Height)
}

// Draw renders the projectile as a solid bar.
func (p *Projectile) Draw(s draw.Surface) {
	s.FillRect(p.Hitbox(), p.Color)
}

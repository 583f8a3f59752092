package object

import (
	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// Actor is the capability shared by the player and the enemy: a position,
// a horizontal direction and a capped set of live projectiles.
type Actor struct {
	X, Y           float64
	Direction      int // -1 left, 0 idle, 1 right
	Projectiles    []*Projectile
	MaxProjectiles int
}

// MoveTo sets the absolute position.
func (a *Actor) MoveTo(x, y float64) {
	a.X = x
	a.Y = y
}

// Fire adds p to the live projectiles unless the actor is at its cap.
// Returns false when the shot was dropped.
func (a *Actor) Fire(p *Projectile) bool {
	if len(a.Projectiles) >= a.MaxProjectiles {
		return false
	}
	a.Projectiles = append(a.Projectiles, p)
	return true
}

// UpdateProjectiles advances every projectile and removes spent ones.
//
// When opponent is non-nil, a projectile overlapping it is reported through
// onHit and removed before it moves, even if it would also have left the
// field. A nil opponent disables hit detection.
func (a *Actor) UpdateProjectiles(opponent *physics.Rect, fieldHeight float64, onHit func(*Projectile)) {
	kept := a.Projectiles[:0] // reuse backing array
	for _, p := range a.Projectiles {
		if opponent != nil && physics.Intersect(p.Hitbox(), *opponent) {
			if onHit != nil {
				onHit(p)
			}
			continue
		}
		if p.Advance(fieldHeight) {
			kept = append(kept, p)
		}
	}
	clear(a.Projectiles[len(kept):])
	a.Projectiles = kept
}

// DrawProjectiles renders every live projectile.
func (a *Actor) DrawProjectiles(s draw.Surface) {
	for _, p := range a.Projectiles {
		p.Draw(s)
	}
}

// ClearProjectiles drops all live projectiles.
func (a *Actor) ClearProjectiles() {
	clear(a.Projectiles)
	a.Projectiles = a.Projectiles[:0]
}

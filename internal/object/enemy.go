package object

import (
	"math"
	"time"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// Enemy tuning.
const (
	EnemyMaxProjectiles = 10
	EnemySpriteWidth    = 144.0
	EnemySpriteHeight   = 64.0

	// PatrolRangeY is the vertical amplitude of the figure-eight path.
	PatrolRangeY = 50.0
	// PatrolBaseY is the path's vertical centre as a fraction of the field height.
	PatrolBaseY = 0.3

	enemyShotWidth  = 6.0
	enemyShotHeight = 12.0
	enemyShotSpeed  = 2.0
)

// Enemy is the mothership patrolling the top of the field. It never dies.
// X is the horizontal centre of the sprite, Y its bottom edge.
type Enemy struct {
	Actor
}

// NewEnemy creates the mothership at (x, y).
func NewEnemy(x, y float64) *Enemy {
	e := &Enemy{Actor: Actor{MaxProjectiles: EnemyMaxProjectiles}}
	e.Reset(x, y)
	return e
}

// Reset moves the enemy to (x, y) and drops its projectiles.
func (e *Enemy) Reset(x, y float64) {
	e.MoveTo(x, y)
	e.ClearProjectiles()
}

// Shoot drops a shot from the underside, subject to the projectile cap.
func (e *Enemy) Shoot() {
	e.Fire(NewProjectile(e.X, e.Y, enemyShotWidth, enemyShotHeight, enemyShotSpeed, draw.Red))
}

// Hitbox returns the collision rectangle around the saucer body.
func (e *Enemy) Hitbox() physics.Rect {
	return physics.Rect{
		Left:   e.X - 56,
		Top:    e.Y - 55,
		Right:  e.X + 56,
		Bottom: e.Y - 8,
	}
}

// Draw renders the mothership.
func (e *Enemy) Draw(s draw.Surface) {
	dst := physics.RectFromSize(e.X-EnemySpriteWidth/2, e.Y-EnemySpriteHeight, EnemySpriteWidth, EnemySpriteHeight)
	s.DrawSprite(draw.Mothership, draw.Mothership.Frame(0), dst)
}

// PatrolPosition returns where the enemy is at elapsed time t on its
// figure-eight sweep across the field. The path repeats every 2π seconds.
func PatrolPosition(t time.Duration, field Field) (x, y float64) {
	rangeX := field.Width / 2
	angle := math.Mod(t.Seconds(), 2*math.Pi)
	x = rangeX + math.Cos(angle)*rangeX
	y = field.Height*PatrolBaseY + math.Sin(angle*2)*PatrolRangeY
	return x, y
}

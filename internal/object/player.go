package object

import (
	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/physics"
)

// Player tuning.
const (
	PlayerSpeed          = 2.0  // Horizontal units per tick
	PlayerMaxProjectiles = 3    // Concurrent shots on screen
	PlayerSpriteSize     = 32.0 // Ship, thruster and explosion are drawn at this size

	playerShotWidth  = 4.0
	playerShotHeight = 20.0
	playerShotSpeed  = -4.0

	thrusterStep      = 0.5
	thrusterLastFrame = 3.0

	// ExplosionStep advances the explosion animation by a quarter frame per
	// tick, about 15 animation frames per second at 60 ticks per second.
	ExplosionStep   = 0.25
	ExplosionFrames = 5.0
	// The ship stays visible under the explosion for the first frames only.
	explosionHidesShip = 3.0
)

// PlayerState is the life-cycle phase of the player's ship.
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	PlayerExploding
	PlayerDead
)

// String returns the state name for logs.
func (s PlayerState) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerExploding:
		return "exploding"
	case PlayerDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the ship at the bottom of the field.
// X is the horizontal centre of the sprite, Y its top edge.
type Player struct {
	Actor
	Speed          float64
	State          PlayerState
	ThrusterFrame  float64
	ExplosionFrame float64
}

// NewPlayer creates a live ship at (x, y).
func NewPlayer(x, y float64) *Player {
	p := &Player{
		Actor: Actor{MaxProjectiles: PlayerMaxProjectiles},
		Speed: PlayerSpeed,
	}
	p.Reset(x, y)
	return p
}

// Reset puts the ship back at (x, y) alive, idle and without projectiles.
func (p *Player) Reset(x, y float64) {
	p.MoveTo(x, y)
	p.ClearProjectiles()
	p.Direction = 0
	p.State = PlayerAlive
	p.ThrusterFrame = 0
	p.ExplosionFrame = 0
}

// IsDead reports whether the explosion has finished.
func (p *Player) IsDead() bool {
	return p.State == PlayerDead
}

// Die starts the explosion. Calling it again while exploding or dead does nothing.
func (p *Player) Die() {
	if p.State != PlayerAlive {
		return
	}
	p.State = PlayerExploding
	p.ExplosionFrame = 0
}

// Shoot fires a shot upward from the nose, subject to the projectile cap.
// Only a live ship can shoot.
func (p *Player) Shoot() {
	if p.State != PlayerAlive {
		return
	}
	p.Fire(NewProjectile(p.X, p.Y, playerShotWidth, playerShotHeight, playerShotSpeed, draw.Yellow))
}

// Tick moves the ship and advances its animations. A dead ship is frozen.
func (p *Player) Tick(fieldWidth float64) {
	if p.State == PlayerDead {
		return
	}

	p.X += p.Speed * float64(p.Direction)
	if p.X > fieldWidth {
		p.X = fieldWidth
	} else if p.X < 0 {
		p.X = 0
	}

	if p.ThrusterFrame < thrusterLastFrame {
		p.ThrusterFrame += thrusterStep
	} else {
		p.ThrusterFrame = 0
	}

	if p.State == PlayerExploding {
		p.ExplosionFrame += ExplosionStep
		if p.ExplosionFrame >= ExplosionFrames {
			p.State = PlayerDead
		}
	}
}

// Hitbox returns the collision rectangle around the ship's hull.
func (p *Player) Hitbox() physics.Rect {
	return physics.Rect{
		Left:   p.X - 14,
		Top:    p.Y + 1,
		Right:  p.X + 14,
		Bottom: p.Y + 29,
	}
}

// Draw renders the ship, its thruster flame and any explosion.
func (p *Player) Draw(s draw.Surface) {
	if p.State == PlayerDead {
		return
	}

	x := p.X - PlayerSpriteSize/2
	body := physics.RectFromSize(x, p.Y, PlayerSpriteSize, PlayerSpriteSize)

	if p.State != PlayerExploding || p.ExplosionFrame < explosionHidesShip {
		s.DrawSprite(draw.PlayerShip, draw.PlayerShip.Frame(p.Direction+1), body)
		flame := physics.RectFromSize(x, p.Y+PlayerSpriteSize, PlayerSpriteSize, PlayerSpriteSize)
		s.DrawSprite(draw.Thruster, draw.Thruster.Frame(int(p.ThrusterFrame)), flame)
	}

	if p.State == PlayerExploding {
		s.DrawSprite(draw.Explosion, draw.Explosion.Frame(int(p.ExplosionFrame)), body)
	}
}

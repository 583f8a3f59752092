package loop

import (
	"time"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/loop/config"
	"github.com/tomz197/spacegame/internal/object"
)

// Tick runs one simulation step of dt and draws the frame onto s.
// The order of the steps is fixed; later steps see the effects of earlier ones.
func (g *Game) Tick(s draw.Surface, dt time.Duration) {
	g.Elapsed += dt
	g.consumeIntents()

	g.drawBackground(s)
	g.drawOverlay(s)

	g.updatePlayer(s)
	g.updateEnemy(s)
	g.updateHints(s)

	if g.ShowHitboxes {
		g.drawHitboxes(s)
	}

	if g.Mode == ModePlaying && g.Player.IsDead() {
		g.setMode(ModeGameOver)
	}
}

// drawBackground scrolls and draws the starfield layers back to front.
func (g *Game) drawBackground(s draw.Surface) {
	for _, layer := range g.Layers {
		layer.Scroll()
		layer.Draw(s)
	}
}

// updatePlayer moves, animates and draws the ship and its shots.
// A dead ship is left alone.
func (g *Game) updatePlayer(s draw.Surface) {
	p := g.Player
	if p.IsDead() {
		return
	}

	if g.Mode == ModeAttract {
		g.steerDemoShip()
	}

	p.Tick(g.Field.Width)
	p.Draw(s)

	if g.Mode == ModeAttract {
		p.UpdateProjectiles(nil, g.Field.Height, nil)
	} else {
		target := g.Enemy.Hitbox()
		p.UpdateProjectiles(&target, g.Field.Height, g.enemyHit)
	}
	p.DrawProjectiles(s)
}

// steerDemoShip replaces player input on the title screen.
func (g *Game) steerDemoShip() {
	if g.rng.Float64() > config.AttractTurnThreshold {
		g.Player.Direction = int(g.rng.Float64()*3) - 1
	}
	if g.rng.Float64() > config.AttractFireThreshold {
		g.Player.Shoot()
	}
}

// updateEnemy moves the enemy along its patrol, lets it fire and
// resolves its shots.
func (g *Game) updateEnemy(s draw.Surface) {
	e := g.Enemy
	e.MoveTo(object.PatrolPosition(g.Elapsed, g.Field))
	e.Draw(s)

	if g.rng.Float64() > config.EnemyFireThreshold && !g.Player.IsDead() {
		e.Shoot()
	}

	if g.Mode == ModeAttract {
		e.UpdateProjectiles(nil, g.Field.Height, nil)
	} else {
		target := g.Player.Hitbox()
		e.UpdateProjectiles(&target, g.Field.Height, g.playerHit)
	}
	e.DrawProjectiles(s)
}

// updateHints decays the score hints, drops expired ones and draws the rest.
func (g *Game) updateHints(s draw.Surface) {
	kept := g.Hints[:0] // reuse backing array
	for _, h := range g.Hints {
		if h.Update() {
			kept = append(kept, h)
			h.Draw(s)
		}
	}
	clear(g.Hints[len(kept):])
	g.Hints = kept
}

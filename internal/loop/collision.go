package loop

import (
	"github.com/tomz197/spacegame/internal/loop/config"
	"github.com/tomz197/spacegame/internal/object"
)

// enemyHit credits a player shot that reached the enemy.
func (g *Game) enemyHit(p *object.Projectile) {
	g.Score += config.ScorePerHit
	g.Hints = append(g.Hints, object.NewScoreHint(p.X+p.Width/2, p.Y, config.ScorePerHit))
}

// playerHit starts the player's explosion. Further hits while exploding are ignored.
func (g *Game) playerHit(*object.Projectile) {
	if g.Player.State == object.PlayerAlive {
		g.logger.Debug("player hit", "score", g.Score)
	}
	g.Player.Die()
}

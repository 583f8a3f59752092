package loop

import (
	"strconv"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/loop/config"
	"github.com/tomz197/spacegame/internal/object"
)

// drawOverlay draws the score and the current mode's titles.
func (g *Game) drawOverlay(s draw.Surface) {
	w, h := g.Field.Width, g.Field.Height

	object.Text{
		X:     w * config.ScoreX,
		Y:     config.ScoreY,
		Value: strconv.Itoa(g.Score),
		Align: draw.AlignRight,
	}.Draw(s)

	switch g.Mode {
	case ModeAttract:
		object.Text{X: w / 2, Y: h * config.TitleY, Value: config.TitleText, Align: draw.AlignCenter, Color: draw.Cyan}.Draw(s)
		object.Text{X: w / 2, Y: h * config.SubtitleY, Value: config.SubtitleText, Align: draw.AlignCenter, Color: draw.Cyan}.Draw(s)
		if g.promptVisible() {
			object.Text{X: w / 2, Y: h * config.PromptY, Value: config.PromptText, Align: draw.AlignCenter}.Draw(s)
		}
	case ModeGameOver:
		object.Text{X: w / 2, Y: h * config.GameOverY, Value: config.GameOverText, Align: draw.AlignCenter, Color: draw.Red}.Draw(s)
		object.Text{X: w / 2, Y: h * config.RestartY, Value: config.RestartText, Align: draw.AlignCenter}.Draw(s)
	}
}

// promptVisible blinks the start prompt: shown on odd seconds.
func (g *Game) promptVisible() bool {
	return int(g.Elapsed.Seconds())%2 == 1
}

// drawHitboxes outlines every live collision rectangle.
func (g *Game) drawHitboxes(s draw.Surface) {
	// A dead ship and its frozen shots take no part in collisions.
	if !g.Player.IsDead() {
		s.StrokeRect(g.Player.Hitbox(), draw.Green)
		for _, p := range g.Player.Projectiles {
			s.StrokeRect(p.Hitbox(), draw.Green)
		}
	}
	s.StrokeRect(g.Enemy.Hitbox(), draw.Green)
	for _, p := range g.Enemy.Projectiles {
		s.StrokeRect(p.Hitbox(), draw.Green)
	}
}

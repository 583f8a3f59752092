package loop

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/draw/mocks"
	"github.com/tomz197/spacegame/internal/input"
	"github.com/tomz197/spacegame/internal/object"
)

func release(k input.Key) input.Event { return input.Event{Kind: input.Release, Key: k} }
func press(k input.Key) input.Event   { return input.Event{Kind: input.Press, Key: k} }

func TestNewGame(t *testing.T) {
	g := newTestGame()

	if g.Mode != ModeAttract {
		t.Errorf("Mode = %v, want attract", g.Mode)
	}
	if g.Player.X != 640 || g.Player.Y != 600 {
		t.Errorf("player at (%v, %v), want (640, 600)", g.Player.X, g.Player.Y)
	}
	if g.Enemy.X != 640 || g.Enemy.Y != 160 {
		t.Errorf("enemy at (%v, %v), want (640, 160)", g.Enemy.X, g.Enemy.Y)
	}

	wantStars := []int{80, 200, 300}
	if len(g.Layers) != len(wantStars) {
		t.Fatalf("got %d layers, want %d", len(g.Layers), len(wantStars))
	}
	for i, layer := range g.Layers {
		if len(layer.Stars) != wantStars[i] {
			t.Errorf("layer %d has %d stars, want %d", i, len(layer.Stars), wantStars[i])
		}
	}
}

func TestAttractAnyReleaseStartsPlaying(t *testing.T) {
	g := newTestGame()
	g.Score = 50
	g.Player.X = 100
	g.Enemy.Shoot()

	g.HandleEvent(release(input.KeyOther))
	g.Tick(draw.Discard, 0)

	if g.Mode != ModePlaying {
		t.Fatalf("Mode = %v, want playing", g.Mode)
	}
	if g.Score != 0 {
		t.Errorf("Score = %d, want 0", g.Score)
	}
	if g.Player.X != 640 {
		t.Errorf("player X = %v, want 640", g.Player.X)
	}
	if len(g.Enemy.Projectiles) != 0 {
		t.Errorf("enemy kept %d projectiles", len(g.Enemy.Projectiles))
	}
}

func TestAttractStartDoesNotShoot(t *testing.T) {
	g := newTestGame()

	g.HandleEvent(release(input.KeyFire))
	g.Tick(draw.Discard, 0)

	if g.Mode != ModePlaying {
		t.Fatalf("Mode = %v, want playing", g.Mode)
	}
	if n := len(g.Player.Projectiles); n != 0 {
		t.Errorf("player has %d projectiles, want 0", n)
	}
}

// overlapEverything places a player shot on the enemy and an enemy shot on
// the player, at the positions they have when the projectiles are checked.
func overlapEverything(g *Game) {
	g.Player.Fire(object.NewProjectile(640, 150, 4, 20, -4, draw.Yellow))
	g.Enemy.Fire(object.NewProjectile(640, 598, 6, 12, 2, draw.Red))
}

func TestAttractHitsHaveNoEffect(t *testing.T) {
	g := newTestGame()
	overlapEverything(g)

	g.Tick(draw.Discard, 0)

	if g.Score != 0 {
		t.Errorf("Score = %d, want 0", g.Score)
	}
	if g.Player.State != object.PlayerAlive {
		t.Errorf("player state = %v, want alive", g.Player.State)
	}
	if len(g.Hints) != 0 {
		t.Errorf("got %d score hints, want 0", len(g.Hints))
	}
	if len(g.Player.Projectiles) != 1 || len(g.Enemy.Projectiles) != 1 {
		t.Errorf("projectiles = %d/%d, want both kept", len(g.Player.Projectiles), len(g.Enemy.Projectiles))
	}
}

func TestPlayingHitsScoreAndKill(t *testing.T) {
	g := newTestGame()
	g.startPlaying()
	overlapEverything(g)

	g.Tick(draw.Discard, 0)

	if g.Score != 10 {
		t.Errorf("Score = %d, want 10", g.Score)
	}
	if len(g.Hints) != 1 || g.Hints[0].Value != 10 {
		t.Errorf("hints = %v, want one +10", g.Hints)
	}
	if g.Player.State != object.PlayerExploding {
		t.Errorf("player state = %v, want exploding", g.Player.State)
	}
	if len(g.Player.Projectiles) != 0 || len(g.Enemy.Projectiles) != 0 {
		t.Errorf("projectiles = %d/%d, want both removed", len(g.Player.Projectiles), len(g.Enemy.Projectiles))
	}
}

func TestDeathLeadsToGameOver(t *testing.T) {
	g := newTestGame()
	g.startPlaying()
	g.Player.Die()

	tickN(g, 19)
	if g.Mode != ModePlaying {
		t.Fatalf("after 19 ticks Mode = %v, want playing", g.Mode)
	}

	tickN(g, 1)
	if g.Mode != ModeGameOver {
		t.Fatalf("after 20 ticks Mode = %v, want game-over", g.Mode)
	}
}

func TestGameOverFireReturnsToAttract(t *testing.T) {
	g := newTestGame()
	g.startPlaying()
	g.Score = 30
	g.Player.Die()
	tickN(g, 20)

	g.HandleEvent(release(input.KeyOther))
	g.Tick(draw.Discard, 0)
	if g.Mode != ModeGameOver {
		t.Fatalf("non-fire key: Mode = %v, want game-over", g.Mode)
	}

	g.HandleEvent(release(input.KeyFire))
	g.Tick(draw.Discard, 0)
	if g.Mode != ModeAttract {
		t.Fatalf("fire: Mode = %v, want attract", g.Mode)
	}
	if g.Score != 30 {
		t.Errorf("Score = %d, want 30 kept in attract", g.Score)
	}
	if g.Player.State != object.PlayerAlive || g.Player.X != 640 {
		t.Errorf("player not reset: state %v at X %v", g.Player.State, g.Player.X)
	}

	g.HandleEvent(release(input.KeyFire))
	g.Tick(draw.Discard, 0)
	if g.Mode != ModePlaying || g.Score != 0 {
		t.Errorf("restart: Mode = %v Score = %d, want playing with 0", g.Mode, g.Score)
	}
}

func TestDirectionIntents(t *testing.T) {
	g := newTestGame()
	g.startPlaying()

	steps := []struct {
		ev   input.Event
		want int
	}{
		{press(input.KeyLeft), -1},
		{press(input.KeyRight), 1},
		{release(input.KeyLeft), 1}, // not the active key
		{release(input.KeyRight), 0},
		{press(input.KeyLeft), -1},
		{release(input.KeyFire), -1},
	}

	for i, step := range steps {
		g.HandleEvent(step.ev)
		g.Tick(draw.Discard, 0)
		if g.Player.Direction != step.want {
			t.Errorf("step %d: Direction = %d, want %d", i, g.Player.Direction, step.want)
		}
	}
}

func TestDirectionSwitchBackWhileHeld(t *testing.T) {
	g := newTestGame()
	g.startPlaying()
	tr := newTracker()
	now := time.Unix(0, 0)

	step := func(keys ...input.Key) {
		now = now.Add(time.Second / 60)
		if !g.feed(tr.Observe(keys, now)) {
			t.Fatal("feed asked to quit")
		}
		g.Tick(draw.Discard, time.Second/60)
	}

	step(input.KeyLeft)
	step(input.KeyRight)
	if g.Player.Direction != 1 {
		t.Fatalf("after right: Direction = %d, want 1", g.Player.Direction)
	}

	// Left is held again well inside the hold window of both keys.
	for i := range 50 {
		step(input.KeyLeft)
		if g.Player.Direction != -1 {
			t.Fatalf("tick %d holding left: Direction = %d, want -1", i, g.Player.Direction)
		}
	}

	// Releasing left stops the ship once the hold window passes.
	for range 60 {
		step()
	}
	if g.Player.Direction != 0 {
		t.Errorf("after release: Direction = %d, want 0", g.Player.Direction)
	}
}

func TestDirectionMovesPlayer(t *testing.T) {
	g := newTestGame()
	g.startPlaying()

	g.HandleEvent(press(input.KeyLeft))
	tickN(g, 10)

	if g.Player.X != 620 {
		t.Errorf("player X = %v, want 620", g.Player.X)
	}
}

func TestFireReleasesRespectCap(t *testing.T) {
	g := newTestGame()
	g.startPlaying()

	g.HandleEvent(press(input.KeyFire))
	g.Tick(draw.Discard, 0)
	if n := len(g.Player.Projectiles); n != 0 {
		t.Fatalf("press fired %d projectiles, want 0", n)
	}

	for range 4 {
		g.HandleEvent(release(input.KeyFire))
	}
	g.Tick(draw.Discard, 0)
	if n := len(g.Player.Projectiles); n != 3 {
		t.Errorf("got %d projectiles, want 3", n)
	}
}

func TestAttractDemoShip(t *testing.T) {
	g := newTestGame()
	// turn, direction, fire, enemy fire
	g.rng = &seqRandom{values: []float64{0.95, 0.1, 0.99, 0}}

	g.Tick(draw.Discard, 0)

	if g.Player.Direction != -1 {
		t.Errorf("Direction = %d, want -1", g.Player.Direction)
	}
	if g.Player.X != 638 {
		t.Errorf("player X = %v, want 638", g.Player.X)
	}
	if n := len(g.Player.Projectiles); n != 1 {
		t.Errorf("got %d projectiles, want 1", n)
	}
}

func TestEnemyFire(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		dead   bool
		want   int
	}{
		{"above threshold", 0.97, false, 1},
		{"at threshold", 0.96, false, 0},
		{"player dead", 0.99, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			g.startPlaying()
			if tt.dead {
				g.Player.State = object.PlayerDead
			}
			g.rng = &seqRandom{values: []float64{tt.sample}}

			g.Tick(draw.Discard, 0)

			if n := len(g.Enemy.Projectiles); n != tt.want {
				t.Errorf("enemy has %d projectiles, want %d", n, tt.want)
			}
		})
	}
}

func TestEnemyFollowsPatrol(t *testing.T) {
	g := newTestGame()

	g.Tick(draw.Discard, 0)

	if g.Enemy.X != 1280 || g.Enemy.Y != 240 {
		t.Errorf("enemy at (%v, %v), want (1280, 240)", g.Enemy.X, g.Enemy.Y)
	}
}

func TestScoreHintsExpire(t *testing.T) {
	g := newTestGame()
	g.Hints = append(g.Hints, object.NewScoreHint(100, 100, 10))

	tickN(g, object.ScoreHintLifetime-1)
	if len(g.Hints) != 1 {
		t.Fatalf("hint gone after %d ticks", object.ScoreHintLifetime-1)
	}

	tickN(g, 1)
	if len(g.Hints) != 0 {
		t.Errorf("hint still alive after %d ticks", object.ScoreHintLifetime)
	}
}

func TestAttractPromptBlinks(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    bool
	}{
		{500 * time.Millisecond, false},
		{1500 * time.Millisecond, true},
		{2500 * time.Millisecond, false},
	}

	for _, tt := range tests {
		g := newTestGame()
		r := newTextRecorder()

		g.Tick(r, tt.elapsed)

		if !r.has("Space Game") || !r.has("101") {
			t.Errorf("at %v: titles missing from %q", tt.elapsed, r.texts)
		}
		if got := r.has("PRESS ANY KEY TO START"); got != tt.want {
			t.Errorf("at %v: prompt shown = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestHitboxOverlaySkipsDeadPlayerShots(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	g := newTestGame()
	g.startPlaying()
	g.Player.Shoot()
	g.Player.State = object.PlayerDead
	g.ShowHitboxes = true

	s.EXPECT().FillRect(gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().DrawSprite(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// Only the enemy is outlined; the dead ship's frozen shot is not.
	s.EXPECT().StrokeRect(gomock.Any(), draw.Green).Times(1)

	g.Tick(s, 0)

	if len(g.Player.Projectiles) != 1 {
		t.Fatalf("dead player's shot was dropped")
	}
}

func TestGameOverOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	g := newTestGame()
	g.Mode = ModeGameOver
	g.Score = 30
	g.Player.State = object.PlayerDead
	g.ShowHitboxes = true

	s.EXPECT().FillRect(gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().DrawSprite(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().DrawText(gomock.Any(), gomock.Any(), "30", draw.AlignRight, draw.White)
	s.EXPECT().DrawText(gomock.Any(), gomock.Any(), "GAME OVER", draw.AlignCenter, draw.Red)
	s.EXPECT().DrawText(gomock.Any(), gomock.Any(), "PRESS SPACE TO RESTART", draw.AlignCenter, draw.White)
	// Dead player has no hitbox; only the enemy is outlined.
	s.EXPECT().StrokeRect(gomock.Any(), draw.Green).Times(1)

	g.Tick(s, 0)
}

func TestIntentInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newTestGame()
		g.startPlaying()

		keys := []input.Key{input.KeyLeft, input.KeyRight, input.KeyFire, input.KeyOther}
		n := rapid.IntRange(1, 200).Draw(t, "ticks")
		for range n {
			for range rapid.IntRange(0, 3).Draw(t, "events") {
				ev := input.Event{
					Kind: input.Kind(rapid.IntRange(0, 1).Draw(t, "kind")),
					Key:  rapid.SampledFrom(keys).Draw(t, "key"),
				}
				g.HandleEvent(ev)
			}
			g.Tick(draw.Discard, time.Second/60)

			if d := g.Player.Direction; d < -1 || d > 1 {
				t.Fatalf("Direction = %d", d)
			}
			if len(g.Player.Projectiles) > object.PlayerMaxProjectiles {
				t.Fatalf("player holds %d projectiles", len(g.Player.Projectiles))
			}
			if g.Player.X < 0 || g.Player.X > g.Field.Width {
				t.Fatalf("player X = %v outside the field", g.Player.X)
			}
		}
	})
}

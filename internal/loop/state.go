package loop

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/loop/config"
	"github.com/tomz197/spacegame/internal/object"
)

// Mode is the current phase of a game session.
type Mode int

const (
	ModeAttract  Mode = iota // Title screen with a demo ship
	ModePlaying              // Active gameplay
	ModeGameOver             // Player died, show restart prompt
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeAttract:
		return "attract"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Options configures a game session.
type Options struct {
	ShowHitboxes bool              // Outline every hitbox
	Seed         uint64            // Random seed; 0 picks one from the clock
	Logger       *log.Logger       // Defaults to a discarding logger
	TermSizeFunc draw.TermSizeFunc // Terminal size source for Run; nil queries stdout
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o
}

// NewRandom returns the random source used for a session with the given seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Game holds all state of one session. It is owned by a single goroutine;
// input reaches it only through HandleEvent between ticks.
type Game struct {
	Mode         Mode
	Score        int
	Elapsed      time.Duration
	Field        object.Field
	Player       *object.Player
	Enemy        *object.Enemy
	Hints        []*object.ScoreHint
	Layers       []*object.Starfield
	ShowHitboxes bool

	rng     object.Random
	logger  *log.Logger
	intents intents
}

// NewGame creates a session in attract mode. rng drives the starfield, the
// demo ship and enemy fire.
func NewGame(rng object.Random, opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		Mode:         ModeAttract,
		Field:        object.Field{Width: config.FieldWidth, Height: config.FieldHeight},
		ShowHitboxes: opts.ShowHitboxes,
		rng:          rng,
		logger:       opts.Logger,
	}

	for _, layer := range config.StarLayers {
		g.Layers = append(g.Layers, object.NewStarfield(g.Field.Width, g.Field.Height, layer, rng))
	}

	px, py := g.playerStart()
	g.Player = object.NewPlayer(px, py)
	ex, ey := g.enemyStart()
	g.Enemy = object.NewEnemy(ex, ey)
	return g
}

func (g *Game) playerStart() (x, y float64) {
	return g.Field.Width / 2, g.Field.Height * config.PlayerStartY
}

func (g *Game) enemyStart() (x, y float64) {
	return g.Field.Width / 2, g.Field.Height * config.EnemyStartY
}

// setMode switches modes and logs the transition.
func (g *Game) setMode(m Mode) {
	if g.Mode == m {
		return
	}
	g.logger.Debug("mode change", "from", g.Mode, "to", m, "score", g.Score)
	g.Mode = m
}

// startPlaying begins a new round from the title screen.
func (g *Game) startPlaying() {
	g.Score = 0
	g.Hints = g.Hints[:0]
	g.Player.Reset(g.playerStart())
	g.Enemy.Reset(g.enemyStart())
	g.setMode(ModePlaying)
}

// returnToAttract leaves the game over screen. The score stays on screen
// until the next round starts.
func (g *Game) returnToAttract() {
	g.Player.Reset(g.playerStart())
	g.setMode(ModeAttract)
}

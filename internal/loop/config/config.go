// Package config centralizes all tunable game parameters.
package config

import (
	"time"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/object"
)

// Field dimensions in logical units.
// Actual rendering scales to fit the terminal size.
const (
	FieldWidth  = 1280
	FieldHeight = 800
)

// Start positions as fractions of the field height.
const (
	PlayerStartY = 0.75
	EnemyStartY  = 0.2
)

// Scoring
const (
	ScorePerHit = 10
)

// Random thresholds, compared against one sample in [0, 1) per tick.
const (
	EnemyFireThreshold   = 0.96 // Enemy fires about 4% of ticks
	AttractTurnThreshold = 0.9  // Demo ship picks a new direction
	AttractFireThreshold = 0.96 // Demo ship fires
)

// Overlay layout
const (
	ScoreX       = 0.95 // Fraction of the field width, right-aligned
	ScoreY       = 50
	TitleY       = 0.3 // Fractions of the field height
	SubtitleY    = 0.4
	PromptY      = 0.6
	GameOverY    = 0.4
	RestartY     = 0.5
	TitleText    = "Space Game"
	SubtitleText = "101"
	PromptText   = "PRESS ANY KEY TO START"
	GameOverText = "GAME OVER"
	RestartText  = "PRESS SPACE TO RESTART"
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// KeyHoldDuration is how long a direction key counts as held after the
// terminal last reported it. It must outlast the initial auto-repeat delay of
// most terminals, otherwise a held key stutters.
const KeyHoldDuration = 550 * time.Millisecond

// StarLayers are the background layers, drawn back to front.
var StarLayers = []object.StarfieldOptions{
	{Stars: 80, Speed: 0.6, MaxSize: 4, Color: draw.White},
	{Stars: 200, Speed: 0.2, MaxSize: 3, Color: draw.Gray},
	{Stars: 300, Speed: 0.05, MaxSize: 2, Color: draw.Gray},
}

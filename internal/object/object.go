// Package object defines the game entities: projectiles, the actors that fire
// them, score hints and the scrolling starfield.
package object

// Random is the source of randomness for AI decisions and starfield generation.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Random interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// Field is the size of the play field in logical units.
type Field struct {
	Width  float64
	Height float64
}

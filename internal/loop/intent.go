package loop

import "github.com/tomz197/spacegame/internal/input"

// intents buffers input between ticks.
// direction is level-triggered; fires and released are edge counts.
type intents struct {
	direction int
	active    input.Key // Direction key that set direction
	fires     int       // Fire releases
	released  bool      // Any key released
}

// HandleEvent records a key transition for the next tick. It never touches
// entities directly.
func (g *Game) HandleEvent(ev input.Event) {
	in := &g.intents
	switch ev.Kind {
	case input.Press:
		switch ev.Key {
		case input.KeyLeft:
			in.direction = -1
			in.active = ev.Key
		case input.KeyRight:
			in.direction = 1
			in.active = ev.Key
		}
	case input.Release:
		in.released = true
		if ev.Key == in.active && in.active != input.KeyNone {
			in.direction = 0
			in.active = input.KeyNone
		}
		if ev.Key == input.KeyFire {
			in.fires++
		}
	}
}

// consumeIntents applies the buffered input according to the mode.
// Input that means nothing in the current mode is dropped.
func (g *Game) consumeIntents() {
	in := &g.intents
	defer func() {
		in.fires = 0
		in.released = false
	}()

	switch g.Mode {
	case ModeAttract:
		if in.released {
			g.startPlaying()
		}
	case ModePlaying:
		g.Player.Direction = in.direction
		for range in.fires {
			g.Player.Shoot()
		}
	case ModeGameOver:
		if in.fires > 0 {
			g.returnToAttract()
		}
	}
}

// Package loop provides the game controller and the frame drivers that run it.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/input"
	"github.com/tomz197/spacegame/internal/loop/config"
)

// newTracker returns the key tracker shared by both drivers. Only direction
// keys are held; everything else is a tap.
func newTracker() *input.Tracker {
	return input.NewTracker(config.KeyHoldDuration, input.KeyFire, input.KeyQuit, input.KeyOther)
}

// Run plays one session on an ANSI terminal until ctx is cancelled, the
// player quits or r is closed. The current frame always completes.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	g := NewGame(NewRandom(opts.Seed), opts)
	inputCtx, stopInput := context.WithCancel(ctx)
	defer stopInput()
	stream := input.StartStream(inputCtx, r)
	tracker := newTracker()

	surface := draw.NewTermSurface(w, opts.TermSizeFunc, config.FieldWidth, config.FieldHeight)
	surface.Open()
	defer surface.Close()

	opts.Logger.Debug("session started", "seed", opts.Seed)

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			// ===== INPUT PHASE =====
			if !g.feed(tracker.Observe(stream.Drain(), now)) {
				return nil
			}

			// ===== UPDATE + DRAW PHASE =====
			surface.Begin()
			g.Tick(surface, now.Sub(last))
			last = now
			if err := surface.Present(); err != nil {
				return err
			}
		}
	}
}

// RunTcell plays one session on an initialized tcell screen. The caller owns
// the screen and finalizes it after RunTcell returns.
func RunTcell(ctx context.Context, screen tcell.Screen, opts Options) error {
	opts = opts.withDefaults()
	g := NewGame(NewRandom(opts.Seed), opts)
	tracker := newTracker()
	surface := draw.NewTcellSurface(screen, config.FieldWidth, config.FieldHeight)

	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events) // screen finalized
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()
	last := time.Now()
	var keys []input.Key

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys = append(keys, input.FromTcell(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			if !g.feed(tracker.Observe(keys, now)) {
				return nil
			}
			keys = keys[:0]

			surface.Begin()
			g.Tick(surface, now.Sub(last))
			last = now
			if err := surface.Present(); err != nil {
				return err
			}
		}
	}
}

// feed hands events to the game. Returns false when the player asked to quit.
func (g *Game) feed(events []input.Event) bool {
	for _, ev := range events {
		if ev.Key == input.KeyQuit {
			g.logger.Debug("quit requested", "mode", g.Mode, "score", g.Score)
			return false
		}
		g.HandleEvent(ev)
	}
	return true
}

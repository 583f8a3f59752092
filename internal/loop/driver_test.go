package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestRunStopsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	size := func() (int, int, error) { return 80, 24, nil }
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, bufio.NewReader(strings.NewReader("")), &out, Options{Seed: 1, TermSizeFunc: size})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() only stopped on timeout")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	size := func() (int, int, error) { return 80, 24, nil }
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), &out, Options{Seed: 1, TermSizeFunc: size})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() ignored cancellation")
	}
}

func TestRunTcellQuitKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RunTcell(ctx, screen, Options{Seed: 1}); err != nil {
		t.Fatalf("RunTcell() error: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("RunTcell() only stopped on timeout")
	}
}

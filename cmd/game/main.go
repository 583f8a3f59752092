package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/spacegame/internal/config"
	"github.com/tomz197/spacegame/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "game"})
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "warn")); err == nil {
		logger.SetLevel(level)
	}

	opts := loop.Options{
		ShowHitboxes: config.GetEnvBool("SHOW_HITBOXES", false),
		Seed:         uint64(config.GetEnvInt("GAME_SEED", 0)),
		Logger:       logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch renderer := config.GetEnv("GAME_RENDERER", "ansi"); renderer {
	case "ansi":
		err = runANSI(ctx, opts)
	case "tcell":
		err = runTcell(ctx, opts)
	default:
		err = fmt.Errorf("unknown renderer %q (want ansi or tcell)", renderer)
	}
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

// runANSI plays on stdin/stdout in raw mode.
func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, opts)
}

// runTcell plays on a full-screen tcell screen.
func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return loop.RunTcell(ctx, screen, opts)
}

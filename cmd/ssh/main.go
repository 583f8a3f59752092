package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/spacegame/internal/config"
	"github.com/tomz197/spacegame/internal/draw"
	"github.com/tomz197/spacegame/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "ssh",
		ReportTimestamp: true,
	})
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	if err := run(logger); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	showHitboxes := config.GetEnvBool("SHOW_HITBOXES", false)
	logger.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	games := &gameHandler{
		ctx:          ctx,
		logger:       logger,
		showHitboxes: showHitboxes,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// gameHandler runs one private game per SSH session.
type gameHandler struct {
	ctx          context.Context // Cancelled on server shutdown
	logger       *log.Logger
	showHitboxes bool
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("game session started",
			"term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		win := &windowSize{width: pty.Window.Width, height: pty.Window.Height}
		go func() {
			for w := range winCh {
				win.set(w.Width, w.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stopOnShutdown := context.AfterFunc(h.ctx, cancel)
		defer stopOnShutdown()

		opts := loop.Options{
			ShowHitboxes: h.showHitboxes,
			Logger:       logger,
			TermSizeFunc: win.size,
		}
		if err := loop.Run(ctx, bufio.NewReader(sess), sess, opts); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("game session ended")
		next(sess)
	}
}

// windowSize follows the client's terminal size from window change requests.
type windowSize struct {
	mu            sync.Mutex
	width, height int
}

func (ws *windowSize) set(width, height int) {
	ws.mu.Lock()
	ws.width, ws.height = width, height
	ws.mu.Unlock()
}

// size implements draw.TermSizeFunc.
func (ws *windowSize) size() (int, int, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.width, ws.height, nil
}

var _ draw.TermSizeFunc = (*windowSize)(nil).size

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/client/config"
	"github.com/dmitrijs2005/mnemos/internal/client/services"
	"github.com/dmitrijs2005/mnemos/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	study       services.StudyService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config, s services.StudyService, l logging.Logger) *App {
	return &App{
		config:      c,
		study:       s,
		logger:      l,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// setMode switches the mode and reports whether it changed.
func (a *App) setMode(ctx context.Context, mode Mode) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == mode {
		return false
	}
	a.mode = mode
	a.logger.Info(ctx, "switched mode", "mode", string(mode))
	return true
}

// Run loads the collection, resets items due today when online, starts the
// connectivity watcher and blocks in the REPL until the user exits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.study.Load(ctx); err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	if a.syncMode(ctx) {
		a.setView(ctx, a.study.Today())
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
	return nil
}

// StartOnlineStatusWatcher pings the server every interval. When the server
// comes back while the collection is the cached read-only snapshot, the
// collection is reloaded.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if err := a.study.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	if !a.setMode(ctx, ModeOnline) || !a.study.Offline() {
		return
	}
	if err := a.study.Load(ctx); err != nil {
		a.logger.Warn(ctx, "reload after reconnect failed", "error", err.Error())
	}
}

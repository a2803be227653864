package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/starboard/internal/config"
	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/metrics"
	transporthttp "github.com/vovakirdan/starboard/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	board           *core.Board
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
// The stores live as long as the App and are dropped with it.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		m    *metrics.Metrics
		opts = []core.Option{core.WithDefaultRoom(cfg.DefaultRoom)}
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		opts = append(opts, core.WithObserver(m))
	}

	board := core.NewBoard(core.NewIdentityStore(), core.NewRoomStore(cfg.RoomCapacity), opts...)
	server := transporthttp.NewServer(board, cfg, m, logger)

	logger.Info().
		Int("room_capacity", cfg.RoomCapacity).
		Str("default_room", cfg.DefaultRoom).
		Bool("metrics", cfg.MetricsEnabled).
		Msg("board initialized")

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		board:           board,
		log:             logger,
	}, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() stdhttp.Handler {
	return a.server.Handler
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		a.log.Info().Int("rooms", len(a.board.Rooms())).Msg("board discarded")
		return <-serverErr
	}
}

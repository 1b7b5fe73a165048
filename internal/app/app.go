// Package app wires the data layer together: configuration, structured
// logging, the storage gateway (with schema migration), and the access
// layer service. The request-handling layer consumes the service through
// App; this package owns init and teardown only.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avdoshkin/helpnet/internal/config"
	"github.com/avdoshkin/helpnet/internal/logging"
	"github.com/avdoshkin/helpnet/internal/repositories/repomanager"
	"github.com/avdoshkin/helpnet/internal/services"
	"github.com/avdoshkin/helpnet/internal/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	gateway *storage.Gateway
	service *services.Service
}

// New constructs the application: logger, storage gateway (running any
// pending migrations), and the access layer on top.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	logger := logging.NewSlogLogger(sl)

	gw, err := storage.New(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	svc := services.New(repomanager.ForDialect(gw.Dialect()), logger)

	return &App{config: cfg, logger: logger, gateway: gw, service: svc}, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Service returns the access layer for the request-handling layer to call.
func (app *App) Service() *services.Service {
	return app.service
}

// Gateway returns the storage gateway, from which callers open sessions.
func (app *App) Gateway() *storage.Gateway {
	return app.gateway
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the process receives a termination signal or the
// context is cancelled, then closes the gateway.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "data layer ready")

	app.initSignalHandler(cancelFunc)
	<-ctx.Done()

	if err := app.gateway.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage gateway", "error", err.Error())
	}
	app.logger.Info(ctx, "shutdown complete")
}

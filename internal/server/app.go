// Package server initializes and runs the Unspoken web application. It opens
// the letter store, wires services, metrics and the router, and shuts down
// gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/config"
	"github.com/dmitrijs2005/unspoken/internal/logging"
	"github.com/dmitrijs2005/unspoken/internal/metrics"
	"github.com/dmitrijs2005/unspoken/internal/repositories/repomanager"
	"github.com/dmitrijs2005/unspoken/internal/services"
	"github.com/dmitrijs2005/unspoken/internal/web"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	handler http.Handler
}

// NewApp opens the store (running migrations) and builds the HTTP handler.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewLogger(c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	um, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessionKey := []byte(c.SessionKey)
	if len(sessionKey) == 0 {
		// view passes then only survive until restart
		key, err := common.MakeRandHexString(32)
		if err != nil {
			_ = um.Close()
			return nil, fmt.Errorf("session key: %w", err)
		}
		sessionKey = []byte(key)
	}

	gate := services.NewAccessGate(c.ViewSecret)
	if !gate.Enabled() {
		logger.Warn(ctx, "no view secret configured; the view-all page is disabled")
	}

	h := web.NewHandler(web.Deps{
		Letters:    services.NewLetterService(um.Letters()),
		Gate:       gate,
		Metrics:    metrics.NewMetrics(),
		Logger:     logger,
		Health:     um,
		SessionKey: sessionKey,
		SessionTTL: c.SessionTTL,
	})

	return &App{
		config:  c,
		logger:  logger,
		manager: um,
		handler: web.NewRouter(h),
	}, nil
}

// Handler returns the application's HTTP handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		if _, ok := <-sigs; ok {
			cancelFunc()
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "dialect", app.manager.Dialect())

	stop := app.initSignalHandler(cancelFunc)
	defer stop()

	srv := NewHTTPServer(app.config.ListenAddr, app.logger, app.handler)
	runErr := srv.Run(ctx)

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")

	return runErr
}

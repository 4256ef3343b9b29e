// Package server wires configuration, logging, the store and the HTTP API
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/mcpcare/internal/logging"
	"github.com/dmitrijs2005/mcpcare/internal/server/config"
	"github.com/dmitrijs2005/mcpcare/internal/server/httpapi"
	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mcpcare/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
}

// openRepositories is a seam for tests that run without a database.
var openRepositories = repomanager.Open

// NewApp validates c, connects to the store and builds the services.
// Log output goes to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(w, c.LogLevel)
	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "JWT secret is the built-in development default; set JWT_SECRET before exposing the server")
	}

	repos, err := openRepositories(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	driver, _ := repomanager.Driver(c.DatabaseDSN)
	logger.Info(ctx, "Connected to store", "driver", driver)

	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		userService: services.NewUserService(repos, c),
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}

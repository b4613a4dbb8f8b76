// Package server initializes and runs the application: it loads
// configuration, opens the storage backend, wires the services and starts
// the HTTP API with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmarques/despesas/internal/logging"
	"github.com/dmarques/despesas/internal/server/config"
	"github.com/dmarques/despesas/internal/server/expenses"
	"github.com/dmarques/despesas/internal/server/httpapi"
	"github.com/dmarques/despesas/internal/server/shared/db"
	"github.com/dmarques/despesas/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	manager        db.RepositoryManager
	userService    *users.Service
	expenseService *expenses.Service
}

func NewApp(c *config.Config) (*App, error) {

	if c.SecretKey == "" {
		return nil, errors.New("secret key must be configured (use -s or a config file)")
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := db.NewRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(manager.Users(), c)
	es := expenses.NewService(manager.Expenses())

	return &App{
		config:         c,
		logger:         logger,
		manager:        manager,
		userService:    us,
		expenseService: es,
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

	s, err := httpapi.NewServer(app.config, app.logger, app.userService, app.expenseService)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}

// Package server initializes and runs the loginward application: it selects
// a credential store backend, wires the auth service and session manager, and
// runs the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/askarpov/loginward/internal/logging"
	"github.com/askarpov/loginward/internal/server/config"
	"github.com/askarpov/loginward/internal/server/httpapi"
	"github.com/askarpov/loginward/internal/server/login"
	"github.com/askarpov/loginward/internal/server/sessions"
	"github.com/askarpov/loginward/internal/server/shared/db"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       db.Manager
	authService *login.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	sessionManager := sessions.NewManager([]byte(cfg.SecretKey), cfg.SessionValidityDuration)
	authService := login.NewService(store.Credentials(), sessionManager)

	return &App{
		config:      cfg,
		logger:      logger,
		store:       store,
		authService: authService,
	}, nil
}

func newStore(ctx context.Context, cfg *config.Config) (db.Manager, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		return db.NewPostgresManager(ctx, cfg.DatabaseDSN)
	case config.BackendMemory:
		return db.NewInMemoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
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

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.authService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.Backend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err.Error())
	}

	app.logger.Info(ctx, "Server shut down")
}

package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/autokit/internal/automobile"
	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
	"github.com/ferdiebergado/autokit/internal/platform/router"
	"github.com/ferdiebergado/autokit/internal/platform/validation"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	validator       validation.Validator
	publisher       broker.Publisher
	router          router.Router
}

func New(cfg *config.Config, dbConn *sql.DB, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              dbConn,
		signer:          providers.Signer,
		validator:       providers.Validator,
		publisher:       providers.Publisher,
		router:          providers.Router,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	repo := automobile.NewRepository(a.db)
	svc := automobile.NewService(repo, a.publisher, a.config.Broker)
	handler := automobile.NewHandler(svc)
	mountAutomobileRoutes(a.router, handler, a.signer, a.validator, a.config.Server.MaxBodyBytes)
}

// seedSampleRecord inserts one automobile on startup, an operational
// convenience rather than part of the steady-state contract. A failure
// is logged, not fatal.
func (a *App) seedSampleRecord(ctx context.Context) {
	repo := automobile.NewRepository(a.db)
	saved, err := repo.Create(ctx, automobile.CreateParams{Name: "Ford", Color: "Green", OriginalColor: true})
	if err != nil {
		slog.Warn("Failed to seed sample automobile.", "reason", err)
		return
	}
	slog.Info("Seeded sample automobile.", "id", saved.ID)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()
	a.seedSampleRecord(ctx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

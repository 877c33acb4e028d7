package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/middleware"
	"github.com/ferdiebergado/autokit/internal/pkg/message"
	"github.com/ferdiebergado/autokit/internal/platform/db"
)

func Run(signalCtx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewConnection(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	providers, err := setupProviders(cfg, securityKey)
	if err != nil {
		return err
	}
	defer func() {
		if err := providers.Publisher.Close(); err != nil {
			slog.Error("Failed to close publisher.", "reason", err)
		}
	}()

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	application := New(cfg, dbConn, providers, middlewares)
	if err := application.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return application.Shutdown()
}

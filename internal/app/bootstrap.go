package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/hmondejar/notekit/internal/config"
	"github.com/hmondejar/notekit/internal/middleware"
	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/platform/db"
)

// Run boots the whole application: env, config, database, providers, HTTP
// server. It blocks until the signal context is done or the server fails.
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

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	provider, err := NewProvider(cfg, securityKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	apiServer := New(cfg, provider, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}

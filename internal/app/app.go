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

	"github.com/hmondejar/notekit/internal/auth"
	"github.com/hmondejar/notekit/internal/config"
	"github.com/hmondejar/notekit/internal/note"
	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/hmondejar/notekit/internal/platform/email"
	"github.com/hmondejar/notekit/internal/platform/hash"
	"github.com/hmondejar/notekit/internal/platform/jwt"
	"github.com/hmondejar/notekit/internal/platform/router"
	"github.com/hmondejar/notekit/internal/platform/validation"
	"github.com/hmondejar/notekit/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	mailer          email.Mailer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
	txManager       db.TxManager
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              provider.DB,
		txManager:       provider.TxMgr,
		signer:          provider.Signer,
		mailer:          provider.Mailer,
		validator:       provider.Validator,
		hasher:          provider.Hasher,
		router:          provider.Router,
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
	userRepo := user.NewRepository(a.db)
	userService := user.NewService(userRepo)

	authRepo := auth.NewRepository(a.db)
	authProviders := &auth.Providers{
		Hasher: a.hasher,
		Signer: a.signer,
		Mailer: a.mailer,
		TxMgr:  a.txManager,
	}
	authService := auth.NewService(authRepo, userService, authProviders, a.config)
	authHandler := auth.NewHandler(authService)
	mountAuthRoutes(a.router, authHandler, a.validator, a.signer, a.config.Server.MaxBodyBytes)

	noteRepo := note.NewRepository(a.db)
	noteService := note.NewService(noteRepo)
	noteHandler := note.NewHandler(noteService)
	mountNoteRoutes(a.router, noteHandler, a.validator, a.signer, a.config.Server.MaxBodyBytes)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

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

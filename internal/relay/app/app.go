package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/mgu/internal/relay/http"
	"github.com/aussiebroadwan/mgu/internal/relay/service"
	"github.com/aussiebroadwan/mgu/pkg/cryptox"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the provider client, nonces and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	client *mgusdk.Client
	nonces *noncex.Manager
	warmer *service.TokenWarmer

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "mgu-relay",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.logger.Info("configuration loaded", "config", cfg)
	if cfg.ClientSecret == "" {
		app.logger.Warn("MGU_API_CLIENT_SECRET is not set; provider calls will fail until it is configured")
	}

	if err := app.initNonces(); err != nil {
		return nil, err
	}
	app.initClient()
	app.initHTTP()

	return app, nil
}

// Handler returns the relay's root handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.warmer != nil {
		app.warmer.Start()
	}

	app.logger.Info("relay starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down relay...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	var shutdownErr error
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		shutdownErr = err
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.warmer != nil {
		app.warmer.Stop()
	}

	app.logger.Info("relay stopped")
	return shutdownErr
}

// initNonces derives the nonce key. Without a configured secret every
// restart invalidates outstanding nonces, which only costs browsers a
// refetch.
func (app *Application) initNonces() error {
	secret := app.cfg.NonceSecret
	if secret == "" {
		generated, err := cryptox.GenerateSecret(cryptox.KeySize256)
		if err != nil {
			return fmt.Errorf("failed to generate nonce secret: %w", err)
		}
		secret = generated
		app.logger.Warn("RELAY_NONCE_SECRET is not set; using an ephemeral secret")
	}

	nonces, err := noncex.New([]byte(secret), app.cfg.NonceTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize nonces: %w", err)
	}
	app.nonces = nonces
	return nil
}

// initClient builds the provider client and, when enabled, its warmer.
func (app *Application) initClient() {
	app.client = mgusdk.NewClient(app.cfg.Credentials(),
		mgusdk.WithTimeout(app.cfg.HTTPTimeout),
		mgusdk.WithLogger(app.logger.With("component", "mgusdk")),
	)

	if app.cfg.TokenWarmInterval > 0 {
		app.warmer = service.NewTokenWarmer(app.client.Tokens(), app.logger, app.cfg.TokenWarmInterval)
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.client,
		app.nonces,
		BuildVersion,
		app.cfg.AllowedOrigin,
		app.logger,
	)
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

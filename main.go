package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kendall-kelly/freelance-api/config"
	"github.com/kendall-kelly/freelance-api/logger"
	"github.com/kendall-kelly/freelance-api/routes"
	"github.com/kendall-kelly/freelance-api/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync() //nolint:errcheck

	logger.Log.Info("Starting Freelance API server...", zap.String("env", cfg.GoEnv))

	a, err := newApp(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Log.Info("Server stopped")
}

// app owns the store and the HTTP server for one process lifetime
type app struct {
	cfg    *config.Config
	store  *store.Store
	server *http.Server
}

func newApp(cfg *config.Config) (*app, error) {
	db, err := config.ConnectDatabase(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		closeStore(st)
		return nil, err
	}
	logger.Log.Info("Database migration completed successfully")

	router, err := routes.Setup(cfg, st, logger.Log)
	if err != nil {
		closeStore(st)
		return nil, err
	}

	return &app{
		cfg:   cfg,
		store: st,
		server: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
	}, nil
}

// closeStore releases the store on a failed startup; the startup error takes precedence
func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logger.Log.Error("Failed to close database", zap.Error(err))
	}
}

// run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests and closes the store
func (a *app) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server is listening", zap.String("addr", a.server.Addr))
		errCh <- a.server.ListenAndServe()
	}()

	var serveErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("failed to start server: %w", err)
		}
		errCh = nil
	case <-ctx.Done():
		logger.Log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = fmt.Errorf("server shutdown failed: %w", err)
	}
	if errCh != nil {
		<-errCh
	}

	logger.Log.Info("Closing database connection...")
	if err := a.store.Close(); err != nil && serveErr == nil {
		serveErr = fmt.Errorf("failed to close database: %w", err)
	}
	return serveErr
}

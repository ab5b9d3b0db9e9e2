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
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/credit-engine/internal/app"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/config"
)

const poolCheckInterval = time.Minute

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
	})
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := app.New(ctx, cfg, appLogger, app.Options{})
	if err != nil {
		appLogger.Error("Failed to start credit engine", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
		}
	}()

	if err := engine.Database.StartMonitoring(poolCheckInterval); err != nil {
		appLogger.Warn("Database pool monitoring disabled", map[string]any{"error": err.Error()})
	}

	servers := []*http.Server{{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           engine.Router(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}}
	if cfg.Metrics.Enabled {
		servers = append(servers, metrics.NewServer(fmt.Sprintf(":%d", cfg.Metrics.Port), cfg.Metrics.Path))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			appLogger.Info("Starting server", map[string]any{
				"addr": srv.Addr,
				"env":  cfg.Environment,
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down servers...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errList []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errList = append(errList, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errList...)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server exited gracefully", nil)
}

// Package main is the entry point of the uom HTTP service, a JSON API over
// the quantity engine and its unit catalog.
//
// Usage:
//
//	go run ./cmd/uom-server
//
// Environment Variables:
//
//	UOM_ENGINE_NUMERIC - float64, decimal or rational (default: float64)
//	UOM_SERVER_PORT    - HTTP server port (default: 8080, PORT also accepted)
//	UOM_LOG_LEVEL      - debug, info, warn or error (default: info)
//	UOM_CONFIG         - explicit config file path
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hapkiduki/uom-go/internal/application/service"
	"github.com/hapkiduki/uom-go/internal/infrastructure/catalog"
	"github.com/hapkiduki/uom-go/internal/infrastructure/config"
	"github.com/hapkiduki/uom-go/internal/infrastructure/logging"
	"github.com/hapkiduki/uom-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/uom-go/internal/interfaces/http/router"
	"github.com/hapkiduki/uom-go/pkg/errors"
	"github.com/hapkiduki/uom-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	cfg := config.MustLoad(config.GetEnv(config.EnvPrefix+"_CONFIG", ""))

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting uom server",
		"version", version,
		"environment", cfg.App.Environment,
		"numeric", cfg.Engine.Numeric,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.New(log)

	units, err := catalog.Units()
	if err != nil {
		log.Fatal("Unit catalog is invalid", "error", err)
	}
	repo, err := memory.NewUnitRepository(units)
	if err != nil {
		log.Fatal("Unit catalog is invalid", "error", err)
	}
	svc, err := service.NewConversionService(repo, cfg.Engine.Numeric, logAdapter)
	if err != nil {
		log.Fatal("Conversion service failed to start", "error", err)
	}
	log.Info("Unit catalog loaded", "units", len(units))

	server := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.New(router.Options{
			Config:    cfg,
			Service:   svc,
			Logger:    logAdapter,
			Version:   version,
			StartTime: startTime,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

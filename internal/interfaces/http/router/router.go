// Package router assembles the chi router of the uom HTTP API.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/hapkiduki/uom-go/internal/application/dto"
	"github.com/hapkiduki/uom-go/internal/application/port"
	"github.com/hapkiduki/uom-go/internal/infrastructure/config"
	"github.com/hapkiduki/uom-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/uom-go/internal/interfaces/http/middleware"
)

// Service is what the router needs from the application layer.
type Service interface {
	handler.ConversionService
	Numeric() string
	CountUnits(ctx context.Context) (int64, error)
}

// Options holds the router's collaborators.
type Options struct {
	Config    *config.Config
	Service   Service
	Logger    port.Logger
	Version   string
	StartTime time.Time
}

// New builds the router. Middleware runs in the order it is added.
func New(opts Options) chi.Router {
	cfg := opts.Config
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recoverer(opts.Logger))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-API-Version"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(opts.Version))
	r.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", healthHandler(opts))

	r.NotFound(errorHandler(http.StatusNotFound, dto.CodeNotFound,
		"The requested resource was not found"))
	r.MethodNotAllowed(errorHandler(http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed,
		"The requested method is not allowed for this resource"))

	conversions := handler.NewConversionHandler(opts.Service, opts.Logger)
	r.Mount("/api/v1", conversions.Routes())

	return r
}

func healthHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		units, err := opts.Service.CountUnits(r.Context())
		status := "healthy"
		if err != nil || units == 0 {
			status = "unhealthy"
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, dto.HealthResponse{
			Status:  status,
			Version: opts.Version,
			Uptime:  time.Since(opts.StartTime).Round(time.Second).String(),
			Units:   units,
			Numeric: opts.Service.Numeric(),
		})
	}
}

func errorHandler(status int, code, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, status)
		render.JSON(w, r, dto.NewErrorResponse[any](code, message))
	}
}

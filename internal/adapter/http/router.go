package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/adapter/http/handler"
	"github.com/corebank/ledgerengine/internal/adapter/http/middleware"
	"github.com/corebank/ledgerengine/internal/infrastructure/metrics"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PostingHandler  *handler.PostingHandler
	DayCloseHandler *handler.DayCloseHandler
	TrackerHandler  *handler.TrackerHandler
	ConfigHandler   *handler.ConfigHandler
	LedgerHandler   *handler.LedgerHandler
	AuditHandler    *handler.AuditHandler // optional
	HealthHandler   *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore // optional
	RateLimiter      *middleware.RateLimiter  // optional
	Metrics          *metrics.Metrics         // optional
	Gatherer         prometheus.Gatherer      // serves /metrics when set

	CORSAllowedOrigins []string
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestContext(cfg.Logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.ActorHeader, middleware.IdempotencyKeyHeader, chimiddleware.RequestIDHeader},
			ExposedHeaders: []string{chimiddleware.RequestIDHeader, middleware.ReplayHeader},
			MaxAge:         300,
		}))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
		}

		r.Route("/postings", func(r chi.Router) {
			r.Post("/", cfg.PostingHandler.Create)
			r.Post("/preview", cfg.PostingHandler.Preview)
			r.Get("/{reference}", cfg.PostingHandler.Get)
			r.Post("/{reference}/reverse", cfg.PostingHandler.Reverse)
		})

		r.Route("/branches/{branchID}", func(r chi.Router) {
			r.Post("/days/{date}/close", cfg.DayCloseHandler.Close)
			r.Get("/days/{date}/close", cfg.DayCloseHandler.Get)
			r.Get("/trial-balance", cfg.DayCloseHandler.TrialBalance)
		})

		r.Route("/trackers", func(r chi.Router) {
			r.Get("/", cfg.TrackerHandler.List)
			r.Get("/{reference}", cfg.TrackerHandler.Get)
			r.Post("/{reference}/retry", cfg.TrackerHandler.Retry)
		})

		r.Post("/config/refresh", cfg.ConfigHandler.Refresh)
		r.Get("/config/version", cfg.ConfigHandler.Version)
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
		if cfg.AuditHandler != nil {
			r.Get("/audit", cfg.AuditHandler.List)
		}
	})

	return r
}

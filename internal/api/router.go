package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/attune-health/attune/internal/api/handlers"
	mw "github.com/attune-health/attune/internal/api/middleware"
	"github.com/attune-health/attune/internal/config"
	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/service"
	"github.com/attune-health/attune/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router  *chi.Mux
	Janitor *service.Janitor

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(contexts domain.ContextStore, logger *zap.Logger) *App {
	enhancerSvc := service.NewEnhancerService(contexts, logger)
	enhanceHandler := handlers.NewEnhanceHandler(enhancerSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Janitor:   service.NewJanitor(contexts, logger),
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.countRequests)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", mw.RequestIDHeader, handlers.SessionIDHeader},
		MaxAge:         300,
	}))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.StaticKeyAuth(config.APIKey()))
		r.Post("/enhance", enhanceHandler.Enhance)
	})

	return app
}

// NewRouter returns just the chi.Mux for embedding in other servers.
func NewRouter(contexts domain.ContextStore, logger *zap.Logger) *chi.Mux {
	return NewApp(contexts, logger).Router
}

// countRequests tracks request and error totals for the metrics endpoint.
func (app *App) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.requestCount.Add(1)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if ww.Status() >= http.StatusInternalServerError {
			app.errorCount.Add(1)
		}
	})
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the context store interface at compile time.
var (
	_ domain.ContextStore = (*store.MemoryStore)(nil)
	_ domain.ContextStore = (*store.RedisStore)(nil)
	_ domain.ContextStore = (*store.PostgresStore)(nil)
)

package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adsight/internal/core/port"
)

// Services are the use cases the handler exposes.
type Services struct {
	Auth      port.AuthUseCase
	Campaigns port.CampaignUseCase
	Alerts    port.AlertUseCase
	Dashboard port.DashboardUseCase
	Insights  port.InsightUseCase
}

// Options tune the transport. The zero value is usable: no CORS origins,
// no rate limit, insecure cookies and an always-healthy probe.
type Options struct {
	CookieSecure   bool
	AllowedOrigins []string
	CORSMaxAge     int
	// AuthRateLimit requests per AuthRateWindow are allowed per client IP
	// on login and register. Zero disables the limit.
	AuthRateLimit  int
	AuthRateWindow time.Duration
	// Health reports whether backing stores are reachable.
	Health func(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. Routes are registered on a chi
// router under /api; /healthz and /metrics sit at the root.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(instrument)
	r.Use(middleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           opts.CORSMaxAge,
		}))
	}

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.AuthRateLimit > 0 {
				r.Use(httprate.LimitByIP(opts.AuthRateLimit, opts.AuthRateWindow))
			}
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
		})
		r.Post("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/dashboard", h.handleDashboard)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Patch("/campaigns/{id}/status", h.handleSetCampaignStatus)

			r.Get("/alerts", h.handleListAlerts)
			r.Patch("/alerts/{id}/read", h.handleMarkAlertRead)

			r.Post("/ai/chat", h.handleChat)
			r.Get("/ai/insights", h.handleInsights)
			r.Get("/ai/history", h.handleHistory)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.opts.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.opts.Health(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

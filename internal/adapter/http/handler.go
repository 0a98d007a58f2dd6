package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"storefront/internal/core/port"
)

// Options configures the inbound HTTP adapter.
type Options struct {
	// CronSecret is the bearer token the sync trigger requires when
	// RequireCronAuth is set.
	CronSecret      string
	RequireCronAuth bool
	// WebhookLimiter throttles payment notifications. Nil disables it.
	WebhookLimiter *rate.Limiter
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign and payment use cases and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	payments  port.PaymentUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, payments port.PaymentUseCase, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, payments: payments, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealthz)

	r.Route("/api/cron", func(r chi.Router) {
		r.Use(CronAuth(opts.CronSecret, opts.RequireCronAuth, logger))
		r.Get("/sync-campaigns", h.handleSyncCampaigns)
		r.Post("/sync-campaigns", h.handleSyncCampaigns)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(RateLimit(opts.WebhookLimiter)).Post("/payments/notification", h.handlePaymentNotification)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/orders/{orderID}", h.handleGetOrder)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

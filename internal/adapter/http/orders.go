package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/core/port"
)

type orderResponse struct {
	OrderID       string    `json:"order_id"`
	PaymentStatus string    `json:"payment_status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// handleGetOrder returns the payment status of the order bound to the
// {orderID} path parameter, or 404.
func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.payments.GetOrder(r.Context(), orderID)
	if errors.Is(err, port.ErrOrderNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get order error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, orderResponse{
		OrderID:       order.ID,
		PaymentStatus: string(order.PaymentStatus),
		UpdatedAt:     order.UpdatedAt,
	})
}

package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/core/port"
)

const maxNotificationBytes = 1 << 20

// handlePaymentNotification is the gateway webhook. The gateway redelivers
// anything it does not see acknowledged with 2xx, so:
//   - malformed or unauthenticated bodies get 400/401 and touch nothing;
//   - gateway lookup failures get 502 and store failures 500, asking for
//     redelivery;
//   - everything else, including unknown orders and refused transitions,
//     is acknowledged with 200.
func (h *Handler) handlePaymentNotification(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxNotificationBytes))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid body"})
		return
	}

	outcome, err := h.payments.HandleNotification(r.Context(), body)
	switch {
	case err == nil:
		h.logger.Debug("payment notification handled", slog.String("outcome", string(outcome)))
		h.writeJSON(w, http.StatusOK, messageResponse{Message: "OK"})
	case errors.Is(err, port.ErrMalformedNotification):
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid JSON"})
	case errors.Is(err, port.ErrInvalidSignature), errors.Is(err, port.ErrStatusMismatch):
		h.writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "invalid signature"})
	case errors.Is(err, port.ErrGatewayUnavailable):
		h.logger.Error("payment status check failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, messageResponse{Message: "status check failed"})
	default:
		h.logger.Error("payment notification error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
}

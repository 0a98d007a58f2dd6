package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

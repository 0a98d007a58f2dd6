package httpadapter

import (
	"net/http"

	"storefront/internal/core/domain"
)

type syncResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *domain.SyncResult `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// handleSyncCampaigns runs one campaign activation sync. It answers 200
// with the result under "data", or 500 with the failure under "error" so
// external schedulers can alert on it.
func (h *Handler) handleSyncCampaigns(w http.ResponseWriter, r *http.Request) {
	res := h.campaigns.SyncCampaignActivation(r.Context())
	if !res.Success {
		h.writeJSON(w, http.StatusInternalServerError, syncResponse{
			Success: false,
			Message: "Campaign sync failed",
			Error:   res.Error,
		})
		return
	}
	h.writeJSON(w, http.StatusOK, syncResponse{
		Success: true,
		Message: "Campaign sync completed",
		Data:    &res,
	})
}

package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

type campaignItem struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  bool       `json:"is_active"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// handleListCampaigns lists campaigns. Optional query parameters are
// `active` (true/false) and `limit`. Invalid values produce HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter port.CampaignFilter
	)
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid 'active' value", http.StatusBadRequest)
			return
		}
		filter.Active = &active
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	campaigns, err := h.campaigns.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]campaignItem, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignItem(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func toCampaignItem(c domain.Campaign) campaignItem {
	return campaignItem{
		ID:        c.ID,
		Name:      c.Name,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		IsActive:  c.IsActive,
		UpdatedAt: c.UpdatedAt,
	}
}

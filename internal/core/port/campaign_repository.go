package port

import (
	"context"
	"time"

	"storefront/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence. Both
// sync methods must be single conditional bulk updates evaluated against
// the supplied instant, so concurrent runs cannot lose updates.
type CampaignRepository interface {
	// ActivateDue sets is_active on inactive campaigns whose window contains
	// now and returns the number of rows changed.
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
	// DeactivateLapsed clears is_active on active campaigns that have ended
	// or not yet started and returns the number of rows changed.
	DeactivateLapsed(ctx context.Context, now time.Time) (int64, error)
	// ListCampaigns returns campaigns matching filter.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
}

package port

import (
	"context"

	"storefront/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed to inbound
// adapters. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// SyncCampaignActivation brings every campaign's active flag into line
	// with the current instant. Failures are reported in the result, never
	// as an error.
	SyncCampaignActivation(ctx context.Context) domain.SyncResult

	// ListCampaigns returns campaigns ordered by start date.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
}

// CampaignFilter narrows ListCampaigns. A nil Active returns every campaign.
type CampaignFilter struct {
	Active *bool
	Limit  int
}

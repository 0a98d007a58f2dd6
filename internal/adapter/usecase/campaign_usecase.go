package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

const (
	defaultCampaignLimit = 100
	maxCampaignLimit     = 500
)

// CampaignUseCase keeps campaign activation flags reconciled with the
// clock. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// now is the clock a sync run reads exactly once.
	now func() time.Time
}

// NewCampaignUseCase creates a use case backed by repo.
func NewCampaignUseCase(repo port.CampaignRepository, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, logger: logger, now: time.Now}
}

// SyncCampaignActivation activates campaigns whose window contains the
// current instant and deactivates those outside it. The activation and
// deactivation predicates are disjoint for a fixed instant, so the two
// bulk updates may run in either order and overlapping runs are safe.
// Store errors are folded into a failed result.
func (u *CampaignUseCase) SyncCampaignActivation(ctx context.Context) domain.SyncResult {
	now := u.now().UTC()

	activated, err := u.repo.ActivateDue(ctx, now)
	if err != nil {
		return u.failed(now, fmt.Errorf("activate campaigns: %w", err))
	}
	deactivated, err := u.repo.DeactivateLapsed(ctx, now)
	if err != nil {
		return u.failed(now, fmt.Errorf("deactivate campaigns: %w", err))
	}

	u.logger.Debug("campaign sync finished",
		slog.Int64("activated", activated),
		slog.Int64("deactivated", deactivated),
		slog.Time("now", now),
	)
	return domain.SyncResult{
		Success:     true,
		Activated:   activated,
		Deactivated: deactivated,
		Timestamp:   now,
	}
}

func (u *CampaignUseCase) failed(now time.Time, err error) domain.SyncResult {
	u.logger.Error("campaign sync failed", slog.Any("error", err))
	return domain.SyncResult{
		Success:   false,
		Error:     err.Error(),
		Timestamp: now,
	}
}

// ListCampaigns returns campaigns matching filter. The limit defaults to
// 100 and is capped at 500.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultCampaignLimit
	case filter.Limit > maxCampaignLimit:
		filter.Limit = maxCampaignLimit
	}
	return u.repo.ListCampaigns(ctx, filter)
}

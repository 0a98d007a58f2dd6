package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/port"
)

// CampaignSync triggers campaign activation sync on a fixed interval. A
// failed run is logged and retried on the next tick.
type CampaignSync struct {
	campaigns port.CampaignUseCase
	interval  time.Duration
	logger    *slog.Logger
}

// NewCampaignSync returns a worker that syncs every interval.
func NewCampaignSync(campaigns port.CampaignUseCase, interval time.Duration, logger *slog.Logger) *CampaignSync {
	return &CampaignSync{campaigns: campaigns, interval: interval, logger: logger}
}

// Run syncs once immediately and then on every tick until ctx is done.
func (w *CampaignSync) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("campaign sync worker started", slog.Duration("interval", w.interval))
	w.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("campaign sync worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CampaignSync) runOnce(ctx context.Context) {
	res := w.campaigns.SyncCampaignActivation(ctx)
	if !res.Success {
		w.logger.Error("campaign sync failed", slog.String("error", res.Error))
		return
	}
	if res.Activated > 0 || res.Deactivated > 0 {
		w.logger.Info("campaigns synced",
			slog.Int64("activated", res.Activated),
			slog.Int64("deactivated", res.Deactivated),
		)
	}
}

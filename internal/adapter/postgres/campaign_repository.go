package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ActivateDue flips is_active on for inactive campaigns whose window
// contains now.
func (r *CampaignRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET is_active = TRUE, updated_at = $1
        WHERE NOT is_active
          AND start_date <= $1
          AND (end_date IS NULL OR end_date >= $1)`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeactivateLapsed flips is_active off for active campaigns that ended
// before now or start after it.
func (r *CampaignRepository) DeactivateLapsed(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET is_active = FALSE, updated_at = $1
        WHERE is_active
          AND ((end_date IS NOT NULL AND end_date < $1) OR start_date > $1)`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListCampaigns returns campaigns ordered by start date.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, start_date, end_date, is_active, created_at, updated_at
        FROM campaigns
        WHERE $1::boolean IS NULL OR is_active = $1
        ORDER BY start_date, id
        LIMIT $2`, filter.Active, filter.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/core/domain"
)

// OrderRepository implements port.OrderRepository.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a new repository instance.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// UpdatePaymentStatus sets payment_status in one conditional statement
// guarded by domain.AllowedSources, so a terminal status is never
// overwritten however deliveries interleave. Zero affected rows are
// resolved into unchanged or not found with a follow-up existence check.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (domain.UpdateOutcome, error) {
	sources := domain.AllowedSources(status)
	from := make([]string, 0, len(sources))
	for _, s := range sources {
		from = append(from, string(s))
	}

	tag, err := r.pool.Exec(ctx, `
        UPDATE orders
        SET payment_status = $2, updated_at = now()
        WHERE id = $1 AND payment_status = ANY($3)`, orderID, string(status), from)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() > 0 {
		return domain.OutcomeApplied, nil
	}

	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
		return "", err
	}
	if !exists {
		return domain.OutcomeNotFound, nil
	}
	return domain.OutcomeUnchanged, nil
}

// GetOrder returns an order by id, or nil when absent.
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `SELECT id, payment_status, gross_amount, created_at, updated_at FROM orders WHERE id = $1`, orderID).
		Scan(&o.ID, &o.PaymentStatus, &o.GrossAmount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

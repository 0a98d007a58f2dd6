package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/core/domain"
)

// NotificationRepository implements port.NotificationLog.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// RecordNotification inserts one received notification with its outcome.
func (r *NotificationRepository) RecordNotification(ctx context.Context, rec domain.NotificationRecord) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO payment_notifications
            (id, order_id, transaction_id, transaction_status, fraud_status, signature_valid, outcome, payload, received_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, rec.OrderID, rec.TransactionID, rec.TransactionStatus, rec.FraudStatus,
		rec.SignatureValid, string(rec.Outcome), rec.Payload, rec.ReceivedAt)
	return err
}

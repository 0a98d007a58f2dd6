package port

import (
	"context"

	"storefront/internal/core/domain"
)

// OrderRepository persists order payment state.
type OrderRepository interface {
	// UpdatePaymentStatus writes status to the order keyed by orderID in a
	// single conditional update guarded by domain.AllowedSources. It never
	// inserts. The outcome is OutcomeApplied, OutcomeUnchanged or
	// OutcomeNotFound.
	UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (domain.UpdateOutcome, error)
	// GetOrder returns the order or nil when it does not exist.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

// NotificationLog records every inbound gateway notification.
type NotificationLog interface {
	RecordNotification(ctx context.Context, rec domain.NotificationRecord) error
}

package port

import (
	"context"

	"storefront/internal/core/domain"
)

// PaymentUseCase reconciles gateway notifications with stored orders.
type PaymentUseCase interface {
	// HandleNotification authenticates a raw notification body, confirms
	// the status with the gateway and applies it to the order. The outcome
	// reports what happened to the order; errors are either one of the
	// port sentinels or a wrapped store failure.
	HandleNotification(ctx context.Context, raw []byte) (domain.UpdateOutcome, error)

	// GetOrder returns the payment view of an order or ErrOrderNotFound.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

package port

import (
	"context"

	"storefront/internal/core/domain"
)

// PaymentGateway is the outbound port to the payment provider's API.
type PaymentGateway interface {
	// TransactionStatus looks up the current status of a transaction by its
	// transaction ID or order ID. Transport failures and timeouts wrap
	// ErrGatewayUnavailable.
	TransactionStatus(ctx context.Context, ref string) (*domain.TransactionStatus, error)
}

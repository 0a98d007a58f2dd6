//go:generate mockery --config ../../../.mockery.yaml

package port

import "errors"

var (
	// ErrInvalidSignature is returned for notifications that fail
	// authentication. No order is touched.
	ErrInvalidSignature = errors.New("invalid notification signature")
	// ErrStatusMismatch is returned when the gateway's authoritative status
	// refers to a different order than the notification.
	ErrStatusMismatch = errors.New("gateway status does not match notification")
	// ErrGatewayUnavailable wraps transport failures and timeouts of the
	// gateway status lookup. Callers should ask for redelivery.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrMalformedNotification is returned when the body is not a JSON
	// notification.
	ErrMalformedNotification = errors.New("malformed notification")
	// ErrOrderNotFound is returned by read paths for unknown order IDs.
	ErrOrderNotFound = errors.New("order not found")
)

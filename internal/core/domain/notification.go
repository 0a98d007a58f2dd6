package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is the gateway's asynchronous payment status message. Only
// the fields used for authentication and reconciliation are decoded; the
// raw body is kept for the notification log.
type Notification struct {
	OrderID           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	// TransactionID is unsigned and becomes a path segment of the status
	// lookup, so it must not carry separators or dot segments.
	TransactionID     string `json:"transaction_id" validate:"omitempty,excludesall=/?#%,ne=.,ne=.."`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

// TransactionStatus is the gateway's authoritative answer to a status
// lookup.
type TransactionStatus struct {
	OrderID           string        `json:"order_id"`
	TransactionID     string        `json:"transaction_id"`
	StatusCode        string        `json:"status_code"`
	GrossAmount       string        `json:"gross_amount"`
	TransactionStatus PaymentStatus `json:"transaction_status"`
	FraudStatus       string        `json:"fraud_status"`
}

// NotificationRecord is one row of the inbound notification log.
type NotificationRecord struct {
	ID                uuid.UUID
	OrderID           string
	TransactionID     string
	TransactionStatus string
	FraudStatus       string
	SignatureValid    bool
	Outcome           UpdateOutcome
	Payload           json.RawMessage
	ReceivedAt        time.Time
}

package domain

import (
	"slices"
	"time"
)

// PaymentStatus mirrors the gateway's transaction_status values.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentAuthorize     PaymentStatus = "authorize"
	PaymentCapture       PaymentStatus = "capture"
	PaymentSettlement    PaymentStatus = "settlement"
	PaymentDeny          PaymentStatus = "deny"
	PaymentCancel        PaymentStatus = "cancel"
	PaymentExpire        PaymentStatus = "expire"
	PaymentFailure       PaymentStatus = "failure"
	PaymentRefund        PaymentStatus = "refund"
	PaymentPartialRefund PaymentStatus = "partial_refund"
)

var knownStatuses = []PaymentStatus{
	PaymentPending,
	PaymentAuthorize,
	PaymentCapture,
	PaymentSettlement,
	PaymentDeny,
	PaymentCancel,
	PaymentExpire,
	PaymentFailure,
	PaymentRefund,
	PaymentPartialRefund,
}

// Valid reports whether s is a status the gateway is known to send.
func (s PaymentStatus) Valid() bool {
	return slices.Contains(knownStatuses, s)
}

// IsTerminal reports whether no ordinary notification may move an order
// out of s. Refund statuses are reachable from settlement only.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentSettlement, PaymentDeny, PaymentCancel, PaymentExpire, PaymentFailure,
		PaymentRefund, PaymentPartialRefund:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an order in from may be moved to to.
// Writing the current status again is not a transition.
func CanTransition(from, to PaymentStatus) bool {
	return from != to && slices.Contains(AllowedSources(to), from)
}

// AllowedSources lists every status an order may hold for a write of to to
// take effect. The order repository uses it as the predicate of its
// conditional update so the rule holds under concurrent deliveries.
// Orders only move forward: nothing returns to pending, and refunds start
// from a settled order.
func AllowedSources(to PaymentStatus) []PaymentStatus {
	switch to {
	case PaymentAuthorize:
		return []PaymentStatus{PaymentPending}
	case PaymentCapture:
		return []PaymentStatus{PaymentPending, PaymentAuthorize}
	case PaymentSettlement, PaymentDeny, PaymentCancel, PaymentExpire, PaymentFailure:
		return []PaymentStatus{PaymentPending, PaymentAuthorize, PaymentCapture}
	case PaymentRefund:
		return []PaymentStatus{PaymentSettlement, PaymentPartialRefund}
	case PaymentPartialRefund:
		return []PaymentStatus{PaymentSettlement}
	default:
		return nil
	}
}

// Order holds the payment side of a storefront order. ID equals the
// gateway's order_id.
type Order struct {
	ID            string
	PaymentStatus PaymentStatus
	GrossAmount   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpdateOutcome describes what a conditional status write did.
type UpdateOutcome string

const (
	OutcomeApplied   UpdateOutcome = "applied"
	OutcomeUnchanged UpdateOutcome = "unchanged"
	OutcomeNotFound  UpdateOutcome = "order_not_found"
	// OutcomeFraudHold marks a capture or settlement withheld by the fraud gate.
	OutcomeFraudHold UpdateOutcome = "fraud_hold"
	// OutcomeRejected marks a notification that failed authentication.
	OutcomeRejected UpdateOutcome = "rejected"
	// OutcomeFailed marks a notification whose processing errored.
	OutcomeFailed UpdateOutcome = "failed"
)

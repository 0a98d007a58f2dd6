package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

// PaymentOptions configures notification reconciliation.
type PaymentOptions struct {
	// ServerKey is the gateway secret mixed into notification signatures.
	ServerKey string
	// RequireFraudAccept withholds capture and settlement unless the gateway
	// reports fraud_status "accept".
	RequireFraudAccept bool
}

// PaymentUseCase applies gateway payment notifications to orders. It
// implements port.PaymentUseCase.
type PaymentUseCase struct {
	orders        port.OrderRepository
	notifications port.NotificationLog
	gateway       port.PaymentGateway
	opts          PaymentOptions
	logger        *slog.Logger
}

// NewPaymentUseCase wires the reconciler to its store, log and gateway.
func NewPaymentUseCase(
	orders port.OrderRepository,
	notifications port.NotificationLog,
	gateway port.PaymentGateway,
	opts PaymentOptions,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orders:        orders,
		notifications: notifications,
		gateway:       gateway,
		opts:          opts,
		logger:        logger,
	}
}

// HandleNotification authenticates raw, re-queries the gateway for the
// authoritative transaction status and writes it to the order. The posted
// status fields are never trusted. Every decodable notification is
// recorded in the notification log with its outcome.
func (u *PaymentUseCase) HandleNotification(ctx context.Context, raw []byte) (domain.UpdateOutcome, error) {
	var n domain.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		u.logger.Warn("undecodable payment notification", slog.Any("error", err))
		return domain.OutcomeRejected, fmt.Errorf("%w: %v", port.ErrMalformedNotification, err)
	}

	rec := domain.NotificationRecord{
		ID:                uuid.New(),
		OrderID:           n.OrderID,
		TransactionID:     n.TransactionID,
		TransactionStatus: n.TransactionStatus,
		FraudStatus:       n.FraudStatus,
		Payload:           raw,
		ReceivedAt:        time.Now().UTC(),
	}
	outcome, err := u.reconcile(ctx, n, &rec)
	rec.Outcome = outcome
	if logErr := u.notifications.RecordNotification(ctx, rec); logErr != nil {
		u.logger.Error("record payment notification",
			slog.String("order_id", n.OrderID),
			slog.Any("error", logErr),
		)
	}
	return outcome, err
}

func (u *PaymentUseCase) reconcile(ctx context.Context, n domain.Notification, rec *domain.NotificationRecord) (domain.UpdateOutcome, error) {
	if !ValidateNotification(n, u.opts.ServerKey) {
		u.logger.Warn("rejected payment notification",
			slog.String("order_id", n.OrderID),
			slog.String("reason", "signature"),
		)
		return domain.OutcomeRejected, port.ErrInvalidSignature
	}
	rec.SignatureValid = true

	ref := n.TransactionID
	if ref == "" {
		ref = n.OrderID
	}
	status, err := u.gateway.TransactionStatus(ctx, ref)
	if err != nil {
		if errors.Is(err, port.ErrStatusMismatch) {
			u.logger.Warn("gateway does not confirm notification",
				slog.String("order_id", n.OrderID),
				slog.Any("error", err),
			)
			return domain.OutcomeRejected, err
		}
		return domain.OutcomeFailed, fmt.Errorf("check transaction %s: %w", ref, err)
	}
	if status.OrderID != n.OrderID {
		u.logger.Warn("gateway status belongs to another order",
			slog.String("order_id", n.OrderID),
			slog.String("gateway_order_id", status.OrderID),
		)
		return domain.OutcomeRejected, port.ErrStatusMismatch
	}

	rec.TransactionStatus = string(status.TransactionStatus)
	rec.FraudStatus = status.FraudStatus
	logger := u.logger.With(
		slog.String("order_id", status.OrderID),
		slog.String("transaction_status", string(status.TransactionStatus)),
		slog.String("fraud_status", status.FraudStatus),
	)
	logger.Info("payment notification confirmed")

	if !status.TransactionStatus.Valid() {
		logger.Warn("unknown transaction status ignored")
		return domain.OutcomeUnchanged, nil
	}
	if u.opts.RequireFraudAccept && fraudHeld(status) {
		logger.Warn("payment held by fraud status")
		return domain.OutcomeFraudHold, nil
	}

	outcome, err := u.orders.UpdatePaymentStatus(ctx, status.OrderID, status.TransactionStatus)
	if err != nil {
		return domain.OutcomeFailed, fmt.Errorf("update order %s: %w", status.OrderID, err)
	}
	switch outcome {
	case domain.OutcomeNotFound:
		logger.Warn("payment notification for unknown order")
	case domain.OutcomeUnchanged:
		logger.Info("order payment status kept")
	default:
		logger.Info("order payment status updated")
	}
	return outcome, nil
}

func fraudHeld(s *domain.TransactionStatus) bool {
	switch s.TransactionStatus {
	case domain.PaymentCapture, domain.PaymentSettlement:
		return s.FraudStatus != "" && s.FraudStatus != "accept"
	default:
		return false
	}
}

// GetOrder returns the payment view of orderID.
func (u *PaymentUseCase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, port.ErrOrderNotFound
	}
	return order, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain"
	"storefront/internal/core/port"
	"storefront/internal/core/port/mocks"
)

type paymentDeps struct {
	orders  *mocks.MockOrderRepository
	log     *mocks.MockNotificationLog
	gateway *mocks.MockPaymentGateway
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*PaymentUseCase, paymentDeps) {
	t.Helper()
	deps := paymentDeps{
		orders:  mocks.NewMockOrderRepository(t),
		log:     mocks.NewMockNotificationLog(t),
		gateway: mocks.NewMockPaymentGateway(t),
	}
	if opts.ServerKey == "" {
		opts.ServerKey = testServerKey
	}
	return NewPaymentUseCase(deps.orders, deps.log, deps.gateway, opts, discardLogger()), deps
}

func rawNotification(t *testing.T, n domain.Notification) []byte {
	t.Helper()
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	return raw
}

func expectRecord(deps paymentDeps, outcome domain.UpdateOutcome, signatureValid bool) {
	deps.log.EXPECT().
		RecordNotification(mock.Anything, mock.MatchedBy(func(rec domain.NotificationRecord) bool {
			return rec.Outcome == outcome && rec.SignatureValid == signatureValid
		})).
		Return(nil).
		Once()
}

func TestHandleNotificationAppliesSettlement(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(&domain.TransactionStatus{
			OrderID:           "ORD-1",
			TransactionStatus: domain.PaymentSettlement,
			FraudStatus:       "accept",
		}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-1", domain.PaymentSettlement).
		Return(domain.OutcomeApplied, nil)
	expectRecord(deps, domain.OutcomeApplied, true)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, outcome)
}

func TestHandleNotificationUsesGatewayStatusNotPayload(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")
	n.TransactionStatus = "settlement"

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(&domain.TransactionStatus{OrderID: "ORD-1", TransactionStatus: domain.PaymentPending}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-1", domain.PaymentPending).
		Return(domain.OutcomeUnchanged, nil)
	deps.log.EXPECT().
		RecordNotification(mock.Anything, mock.MatchedBy(func(rec domain.NotificationRecord) bool {
			return rec.TransactionStatus == "pending"
		})).
		Return(nil)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnchanged, outcome)
}

func TestHandleNotificationFallsBackToOrderID(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-9", "201", "10.00")
	n.TransactionID = ""

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "ORD-9").
		Return(&domain.TransactionStatus{OrderID: "ORD-9", TransactionStatus: domain.PaymentExpire}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-9", domain.PaymentExpire).
		Return(domain.OutcomeApplied, nil)
	expectRecord(deps, domain.OutcomeApplied, true)

	_, err := u.HandleNotification(context.Background(), rawNotification(t, n))
	require.NoError(t, err)
}

func TestHandleNotificationRejectsTamperedAmount(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")
	n.GrossAmount = "1.00"
	expectRecord(deps, domain.OutcomeRejected, false)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	assert.ErrorIs(t, err, port.ErrInvalidSignature)
	assert.Equal(t, domain.OutcomeRejected, outcome)
	deps.gateway.AssertNotCalled(t, "TransactionStatus", mock.Anything, mock.Anything)
	deps.orders.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotificationRejectsUnsafeTransactionID(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")
	n.TransactionID = "../../admin/x?y"
	expectRecord(deps, domain.OutcomeRejected, false)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	assert.ErrorIs(t, err, port.ErrInvalidSignature)
	assert.Equal(t, domain.OutcomeRejected, outcome)
	deps.gateway.AssertNotCalled(t, "TransactionStatus", mock.Anything, mock.Anything)
}

func TestHandleNotificationRejectsMalformedBody(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})

	outcome, err := u.HandleNotification(context.Background(), []byte(`{"order_id":`))

	assert.ErrorIs(t, err, port.ErrMalformedNotification)
	assert.Equal(t, domain.OutcomeRejected, outcome)
	deps.log.AssertNotCalled(t, "RecordNotification", mock.Anything, mock.Anything)
}

func TestHandleNotificationRejectsForeignGatewayStatus(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(&domain.TransactionStatus{OrderID: "ORD-2", TransactionStatus: domain.PaymentSettlement}, nil)
	expectRecord(deps, domain.OutcomeRejected, true)

	_, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	assert.ErrorIs(t, err, port.ErrStatusMismatch)
	deps.orders.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotificationGatewayUnavailable(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(nil, fmt.Errorf("%w: context deadline exceeded", port.ErrGatewayUnavailable))
	expectRecord(deps, domain.OutcomeFailed, true)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	assert.ErrorIs(t, err, port.ErrGatewayUnavailable)
	assert.Equal(t, domain.OutcomeFailed, outcome)
}

func TestHandleNotificationStoreFailure(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-1", "200", "2500.00")
	storeErr := errors.New("too many connections")

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(&domain.TransactionStatus{OrderID: "ORD-1", TransactionStatus: domain.PaymentSettlement}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-1", domain.PaymentSettlement).
		Return("", storeErr)
	expectRecord(deps, domain.OutcomeFailed, true)

	_, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	assert.ErrorIs(t, err, storeErr)
}

func TestHandleNotificationUnknownOrder(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	n := signedNotification("ORD-404", "200", "2500.00")

	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-404").
		Return(&domain.TransactionStatus{OrderID: "ORD-404", TransactionStatus: domain.PaymentSettlement}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-404", domain.PaymentSettlement).
		Return(domain.OutcomeNotFound, nil)
	expectRecord(deps, domain.OutcomeNotFound, true)

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, n))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome)
}

func TestHandleNotificationFraudGate(t *testing.T) {
	challenge := &domain.TransactionStatus{
		OrderID:           "ORD-1",
		TransactionStatus: domain.PaymentCapture,
		FraudStatus:       "challenge",
	}

	t.Run("disabled", func(t *testing.T) {
		u, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.gateway.EXPECT().TransactionStatus(mock.Anything, "txn-ORD-1").Return(challenge, nil)
		deps.orders.EXPECT().
			UpdatePaymentStatus(mock.Anything, "ORD-1", domain.PaymentCapture).
			Return(domain.OutcomeApplied, nil)
		expectRecord(deps, domain.OutcomeApplied, true)

		outcome, err := u.HandleNotification(context.Background(), rawNotification(t, signedNotification("ORD-1", "200", "2500.00")))
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeApplied, outcome)
	})

	t.Run("enabled", func(t *testing.T) {
		u, deps := newPaymentUseCase(t, PaymentOptions{RequireFraudAccept: true})
		deps.gateway.EXPECT().TransactionStatus(mock.Anything, "txn-ORD-1").Return(challenge, nil)
		expectRecord(deps, domain.OutcomeFraudHold, true)

		outcome, err := u.HandleNotification(context.Background(), rawNotification(t, signedNotification("ORD-1", "200", "2500.00")))
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeFraudHold, outcome)
		deps.orders.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleNotificationLogFailureDoesNotFailDelivery(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	deps.gateway.EXPECT().
		TransactionStatus(mock.Anything, "txn-ORD-1").
		Return(&domain.TransactionStatus{OrderID: "ORD-1", TransactionStatus: domain.PaymentSettlement}, nil)
	deps.orders.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-1", domain.PaymentSettlement).
		Return(domain.OutcomeApplied, nil)
	deps.log.EXPECT().RecordNotification(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	outcome, err := u.HandleNotification(context.Background(), rawNotification(t, signedNotification("ORD-1", "200", "2500.00")))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, outcome)
}

func TestGetOrder(t *testing.T) {
	u, deps := newPaymentUseCase(t, PaymentOptions{})
	deps.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").
		Return(&domain.Order{ID: "ORD-1", PaymentStatus: domain.PaymentPending}, nil)
	deps.orders.EXPECT().GetOrder(mock.Anything, "ORD-2").Return(nil, nil)

	order, err := u.GetOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)

	_, err = u.GetOrder(context.Background(), "ORD-2")
	assert.ErrorIs(t, err, port.ErrOrderNotFound)
}

package postgres

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain"
)

func insertOrder(t *testing.T, pool *pgxpool.Pool, id string, status domain.PaymentStatus) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (id, payment_status, gross_amount) VALUES ($1,$2,'2500.00')`, id, string(status))
	require.NoError(t, err)
}

func TestOrderRepositoryUpdatePaymentStatus(t *testing.T) {
	pool := requirePool(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	insertOrder(t, pool, "ORD-1", domain.PaymentPending)

	outcome, err := repo.UpdatePaymentStatus(ctx, "ORD-1", domain.PaymentSettlement)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, outcome)

	order, err := repo.GetOrder(ctx, "ORD-1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.PaymentSettlement, order.PaymentStatus)

	outcome, err = repo.UpdatePaymentStatus(ctx, "ORD-1", domain.PaymentSettlement)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnchanged, outcome)

	outcome, err = repo.UpdatePaymentStatus(ctx, "ORD-1", domain.PaymentExpire)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnchanged, outcome)

	order, err = repo.GetOrder(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSettlement, order.PaymentStatus)

	outcome, err = repo.UpdatePaymentStatus(ctx, "ORD-1", domain.PaymentRefund)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, outcome)
}

func TestOrderRepositoryConcurrentTerminalWrites(t *testing.T) {
	pool := requirePool(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	insertOrder(t, pool, "ORD-race", domain.PaymentPending)

	targets := []domain.PaymentStatus{domain.PaymentSettlement, domain.PaymentExpire}
	outcomes := make([]domain.UpdateOutcome, len(targets))
	var wg sync.WaitGroup
	for i, status := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := repo.UpdatePaymentStatus(ctx, "ORD-race", status)
			assert.NoError(t, err)
			outcomes[i] = outcome
		}()
	}
	wg.Wait()

	applied := -1
	for i, outcome := range outcomes {
		if outcome == domain.OutcomeApplied {
			require.Equal(t, -1, applied, "both writes applied")
			applied = i
		} else {
			assert.Equal(t, domain.OutcomeUnchanged, outcome)
		}
	}
	require.NotEqual(t, -1, applied, "no write applied")

	order, err := repo.GetOrder(ctx, "ORD-race")
	require.NoError(t, err)
	assert.Equal(t, targets[applied], order.PaymentStatus)
}

func TestOrderRepositoryNeverCreatesOrders(t *testing.T) {
	pool := requirePool(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	outcome, err := repo.UpdatePaymentStatus(ctx, "ORD-missing", domain.PaymentSettlement)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome)

	order, err := repo.GetOrder(ctx, "ORD-missing")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestNotificationRepositoryRecord(t *testing.T) {
	pool := requirePool(t)
	repo := NewNotificationRepository(pool)
	ctx := context.Background()

	rec := domain.NotificationRecord{
		ID:                uuid.New(),
		OrderID:           "ORD-1",
		TransactionID:     "txn-1",
		TransactionStatus: "settlement",
		FraudStatus:       "accept",
		SignatureValid:    true,
		Outcome:           domain.OutcomeApplied,
		Payload:           json.RawMessage(`{"order_id":"ORD-1"}`),
		ReceivedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.RecordNotification(ctx, rec))

	var (
		outcome string
		orderID string
	)
	err := pool.QueryRow(ctx, `SELECT outcome, payload->>'order_id' FROM payment_notifications WHERE id = $1`, rec.ID).
		Scan(&outcome, &orderID)
	require.NoError(t, err)
	assert.Equal(t, "applied", outcome)
	assert.Equal(t, "ORD-1", orderID)
}

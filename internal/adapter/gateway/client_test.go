package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config/configs"
	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

func newTestClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(configs.Gateway{BaseURL: *u, ServerKey: "SB-Mid-server-test", Timeout: timeout})
}

func TestTransactionStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/txn-1/status", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "SB-Mid-server-test", user)
		assert.Empty(t, pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status_code": "200",
			"status_message": "Success, transaction is found",
			"transaction_id": "txn-1",
			"order_id": "ORD-1",
			"gross_amount": "2500.00",
			"transaction_status": "settlement",
			"fraud_status": "accept"
		}`))
	}, time.Second)

	got, err := c.TransactionStatus(context.Background(), "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got.OrderID)
	assert.Equal(t, domain.PaymentSettlement, got.TransactionStatus)
	assert.Equal(t, "accept", got.FraudStatus)
	assert.Equal(t, "2500.00", got.GrossAmount)
}

func TestTransactionStatusUnknownTransaction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status_code":"404","status_message":"Transaction doesn't exist."}`))
	}, time.Second)

	_, err := c.TransactionStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrStatusMismatch)
}

func TestTransactionStatusServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, time.Second)

	_, err := c.TransactionStatus(context.Background(), "txn-1")
	assert.ErrorIs(t, err, port.ErrGatewayUnavailable)
}

func TestTransactionStatusUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}, time.Second)

	_, err := c.TransactionStatus(context.Background(), "txn-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrGatewayUnavailable)
}

func TestTransactionStatusTimeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := c.TransactionStatus(context.Background(), "txn-1")
	assert.ErrorIs(t, err, port.ErrGatewayUnavailable)
}

func TestTransactionStatusRejectsPathTraversal(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, time.Second)

	for _, ref := range []string{"../../admin/x?y", "txn/1", "..", ".", ""} {
		t.Run(ref, func(t *testing.T) {
			_, err := c.TransactionStatus(context.Background(), ref)
			assert.ErrorIs(t, err, port.ErrStatusMismatch)
		})
	}
	assert.Zero(t, hits.Load())
}

func TestTransactionStatusEscapesReference(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/txn?y#z%2/status", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"status_code":"200","order_id":"ORD-1","transaction_status":"pending"}`))
	}, time.Second)

	got, err := c.TransactionStatus(context.Background(), "txn?y#z%2")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, got.TransactionStatus)
}

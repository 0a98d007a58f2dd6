package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentSettlement, true},
		{PaymentPending, PaymentExpire, true},
		{PaymentPending, PaymentDeny, true},
		{PaymentPending, PaymentCancel, true},
		{PaymentCapture, PaymentSettlement, true},
		{PaymentAuthorize, PaymentCapture, true},
		{PaymentPending, PaymentPending, false},
		{PaymentSettlement, PaymentSettlement, false},
		{PaymentSettlement, PaymentPending, false},
		{PaymentSettlement, PaymentExpire, false},
		{PaymentExpire, PaymentSettlement, false},
		{PaymentDeny, PaymentSettlement, false},
		{PaymentCancel, PaymentPending, false},
		{PaymentSettlement, PaymentRefund, true},
		{PaymentSettlement, PaymentPartialRefund, true},
		{PaymentPartialRefund, PaymentRefund, true},
		{PaymentRefund, PaymentSettlement, false},
		{PaymentPending, PaymentAuthorize, true},
		{PaymentCapture, PaymentPending, false},
		{PaymentAuthorize, PaymentPending, false},
		{PaymentCapture, PaymentAuthorize, false},
		{PaymentPending, PaymentRefund, false},
		{PaymentCapture, PaymentRefund, false},
		{PaymentPending, PaymentPartialRefund, false},
		{PaymentFailure, PaymentSettlement, false},
		{PaymentRefund, PaymentPartialRefund, false},
		{PaymentPending, PaymentStatus("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	terminal := []PaymentStatus{
		PaymentSettlement, PaymentExpire, PaymentDeny, PaymentCancel,
		PaymentFailure, PaymentRefund, PaymentPartialRefund,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []PaymentStatus{PaymentPending, PaymentCapture, PaymentAuthorize} {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestAllowedSourcesNeverIncludeTerminalExceptRefunds(t *testing.T) {
	for _, to := range knownStatuses {
		for _, from := range AllowedSources(to) {
			if from.IsTerminal() {
				assert.Contains(t, []PaymentStatus{PaymentRefund, PaymentPartialRefund}, to, "%s -> %s", from, to)
			}
		}
	}
	assert.Empty(t, AllowedSources(PaymentPending))
}

func TestCampaignShouldBeActive(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name string
		c    Campaign
		want bool
	}{
		{"inside window", Campaign{StartDate: now.Add(-day), EndDate: ptr(now.Add(day))}, true},
		{"permanent", Campaign{StartDate: now.Add(-day)}, true},
		{"starts now", Campaign{StartDate: now, EndDate: ptr(now.Add(day))}, true},
		{"ends now", Campaign{StartDate: now.Add(-day), EndDate: ptr(now)}, true},
		{"not started", Campaign{StartDate: now.Add(day)}, false},
		{"ended", Campaign{StartDate: now.Add(-10 * day), EndDate: ptr(now.Add(-day))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.ShouldBeActive(now))
		})
	}
}

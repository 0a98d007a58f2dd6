package domain

import "time"

// Campaign represents a storefront promotion that is live during its
// [StartDate, EndDate] window. A nil EndDate marks a permanent campaign.
type Campaign struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShouldBeActive reports whether now falls inside the campaign window.
// Both bounds are inclusive.
func (c Campaign) ShouldBeActive(now time.Time) bool {
	if c.StartDate.After(now) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(now)
}

// SyncResult summarises one campaign activation sync run. Timestamp is the
// single instant every comparison in the run used.
type SyncResult struct {
	Success     bool      `json:"success"`
	Activated   int64     `json:"activated"`
	Deactivated int64     `json:"deactivated"`
	Timestamp   time.Time `json:"timestamp"`
	Error       string    `json:"error,omitempty"`
}

package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and pending orders. Campaigns cover every
// window case with a stale is_active flag so the first sync has work to do.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	day := 24 * time.Hour

	campaigns := []struct {
		name   string
		start  time.Time
		end    *time.Time
		active bool
	}{
		{"Weekend flash sale", now.Add(-day), ptr(now.Add(day)), false},
		{"Back to school", now.Add(-10 * day), ptr(now.Add(-day)), true},
		{"Free shipping forever", now.Add(-day), nil, false},
		{"Holiday preview", now.Add(7 * day), ptr(now.Add(14 * day)), true},
	}
	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns (name, start_date, end_date, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now())`, c.name, c.start, c.end, c.active)
		if err != nil {
			return err
		}
	}

	for i := 0; i < 10; i++ {
		id := "ORD-" + uuid.NewString()[:8]
		amount := fmt.Sprintf("%d.00", 1000+r.Intn(99000))
		_, err := db.Exec(ctx, `INSERT INTO orders (id, payment_status, gross_amount, created_at, updated_at)
VALUES ($1,'pending',$2,now(),now()) ON CONFLICT DO NOTHING`, id, amount)
		if err != nil {
			return err
		}
	}
	return nil
}

func ptr(t time.Time) *time.Time { return &t }

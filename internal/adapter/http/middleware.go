package httpadapter

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// CronAuth requires "Authorization: Bearer <secret>" when enforce is set.
// An empty secret rejects every request rather than accepting any token.
func CronAuth(secret string, enforce bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enforce {
			return next
		}
		expected := []byte("Bearer " + secret)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(strings.TrimSpace(r.Header.Get("Authorization")))
			if secret == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				logger.Warn("unauthorized cron request", slog.String("remote_addr", r.RemoteAddr))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(syncResponse{Success: false, Message: "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit answers 429 once limiter is exhausted. A nil limiter passes
// everything through.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

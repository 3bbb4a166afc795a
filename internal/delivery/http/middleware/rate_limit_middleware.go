package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// NewAuthRateLimiter limits credential endpoints per client IP. A non-positive
// limit disables it.
func NewAuthRateLimiter(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(requests, window)
}

package middlewares

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout is the default request deadline.
const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context with a deadline. Handlers observe it through
// r.Context(); the contact pipeline passes it down to the SMTP session.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

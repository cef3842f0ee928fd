package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку запроса сроком d.
// Более ранний дедлайн родителя (клиент, сервер) остаётся в силе,
// более поздний сокращается до d. d <= 0 — без ограничения.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	apierrors "github.com/pribylovaa/go-games-library/internal/errors"
	logctx "github.com/pribylovaa/go-games-library/pkg/log"
)

// Recover перехватывает panic, конвертирует в 500/internal и пишет унифицированный ответ.
// Детали паники не утекают на клиент, стек уходит только в лог.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, 2048)
					n := runtime.Stack(stack, false)

					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
							slog.String("stack", string(stack[:n])),
						)
					apierrors.WriteError(w, r, fmt.Errorf("internal"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

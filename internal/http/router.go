package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pribylovaa/go-games-library/internal/http/handlers"
	"github.com/pribylovaa/go-games-library/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger      *slog.Logger
	Timeout     time.Duration
	RateRPS     float64 // <=0 — без ограничения частоты.
	RateBurst   int
	CORSOrigins []string
	BasePath    string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
// ctx ограничивает жизнь фоновой очистки rate limiter'а.
func NewRouter(ctx context.Context, h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.RateLimit(ctx, opts.RateRPS, opts.RateBurst),
	)
	if len(opts.CORSOrigins) > 0 {
		root.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
	} else {
		registerRoutes(root, h)
	}

	return otelhttp.NewHandler(root, "games-library")
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// grid
	r.Get("/games", h.ListGames)

	// details
	r.Get("/games/{index}", h.GameByIndex)
	r.Get("/games/slug/{slug}", h.GameBySlug)
	r.Get("/games/{index}/image", h.GameImage)
	r.Get("/games/{index}/trailer", h.GameTrailer)

	r.Get("/catalog/status", h.CatalogStatus)
}

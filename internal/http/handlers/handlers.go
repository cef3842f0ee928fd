package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-games-library/internal/errors"
	"github.com/pribylovaa/go-games-library/internal/metrics"
	"github.com/pribylovaa/go-games-library/internal/service"
	"github.com/pribylovaa/go-games-library/internal/trailer"
)

// Catalog — то, что хендлерам нужно от service.Library.
type Catalog interface {
	State() service.State
	Snapshot() (*service.Snapshot, error)
}

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Catalog Catalog
	Player  trailer.Player
	Style   trailer.Style
	Metrics *metrics.Metrics
}

// New собирает Handlers. player и m могут быть nil:
// без плеера трейлер отдаётся в состоянии uninitialized.
func New(c Catalog, player trailer.Player, style trailer.Style, m *metrics.Metrics) *Handlers {
	return &Handlers{
		Catalog: c,
		Player:  player,
		Style:   style,
		Metrics: m,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// indexParam разбирает {index} из пути. Не число или отрицательное — ErrInvalidArgument.
func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("handlers.indexParam: %w: %q", apierrors.ErrInvalidArgument, raw)
	}

	return n, nil
}

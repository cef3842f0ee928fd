package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-games-library/internal/catalog"
	"github.com/pribylovaa/go-games-library/internal/metrics"
	"github.com/pribylovaa/go-games-library/pkg/log"
)

// Load загружает и разбирает каталог, затем публикует снимок.
//
// Особенности:
//   - второй вызов возвращает ErrAlreadyLoaded без сетевых запросов;
//   - повторов нет: ошибка переводит Library в StateFailed до конца сессии;
//   - обложки загружаются последовательно внутри разбора.
func (l *Library) Load(ctx context.Context) error {
	const op = "service.library.Load"

	if !l.started.CompareAndSwap(false, true) {
		return fmt.Errorf("%s: %w", op, ErrAlreadyLoaded)
	}

	// Все записи загрузки, включая обложки, несут адрес каталога.
	ctx = log.With(ctx, slog.String("catalog_url", l.url))
	lg := log.From(ctx)
	lg.Info("catalog_load_start", slog.String("op", op))

	start := time.Now()

	data, err := l.fetcher.Get(ctx, l.url)
	if err != nil {
		l.fail(lg, op, metrics.ResultNetwork, start, err)
		return fmt.Errorf("%s: fetch: %w", op, err)
	}

	games, err := catalog.Parse(ctx, data, l.images)
	if err != nil {
		result := metrics.ResultFailed
		if errors.Is(err, catalog.ErrMalformedCatalog) {
			result = metrics.ResultMalformed
		}
		l.fail(lg, op, result, start, err)
		return fmt.Errorf("%s: parse: %w", op, err)
	}

	snap := newSnapshot(games, time.Now().UTC())
	l.snapshot.Store(snap)
	l.state.Store(int32(StateReady))

	dur := time.Since(start)
	l.metrics.CatalogFetched(metrics.ResultOK, snap.Len(), dur)

	lg.Info("catalog_load_ok",
		slog.String("op", op),
		slog.String("catalog_id", snap.ID.String()),
		slog.Int("games", snap.Len()),
		slog.Duration("dur", dur),
	)

	return nil
}

func (l *Library) fail(lg *slog.Logger, op, result string, start time.Time, err error) {
	l.state.Store(int32(StateFailed))
	l.metrics.CatalogFetched(result, 0, time.Since(start))

	lg.Error("catalog_load_failed",
		slog.String("op", op),
		slog.String("result", result),
		slog.String("err", err.Error()),
	)
}

// State возвращает текущую стадию загрузки.
func (l *Library) State() State {
	return State(l.state.Load())
}

// Snapshot возвращает каталог сессии или ErrCatalogUnavailable.
func (l *Library) Snapshot() (*Snapshot, error) {
	snap := l.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogUnavailable
	}

	return snap, nil
}

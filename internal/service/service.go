// service содержит бизнес-логику games-library: владение каталогом сессии.
package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/pribylovaa/go-games-library/internal/catalog"
	"github.com/pribylovaa/go-games-library/internal/metrics"
)

var (
	// ErrCatalogUnavailable — каталог ещё грузится или загрузка не удалась.
	// Транспорт: 503.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrNotFound — записи с таким индексом/slug нет.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyLoaded — повторный Load в той же сессии.
	ErrAlreadyLoaded = errors.New("catalog already loaded")
)

//go:generate mockgen -source=service.go -destination=../../mocks/mock_fetcher.go -package=mocks

// Fetcher загружает сырые байты по ссылке.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Library — владелец каталога сессии.
//
// Особенности:
//   - Load выполняется ровно один раз за процесс;
//   - снимок публикуется атомарно, читатели не берут блокировок;
//   - после неудачной загрузки состояние остаётся Failed до конца сессии.
type Library struct {
	url     string
	fetcher Fetcher
	images  catalog.ImageSource
	metrics *metrics.Metrics

	started  atomic.Bool
	state    atomic.Int32
	snapshot atomic.Pointer[Snapshot]
}

// New создаёт Library. images и m могут быть nil.
func New(url string, fetcher Fetcher, images catalog.ImageSource, m *metrics.Metrics) *Library {
	return &Library{
		url:     url,
		fetcher: fetcher,
		images:  images,
		metrics: m,
	}
}

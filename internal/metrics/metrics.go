// metrics — Prometheus-метрики загрузки каталога.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "games_library"

// Результаты для меток result.
const (
	ResultOK        = "ok"
	ResultNetwork   = "network_error"
	ResultMalformed = "malformed"
	ResultFailed    = "failed"
)

// Metrics — набор метрик сервиса. Нулевой указатель допустим: все методы no-op.
type Metrics struct {
	catalogFetches  *prometheus.CounterVec
	catalogDuration prometheus.Histogram
	catalogGames    prometheus.Gauge
	imageFetches    *prometheus.CounterVec
	trailerInits    *prometheus.CounterVec
}

// New регистрирует метрики в reg. При reg == nil используется prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		catalogFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetch_total",
			Help:      "Catalog loads by result.",
		}, []string{"result"}),
		catalogDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_fetch_duration_seconds",
			Help:      "Time spent fetching and parsing the catalog, images included.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		catalogGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_games",
			Help:      "Number of games in the current catalog.",
		}),
		imageFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_fetch_total",
			Help:      "Cover image fetches by result.",
		}, []string{"result"}),
		trailerInits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trailer_init_total",
			Help:      "Trailer player initialisations by state.",
		}, []string{"state"}),
	}

	reg.MustRegister(m.catalogFetches, m.catalogDuration, m.catalogGames, m.imageFetches, m.trailerInits)

	return m
}

// CatalogFetched фиксирует результат загрузки каталога.
func (m *Metrics) CatalogFetched(result string, games int, dur time.Duration) {
	if m == nil {
		return
	}

	m.catalogFetches.WithLabelValues(result).Inc()
	m.catalogDuration.Observe(dur.Seconds())

	if result == ResultOK {
		m.catalogGames.Set(float64(games))
	}
}

// ImageFetched фиксирует результат загрузки обложки.
func (m *Metrics) ImageFetched(result string) {
	if m == nil {
		return
	}

	m.imageFetches.WithLabelValues(result).Inc()
}

// TrailerInitialized фиксирует исход инициализации плеера.
func (m *Metrics) TrailerInitialized(state string) {
	if m == nil {
		return
	}

	m.trailerInits.WithLabelValues(state).Inc()
}

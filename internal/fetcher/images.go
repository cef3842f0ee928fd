package fetcher

import (
	"bytes"
	"context"
	"image"
	"log/slog"

	// Декодеры форматов обложек для image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/pribylovaa/go-games-library/internal/metrics"
	"github.com/pribylovaa/go-games-library/pkg/log"
)

// Getter — источник байтов по ссылке (Client или заглушка в тестах).
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Images реализует catalog.ImageSource: загружает обложку и проверяет,
// что это декодируемое изображение. Любая ошибка -> nil.
type Images struct {
	getter  Getter
	metrics *metrics.Metrics
}

// NewImages создаёт источник обложек. m может быть nil.
func NewImages(getter Getter, m *metrics.Metrics) *Images {
	return &Images{getter: getter, metrics: m}
}

// Image возвращает байты обложки или nil.
func (i *Images) Image(ctx context.Context, url string) []byte {
	const op = "fetcher.Image"

	lg := log.From(ctx)

	data, err := i.getter.Get(ctx, url)
	if err != nil {
		lg.Warn("image_fetch_failed",
			slog.String("op", op),
			slog.String("url", url),
			slog.String("err", err.Error()),
		)
		i.metrics.ImageFetched(metrics.ResultFailed)
		return nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		lg.Warn("image_decode_failed",
			slog.String("op", op),
			slog.String("url", url),
			slog.String("err", err.Error()),
		)
		i.metrics.ImageFetched(metrics.ResultFailed)
		return nil
	}

	lg.Debug("image_fetched",
		slog.String("op", op),
		slog.String("url", url),
		slog.String("format", format),
		slog.Int("bytes", len(data)),
	)

	i.metrics.ImageFetched(metrics.ResultOK)

	return data
}

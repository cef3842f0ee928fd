// fetcher — сетевой слой: HTTP GET каталога и обложек.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pribylovaa/go-games-library/pkg/log"
)

var (
	// ErrNetwork — запрос не дошёл до сервера или оборвался.
	ErrNetwork = errors.New("network failure")
	// ErrBadStatus — сервер ответил не 200.
	ErrBadStatus = errors.New("unexpected status")
	// ErrTooLarge — тело ответа превысило лимит.
	ErrTooLarge = errors.New("response too large")
)

// defaultMaxBytes — лимит тела ответа по умолчанию.
const defaultMaxBytes = 8 << 20

// Client выполняет GET-запросы. HTTP-клиент настраивается извне
// (таймауты, прокси и т.д.); транспорт оборачивается otelhttp.
type Client struct {
	client   *http.Client
	maxBytes int64
}

// New создаёт Client. maxBytes <= 0 — лимит по умолчанию.
func New(client *http.Client, maxBytes int64) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	instrumented := *client
	instrumented.Transport = otelhttp.NewTransport(base)

	return &Client{client: &instrumented, maxBytes: maxBytes}
}

// Get загружает тело ответа по url целиком.
//
// Ошибки:
//   - ErrNetwork — транспортная ошибка (в т.ч. отмена ctx);
//   - ErrBadStatus — статус != 200;
//   - ErrTooLarge — тело больше лимита;
//   - прочие — битый url.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	const op = "fetcher.Get"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.From(ctx).Warn("http_error",
			slog.String("op", op),
			slog.String("url", url),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: %w: status=%d", op, ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w: %v", op, ErrNetwork, err)
	}

	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%s: %w: limit=%d", op, ErrTooLarge, c.maxBytes)
	}

	return body, nil
}

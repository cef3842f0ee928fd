package trailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable — ролик удалён, приватный или запрещён к встраиванию.
var ErrUnavailable = errors.New("video unavailable")

// DefaultOEmbedURL — oEmbed-эндпоинт YouTube.
const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// watchBase — канонический адрес ролика для запроса oEmbed.
const watchBase = "https://www.youtube.com/watch?v="

// OEmbedPlayer проверяет, что ролик можно встроить, через oEmbed.
//   - 200 -> готов;
//   - 401/403/404 -> невосстановимая ошибка;
//   - 429, 5xx, ошибка сети -> восстановимая.
type OEmbedPlayer struct {
	client   *http.Client
	endpoint string
}

// NewOEmbedPlayer создаёт плеер. Пустой endpoint -> DefaultOEmbedURL.
func NewOEmbedPlayer(client *http.Client, endpoint string) *OEmbedPlayer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	if endpoint == "" {
		endpoint = DefaultOEmbedURL
	}

	return &OEmbedPlayer{client: client, endpoint: endpoint}
}

// Prepare реализует Player.
func (p *OEmbedPlayer) Prepare(ctx context.Context, videoID string, _ Style) error {
	const op = "trailer.OEmbedPlayer.Prepare"

	q := url.Values{}
	q.Set("url", watchBase+videoID)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", op, ctxErr)
		}
		return fmt.Errorf("%s: %w: %v", op, ErrRecoverable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%s: %w: status=%d", op, ErrRecoverable, resp.StatusCode)
	default:
		return fmt.Errorf("%s: %w: status=%d", op, ErrUnavailable, resp.StatusCode)
	}
}

var _ Player = (*OEmbedPlayer)(nil)

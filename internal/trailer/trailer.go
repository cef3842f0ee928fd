// trailer — встраиваемый плеер трейлера.
//
// Инициализация плеера моделируется явным исходом Outcome с тремя состояниями
// (Uninitialized/Ready/Failed), который доставляется через канал.
// Ветка Failed несёт признак Recoverable: пользователь может исправить причину
// сам (сеть, перегрузка) или нет (ролик удалён, встраивание запрещено).
package trailer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// IDLength — длина идентификатора ролика в конце ссылки на трейлер.
const IDLength = 11

// ErrInvalidReference — ссылка короче идентификатора.
var ErrInvalidReference = errors.New("invalid trailer reference")

// VideoID возвращает последние IDLength символов ссылки.
func VideoID(ref string) (string, error) {
	runes := []rune(ref)
	if len(runes) < IDLength {
		return "", fmt.Errorf("trailer.VideoID: %w: %q", ErrInvalidReference, ref)
	}

	return string(runes[len(runes)-IDLength:]), nil
}

// Style — набор элементов управления плеера.
type Style int

const (
	// StyleDefault — стандартные элементы управления.
	StyleDefault Style = iota
	// StyleMinimal — только play/pause.
	StyleMinimal
	// StyleChromeless — без элементов управления.
	StyleChromeless
)

// ParseStyle разбирает имя стиля из конфига.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "minimal":
		return StyleMinimal, nil
	case "default":
		return StyleDefault, nil
	case "chromeless":
		return StyleChromeless, nil
	default:
		return StyleDefault, fmt.Errorf("trailer.ParseStyle: unknown style %q", s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleMinimal:
		return "minimal"
	case StyleChromeless:
		return "chromeless"
	default:
		return "default"
	}
}

// embedBase — адрес встраиваемого плеера YouTube.
const embedBase = "https://www.youtube.com/embed/"

// EmbedURL собирает ссылку для встраивания ролика id в стиле style.
func EmbedURL(id string, style Style) string {
	q := url.Values{}

	switch style {
	case StyleMinimal:
		q.Set("controls", "1")
		q.Set("modestbranding", "1")
		q.Set("rel", "0")
		q.Set("fs", "0")
	case StyleChromeless:
		q.Set("controls", "0")
	}

	u := embedBase + url.PathEscape(id)
	if len(q) == 0 {
		return u
	}

	return u + "?" + q.Encode()
}

// State — состояние инициализации плеера.
type State int

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Outcome — исход инициализации. Recoverable и Reason значимы только для Failed.
type Outcome struct {
	State       State
	VideoID     string
	EmbedURL    string
	Recoverable bool
	Reason      string
}

// Player — внешний виджет плеера.
//
// Требования к реализации:
//  1. Prepare блокирует до готовности плеера или ошибки;
//  2. ошибка, которую пользователь может устранить сам, оборачивается в ErrRecoverable;
//  3. уважает ctx.
type Player interface {
	Prepare(ctx context.Context, videoID string, style Style) error
}

// ErrRecoverable помечает ошибки, после которых имеет смысл повторить попытку.
var ErrRecoverable = errors.New("recoverable")

// Initialize запускает инициализацию плеера и возвращает канал,
// в который придёт ровно один Outcome, после чего канал закрывается.
// Отмена ctx даёт Failed с Recoverable=true.
func Initialize(ctx context.Context, p Player, videoID string, style Style) <-chan Outcome {
	out := make(chan Outcome, 1)

	go func() {
		defer close(out)

		res := Outcome{VideoID: videoID, EmbedURL: EmbedURL(videoID, style)}

		err := p.Prepare(ctx, videoID, style)
		switch {
		case err == nil:
			res.State = Ready
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			res.State = Failed
			res.Recoverable = true
			res.Reason = err.Error()
		default:
			res.State = Failed
			res.Recoverable = errors.Is(err, ErrRecoverable)
			res.Reason = err.Error()
		}

		out <- res
	}()

	return out
}

// Await ждёт исход из канала или отмену ctx.
// Пока исхода нет, возвращается Uninitialized.
func Await(ctx context.Context, ch <-chan Outcome) Outcome {
	select {
	case res, ok := <-ch:
		if !ok {
			return Outcome{State: Uninitialized}
		}
		return res
	case <-ctx.Done():
		return Outcome{State: Uninitialized, Reason: ctx.Err().Error()}
	}
}

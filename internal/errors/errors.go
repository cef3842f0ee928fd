// errors стандартизирует ответы об ошибках HTTP-слоя games-library.
// На вход он принимает доменную ошибку (sentinel из service/trailer),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: sentinel-ошибки пакетов service и trailer.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-games-library/internal/service"
	"github.com/pribylovaa/go-games-library/internal/trailer"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

var (
	// ErrInvalidArgument — битые входные данные запроса (индекс, стиль и т.п.).
	ErrInvalidArgument = stderrors.New("invalid argument")
	// ErrRateLimited — клиент превысил лимит запросов.
	ErrRateLimited = stderrors.New("rate limited")
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки;
//   - известные sentinel-ошибки маппятся через errors.Is (обёртки с op не мешают);
//   - всё прочее - 500/internal без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	httpStatus, code, msg := classify(err)
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// classify — таблица маппинга:
//   - ErrInvalidArgument -> 400
//   - service.ErrNotFound -> 404
//   - trailer.ErrInvalidReference -> 422
//   - ErrRateLimited -> 429
//   - context.Canceled -> 499
//   - service.ErrCatalogUnavailable -> 503
//   - context.DeadlineExceeded -> 504
//   - прочее -> 500/internal
func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, trailer.ErrInvalidReference):
		return http.StatusUnprocessableEntity, "invalid_trailer", "invalid trailer reference"
	case stderrors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, "resource_exhausted", "rate limit exceeded"
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog_unavailable", "catalog unavailable"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

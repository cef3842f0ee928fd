package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h так, что первый мидлвар в списке выполняется первым.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := range mws {
		h = mws[len(mws)-1-i](h)
	}
	return h
}

// statusWriter запоминает первый отправленный статус и число записанных байт.
// Хендлер, не записавший ничего, для net/http означает 200: Status это учитывает.
type statusWriter struct {
	http.ResponseWriter
	code    int
	written int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

// Status — статус ответа; 200, если хендлер ничего не отправил.
func (w *statusWriter) Status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}

// Unwrap нужен http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	apierrors "github.com/pribylovaa/go-games-library/internal/errors"
)

const (
	limiterCleanupInterval = time.Minute
	limiterTTL             = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiters — token bucket на каждый IP клиента.
type limiters struct {
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	visitors map[string]*visitor
}

func (l *limiters) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *limiters) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterTTL {
			delete(l.visitors, ip)
		}
	}
}

// RateLimit ограничивает частоту запросов с одного IP.
// Очистка простаивающих лимитеров идёт в фоне до отмены ctx.
// rps <= 0 делает мидлвар no-op.
func RateLimit(ctx context.Context, rps float64, burst int) Middleware {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}

	l := &limiters{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}

	go func() {
		ticker := time.NewTicker(limiterCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				l.evict(now)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r), time.Now()) {
				w.Header().Set("Retry-After", "1")
				apierrors.WriteError(w, r, apierrors.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP — хост из RemoteAddr; X-Forwarded-For не доверяем.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

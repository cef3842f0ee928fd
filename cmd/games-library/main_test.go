package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-games-library/internal/service"
)

type stubFetcher struct{ err error }

func (f stubFetcher) Get(context.Context, string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(`{"games":[]}`), nil
}

func probe(h http.Handler, path string) int {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr.Code
}

func TestHealth(t *testing.T) {
	var serving atomic.Bool
	lib := service.New("https://catalog.example/games", stubFetcher{}, nil, nil)
	h := healthMux(&serving, lib)

	require.Equal(t, http.StatusOK, probe(h, "/livez"))
	require.Equal(t, http.StatusServiceUnavailable, probe(h, "/healthz"))

	serving.Store(true)
	require.Equal(t, http.StatusServiceUnavailable, probe(h, "/healthz"))

	require.NoError(t, lib.Load(context.Background()))
	require.Equal(t, http.StatusOK, probe(h, "/healthz"))

	serving.Store(false)
	require.Equal(t, http.StatusServiceUnavailable, probe(h, "/healthz"))
}

func TestHealth_FailedCatalog(t *testing.T) {
	var serving atomic.Bool
	serving.Store(true)

	lib := service.New("https://catalog.example/games", stubFetcher{err: errors.New("offline")}, nil, nil)
	require.Error(t, lib.Load(context.Background()))

	require.Equal(t, http.StatusServiceUnavailable, probe(healthMux(&serving, lib), "/healthz"))
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		require.NotNil(t, setupLogger(env))
	}
}

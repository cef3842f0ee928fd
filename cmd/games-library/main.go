package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-games-library/internal/config"
	"github.com/pribylovaa/go-games-library/internal/fetcher"
	gamehttp "github.com/pribylovaa/go-games-library/internal/http"
	"github.com/pribylovaa/go-games-library/internal/http/handlers"
	"github.com/pribylovaa/go-games-library/internal/metrics"
	"github.com/pribylovaa/go-games-library/internal/service"
	"github.com/pribylovaa/go-games-library/internal/trailer"
	logctx "github.com/pribylovaa/go-games-library/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting games-library", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	style, err := trailer.ParseStyle(cfg.Trailer.Style)
	if err != nil {
		log.Error("trailer_style_invalid", slog.String("err", err.Error()))
		os.Exit(1)
	}

	m := metrics.New(nil)
	client := &http.Client{Timeout: cfg.Timeouts.Fetch}

	catalogFetcher := fetcher.New(client, cfg.Catalog.MaxBytes)
	images := fetcher.NewImages(fetcher.New(client, cfg.Catalog.ImageMaxBytes), m)
	lib := service.New(cfg.Catalog.URL, catalogFetcher, images, m)

	// Каталог грузится один раз в фоне; до готовности API отвечает 503.
	go func() {
		_ = lib.Load(logctx.Into(rootCtx, log))
	}()

	player := trailer.NewOEmbedPlayer(client, cfg.Trailer.OEmbedURL)
	h := handlers.New(lib, player, style, m)

	apiHandler := gamehttp.NewRouter(rootCtx, h, gamehttp.Options{
		Logger:      log,
		Timeout:     cfg.Timeouts.Service,
		RateRPS:     cfg.Limits.RPS,
		RateBurst:   cfg.Limits.Burst,
		CORSOrigins: cfg.CORS.Origins,
	})

	var serving atomic.Bool

	health := healthMux(&serving, lib)

	mux := http.NewServeMux()
	mux.Handle("/livez", health)
	mux.Handle("/healthz", health)
	mux.Handle("/", apiHandler)

	opsMux := http.NewServeMux()
	opsMux.Handle("/livez", health)
	opsMux.Handle("/healthz", health)
	opsMux.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	opsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           opsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 2)
	for _, srv := range []*http.Server{httpSrv, opsSrv} {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			log.Error("http_listen_failed", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
			os.Exit(1)
		}

		log.Info("http_listen_start", slog.String("addr", srv.Addr))

		go func(srv *http.Server, ln net.Listener) {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErrCh <- err
			}
		}(srv, ln)
	}

	serving.Store(true)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		log.Error("http_serve_failed", slog.String("err", err.Error()))
	}

	serving.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, srv := range []*http.Server{httpSrv, opsSrv} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http_shutdown_incomplete", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
		} else {
			log.Info("http_stopped", slog.String("addr", srv.Addr))
		}
	}

	log.Info("service_stopped")
}

// healthMux: /livez — процесс жив; /healthz — серверы подняты и каталог загружен.
func healthMux(serving *atomic.Bool, lib *service.Library) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if serving.Load() && lib.State() == service.StateReady {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready: catalog "+lib.State().String(), http.StatusServiceUnavailable)
	})

	return mux
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// config предоставляет структуру конфигурации games-library
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Catalog  CatalogConfig `yaml:"catalog"`
	Trailer  TrailerConfig `yaml:"trailer"`
	Limits   LimitsConfig  `yaml:"limits"`
	CORS     CORSConfig    `yaml:"cors"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50085"`
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// CatalogConfig — источник каталога.
type CatalogConfig struct {
	// URL JSON-документа со списком игр.
	URL string `yaml:"url" env:"CATALOG_URL" env-required:"true"`
	// Лимит размера документа.
	MaxBytes int64 `yaml:"max_bytes" env:"CATALOG_MAX_BYTES" env-default:"8388608"`
	// Лимит размера одной обложки.
	ImageMaxBytes int64 `yaml:"image_max_bytes" env:"CATALOG_IMAGE_MAX_BYTES" env-default:"4194304"`
}

// TrailerConfig — плеер трейлеров.
type TrailerConfig struct {
	OEmbedURL string `yaml:"oembed_url" env:"TRAILER_OEMBED_URL" env-default:"https://www.youtube.com/oembed"`
	// Стиль плеера: default | minimal | chromeless.
	Style string `yaml:"style" env:"TRAILER_STYLE" env-default:"minimal"`
}

// LimitsConfig — ограничение частоты запросов к API на один IP.
type LimitsConfig struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"20"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"40"`
}

// CORSConfig — разрешённые источники для браузерных клиентов.
type CORSConfig struct {
	Origins []string `yaml:"origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Service — дедлайн HTTP-запроса к API.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	// Fetch — таймаут одного исходящего запроса (каталог, обложка, oEmbed).
	Fetch time.Duration `yaml:"fetch" env:"FETCH_TIMEOUT" env-default:"15s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch envPath := os.Getenv("CONFIG_PATH"); {
	case path != "":
		c, err = readFile(path)
	case envPath != "":
		c, err = readFile(envPath)
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			c, err = readFile("local.yaml")
		} else {
			if err = cleanenv.ReadEnv(&cfg); err != nil {
				err = fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
			}
			c = &cfg
		}
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	u, err := url.Parse(c.Catalog.URL)
	if c.Catalog.URL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("catalog.url must be an absolute http(s) URL")
	}
	if c.Catalog.MaxBytes <= 0 || c.Catalog.ImageMaxBytes <= 0 {
		return fmt.Errorf("catalog.max_bytes and catalog.image_max_bytes must be > 0")
	}
	switch c.Trailer.Style {
	case "default", "minimal", "chromeless":
	default:
		return fmt.Errorf("trailer.style must be one of default, minimal, chromeless")
	}
	if c.Limits.RPS <= 0 || c.Limits.Burst <= 0 {
		return fmt.Errorf("limits.rps and limits.burst must be > 0")
	}
	if c.Timeouts.Fetch <= 0 {
		return fmt.Errorf("timeouts.fetch must be > 0")
	}
	return nil
}

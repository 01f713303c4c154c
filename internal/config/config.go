package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret секрет для локального запуска. С постоянным хранилищем не допускается.
const DefaultJWTSecret = "snipit-dev-secret"

// AliasConfig параметры генерации коротких кодов
type AliasConfig struct {
	Length      int `env:"ALIAS_LENGTH"`
	MaxAttempts int `env:"ALIAS_MAX_ATTEMPTS"`
}

// StoreConfig параметры работы с хранилищем
type StoreConfig struct {
	Timeout time.Duration `env:"STORE_TIMEOUT"`
}

// CacheConfig параметры кэша поиска ссылок
type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL"`
}

// RateLimitConfig ограничение на создание ссылок с одного адреса
type RateLimitConfig struct {
	Create int           `env:"RATE_LIMIT_CREATE"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW"`
}

// AnalyticsConfig параметры сводной статистики
type AnalyticsConfig struct {
	SampleSize int `env:"ANALYTICS_SAMPLE_SIZE"`
}

// Config конфигурация сервиса
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	RedisAddr       string         `env:"REDIS_ADDR"`
	JWTSecret       string         `env:"JWT_SECRET"`
	LogLevel        string         `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`

	Alias     AliasConfig
	Store     StoreConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Analytics AnalyticsConfig
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		GRPCAddress:     NetworkAddress{Host: "localhost", Port: 3200},
		BaseURL:         URLPrefix("http://localhost:8080"),
		JWTSecret:       DefaultJWTSecret,
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Alias: AliasConfig{
			Length:      8,
			MaxAttempts: 10,
		},
		Store: StoreConfig{
			Timeout: 3 * time.Second,
		},
		Cache: CacheConfig{
			TTL: time.Hour,
		},
		RateLimit: RateLimitConfig{
			Create: 10,
			Window: 24 * time.Hour,
		},
		Analytics: AnalyticsConfig{
			SampleSize: 5,
		},
	}
}

// Load собирает конфигурацию из аргументов командной строки и окружения
func Load() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse применяет поверх значений по умолчанию флаги, затем переменные окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("snipit", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.GRPCAddress, "g", "address to run gRPC server")
	fs.Var(&cfg.BaseURL, "b", "base URL for short links")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address for cache and rate limiting")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "secret for verifying identity tokens")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	if c.Alias.Length < 1 || c.Alias.Length > model.MaxCodeLength {
		errs = append(errs, fmt.Errorf("alias length must be in [1, %d], got %d", model.MaxCodeLength, c.Alias.Length))
	}
	if c.Alias.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("alias max attempts must be positive, got %d", c.Alias.MaxAttempts))
	}
	if c.Store.Timeout <= 0 {
		errs = append(errs, errors.New("store timeout must be positive"))
	}
	if c.RateLimit.Create < 1 {
		errs = append(errs, fmt.Errorf("rate limit must be positive, got %d", c.RateLimit.Create))
	}
	if c.RateLimit.Window < time.Millisecond {
		errs = append(errs, fmt.Errorf("rate limit window must be at least 1ms, got %s", c.RateLimit.Window))
	}
	if c.Analytics.SampleSize < 0 {
		errs = append(errs, errors.New("analytics sample size must not be negative"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT secret is required"))
	}
	if c.DatabaseDSN != "" && c.UsesDefaultJWTSecret() {
		errs = append(errs, errors.New("JWT_SECRET must be set when DATABASE_DSN is configured"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// UsesDefaultJWTSecret сообщает, что токены подписываются встроенным секретом
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

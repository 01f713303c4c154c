package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc-dev/snipit/internal/config"
	"github.com/avc-dev/snipit/internal/config/db"
	"github.com/avc-dev/snipit/internal/server/grpcserver"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение snipit
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
	grpc   *grpcserver.Server
	dbPool db.Database
	redis  *redis.Client
}

// New собирает зависимости приложения по конфигурации
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(deps, logger, cfg),
		grpc:   grpcserver.New(deps.pinger, cfg.Store.Timeout, logger),
		dbPool: deps.dbPool,
		redis:  deps.redis,
	}, nil
}

// NewLogger создает production логгер с заданным уровнем
func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = atomicLevel

	return zapCfg.Build()
}

// Run загружает конфигурацию и обслуживает запросы до отмены ctx
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.UsesDefaultJWTSecret() {
		logger.Warn("JWT_SECRET is not set, identity tokens are signed with the built-in development secret")
	}

	app, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer app.Close()

	return app.Serve(ctx)
}

// Close освобождает соединения с хранилищем и Redis
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("database connection closed")
	}
}

package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/snipit/internal/cache"
	"github.com/avc-dev/snipit/internal/config"
	"github.com/avc-dev/snipit/internal/config/db"
	"github.com/avc-dev/snipit/internal/handler"
	"github.com/avc-dev/snipit/internal/migrations"
	"github.com/avc-dev/snipit/internal/qr"
	"github.com/avc-dev/snipit/internal/ratelimit"
	"github.com/avc-dev/snipit/internal/repository"
	"github.com/avc-dev/snipit/internal/service"
	"github.com/avc-dev/snipit/internal/store"
	"github.com/avc-dev/snipit/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// dependencies собранный граф объектов приложения
type dependencies struct {
	handler     *handler.Handler
	authService *service.AuthService
	pinger      *repository.Repository
	limiter     *ratelimit.FixedWindow
	dbPool      db.Database
	redis       *redis.Client
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, dbPool, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	redisClient, err := initRedis(ctx, cfg, logger)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	repo := repository.New(storage)
	linkService := service.NewLinkService(repo, cfg, logger)

	deps := &dependencies{
		authService: service.NewAuthService(cfg.JWTSecret),
		pinger:      repo,
		dbPool:      dbPool,
		redis:       redisClient,
	}

	// nil интерфейс, а не nil указатель: без Redis кэша нет
	var targetCache usecase.TargetCache
	if redisClient != nil {
		targetCache = cache.NewTargetCache(redisClient, cfg.Cache.TTL)
		deps.limiter = ratelimit.NewFixedWindow(redisClient, cfg.RateLimit.Create, cfg.RateLimit.Window)
	}

	linkUsecase := usecase.NewLinkUsecase(repo, linkService, targetCache, cfg, logger)
	deps.handler = handler.New(linkUsecase, logger, repo, qr.NewEncoder())

	return deps, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using database storage")
	return store.NewDatabaseStore(database.Pool), database, nil
}

// initRedis подключается к Redis, если адрес задан
func initRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		logger.Info("Redis is not configured, cache and rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("Using redis", zap.String("address", cfg.RedisAddr))
	return client, nil
}

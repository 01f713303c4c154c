// Package testutil поднимает PostgreSQL и Redis в контейнерах для интеграционных тестов.
// Контейнеры останавливаются через t.Cleanup. Тесты с -short пропускаются.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/snipit/internal/config/db"
	"github.com/avc-dev/snipit/internal/migrations"
	"github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// SkipIfShort пропускает тест, которому нужен Docker
func SkipIfShort(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
}

// StartPostgres запускает PostgreSQL, применяет миграции и возвращает подключение
func StartPostgres(t testing.TB) *db.DBAdapter {
	t.Helper()
	SkipIfShort(t)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("snipit"),
		tcpostgres.WithUsername("snipit"),
		tcpostgres.WithPassword("snipit"),
		tcpostgres.WithSQLDriver("pgx"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	database, err := db.NewConfig(dsn).Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(database.Close)

	if err := migrations.NewMigrator(database.DB(), zap.NewNop()).RunUp(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

// TruncateAll очищает таблицы между тестами
func TruncateAll(t testing.TB, database *db.DBAdapter) {
	t.Helper()

	if _, err := database.Pool.Exec(context.Background(), "TRUNCATE TABLE clicks, links RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// StartRedis запускает Redis и возвращает клиента
func StartRedis(t testing.TB) *redis.Client {
	t.Helper()
	SkipIfShort(t)

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:        endpoint,
		DialTimeout: 5 * time.Second,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}

	return client
}

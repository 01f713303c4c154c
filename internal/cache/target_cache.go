// Package cache хранит сопоставление короткого кода и цели редиректа в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "link:"

// TargetCache cache-aside поверх Redis. Ссылки неизменяемы,
// поэтому запись живёт до истечения ttl и не инвалидируется.
type TargetCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewTargetCache создает кэш с заданным временем жизни записей
func NewTargetCache(client redis.Cmdable, ttl time.Duration) *TargetCache {
	return &TargetCache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает цель по коду. Промах даёт false без ошибки.
func (c *TargetCache) Get(ctx context.Context, code model.Code) (model.Target, bool, error) {
	raw, err := c.client.Get(ctx, key(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Target{}, false, nil
	}
	if err != nil {
		return model.Target{}, false, fmt.Errorf("failed to read cached target: %w", err)
	}

	var target model.Target
	if err := json.Unmarshal(raw, &target); err != nil {
		return model.Target{}, false, fmt.Errorf("failed to decode cached target: %w", err)
	}

	return target, true, nil
}

// Set сохраняет цель по коду
func (c *TargetCache) Set(ctx context.Context, code model.Code, target model.Target) error {
	raw, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("failed to encode target: %w", err)
	}

	if err := c.client.Set(ctx, key(code), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache target: %w", err)
	}
	return nil
}

func key(code model.Code) string {
	return keyPrefix + code.String()
}

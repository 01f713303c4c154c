// Package ratelimit ограничивает частоту операций по ключу с помощью Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Счётчик окна и его срок жизни выставляются атомарно.
//
// KEYS[1]: ключ счётчика
// ARGV[1]: длина окна в миллисекундах
//
// Возвращает номер запроса в текущем окне.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// FixedWindow разрешает не более limit операций на ключ за окно window.
// Состояние общее для всех экземпляров сервиса.
type FixedWindow struct {
	client redis.Scripter
	limit  int64
	window time.Duration
}

// NewFixedWindow создает ограничитель
func NewFixedWindow(client redis.Scripter, limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// Allow учитывает операцию для key и сообщает, укладывается ли она в лимит
func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	count, err := fixedWindowScript.Run(ctx, l.client, []string{keyPrefix + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}

	return count <= l.limit, nil
}

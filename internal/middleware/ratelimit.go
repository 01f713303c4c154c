package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// limiterTimeout ограничивает ожидание ответа ограничителя
const limiterTimeout = 100 * time.Millisecond

// Limiter решает, можно ли выполнить ещё одну операцию для key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit ограничивает запросы по адресу клиента.
// При недоступности ограничителя запрос пропускается.
func RateLimit(limiter Limiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientAddress(r)

			ctx, cancel := context.WithTimeout(r.Context(), limiterTimeout)
			allowed, err := limiter.Allow(ctx, key)
			cancel()

			if err != nil {
				logger.Warn("rate limiter unavailable, allowing request",
					zap.String("client", key),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Debug("rate limit exceeded", zap.String("client", key))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientAddress адрес клиента без порта. Заголовки прокси
// разбирает chi middleware.RealIP, который выполняется раньше.
func ClientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

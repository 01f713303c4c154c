package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubLimiter возвращает заданный ответ и запоминает ключ
type stubLimiter struct {
	allowed bool
	err     error
	lastKey string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.lastKey = key
	if _, ok := ctx.Deadline(); !ok {
		return false, errors.New("limiter called without deadline")
	}
	return s.allowed, s.err
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *stubLimiter
		wantStatus int
		wantWarn   bool
	}{
		{name: "allowed", limiter: &stubLimiter{allowed: true}, wantStatus: http.StatusCreated},
		{name: "rejected", limiter: &stubLimiter{allowed: false}, wantStatus: http.StatusTooManyRequests},
		{name: "limiter down fails open", limiter: &stubLimiter{err: errors.New("redis down")}, wantStatus: http.StatusCreated, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			core, logs := observer.New(zapcore.WarnLevel)
			handler := RateLimit(tt.limiter, zap.New(core))(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(http.MethodPost, "/api/links", nil)
			req.RemoteAddr = "203.0.113.7:54321"
			w := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "203.0.113.7", tt.limiter.lastKey)
			assert.Equal(t, tt.wantWarn, logs.Len() == 1)
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
			}
		})
	}
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{remoteAddr: "1.2.3.4:80", want: "1.2.3.4"},
		{remoteAddr: "1.2.3.4", want: "1.2.3.4"},
		{remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remoteAddr: "2001:db8::1", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.want, ClientAddress(req))
		})
	}
}

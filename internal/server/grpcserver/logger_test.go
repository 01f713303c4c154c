package grpcserver

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInterceptorLogger(t *testing.T) {
	core, observedLogs := observer.New(zap.DebugLevel)
	il := InterceptorLogger(zap.New(core))

	tests := []struct {
		name     string
		level    logging.Level
		fields   []any
		wantLvl  zapcore.Level
		wantKeys []string
	}{
		{
			name:     "info with string and int",
			level:    logging.LevelInfo,
			fields:   []any{"grpc.method", "Check", "grpc.code", 0},
			wantLvl:  zap.InfoLevel,
			wantKeys: []string{"grpc.method", "grpc.code"},
		},
		{
			name:     "debug with bool",
			level:    logging.LevelDebug,
			fields:   []any{"enabled", true},
			wantLvl:  zap.DebugLevel,
			wantKeys: []string{"enabled"},
		},
		{
			name:     "warn with arbitrary value",
			level:    logging.LevelWarn,
			fields:   []any{"data", struct{ A int }{A: 1}},
			wantLvl:  zap.WarnLevel,
			wantKeys: []string{"data"},
		},
		{
			name:    "error without fields",
			level:   logging.LevelError,
			wantLvl: zap.ErrorLevel,
		},
		{
			name:     "odd field count drops dangling key",
			level:    logging.LevelInfo,
			fields:   []any{"key", "value", "dangling"},
			wantLvl:  zap.InfoLevel,
			wantKeys: []string{"key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observedLogs.TakeAll()

			il.Log(context.Background(), tt.level, "call finished", tt.fields...)

			logs := observedLogs.TakeAll()
			require.Len(t, logs, 1)
			assert.Equal(t, tt.wantLvl, logs[0].Level)
			assert.Equal(t, "call finished", logs[0].Message)

			fields := logs[0].ContextMap()
			assert.Len(t, fields, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.Contains(t, fields, key)
			}
		})
	}
}

func TestInterceptorLogger_UnknownLevelPanics(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	il := InterceptorLogger(zap.New(core))

	assert.Panics(t, func() {
		il.Log(context.Background(), logging.Level(999), "panic test")
	})
}

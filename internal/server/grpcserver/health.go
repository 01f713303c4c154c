package grpcserver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName имя сервиса в протоколе grpc.health.v1
const ServiceName = "snipit"

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// healthServer отвечает SERVING, пока хранилище отвечает на ping.
// Состояние вычисляется на каждый запрос, без фонового опроса.
type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer

	pinger  Pinger
	timeout time.Duration
	logger  *zap.Logger
}

func newHealthServer(pinger Pinger, timeout time.Duration, logger *zap.Logger) *healthServer {
	return &healthServer{
		pinger:  pinger,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *healthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn("health check: store unreachable", zap.Error(err))
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

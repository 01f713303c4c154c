// Package grpcserver поднимает gRPC сервер со health-check хранилища и reflection.
package grpcserver

import (
	"fmt"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	logger     *zap.Logger
}

// New creates a gRPC server with the health service and reflection registered.
func New(pinger Pinger, pingTimeout time.Duration, logger *zap.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(InterceptorLogger(logger),
				logging.WithLogOnEvents(logging.FinishCall),
			),
		),
	)

	grpc_health_v1.RegisterHealthServer(s, newHealthServer(pinger, pingTimeout, logger))
	reflection.Register(s)

	return &Server{
		grpcServer: s,
		logger:     logger,
	}
}

// Serve принимает соединения на lis до вызова GracefulStop
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("address", lis.Addr().String()))

	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	return nil
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// Stop прерывает все соединения немедленно
func (s *Server) Stop() {
	s.grpcServer.Stop()
}

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/rpc"
)

// readinessInterceptor rejects everything but Ping until bootstrap is done.
func (s *GRPCServer) readinessInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod != rpc.MethodPing {
		if err := s.gate.Check(); err != nil {
			return nil, toStatus(err)
		}
	}
	return handler(ctx, req)
}

// loggingInterceptor tags ctx with the method so handler logs carry it.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	ctx = logging.ContextWith(ctx, "method", info.FullMethod)
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"code", code.String(), "duration", time.Since(start)}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", err.Error())...)
	} else {
		s.logger.Debug(ctx, "request", args...)
	}
	return resp, err
}

// Package grpc exposes the Mnemos services over gRPC using the JSON codec
// from internal/rpc.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/rpc"
	"github.com/dmitrijs2005/mnemos/internal/server/readiness"
	"github.com/dmitrijs2005/mnemos/internal/server/services"
)

type GRPCServer struct {
	rpc.UnimplementedMnemosServer
	address  string
	services services.Set
	gate     *readiness.Gate
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, gate *readiness.Gate, s services.Set) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		gate:     gate,
		services: s,
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.readinessInterceptor))
	rpc.RegisterMnemosServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}

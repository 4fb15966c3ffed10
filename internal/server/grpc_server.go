package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/jobmatch/internal/config"
)

// NewGRPCServer builds a gRPC server with logging and panic recovery and
// registers all provided services.
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			RecoveryInterceptor(log),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	// reflection only lists the services; the JSON messages have no proto
	// descriptors, so grpcurl describe is not available
	reflection.Register(grpcServer)

	return grpcServer
}

// StartGRPCServer listens on the configured address and serves until ctx is
// cancelled, then stops gracefully.
func StartGRPCServer(ctx context.Context, cfg *config.Config, log *slog.Logger, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(log, registrars...)

	go func() {
		<-ctx.Done()
		log.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	return grpcServer.Serve(lis)
}

package quote

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"quote-server/api/pb"
	"quote-server/src/config"
	"quote-server/src/interfaces"
	"quote-server/src/logger"
)

// -----------------------------------------------------------------------------
// GRPCService handles gRPC server lifecycle
// -----------------------------------------------------------------------------

type GRPCService struct {
	server   *grpc.Server
	listener net.Listener
	config   *config.Config
	logger   *logger.Logger
}

// -----------------------------------------------------------------------------

// NewGRPCService creates a listening gRPC server with the quote and health
// services registered.
func NewGRPCService(config *config.Config, logger *logger.Logger, source interfaces.ISource) (*GRPCService, error) {
	listener, err := net.Listen("tcp", config.Listen)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", config.Listen, err)
	}

	serverOptions := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(10 * 1024 * 1024), // 10MB
		grpc.MaxSendMsgSize(10 * 1024 * 1024), // 10MB
	}

	server := grpc.NewServer(serverOptions...)

	quoteService := NewQuoteService(logger, source)
	pb.RegisterQuoteServer(server, quoteService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("quote.Quote", grpc_health_v1.HealthCheckResponse_SERVING)

	return &GRPCService{
		server:   server,
		listener: listener,
		config:   config,
		logger:   logger,
	}, nil
}

// -----------------------------------------------------------------------------

// Start serves in a background goroutine and returns immediately.
func (g *GRPCService) Start() {
	g.logger.Info("Starting gRPC service on %s", g.listener.Addr().String())

	go func() {
		if err := g.server.Serve(g.listener); err != nil && err != grpc.ErrServerStopped {
			g.logger.Error("gRPC server failed: %v", err)
		}
	}()
}

// -----------------------------------------------------------------------------

// Stop gracefully stops the gRPC server, forcing the stop when the context
// expires first.
func (g *GRPCService) Stop(ctx context.Context) error {
	g.logger.Info("Stopping gRPC service...")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-ctx.Done():
		g.logger.Warning("gRPC graceful shutdown timeout, forcing stop...")
		g.server.Stop()
	case <-done:
		g.logger.Info("gRPC service stopped gracefully")
	}

	return nil
}

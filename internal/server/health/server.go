// Package health serves gRPC health checks for container orchestrators that
// probe over grpc.health.v1 instead of HTTP.
package health

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/okozlov/accountd/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const probeInterval = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	db      *sql.DB
	health  *health.Server
}

func NewServer(address string, l logging.Logger, db *sql.DB) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "health_server"),
		db:      db,
		health:  health.NewServer(),
	}
}

// probe flips the serving status based on database reachability.
func (s *Server) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "Database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
}

// Run serves health checks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, s.health)

	s.probe(ctx)
	go func() {
		ticker := time.NewTicker(probeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.probe(ctx)
			}
		}
	}()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping health server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting health server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type grpcHealthProbe struct {
	conn   *grpc.ClientConn
	health grpc_health_v1.HealthClient

	logger *logger.Logger
}

// NewGRPCHealthProbe constructs a [HealthProbe] backed by the standard gRPC
// health service at adapterCfg.GRPCAddress. The connection is established
// lazily on the first Check call.
func NewGRPCHealthProbe(adapterCfg config.ClientAdapter, logger *logger.Logger) (HealthProbe, error) {
	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc health probe dial %s: %w", adapterCfg.GRPCAddress, err)
	}

	return &grpcHealthProbe{
		conn:   conn,
		health: grpc_health_v1.NewHealthClient(conn),
		logger: logger,
	}, nil
}

// Online implements [HealthProbe]. Any RPC failure, including an expired
// context, counts as offline.
func (p *grpcHealthProbe) Online(ctx context.Context) bool {
	resp, err := p.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		p.logger.Debug().Str("func", "Online").Msgf("health check: %v", err)
		return false
	}

	return resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING
}

// Close implements [HealthProbe].
func (p *grpcHealthProbe) Close() error {
	return p.conn.Close()
}

package grpc

import (
	"github.com/MKhiriev/go-app-lock/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler of the dev server.
//
// Its only service is the standard gRPC health protocol, which the client's
// offline probe polls to decide whether the backend is reachable. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with a health service that reports
// SERVING for all service names until shutdown.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health service to the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips the health status to NOT_SERVING so probes observe the
// stop before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

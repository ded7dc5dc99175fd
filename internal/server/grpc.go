package server

import (
	"net"

	grpchandler "github.com/MKhiriev/go-app-lock/internal/handler/grpc"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	server  *grpc.Server
	handler *grpchandler.Handler
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *grpchandler.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		server:  server,
		handler: handler,
		address: address,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Msgf("gRPC server listen on %s: %v", g.address, err)
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	// flips the health status to NOT_SERVING before draining connections
	g.handler.Shutdown()
	g.server.GracefulStop()
}

package server

import (
	"context"
	"crewcast/contract"
	"crewcast/domain/event"
	"crewcast/infrastructure/grpc/wire"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
)

// BackendServer exposes a backend and its event streams over gRPC.
type BackendServer struct {
	contract.IBackend
	source contract.IEventSource
	log    *slog.Logger
}

func NewBackendServer(log *slog.Logger, backend contract.IBackend, source contract.IEventSource) *BackendServer {
	return &BackendServer{IBackend: backend, source: source, log: log}
}

// Register installs the service on s.
func (s *BackendServer) Register(registrar grpc.ServiceRegistrar) {
	registrar.RegisterService(&wire.ServiceDesc, s)
}

// Subscribe opens a stream for one client. It lasts until the client disconnects.
func (s *BackendServer) Subscribe(ctx context.Context, stream event.Stream) (<-chan []byte, error) {
	switch stream {
	case event.GossipStream, event.ProgressStream:
	default:
		return nil, fmt.Errorf("unknown stream %q", stream)
	}
	payloads, err := s.source.Subscribe(ctx, stream)
	if err != nil {
		return nil, err
	}
	s.log.Info("Client subscribed", "stream", string(stream))
	go func() {
		<-ctx.Done()
		s.log.Info("Client unsubscribed", "stream", string(stream))
	}()
	return payloads, nil
}

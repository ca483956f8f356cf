package main

import (
	"context"
	"crewcast/domain"
	"crewcast/infrastructure/grpc/server"
	"crewcast/infrastructure/memory"
	"crewcast/observability"
	"crewcast/runtime/workers"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config of the local backend simulator.
type Config struct {
	Port            int           `envconfig:"SIMULATOR_PORT" default:"50051"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"INFO"`
	TicketSecret    string        `envconfig:"TICKET_SECRET" default:"crewcast-dev-secret"`
	TicketTTL       time.Duration `envconfig:"TICKET_TTL" default:"24h"`
	LocalNodeID     string        `envconfig:"LOCAL_NODE_ID"`
	NodeRowID       int64         `envconfig:"NODE_ROW_ID" default:"1"`
	PeerNames       []string      `envconfig:"PEER_NAMES" default:"Sarah,Malik,Ines"`
	CheckInInterval time.Duration `envconfig:"CHECK_IN_INTERVAL" default:"10s"`
	ChatInterval    time.Duration `envconfig:"CHAT_INTERVAL" default:"15s"`
	ProgressStep    time.Duration `envconfig:"PROGRESS_STEP_DELAY" default:"500ms"`
	HubBuffer       int           `envconfig:"HUB_BUFFER" default:"256"`
	RestartInterval time.Duration `envconfig:"RESTART_INTERVAL" default:"1s"`
	LocalFirstName  string        `envconfig:"LOCAL_FIRST_NAME"`
	LocalEmail      string        `envconfig:"LOCAL_EMAIL"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulator terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run serves an in-memory backend over gRPC until SIGINT or SIGTERM.
func run() (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(strings.ToUpper(config.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := memory.NewHub(log, config.HubBuffer)
	local := domain.Node{ID: config.NodeRowID, NodeID: config.LocalNodeID}
	if local.NodeID == "" {
		local.NodeID = uuid.NewString()
	}
	backend := memory.NewBackend(log, hub, memory.NewTicketCodec(config.TicketSecret, config.TicketTTL), local, config.ProgressStep)
	defer backend.Close()

	if config.LocalFirstName != "" && config.LocalEmail != "" {
		user := domain.UserInfo{Email: config.LocalEmail, FirstName: config.LocalFirstName, NodeID: local.NodeID}
		if err := backend.CreateUser(ctx, user); err != nil {
			return exitConfig, fmt.Errorf("local profile: %w", err)
		}
	}

	peers := make([]domain.UserInfo, 0, len(config.PeerNames))
	for _, name := range config.PeerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		peers = append(peers, domain.UserInfo{
			Email:     strings.ToLower(name) + "@crewcast.local",
			FirstName: name,
			NodeID:    uuid.NewString(),
		})
	}

	sup := workers.NewSupervisor(log, config.RestartInterval, observability.NewMonitoring())
	sup.Add(memory.NewPeerSimulator(log, backend, hub, peers, config.CheckInInterval, config.ChatInterval))
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	server.NewBackendServer(log, backend, hub).Register(s)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting simulator", "address", address, "localNode", local.NodeID, "peers", len(peers))
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	s.GracefulStop()
	sup.Stop()
	<-supDone
	log.Info("Simulator stopped cleanly")
	return exitOK, nil
}

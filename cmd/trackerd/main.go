package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/aios-dev/agent-state/gen/trackerpb"
	"github.com/aios-dev/agent-state/internal/registry"
	"github.com/aios-dev/agent-state/internal/server"
	"github.com/aios-dev/agent-state/internal/store"
)

// #region main
func main() {
	dbPath := envOr("TRACKER_DB", "agent_state.db")
	addr := envOr("TRACKER_ADDR", "localhost:50061")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	reg, err := registry.NewRegistry(st)
	if err != nil {
		log.Fatalf("failed to build registry: %v", err)
	}

	srv, err := server.NewServer(reg, st)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterTrackerServiceServer(grpcServer, srv)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Printf("[MAIN] shutting down")
		grpcServer.GracefulStop()
	}()

	log.Printf("[MAIN] trackerd ready: db=%s addr=%s agents=%d", dbPath, addr, reg.Len())
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region env
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env

// Package server implements the TrackerService gRPC surface over the agent
// registry, the journal store, and a system-wide status tracker.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/aios-dev/agent-state/gen/trackerpb"
	"github.com/aios-dev/agent-state/internal/object"
	"github.com/aios-dev/agent-state/internal/registry"
	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region system-labels
// SystemStatusLabels is the label set of the daemon's own status tracker.
func SystemStatusLabels() []string {
	return []string{"idle", "running", "completed", "error"}
}
// #endregion system-labels

// #region server-struct
// Server implements pb.TrackerServiceServer.
type Server struct {
	pb.UnimplementedTrackerServiceServer

	registry *registry.Registry
	store    *store.Store
	system   *tracker.Tracker

	requests atomic.Int64
	errors   atomic.Int64
}

// NewServer wires the service over an existing registry and store. The
// system tracker starts at idle; Start moves it to running.
func NewServer(reg *registry.Registry, st *store.Store) (*Server, error) {
	sys, err := tracker.New("system", SystemStatusLabels())
	if err != nil {
		return nil, fmt.Errorf("system tracker: %w", err)
	}
	return &Server{registry: reg, store: st, system: sys}, nil
}

// Start marks the system tracker as running and journals the transition.
func (s *Server) Start() error {
	if err := s.system.Transition("running"); err != nil {
		return err
	}
	h := s.system.History()
	if err := s.store.AppendTransition("system", h[len(h)-1]); err != nil {
		log.Printf("[SRV] journal system transition: %v", err)
	}
	return nil
}
// #endregion server-struct

// #region create-agent
// CreateAgent registers a new agent with optional initial properties.
func (s *Server) CreateAgent(_ context.Context, req *pb.CreateAgentRequest) (*pb.AgentInfo, error) {
	s.requests.Add(1)
	if req.Name == "" {
		return nil, s.fail(codes.InvalidArgument, "agent name is required")
	}

	var props map[string]object.Value
	if req.PropertiesJson != "" {
		if err := json.Unmarshal([]byte(req.PropertiesJson), &props); err != nil {
			return nil, s.fail(codes.InvalidArgument, "invalid properties: %v", err)
		}
	}

	info, err := s.registry.Create(req.Name, props)
	if err != nil {
		if errors.Is(err, registry.ErrAgentExists) {
			return nil, s.fail(codes.AlreadyExists, "agent %s already exists", req.Name)
		}
		return nil, s.fail(codes.Internal, "create agent: %v", err)
	}
	return agentInfo(info)
}
// #endregion create-agent

// #region list-agents
// ListAgents returns all registered agents.
func (s *Server) ListAgents(context.Context, *pb.ListAgentsRequest) (*pb.ListAgentsResponse, error) {
	s.requests.Add(1)
	infos := s.registry.List()
	resp := &pb.ListAgentsResponse{Agents: make([]*pb.AgentInfo, 0, len(infos))}
	for _, info := range infos {
		ai, err := agentInfo(info)
		if err != nil {
			return nil, s.fail(codes.Internal, "encode agent %s: %v", info.Name, err)
		}
		resp.Agents = append(resp.Agents, ai)
	}
	return resp, nil
}
// #endregion list-agents

// #region transition
// Transition moves an agent's status tracker to the target label.
func (s *Server) Transition(_ context.Context, req *pb.TransitionRequest) (*pb.AgentInfo, error) {
	s.requests.Add(1)

	info, err := s.registry.Transition(req.Agent, req.Target)
	if err != nil {
		var ise *tracker.InvalidStateError
		switch {
		case errors.Is(err, registry.ErrAgentNotFound):
			return nil, s.fail(codes.NotFound, "agent %s not found", req.Agent)
		case errors.As(err, &ise):
			return nil, s.fail(codes.InvalidArgument, "%v", ise)
		default:
			return nil, s.fail(codes.Internal, "transition: %v", err)
		}
	}
	return agentInfo(info)
}
// #endregion transition

// #region history
// History returns the journaled transitions for one tracker key.
func (s *Server) History(_ context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	s.requests.Add(1)
	if req.Tracker == "" {
		return nil, s.fail(codes.InvalidArgument, "tracker key is required")
	}

	rows, err := s.store.HistoryFor(req.Tracker, int(req.Limit))
	if err != nil {
		return nil, s.fail(codes.Internal, "history: %v", err)
	}

	resp := &pb.HistoryResponse{Records: make([]*pb.TransitionRecord, len(rows))}
	for i, r := range rows {
		resp.Records[i] = &pb.TransitionRecord{
			From:       r.From,
			To:         r.To,
			RecordedAt: r.RecordedAt.UTC().Format(time.RFC3339Nano),
			ElapsedMs:  r.Elapsed.Milliseconds(),
		}
	}
	return resp, nil
}
// #endregion history

// #region inspect
// Inspect returns the system snapshot, or a single agent's snapshot when
// req.Agent is set.
func (s *Server) Inspect(_ context.Context, req *pb.InspectRequest) (*pb.InspectResponse, error) {
	s.requests.Add(1)

	if req.Agent != "" {
		info, err := s.registry.Get(req.Agent)
		if err != nil {
			return nil, s.fail(codes.NotFound, "agent %s not found", req.Agent)
		}
		return snapshotResponse(info.Tracker), nil
	}

	resp := snapshotResponse(s.system.Inspect())
	resp.Requests = s.requests.Load()
	resp.Errors = s.errors.Load()
	resp.Agents = int64(s.registry.Len())
	return resp, nil
}
// #endregion inspect

// #region helpers
func (s *Server) fail(code codes.Code, format string, args ...any) error {
	s.errors.Add(1)
	return status.Errorf(code, format, args...)
}

func agentInfo(info registry.Info) (*pb.AgentInfo, error) {
	props, err := json.Marshal(info.Properties)
	if err != nil {
		return nil, fmt.Errorf("marshal properties: %w", err)
	}
	return &pb.AgentInfo{
		AgentId:        info.ID,
		Name:           info.Name,
		Status:         info.Status,
		PropertiesJson: string(props),
		States:         info.Tracker.States,
		HistoryCount:   int64(info.Tracker.HistoryCount),
	}, nil
}

func snapshotResponse(snap tracker.Snapshot) *pb.InspectResponse {
	resp := &pb.InspectResponse{
		Name:         snap.Name,
		Current:      snap.Current,
		States:       snap.States,
		HistoryCount: int64(snap.HistoryCount),
		CreatedAt:    snap.CreatedAt.UTC().Format(time.RFC3339Nano),
		UptimeMs:     snap.Uptime.Milliseconds(),
	}
	if !snap.LastChangeAt.IsZero() {
		resp.LastChangeAt = snap.LastChangeAt.UTC().Format(time.RFC3339Nano)
	}
	return resp
}
// #endregion helpers

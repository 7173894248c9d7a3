// Package client wraps the gRPC connection to a trackerd daemon.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/aios-dev/agent-state/gen/trackerpb"
	"github.com/aios-dev/agent-state/internal/object"
)

// #region types
// Agent is the client-side view of a registered agent.
type Agent struct {
	ID             string
	Name           string
	Status         string
	States         []string
	HistoryCount   int64
	PropertiesJSON string
}

// Record is one journaled transition.
type Record struct {
	From       string
	To         string
	RecordedAt time.Time
	Elapsed    time.Duration
}

// Snapshot is a tracker diagnostic view, with system counters when the
// snapshot is the daemon's own.
type Snapshot struct {
	Name         string
	Current      string
	States       []string
	HistoryCount int64
	CreatedAt    time.Time
	LastChangeAt time.Time
	Uptime       time.Duration
	Requests     int64
	Errors       int64
	Agents       int64
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the tracker daemon.
type Client struct {
	conn *grpc.ClientConn
	svc  pb.TrackerServiceClient
}

// New connects to a trackerd daemon.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, svc: pb.NewTrackerServiceClient(conn)}, nil
}

// NewWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewWithService(svc pb.TrackerServiceClient) *Client {
	return &Client{svc: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion client-struct

// #region create-agent
// CreateAgent registers a new agent with optional initial properties.
func (c *Client) CreateAgent(ctx context.Context, name string, props map[string]object.Value) (Agent, error) {
	var propsJSON string
	if len(props) > 0 {
		data, err := json.Marshal(props)
		if err != nil {
			return Agent{}, fmt.Errorf("marshal properties: %w", err)
		}
		propsJSON = string(data)
	}

	resp, err := c.svc.CreateAgent(ctx, &pb.CreateAgentRequest{
		Name:           name,
		PropertiesJson: propsJSON,
	})
	if err != nil {
		return Agent{}, fmt.Errorf("create agent rpc: %w", err)
	}
	return toAgent(resp), nil
}
// #endregion create-agent

// #region list-agents
// ListAgents returns all registered agents.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	resp, err := c.svc.ListAgents(ctx, &pb.ListAgentsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list agents rpc: %w", err)
	}
	agents := make([]Agent, len(resp.Agents))
	for i, a := range resp.Agents {
		agents[i] = toAgent(a)
	}
	return agents, nil
}
// #endregion list-agents

// #region transition
// Transition moves an agent to the target status label.
func (c *Client) Transition(ctx context.Context, agent, target string) (Agent, error) {
	resp, err := c.svc.Transition(ctx, &pb.TransitionRequest{Agent: agent, Target: target})
	if err != nil {
		return Agent{}, fmt.Errorf("transition rpc: %w", err)
	}
	return toAgent(resp), nil
}
// #endregion transition

// #region history
// History fetches the journal for one tracker key ("agent:<name>",
// "run:<id>", or "system"). limit <= 0 fetches everything.
func (c *Client) History(ctx context.Context, trackerKey string, limit int) ([]Record, error) {
	resp, err := c.svc.History(ctx, &pb.HistoryRequest{Tracker: trackerKey, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("history rpc: %w", err)
	}
	records := make([]Record, len(resp.Records))
	for i, r := range resp.Records {
		at, _ := time.Parse(time.RFC3339Nano, r.RecordedAt)
		records[i] = Record{
			From:       r.From,
			To:         r.To,
			RecordedAt: at,
			Elapsed:    time.Duration(r.ElapsedMs) * time.Millisecond,
		}
	}
	return records, nil
}
// #endregion history

// #region inspect
// Inspect fetches the system snapshot, or an agent's when agent is non-empty.
func (c *Client) Inspect(ctx context.Context, agent string) (Snapshot, error) {
	resp, err := c.svc.Inspect(ctx, &pb.InspectRequest{Agent: agent})
	if err != nil {
		return Snapshot{}, fmt.Errorf("inspect rpc: %w", err)
	}

	snap := Snapshot{
		Name:         resp.Name,
		Current:      resp.Current,
		States:       resp.States,
		HistoryCount: resp.HistoryCount,
		Uptime:       time.Duration(resp.UptimeMs) * time.Millisecond,
		Requests:     resp.Requests,
		Errors:       resp.Errors,
		Agents:       resp.Agents,
	}
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, resp.CreatedAt)
	if resp.LastChangeAt != "" {
		snap.LastChangeAt, _ = time.Parse(time.RFC3339Nano, resp.LastChangeAt)
	}
	return snap, nil
}
// #endregion inspect

// #region helpers
func toAgent(a *pb.AgentInfo) Agent {
	return Agent{
		ID:             a.AgentId,
		Name:           a.Name,
		Status:         a.Status,
		States:         a.States,
		HistoryCount:   a.HistoryCount,
		PropertiesJSON: a.PropertiesJson,
	}
}
// #endregion helpers

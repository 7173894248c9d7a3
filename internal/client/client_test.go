package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/aios-dev/agent-state/gen/trackerpb"
	"github.com/aios-dev/agent-state/internal/object"
)

// #region mock
type mockTrackerService struct {
	pb.TrackerServiceClient

	createResp *pb.AgentInfo
	createErr  error

	listResp *pb.ListAgentsResponse
	listErr  error

	transitionResp *pb.AgentInfo
	transitionErr  error

	historyResp *pb.HistoryResponse
	historyErr  error

	inspectResp *pb.InspectResponse
	inspectErr  error

	lastCreate *pb.CreateAgentRequest
}

func (m *mockTrackerService) CreateAgent(_ context.Context, req *pb.CreateAgentRequest, _ ...grpc.CallOption) (*pb.AgentInfo, error) {
	m.lastCreate = req
	return m.createResp, m.createErr
}

func (m *mockTrackerService) ListAgents(_ context.Context, _ *pb.ListAgentsRequest, _ ...grpc.CallOption) (*pb.ListAgentsResponse, error) {
	return m.listResp, m.listErr
}

func (m *mockTrackerService) Transition(_ context.Context, _ *pb.TransitionRequest, _ ...grpc.CallOption) (*pb.AgentInfo, error) {
	return m.transitionResp, m.transitionErr
}

func (m *mockTrackerService) History(_ context.Context, _ *pb.HistoryRequest, _ ...grpc.CallOption) (*pb.HistoryResponse, error) {
	return m.historyResp, m.historyErr
}

func (m *mockTrackerService) Inspect(_ context.Context, _ *pb.InspectRequest, _ ...grpc.CallOption) (*pb.InspectResponse, error) {
	return m.inspectResp, m.inspectErr
}

// #endregion mock

// #region constructor-tests
func TestNewWithService(t *testing.T) {
	c := NewWithService(&mockTrackerService{})
	if c == nil || c.svc == nil {
		t.Fatal("expected wired client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close without conn: %v", err)
	}
}

// #endregion constructor-tests

// #region create-tests
func TestCreateAgentMarshalsProperties(t *testing.T) {
	mock := &mockTrackerService{
		createResp: &pb.AgentInfo{AgentId: "id-1", Name: "builder", Status: "idle"},
	}
	c := NewWithService(mock)

	a, err := c.CreateAgent(context.Background(), "builder", map[string]object.Value{
		"role": object.String("builder"),
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if a.Name != "builder" || a.Status != "idle" {
		t.Fatalf("unexpected agent: %+v", a)
	}
	if mock.lastCreate.PropertiesJson != `{"role":"builder"}` {
		t.Fatalf("unexpected properties payload: %s", mock.lastCreate.PropertiesJson)
	}
}

func TestCreateAgentError(t *testing.T) {
	boom := errors.New("unavailable")
	c := NewWithService(&mockTrackerService{createErr: boom})
	if _, err := c.CreateAgent(context.Background(), "x", nil); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped rpc error, got %v", err)
	}
}

// #endregion create-tests

// #region history-tests
func TestHistoryConvertsRecords(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithService(&mockTrackerService{
		historyResp: &pb.HistoryResponse{Records: []*pb.TransitionRecord{
			{From: "idle", To: "working", RecordedAt: at.Format(time.RFC3339Nano), ElapsedMs: 1500},
		}},
	})

	recs, err := c.History(context.Background(), "agent:builder", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.From != "idle" || r.To != "working" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.RecordedAt.Equal(at) {
		t.Fatalf("timestamp mismatch: %v", r.RecordedAt)
	}
	if r.Elapsed != 1500*time.Millisecond {
		t.Fatalf("elapsed mismatch: %v", r.Elapsed)
	}
}

// #endregion history-tests

// #region inspect-tests
func TestInspectConvertsSnapshot(t *testing.T) {
	created := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	c := NewWithService(&mockTrackerService{
		inspectResp: &pb.InspectResponse{
			Name:         "system",
			Current:      "running",
			States:       []string{"idle", "running", "completed", "error"},
			HistoryCount: 1,
			CreatedAt:    created.Format(time.RFC3339Nano),
			UptimeMs:     60000,
			Requests:     5,
			Agents:       2,
		},
	})

	snap, err := c.Inspect(context.Background(), "")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if snap.Current != "running" || snap.Agents != 2 || snap.Requests != 5 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Uptime != time.Minute {
		t.Fatalf("uptime mismatch: %v", snap.Uptime)
	}
	if !snap.LastChangeAt.IsZero() {
		t.Fatalf("expected zero LastChangeAt, got %v", snap.LastChangeAt)
	}
}

// #endregion inspect-tests

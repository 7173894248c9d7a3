package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aios-dev/agent-state/internal/tracker"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// #region transition-tests
func TestAppendAndHistory(t *testing.T) {
	s := tempStore(t)
	base := time.Now()

	recs := []tracker.TransitionRecord{
		{From: "idle", To: "working", At: base, Since: time.Second},
		{From: "working", To: "done", At: base.Add(time.Minute), Since: 61 * time.Second},
	}
	for _, rec := range recs {
		if err := s.AppendTransition("status", rec); err != nil {
			t.Fatalf("AppendTransition: %v", err)
		}
	}

	h, err := s.HistoryFor("status", 0)
	if err != nil {
		t.Fatalf("HistoryFor: %v", err)
	}
	if len(h) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(h))
	}
	if h[0].From != "idle" || h[0].To != "working" {
		t.Fatalf("rows not chronological: %+v", h[0])
	}
	if h[1].Elapsed != 61*time.Second {
		t.Fatalf("expected elapsed 61s, got %v", h[1].Elapsed)
	}

	// Limit keeps the most recent rows
	h, err = s.HistoryFor("status", 1)
	if err != nil {
		t.Fatalf("HistoryFor limit: %v", err)
	}
	if len(h) != 1 || h[0].To != "done" {
		t.Fatalf("expected latest row only, got %+v", h)
	}
}

func TestCountsFor(t *testing.T) {
	s := tempStore(t)
	seq := []tracker.TransitionRecord{
		{From: "idle", To: "working"},
		{From: "working", To: "done"},
		{From: "done", To: "idle"},
		{From: "idle", To: "working"},
	}
	for _, rec := range seq {
		if err := s.AppendTransition("status", rec); err != nil {
			t.Fatalf("AppendTransition: %v", err)
		}
	}
	// A different tracker must not bleed into the counts
	if err := s.AppendTransition("other", tracker.TransitionRecord{From: "idle", To: "working"}); err != nil {
		t.Fatalf("AppendTransition other: %v", err)
	}

	counts, err := s.CountsFor("status")
	if err != nil {
		t.Fatalf("CountsFor: %v", err)
	}
	if counts[tracker.Pair{From: "idle", To: "working"}] != 2 {
		t.Fatalf("idle→working: expected 2, got %d", counts[tracker.Pair{From: "idle", To: "working"}])
	}
	if counts[tracker.Pair{From: "working", To: "done"}] != 1 {
		t.Fatalf("working→done: expected 1")
	}

	names, err := s.ListTrackers()
	if err != nil {
		t.Fatalf("ListTrackers: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 trackers, got %v", names)
	}
}

// #endregion transition-tests

// #region agent-tests
func TestSaveAndListAgents(t *testing.T) {
	s := tempStore(t)

	row := AgentRow{
		AgentID:        "id-1",
		Name:           "builder",
		PropertiesJSON: `{"role":"builder"}`,
		Status:         "idle",
	}
	if err := s.SaveAgent(row); err != nil {
		t.Fatalf("SaveAgent: %v", err)
	}

	// Upsert with new status
	row.Status = "building"
	if err := s.SaveAgent(row); err != nil {
		t.Fatalf("SaveAgent upsert: %v", err)
	}

	got, err := s.GetAgent("builder")
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if got.Status != "building" {
		t.Fatalf("expected status building, got %q", got.Status)
	}
	if got.PropertiesJSON != `{"role":"builder"}` {
		t.Fatalf("unexpected properties: %s", got.PropertiesJSON)
	}

	all, err := s.ListAgents()
	if err != nil {
		t.Fatalf("ListAgents: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 agent, got %d", len(all))
	}

	if _, err := s.GetAgent("missing"); err == nil {
		t.Fatal("expected error for missing agent")
	}
}

// #endregion agent-tests

// #region run-tests
func TestRunLifecycle(t *testing.T) {
	s := tempStore(t)

	if err := s.CreateRun("run-1", "deploy", "planning"); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.FinishRun("run-1", "error", "step build failed"); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Status != "error" || r.Error != "step build failed" {
		t.Fatalf("unexpected run: %+v", r)
	}
	if r.FinishedAt.IsZero() {
		t.Fatal("expected finished_at set")
	}
}

// #endregion run-tests

package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aios-dev/agent-state/internal/object"
	"github.com/aios-dev/agent-state/internal/store"
)

func tempStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// #region create-tests
func TestCreateAndGet(t *testing.T) {
	r, err := NewRegistry(tempStore(t))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	info, err := r.Create("builder", map[string]object.Value{
		"role": object.String("builder"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if info.Status != "idle" {
		t.Fatalf("expected idle, got %q", info.Status)
	}
	if info.ID == "" {
		t.Fatal("expected non-empty agent ID")
	}

	if _, err := r.Create("builder", nil); !errors.Is(err, ErrAgentExists) {
		t.Fatalf("expected ErrAgentExists, got %v", err)
	}

	got, err := r.Get("builder")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if role, _ := got.Properties["role"].AsString(); role != "builder" {
		t.Fatalf("expected role builder, got %q", role)
	}

	if _, err := r.Get("missing"); !errors.Is(err, ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}

// #endregion create-tests

// #region transition-tests
func TestTransitionJournalsAndPersists(t *testing.T) {
	st := tempStore(t)
	r, err := NewRegistry(st)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, err := r.Create("builder", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	info, err := r.Transition("builder", "analyzing")
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if info.Status != "analyzing" {
		t.Fatalf("expected analyzing, got %q", info.Status)
	}

	// Journaled under the agent: prefix
	h, err := st.HistoryFor("agent:builder", 0)
	if err != nil {
		t.Fatalf("HistoryFor: %v", err)
	}
	if len(h) != 1 || h[0].From != "idle" || h[0].To != "analyzing" {
		t.Fatalf("unexpected journal: %+v", h)
	}

	// Invalid target leaves the agent untouched
	if _, err := r.Transition("builder", "sleeping"); err == nil {
		t.Fatal("expected error for invalid label")
	}
	got, _ := r.Get("builder")
	if got.Status != "analyzing" {
		t.Fatalf("failed transition mutated status: %q", got.Status)
	}

	if _, err := r.Transition("missing", "idle"); !errors.Is(err, ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}

// #endregion transition-tests

// #region restore-tests
func TestRestoreAcrossRestart(t *testing.T) {
	st := tempStore(t)

	r1, err := NewRegistry(st)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, err := r1.Create("builder", map[string]object.Value{
		"goal": object.String("ship"),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := r1.Transition("builder", "building"); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	// Second registry over the same store simulates a restart.
	r2, err := NewRegistry(st)
	if err != nil {
		t.Fatalf("NewRegistry restart: %v", err)
	}
	if r2.Len() != 1 {
		t.Fatalf("expected 1 restored agent, got %d", r2.Len())
	}

	info, err := r2.Get("builder")
	if err != nil {
		t.Fatalf("Get after restart: %v", err)
	}
	if info.Status != "building" {
		t.Fatalf("expected restored status building, got %q", info.Status)
	}
	if goal, _ := info.Properties["goal"].AsString(); goal != "ship" {
		t.Fatalf("expected restored goal, got %q", goal)
	}
}

// #endregion restore-tests

// #region list-tests
func TestListSorted(t *testing.T) {
	r, err := NewRegistry(tempStore(t))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := r.Create(name, nil); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	infos := r.List()
	if len(infos) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(infos))
	}
	if infos[0].Name != "alpha" || infos[2].Name != "zeta" {
		t.Fatalf("not sorted: %v, %v, %v", infos[0].Name, infos[1].Name, infos[2].Name)
	}
}

// #endregion list-tests

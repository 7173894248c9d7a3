package graph

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	seq := []tracker.TransitionRecord{
		{From: "idle", To: "working"},
		{From: "working", To: "done"},
		{From: "done", To: "idle"},
		{From: "idle", To: "working"},
	}
	for _, rec := range seq {
		if err := s.AppendTransition("agent:builder", rec); err != nil {
			t.Fatalf("AppendTransition: %v", err)
		}
	}
	return s
}

// #region build-tests
func TestBuildFromJournal(t *testing.T) {
	g, err := Build(seededStore(t), "agent:builder")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Total != 4 {
		t.Fatalf("expected total 4, got %d", g.Total)
	}
	if len(g.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(g.Edges))
	}

	// Most frequent edge first
	top := g.Edges[0]
	if top.From != "idle" || top.To != "working" || top.Count != 2 {
		t.Fatalf("unexpected top edge: %+v", top)
	}
	if top.Weight != 0.5 {
		t.Fatalf("expected weight 0.5, got %v", top.Weight)
	}
}

func TestBuildEmptyJournal(t *testing.T) {
	g, err := Build(seededStore(t), "agent:ghost")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Total != 0 || len(g.Edges) != 0 {
		t.Fatalf("expected empty graph, got %+v", g)
	}
}

// #endregion build-tests

// #region query-tests
func TestNeighborsAndNodes(t *testing.T) {
	g, err := Build(seededStore(t), "agent:builder")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := g.Neighbors("idle")
	if len(out) != 1 || out[0].To != "working" {
		t.Fatalf("unexpected neighbors: %+v", out)
	}

	nodes := g.Nodes()
	if len(nodes) != 3 || nodes[0] != "done" {
		t.Fatalf("unexpected nodes: %v", nodes)
	}
}

// #endregion query-tests

// #region dot-tests
func TestDOT(t *testing.T) {
	g, err := Build(seededStore(t), "agent:builder")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dot := g.DOT()
	if !strings.HasPrefix(dot, `digraph "agent:builder" {`) {
		t.Fatalf("unexpected header: %s", dot)
	}
	if !strings.Contains(dot, `"idle" -> "working" [label="2"];`) {
		t.Fatalf("missing weighted edge:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Fatalf("unterminated dot output:\n%s", dot)
	}
}

// #endregion dot-tests

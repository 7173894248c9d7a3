package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aios-dev/agent-state/internal/store"
)

func statusFixture() *Fixture {
	return &Fixture{
		Description: "status lifecycle with one rejected attempt",
		Tracker: FixtureTracker{
			Name:    "status",
			States:  []string{"idle", "working", "done"},
			Default: "idle",
		},
		Transitions: []string{"working", "done", "paused", "idle"},
		Expected: FixtureExpected{
			FinalState: "idle",
			Accepted:   3,
			Rejected:   1,
			Counts: []FixtureCount{
				{From: "idle", To: "working", Count: 1},
				{From: "working", To: "done", Count: 1},
				{From: "done", To: "idle", Count: 1},
			},
		},
	}
}

// #region replay-tests
func TestReplayMatches(t *testing.T) {
	res, err := Replay(statusFixture())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected clean replay, mismatches: %v", res.Mismatches)
	}
	if res.Accepted != 3 || res.Rejected != 1 {
		t.Fatalf("unexpected tallies: %+v", res)
	}
	if len(res.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(res.Steps))
	}
	if res.Steps[2].Accepted || res.Steps[2].Reason == "" {
		t.Fatalf("step 3 should be a rejection with a reason: %+v", res.Steps[2])
	}
}

func TestReplayReportsMismatch(t *testing.T) {
	f := statusFixture()
	f.Expected.FinalState = "done"
	f.Expected.Counts[0].Count = 9

	res, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.OK() {
		t.Fatal("expected mismatches")
	}
	if len(res.Mismatches) != 2 {
		t.Fatalf("expected 2 mismatches, got %v", res.Mismatches)
	}
}

func TestReplayInvalidDefault(t *testing.T) {
	f := statusFixture()
	f.Tracker.Default = "bogus"
	if _, err := Replay(f); err == nil {
		t.Fatal("expected error for default outside label set")
	}
}

// #endregion replay-tests

// #region fixture-tests
func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	data := `{
	  "description": "smoke",
	  "tracker": {"name": "status", "states": ["idle", "working"]},
	  "transitions": ["working"],
	  "expected": {"final_state": "working", "accepted": 1}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Tracker.Name != "status" || len(f.Transitions) != 1 {
		t.Fatalf("unexpected fixture: %+v", f)
	}

	res, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.OK() {
		t.Fatalf("mismatches: %v", res.Mismatches)
	}
}

func TestLoadFixtureRejectsEmptyStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(`{"tracker": {"name": "x"}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for missing states")
	}
}

func TestFromJournalRoundTrip(t *testing.T) {
	rows := []store.TransitionRow{
		{From: "idle", To: "working"},
		{From: "working", To: "done"},
		{From: "done", To: "idle"},
		{From: "idle", To: "working"},
	}

	f := FromJournal("agent:builder", rows)
	if f.Tracker.Default != "idle" {
		t.Fatalf("expected default idle, got %q", f.Tracker.Default)
	}
	if len(f.Tracker.States) != 3 {
		t.Fatalf("expected 3 states, got %v", f.Tracker.States)
	}
	if f.Expected.FinalState != "working" || f.Expected.Accepted != 4 {
		t.Fatalf("unexpected expectations: %+v", f.Expected)
	}

	// A journal-derived fixture must always replay cleanly.
	res, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.OK() {
		t.Fatalf("journal fixture mismatches: %v", res.Mismatches)
	}
}

// #endregion fixture-tests

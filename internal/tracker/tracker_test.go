package tracker

import (
	"errors"
	"testing"
)

func newStatus(t *testing.T) *Tracker {
	t.Helper()
	tr, err := New("status", []string{"idle", "working", "done"}, WithDefault("idle"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

// #region construction-tests
func TestNewDefaultsToFirstState(t *testing.T) {
	tr, err := New("status", []string{"idle", "working"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Current() != "idle" {
		t.Fatalf("expected idle, got %q", tr.Current())
	}
	if len(tr.History()) != 0 {
		t.Fatalf("expected empty history, got %d records", len(tr.History()))
	}
}

func TestNewInvalidDefault(t *testing.T) {
	_, err := New("status", []string{"idle", "working"}, WithDefault("paused"))
	if err == nil {
		t.Fatal("expected error for default outside label set")
	}
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InvalidStateError, got %T", err)
	}
	if ise.State != "paused" {
		t.Fatalf("expected offending state paused, got %q", ise.State)
	}
}

func TestNewEmptyStates(t *testing.T) {
	tr, err := New("empty", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Current() != "" {
		t.Fatalf("expected empty current, got %q", tr.Current())
	}
	if tr.Reset() {
		t.Fatal("Reset on empty label set should return false")
	}
}

// #endregion construction-tests

// #region transition-tests
func TestTransitionScenario(t *testing.T) {
	tr := newStatus(t)

	if err := tr.Transition("working"); err != nil {
		t.Fatalf("Transition(working): %v", err)
	}
	if tr.Current() != "working" {
		t.Fatalf("expected working, got %q", tr.Current())
	}

	h := tr.History()
	if len(h) != 1 {
		t.Fatalf("expected 1 record, got %d", len(h))
	}
	if h[0].From != "idle" || h[0].To != "working" {
		t.Fatalf("unexpected record: %+v", h[0])
	}

	if err := tr.Transition("done"); err != nil {
		t.Fatalf("Transition(done): %v", err)
	}
	if len(tr.History()) != 2 {
		t.Fatalf("expected 2 records, got %d", len(tr.History()))
	}

	// Invalid target: current and history untouched
	err := tr.Transition("paused")
	if err == nil {
		t.Fatal("expected error for paused")
	}
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InvalidStateError, got %T", err)
	}
	if tr.Current() != "done" {
		t.Fatalf("failed transition mutated current: %q", tr.Current())
	}
	if len(tr.History()) != 2 {
		t.Fatalf("failed transition mutated history: %d records", len(tr.History()))
	}
}

func TestSelfTransitionRecorded(t *testing.T) {
	tr := newStatus(t)
	if err := tr.Transition("idle"); err != nil {
		t.Fatalf("self transition: %v", err)
	}
	if tr.TransitionCount("idle", "idle") != 1 {
		t.Fatalf("expected self transition count 1, got %d", tr.TransitionCount("idle", "idle"))
	}
}

func TestHistoryChained(t *testing.T) {
	tr := newStatus(t)
	for _, s := range []string{"working", "done", "idle", "working"} {
		if err := tr.Transition(s); err != nil {
			t.Fatalf("Transition(%s): %v", s, err)
		}
	}
	h := tr.History()
	for i := 1; i < len(h); i++ {
		if h[i].From != h[i-1].To {
			t.Fatalf("record %d: from %q does not chain from previous to %q", i, h[i].From, h[i-1].To)
		}
	}
}

func TestHistoryIsSnapshot(t *testing.T) {
	tr := newStatus(t)
	tr.Transition("working")

	h := tr.History()
	h[0].To = "mutated"

	if tr.History()[0].To != "working" {
		t.Fatal("caller mutation leaked into internal history")
	}
}

// #endregion transition-tests

// #region count-tests
func TestTransitionCountMatchesHistory(t *testing.T) {
	tr := newStatus(t)
	seq := []string{"working", "done", "idle", "working", "done"}
	for _, s := range seq {
		if err := tr.Transition(s); err != nil {
			t.Fatalf("Transition(%s): %v", s, err)
		}
	}

	// Recompute counts by folding over history; must match the cache.
	want := map[Pair]int{}
	for _, rec := range tr.History() {
		want[Pair{From: rec.From, To: rec.To}]++
	}
	for p, n := range want {
		if got := tr.TransitionCount(p.From, p.To); got != n {
			t.Errorf("count %s→%s: cache %d, history %d", p.From, p.To, got, n)
		}
	}
	if tr.TransitionCount("done", "done") != 0 {
		t.Error("unseen pair should count 0")
	}
}

// #endregion count-tests

// #region reset-tests
func TestReset(t *testing.T) {
	tr := newStatus(t)
	tr.Transition("working")
	tr.Transition("done")

	if !tr.Reset() {
		t.Fatal("Reset should succeed on non-empty label set")
	}
	if tr.Current() != "idle" {
		t.Fatalf("expected idle after reset, got %q", tr.Current())
	}
	if len(tr.History()) != 0 {
		t.Fatalf("expected cleared history, got %d records", len(tr.History()))
	}
	if tr.TransitionCount("idle", "working") != 0 {
		t.Fatal("expected cleared counts")
	}
}

// #endregion reset-tests

// #region add-remove-tests
func TestAddAndRemoveState(t *testing.T) {
	tr := newStatus(t)

	if !tr.AddState("paused") {
		t.Fatal("AddState(paused) should succeed")
	}
	if tr.AddState("paused") {
		t.Fatal("duplicate AddState should return false")
	}
	if err := tr.Transition("paused"); err != nil {
		t.Fatalf("Transition(paused) after AddState: %v", err)
	}

	// Removing the current label is rejected.
	if tr.RemoveState("paused") {
		t.Fatal("RemoveState(current) should return false")
	}
	if !tr.CanTransitionTo("paused") {
		t.Fatal("rejected removal must not shrink the label set")
	}

	if err := tr.Transition("idle"); err != nil {
		t.Fatalf("Transition(idle): %v", err)
	}
	if !tr.RemoveState("paused") {
		t.Fatal("RemoveState(paused) should succeed once current moved away")
	}
	if tr.CanTransitionTo("paused") {
		t.Fatal("paused should be gone from the label set")
	}
	if tr.RemoveState("paused") {
		t.Fatal("removing an absent label should return false")
	}
}

func TestAddStateToEmptyTracker(t *testing.T) {
	tr, err := New("empty", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !tr.AddState("ready") {
		t.Fatal("AddState on empty tracker should succeed")
	}
	if tr.Current() != "ready" {
		t.Fatalf("first added label should become current, got %q", tr.Current())
	}
}

// #endregion add-remove-tests

// #region inspect-tests
func TestInspect(t *testing.T) {
	tr := newStatus(t)
	tr.Transition("working")

	snap := tr.Inspect()
	if snap.Name != "status" || snap.Current != "working" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.HistoryCount != 1 {
		t.Fatalf("expected history count 1, got %d", snap.HistoryCount)
	}
	if len(snap.States) != 3 {
		t.Fatalf("expected 3 states, got %d", len(snap.States))
	}
	if snap.CreatedAt.IsZero() {
		t.Fatal("expected non-zero CreatedAt")
	}
	if snap.LastChangeAt.IsZero() {
		t.Fatal("expected non-zero LastChangeAt after a transition")
	}

	// Snapshot states are a copy
	snap.States[0] = "mutated"
	if tr.States()[0] != "idle" {
		t.Fatal("snapshot mutation leaked into tracker")
	}
}

// #endregion inspect-tests

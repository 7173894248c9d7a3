// Package replay re-runs recorded transition sequences against a fresh
// tracker and checks the outcome against the fixture's expectations. Useful
// for regression-testing tracker behavior from captured journals.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region fixture-types
// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string          `json:"description"`
	Tracker     FixtureTracker  `json:"tracker"`
	Transitions []string        `json:"transitions"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureTracker declares the tracker under replay.
type FixtureTracker struct {
	Name    string   `json:"name"`
	States  []string `json:"states"`
	Default string   `json:"default,omitempty"`
}

// FixtureCount is one expected (from, to) count.
type FixtureCount struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// FixtureExpected captures the expected end condition of a replay.
type FixtureExpected struct {
	FinalState string         `json:"final_state"`
	Accepted   int            `json:"accepted"`
	Rejected   int            `json:"rejected"`
	Counts     []FixtureCount `json:"counts,omitempty"`
}
// #endregion fixture-types

// #region from-journal
// FromJournal rebuilds a fixture from journaled rows: the label set is
// every label the journal saw (starting state first), the transition list
// is the journal's targets in order, and the expectations assert the chain
// replays cleanly with the observed per-pair counts.
func FromJournal(trackerKey string, rows []store.TransitionRow) *Fixture {
	seen := map[string]bool{rows[0].From: true}
	states := []string{rows[0].From}
	counts := map[tracker.Pair]int{}

	transitions := make([]string, len(rows))
	for i, r := range rows {
		if !seen[r.To] {
			seen[r.To] = true
			states = append(states, r.To)
		}
		transitions[i] = r.To
		counts[tracker.Pair{From: r.From, To: r.To}]++
	}

	expected := FixtureExpected{
		FinalState: rows[len(rows)-1].To,
		Accepted:   len(rows),
		Rejected:   0,
	}
	for p, n := range counts {
		expected.Counts = append(expected.Counts, FixtureCount{From: p.From, To: p.To, Count: n})
	}
	sort.Slice(expected.Counts, func(i, j int) bool {
		a, b := expected.Counts[i], expected.Counts[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return &Fixture{
		Description: fmt.Sprintf("journal replay of %s", trackerKey),
		Tracker: FixtureTracker{
			Name:    trackerKey,
			States:  states,
			Default: rows[0].From,
		},
		Transitions: transitions,
		Expected:    expected,
	}
}
// #endregion from-journal

// #region fixture-loader
// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Tracker.States) == 0 {
		return nil, fmt.Errorf("fixture %s: tracker.states is required", path)
	}
	return &f, nil
}
// #endregion fixture-loader

package tracker

import (
	"fmt"
	"strings"
	"time"
)

// #region transition-record
// TransitionRecord is one entry in a tracker's append-only history.
type TransitionRecord struct {
	From string
	To   string
	At   time.Time
	// Since is the elapsed time between tracker construction and this transition.
	Since time.Duration
}
// #endregion transition-record

// #region pair
// Pair keys the transition count cache by (from, to).
type Pair struct {
	From string
	To   string
}
// #endregion pair

// #region snapshot
// Snapshot is a read-only diagnostic view of a tracker.
type Snapshot struct {
	Name         string        `json:"name"`
	Current      string        `json:"current"`
	States       []string      `json:"states"`
	HistoryCount int           `json:"history_count"`
	CreatedAt    time.Time     `json:"created_at"`
	LastChangeAt time.Time     `json:"last_change_at,omitzero"`
	Uptime       time.Duration `json:"uptime"`
}
// #endregion snapshot

// #region invalid-state-error
// InvalidStateError reports a label outside the tracker's allowed set.
type InvalidStateError struct {
	Tracker string
	State   string
	Valid   []string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("tracker %s: invalid state %q (valid: %s)",
		e.Tracker, e.State, strings.Join(e.Valid, ", "))
}
// #endregion invalid-state-error

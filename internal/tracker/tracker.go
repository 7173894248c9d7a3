// Package tracker implements a labeled state tracker: a closed set of state
// labels, a current label, and an append-only transition history with
// derived per-pair counts.
//
// A Tracker does no internal locking. It is meant to be owned by a single
// goroutine; concurrent callers must serialize access themselves (the
// registry wraps trackers in a mutex for exactly this reason).
package tracker

import "time"

// #region tracker-struct
// Tracker holds a closed label set, the current label, and transition history.
type Tracker struct {
	name      string
	states    []string
	current   string
	history   []TransitionRecord
	counts    map[Pair]int
	createdAt time.Time
	lastAt    time.Time
}
// #endregion tracker-struct

// #region options
// Option adjusts tracker construction.
type Option func(*options)

type options struct {
	defaultState string
	hasDefault   bool
}

// WithDefault sets the initial current label. It must be a member of the
// tracker's label set or New fails with *InvalidStateError.
func WithDefault(state string) Option {
	return func(o *options) {
		o.defaultState = state
		o.hasDefault = true
	}
}
// #endregion options

// #region constructor
// New creates a tracker over the given label set. With no WithDefault option
// the current label starts at the first element; an empty label set leaves
// current empty until AddState introduces a label.
//
// History starts empty: construction itself is not recorded as a transition.
func New(name string, states []string, opts ...Option) (*Tracker, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tracker{
		name:      name,
		states:    append([]string(nil), states...),
		counts:    make(map[Pair]int),
		createdAt: time.Now(),
	}

	if o.hasDefault {
		if !t.CanTransitionTo(o.defaultState) {
			return nil, &InvalidStateError{Tracker: name, State: o.defaultState, Valid: t.States()}
		}
		t.current = o.defaultState
	} else if len(t.states) > 0 {
		t.current = t.states[0]
	}

	return t, nil
}
// #endregion constructor

// #region accessors
// Name returns the tracker's name tag.
func (t *Tracker) Name() string { return t.name }

// Current returns the current label, or "" if the label set is empty.
func (t *Tracker) Current() string { return t.current }

// States returns a copy of the allowed label set in declaration order.
func (t *Tracker) States() []string {
	return append([]string(nil), t.states...)
}
// #endregion accessors

// #region transition
// Transition moves the tracker to target and appends a history record.
// A target outside the label set fails with *InvalidStateError and leaves
// the tracker untouched. Self-transitions are allowed and recorded.
func (t *Tracker) Transition(target string) error {
	if !t.CanTransitionTo(target) {
		return &InvalidStateError{Tracker: t.name, State: target, Valid: t.States()}
	}

	now := time.Now()
	t.history = append(t.history, TransitionRecord{
		From:  t.current,
		To:    target,
		At:    now,
		Since: now.Sub(t.createdAt),
	})
	t.counts[Pair{From: t.current, To: target}]++
	t.current = target
	t.lastAt = now
	return nil
}

// CanTransitionTo reports whether target is a member of the label set.
func (t *Tracker) CanTransitionTo(target string) bool {
	for _, s := range t.states {
		if s == target {
			return true
		}
	}
	return false
}
// #endregion transition

// #region reset
// Reset returns the tracker to the first label and clears history and
// counts. Returns false (and does nothing) if the label set is empty.
func (t *Tracker) Reset() bool {
	if len(t.states) == 0 {
		return false
	}
	t.current = t.states[0]
	t.history = nil
	t.counts = make(map[Pair]int)
	t.lastAt = time.Time{}
	return true
}
// #endregion reset

// #region add-remove
// AddState appends a new label to the set. Returns false if already present.
func (t *Tracker) AddState(state string) bool {
	if t.CanTransitionTo(state) {
		return false
	}
	t.states = append(t.states, state)
	// First label of a previously empty set becomes current.
	if t.current == "" && len(t.states) == 1 {
		t.current = state
	}
	return true
}

// RemoveState removes a label from the set. The current label cannot be
// removed; returns false if target is current or absent.
func (t *Tracker) RemoveState(target string) bool {
	if target == t.current {
		return false
	}
	for i, s := range t.states {
		if s == target {
			t.states = append(t.states[:i], t.states[i+1:]...)
			return true
		}
	}
	return false
}
// #endregion add-remove

// #region history
// History returns a copy of the transition log in chronological order.
func (t *Tracker) History() []TransitionRecord {
	return append([]TransitionRecord(nil), t.history...)
}

// TransitionCount returns the number of recorded from→to transitions,
// zero for unseen pairs.
func (t *Tracker) TransitionCount(from, to string) int {
	return t.counts[Pair{From: from, To: to}]
}
// #endregion history

// #region inspect
// Inspect returns a diagnostic snapshot. LastChangeAt is zero until the
// first transition.
func (t *Tracker) Inspect() Snapshot {
	return Snapshot{
		Name:         t.name,
		Current:      t.current,
		States:       t.States(),
		HistoryCount: len(t.history),
		CreatedAt:    t.createdAt,
		LastChangeAt: t.lastAt,
		Uptime:       time.Since(t.createdAt),
	}
}
// #endregion inspect

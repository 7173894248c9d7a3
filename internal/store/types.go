package store

import "time"

// #region transition-row
// TransitionRow is one journaled transition.
type TransitionRow struct {
	ID         int64
	Tracker    string
	From       string
	To         string
	RecordedAt time.Time
	Elapsed    time.Duration
}
// #endregion transition-row

// #region agent-row
// AgentRow is the persisted form of a registered agent.
type AgentRow struct {
	AgentID        string
	Name           string
	PropertiesJSON string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
// #endregion agent-row

// #region run-row
// RunRow records one workflow run.
type RunRow struct {
	RunID      string
	Workflow   string
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
	Error      string
}
// #endregion run-row

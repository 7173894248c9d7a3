package workflow

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region runner-types
// StepFunc performs one workflow step. A non-nil error aborts the run and
// moves it to the definition's error label.
type StepFunc func(ctx context.Context, step Step) error

// Result summarizes one finished run.
type Result struct {
	RunID      string
	Workflow   string
	FinalState string
	StepsRun   int
	Err        error
}

// Runner executes workflow definitions and journals runs through the store.
type Runner struct {
	store *store.Store
}

// NewRunner creates a runner over the store.
func NewRunner(st *store.Store) *Runner {
	return &Runner{store: st}
}
// #endregion runner-types

// #region run
// Run executes every step of def in order, driving a fresh tracker from the
// definition's first label through each step's label. A step error (or
// context cancellation) transitions the run to the error label and stops.
// The returned Result carries the step error, if any; the error return is
// reserved for definition and bookkeeping failures.
func (r *Runner) Run(ctx context.Context, def Definition, fn StepFunc) (Result, error) {
	if err := def.Validate(); err != nil {
		return Result{}, err
	}

	runID := uuid.New().String()
	tr, err := tracker.New(def.Name, def.Labels)
	if err != nil {
		return Result{}, fmt.Errorf("run %s: %w", runID, err)
	}

	if err := r.store.CreateRun(runID, def.Name, tr.Current()); err != nil {
		return Result{}, err
	}
	log.Printf("[WF] run %s: workflow %s started", shortID(runID), def.Name)

	res := Result{RunID: runID, Workflow: def.Name}
	for _, step := range def.Steps {
		if err := ctx.Err(); err != nil {
			return r.fail(def, tr, runID, res, fmt.Errorf("step %s: %w", step.Name, err))
		}
		if err := r.advance(tr, runID, step.Label); err != nil {
			return res, err
		}
		if err := fn(ctx, step); err != nil {
			return r.fail(def, tr, runID, res, fmt.Errorf("step %s: %w", step.Name, err))
		}
		res.StepsRun++
	}

	if err := r.advance(tr, runID, def.DoneLabel); err != nil {
		return res, err
	}
	res.FinalState = tr.Current()
	if err := r.store.FinishRun(runID, def.DoneLabel, ""); err != nil {
		return res, err
	}
	log.Printf("[WF] run %s: completed after %d steps", shortID(runID), res.StepsRun)
	return res, nil
}
// #endregion run

// #region helpers
func (r *Runner) advance(tr *tracker.Tracker, runID, label string) error {
	if err := tr.Transition(label); err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	h := tr.History()
	if err := r.store.AppendTransition(journalName(runID), h[len(h)-1]); err != nil {
		log.Printf("[WF] run %s: journal: %v", shortID(runID), err)
	}
	return nil
}

func (r *Runner) fail(def Definition, tr *tracker.Tracker, runID string, res Result, stepErr error) (Result, error) {
	if err := r.advance(tr, runID, def.ErrorLabel); err != nil {
		return res, err
	}
	res.FinalState = tr.Current()
	res.Err = stepErr
	if err := r.store.FinishRun(runID, def.ErrorLabel, stepErr.Error()); err != nil {
		return res, err
	}
	log.Printf("[WF] run %s: failed: %v", shortID(runID), stepErr)
	return res, nil
}

func journalName(runID string) string {
	return "run:" + runID
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
// #endregion helpers

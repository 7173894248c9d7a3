package replay

import (
	"errors"
	"fmt"

	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region result-types
// StepResult records what happened to one attempted transition.
type StepResult struct {
	Target   string
	Accepted bool
	Reason   string // rejection reason, empty when accepted
}

// Result captures the outcome of replaying a full fixture.
type Result struct {
	Steps      []StepResult
	FinalState string
	Accepted   int
	Rejected   int
	// Mismatches lists expectation failures; empty means the replay matched.
	Mismatches []string
}

// OK reports whether the replay matched every expectation.
func (r Result) OK() bool {
	return len(r.Mismatches) == 0
}
// #endregion result-types

// #region replay
// Replay runs the fixture's transition sequence against a fresh tracker and
// verifies the fixture's expectations. Invalid transition targets are
// counted as rejections, mirroring live behavior.
func Replay(f *Fixture) (Result, error) {
	var opts []tracker.Option
	if f.Tracker.Default != "" {
		opts = append(opts, tracker.WithDefault(f.Tracker.Default))
	}
	tr, err := tracker.New(f.Tracker.Name, f.Tracker.States, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("replay tracker: %w", err)
	}

	var res Result
	for _, target := range f.Transitions {
		step := StepResult{Target: target}
		if err := tr.Transition(target); err != nil {
			var ise *tracker.InvalidStateError
			if !errors.As(err, &ise) {
				return Result{}, fmt.Errorf("transition %s: %w", target, err)
			}
			step.Reason = ise.Error()
			res.Rejected++
		} else {
			step.Accepted = true
			res.Accepted++
		}
		res.Steps = append(res.Steps, step)
	}

	res.FinalState = tr.Current()
	res.Mismatches = verify(f, tr, res)
	return res, nil
}

func verify(f *Fixture, tr *tracker.Tracker, res Result) []string {
	var out []string
	exp := f.Expected

	if exp.FinalState != "" && res.FinalState != exp.FinalState {
		out = append(out, fmt.Sprintf("final state: got %q, want %q", res.FinalState, exp.FinalState))
	}
	if exp.Accepted != 0 && res.Accepted != exp.Accepted {
		out = append(out, fmt.Sprintf("accepted: got %d, want %d", res.Accepted, exp.Accepted))
	}
	if exp.Rejected != res.Rejected {
		out = append(out, fmt.Sprintf("rejected: got %d, want %d", res.Rejected, exp.Rejected))
	}
	for _, c := range exp.Counts {
		if got := tr.TransitionCount(c.From, c.To); got != c.Count {
			out = append(out, fmt.Sprintf("count %s→%s: got %d, want %d", c.From, c.To, got, c.Count))
		}
	}
	return out
}
// #endregion replay

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/workflow"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("TRACKER_DB", "agent_state.db"), "path to agent_state.db")
	defPath := flag.String("def", "", "path to workflow definition YAML")
	stepDelay := flag.Duration("step-delay", 0, "pause between steps (for demo runs)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	if *defPath == "" {
		fmt.Fprintln(os.Stderr, "usage: workflow --def path/to/workflow.yaml [--db path] [--step-delay d]")
		os.Exit(2)
	}

	def, err := workflow.LoadDefinition(*defPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load definition: %v\n", err)
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner := workflow.NewRunner(st)
	res, err := runner.Run(ctx, def, func(ctx context.Context, step workflow.Step) error {
		log.Printf("[STEP] %s (%s)", step.Name, step.Label)
		if *stepDelay > 0 {
			select {
			case <-time.After(*stepDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("run %s: workflow=%s final=%s steps=%d\n",
		res.RunID, res.Workflow, res.FinalState, res.StepsRun)
	if res.Err != nil {
		fmt.Printf("failed: %v\n", res.Err)
		os.Exit(1)
	}
}

// #endregion main

// #region env
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env

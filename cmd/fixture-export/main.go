package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aios-dev/agent-state/internal/replay"
	"github.com/aios-dev/agent-state/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to agent_state.db")
	trackerKey := flag.String("tracker", "", "tracker key to export")
	last := flag.Int("last", 0, "export only the N most recent transitions (0 = all)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *trackerKey == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --tracker agent:name --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *trackerKey, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, trackerKey string, last int, outPath string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	rows, err := st.HistoryFor(trackerKey, last)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no transitions for %s", trackerKey)
	}

	f := replay.FromJournal(trackerKey, rows)

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d transitions for %s to %s\n", len(rows), trackerKey, outPath)
	return nil
}

// #endregion export

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aios-dev/agent-state/internal/replay"
	"github.com/aios-dev/agent-state/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to agent_state.db (DB mode)")
	trackerKey := flag.String("tracker", "", "tracker key to replay in DB mode")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/agent_state.db --tracker agent:name")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *trackerKey)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	res, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	return report(f.Description, res)
}

// #endregion fixture-mode

// #region db-mode

// runDBMode rebuilds a fixture from the journal and replays it: every
// journaled transition must be accepted again and land on the same final
// state, proving the journal forms a consistent chain.
func runDBMode(dbPath, trackerKey string) int {
	if trackerKey == "" {
		fmt.Fprintln(os.Stderr, "--tracker is required in DB mode")
		return 2
	}

	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	rows, err := st.HistoryFor(trackerKey, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return 2
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "no transitions for %s\n", trackerKey)
		return 2
	}

	f := replay.FromJournal(trackerKey, rows)
	res, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	return report(f.Description, res)
}

// #endregion db-mode

// #region report

func report(description string, res replay.Result) int {
	if description != "" {
		fmt.Printf("replay: %s\n", description)
	}
	fmt.Printf("steps: %d accepted, %d rejected, final state %q\n",
		res.Accepted, res.Rejected, res.FinalState)

	if res.OK() {
		fmt.Println("PASS")
		return 0
	}
	fmt.Println("FAIL")
	for _, m := range res.Mismatches {
		fmt.Printf("  mismatch: %s\n", m)
	}
	return 1
}

// #endregion report

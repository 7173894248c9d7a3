package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aios-dev/agent-state/internal/graph"
	"github.com/aios-dev/agent-state/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to agent_state.db")
	trackerKey := flag.String("tracker", "", "show one tracker's journal detail")
	last := flag.Int("last", 20, "show N most recent transitions")
	dot := flag.Bool("dot", false, "emit the transition graph as Graphviz dot")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/agent_state.db [--tracker key] [--last N] [--dot] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *trackerKey != "" {
		err = runDetailMode(st, *trackerKey, *last, *dot, *jsonOut)
	} else {
		err = runListMode(st, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	Tracker     string `json:"tracker"`
	Transitions int    `json:"transitions"`
	Current     string `json:"current,omitempty"`
}

func runListMode(st *store.Store, jsonOut bool) error {
	names, err := st.ListTrackers()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "no trackers found")
		return nil
	}

	rows := make([]listRow, 0, len(names))
	for _, n := range names {
		h, err := st.HistoryFor(n, 0)
		if err != nil {
			return err
		}
		r := listRow{Tracker: n, Transitions: len(h)}
		if len(h) > 0 {
			r.Current = h[len(h)-1].To
		}
		rows = append(rows, r)
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-24s  %12s  %s\n", "Tracker", "Transitions", "Current")
	for _, r := range rows {
		fmt.Printf("%-24s  %12d  %s\n", r.Tracker, r.Transitions, r.Current)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	Tracker string       `json:"tracker"`
	History []historyRow `json:"history"`
	Counts  []graph.Edge `json:"counts"`
}

type historyRow struct {
	From       string `json:"from"`
	To         string `json:"to"`
	RecordedAt string `json:"recorded_at"`
	ElapsedMs  int64  `json:"elapsed_ms"`
}

func runDetailMode(st *store.Store, trackerKey string, last int, dot, jsonOut bool) error {
	g, err := graph.Build(st, trackerKey)
	if err != nil {
		return err
	}

	if dot {
		fmt.Print(g.DOT())
		return nil
	}

	h, err := st.HistoryFor(trackerKey, last)
	if err != nil {
		return err
	}
	if len(h) == 0 {
		fmt.Fprintf(os.Stderr, "no transitions for %s\n", trackerKey)
		return nil
	}

	out := detailOutput{Tracker: trackerKey, Counts: g.Edges}
	for _, r := range h {
		out.History = append(out.History, historyRow{
			From:       r.From,
			To:         r.To,
			RecordedAt: r.RecordedAt.Format("2006-01-02T15:04:05Z"),
			ElapsedMs:  r.Elapsed.Milliseconds(),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%-12s  %-12s  %-22s  %s\n", "From", "To", "Recorded", "Elapsed ms")
	for _, r := range out.History {
		fmt.Printf("%-12s  %-12s  %-22s  %10d\n", r.From, r.To, r.RecordedAt, r.ElapsedMs)
	}

	fmt.Printf("\nTransition counts (all time):\n")
	for _, e := range g.Edges {
		fmt.Printf("  %-12s → %-12s  %4d  (%.0f%%)\n", e.From, e.To, e.Count, e.Weight*100)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output

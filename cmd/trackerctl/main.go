package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aios-dev/agent-state/internal/client"
	"github.com/aios-dev/agent-state/internal/object"
)

const usage = `usage: trackerctl <command> [flags]

commands:
  create      register a new agent
  list        list registered agents
  transition  move an agent to a new status label
  inspect     show the system snapshot (or one agent's)
  history     print a tracker's journal

common flags:
  --addr host:port   daemon address (default $TRACKER_ADDR or localhost:50061)
  --json             JSON output
`

// #region main
func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "create":
		err = runCreate(args)
	case "list":
		err = runList(args)
	case "transition":
		err = runTransition(args)
	case "inspect":
		err = runInspect(args)
	case "history":
		err = runHistory(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region flags
func defaultAddr() string {
	if v := os.Getenv("TRACKER_ADDR"); v != "" {
		return v
	}
	return "localhost:50061"
}

func dial(addr string) (*client.Client, context.Context, context.CancelFunc, error) {
	c, err := client.New(addr)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return c, ctx, cancel, nil
}

// #endregion flags

// #region create
func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "daemon address")
	name := fs.String("name", "", "agent name (required)")
	props := fs.String("props", "", "initial properties as a JSON object")
	jsonOut := fs.Bool("json", false, "JSON output")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	var parsed map[string]object.Value
	if *props != "" {
		if err := json.Unmarshal([]byte(*props), &parsed); err != nil {
			return fmt.Errorf("parse --props: %w", err)
		}
	}

	c, ctx, cancel, err := dial(*addr)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	a, err := c.CreateAgent(ctx, *name, parsed)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(a)
	}
	fmt.Printf("created %s (%s) status=%s\n", a.Name, a.ID, a.Status)
	return nil
}

// #endregion create

// #region list
func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "daemon address")
	jsonOut := fs.Bool("json", false, "JSON output")
	fs.Parse(args)

	c, ctx, cancel, err := dial(*addr)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	agents, err := c.ListAgents(ctx)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(agents)
	}
	if len(agents) == 0 {
		fmt.Println("no agents registered")
		return nil
	}
	fmt.Printf("%-16s  %-10s  %10s  %s\n", "Name", "Status", "Changes", "ID")
	for _, a := range agents {
		fmt.Printf("%-16s  %-10s  %10d  %s\n", a.Name, a.Status, a.HistoryCount, a.ID)
	}
	return nil
}

// #endregion list

// #region transition
func runTransition(args []string) error {
	fs := flag.NewFlagSet("transition", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "daemon address")
	agent := fs.String("agent", "", "agent name (required)")
	to := fs.String("to", "", "target status label (required)")
	jsonOut := fs.Bool("json", false, "JSON output")
	fs.Parse(args)

	if *agent == "" || *to == "" {
		return fmt.Errorf("--agent and --to are required")
	}

	c, ctx, cancel, err := dial(*addr)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	a, err := c.Transition(ctx, *agent, *to)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(a)
	}
	fmt.Printf("%s → %s\n", a.Name, a.Status)
	return nil
}

// #endregion transition

// #region inspect
func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "daemon address")
	agent := fs.String("agent", "", "agent name (empty = system)")
	jsonOut := fs.Bool("json", false, "JSON output")
	fs.Parse(args)

	c, ctx, cancel, err := dial(*addr)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	snap, err := c.Inspect(ctx, *agent)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(snap)
	}
	fmt.Printf("Tracker:  %s\n", snap.Name)
	fmt.Printf("Current:  %s\n", snap.Current)
	fmt.Printf("States:   %v\n", snap.States)
	fmt.Printf("Changes:  %d\n", snap.HistoryCount)
	fmt.Printf("Uptime:   %s\n", snap.Uptime.Round(time.Second))
	if *agent == "" {
		fmt.Printf("Agents:   %d\n", snap.Agents)
		fmt.Printf("Requests: %d (errors %d)\n", snap.Requests, snap.Errors)
	}
	return nil
}

// #endregion inspect

// #region history
func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "daemon address")
	trackerKey := fs.String("tracker", "", `journal key, e.g. "agent:builder" or "system" (required)`)
	last := fs.Int("last", 20, "show N most recent transitions")
	jsonOut := fs.Bool("json", false, "JSON output")
	fs.Parse(args)

	if *trackerKey == "" {
		return fmt.Errorf("--tracker is required")
	}

	c, ctx, cancel, err := dial(*addr)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	recs, err := c.History(ctx, *trackerKey, *last)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(recs)
	}
	if len(recs) == 0 {
		fmt.Println("no transitions recorded")
		return nil
	}
	fmt.Printf("%-12s  %-12s  %-24s  %s\n", "From", "To", "Recorded", "Elapsed")
	for _, r := range recs {
		fmt.Printf("%-12s  %-12s  %-24s  %s\n",
			r.From, r.To, r.RecordedAt.Format("2006-01-02T15:04:05Z"), r.Elapsed)
	}
	return nil
}

// #endregion history

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

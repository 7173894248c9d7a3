// Package graph derives a weighted transition graph from the journal:
// nodes are state labels, edges carry observed transition counts. The
// graph is a read model for inspection and DOT export, not a constraint
// on future transitions.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region types
// Edge is one observed from→to transition with its frequency.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"` // share of the tracker's total transitions
}

// Graph is the aggregated transition graph for one tracker key.
type Graph struct {
	Tracker string `json:"tracker"`
	Edges   []Edge `json:"edges"` // sorted by count descending, ties by from/to
	Total   int    `json:"total"`
}
// #endregion types

// #region build
// Build aggregates the journal for trackerKey into a graph.
func Build(st *store.Store, trackerKey string) (*Graph, error) {
	counts, err := st.CountsFor(trackerKey)
	if err != nil {
		return nil, fmt.Errorf("build graph for %s: %w", trackerKey, err)
	}
	return FromCounts(trackerKey, counts), nil
}

// FromCounts builds a graph from a (from,to)→count map.
func FromCounts(trackerKey string, counts map[tracker.Pair]int) *Graph {
	g := &Graph{Tracker: trackerKey}
	for p, n := range counts {
		g.Edges = append(g.Edges, Edge{From: p.From, To: p.To, Count: n})
		g.Total += n
	}
	for i := range g.Edges {
		if g.Total > 0 {
			g.Edges[i].Weight = float64(g.Edges[i].Count) / float64(g.Total)
		}
	}
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i], g.Edges[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return g
}
// #endregion build

// #region queries
// Neighbors returns the outgoing edges of one label, most frequent first.
func (g *Graph) Neighbors(from string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == from {
			out = append(out, e)
		}
	}
	return out
}

// Nodes returns the distinct labels appearing in the graph, sorted.
func (g *Graph) Nodes() []string {
	seen := map[string]bool{}
	for _, e := range g.Edges {
		seen[e.From] = true
		seen[e.To] = true
	}
	nodes := make([]string, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}
// #endregion queries

// #region dot
// DOT renders the graph in Graphviz dot format, edges labeled with counts.
func (g *Graph) DOT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", g.Tracker)
	b.WriteString("  rankdir=LR;\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "  %q;\n", n)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %q -> %q [label=\"%d\"];\n", e.From, e.To, e.Count)
	}
	b.WriteString("}\n")
	return b.String()
}
// #endregion dot

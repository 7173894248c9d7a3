// Package registry manages the pool of named agents. Each agent owns a
// property bag and a status tracker. The registry serializes all access
// with a mutex (trackers themselves are not thread-safe), journals every
// transition, and persists agents so they survive a restart.
package registry

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/aios-dev/agent-state/internal/object"
	"github.com/aios-dev/agent-state/internal/store"
	"github.com/aios-dev/agent-state/internal/tracker"
)

// #region errors
var (
	ErrAgentExists   = errors.New("agent already exists")
	ErrAgentNotFound = errors.New("agent not found")
)
// #endregion errors

// #region status-labels
// DefaultStatusLabels is the standard agent lifecycle label set.
func DefaultStatusLabels() []string {
	return []string{"idle", "analyzing", "building", "testing", "done", "error"}
}
// #endregion status-labels

// #region types
// Agent pairs a property bag with its status tracker.
type Agent struct {
	Object *object.Object
	Status *tracker.Tracker
}

// Info is a read-only snapshot of one agent.
type Info struct {
	ID         string
	Name       string
	Status     string
	Properties map[string]object.Value
	Tracker    tracker.Snapshot
}

// Registry is the mutex-guarded agent pool.
type Registry struct {
	mu     sync.Mutex
	agents map[string]*Agent
	store  *store.Store
	labels []string
}
// #endregion types

// #region constructor
// NewRegistry builds a registry over the store and restores any persisted
// agents. Restored agents resume at their persisted status label.
func NewRegistry(st *store.Store) (*Registry, error) {
	r := &Registry{
		agents: make(map[string]*Agent),
		store:  st,
		labels: DefaultStatusLabels(),
	}

	rows, err := st.ListAgents()
	if err != nil {
		return nil, fmt.Errorf("restore agents: %w", err)
	}
	for _, row := range rows {
		obj, err := object.Restore(row.AgentID, row.Name, row.PropertiesJSON)
		if err != nil {
			return nil, fmt.Errorf("restore agent %s: %w", row.Name, err)
		}
		opts := []tracker.Option{}
		if row.Status != "" {
			opts = append(opts, tracker.WithDefault(row.Status))
		}
		tr, err := tracker.New(row.Name, r.labels, opts...)
		if err != nil {
			// Persisted status outside the label set; start at the default.
			log.Printf("[REG] agent %s: persisted status %q invalid, resetting: %v", row.Name, row.Status, err)
			tr, _ = tracker.New(row.Name, r.labels)
		}
		r.agents[row.Name] = &Agent{Object: obj, Status: tr}
	}
	if len(rows) > 0 {
		log.Printf("[REG] restored %d agents", len(rows))
	}
	return r, nil
}
// #endregion constructor

// #region create
// Create registers a new agent with the given properties, persists it, and
// returns its snapshot. Fails with ErrAgentExists on a duplicate name.
func (r *Registry) Create(name string, props map[string]object.Value) (Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[name]; ok {
		return Info{}, fmt.Errorf("create %s: %w", name, ErrAgentExists)
	}

	obj := object.New(name)
	for k, v := range props {
		obj.Set(k, v)
	}
	tr, err := tracker.New(name, r.labels)
	if err != nil {
		return Info{}, fmt.Errorf("create %s: %w", name, err)
	}

	a := &Agent{Object: obj, Status: tr}
	if err := r.persist(a); err != nil {
		return Info{}, err
	}
	r.agents[name] = a
	log.Printf("[REG] created agent %s (%s)", name, obj.ID)
	return snapshot(a), nil
}
// #endregion create

// #region transition
// Transition moves an agent's status tracker, journals the transition, and
// persists the new status. The tracker is untouched if target is invalid.
func (r *Registry) Transition(name, target string) (Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.agents[name]
	if !ok {
		return Info{}, fmt.Errorf("transition %s: %w", name, ErrAgentNotFound)
	}
	if err := a.Status.Transition(target); err != nil {
		return Info{}, err
	}

	h := a.Status.History()
	rec := h[len(h)-1]
	if err := r.store.AppendTransition(journalName(name), rec); err != nil {
		log.Printf("[REG] journal transition for %s: %v", name, err)
	}
	if err := r.persist(a); err != nil {
		log.Printf("[REG] persist %s: %v", name, err)
	}
	return snapshot(a), nil
}
// #endregion transition

// #region lookup
// Get returns one agent's snapshot.
func (r *Registry) Get(name string) (Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.agents[name]
	if !ok {
		return Info{}, fmt.Errorf("get %s: %w", name, ErrAgentNotFound)
	}
	return snapshot(a), nil
}

// List returns snapshots of all agents, sorted by name.
func (r *Registry) List() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Info, 0, len(r.agents))
	for _, a := range r.agents {
		out = append(out, snapshot(a))
	}
	sortByName(out)
	return out
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.agents)
}
// #endregion lookup

// #region helpers
func (r *Registry) persist(a *Agent) error {
	props, err := a.Object.MarshalProperties()
	if err != nil {
		return err
	}
	return r.store.SaveAgent(store.AgentRow{
		AgentID:        a.Object.ID,
		Name:           a.Object.Name,
		PropertiesJSON: props,
		Status:         a.Status.Current(),
	})
}

func snapshot(a *Agent) Info {
	return Info{
		ID:         a.Object.ID,
		Name:       a.Object.Name,
		Status:     a.Status.Current(),
		Properties: a.Object.Snapshot(),
		Tracker:    a.Status.Inspect(),
	}
}

func journalName(agent string) string {
	return "agent:" + agent
}

func sortByName(infos []Info) {
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
}
// #endregion helpers

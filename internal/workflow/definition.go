// Package workflow drives multi-step runs through a state tracker. A
// Definition names the label set and the ordered steps; the Runner gives
// each run its own tracker, journals every transition, and records the
// run's outcome.
package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region definition-types
// Step is one unit of work inside a workflow.
type Step struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

// Definition declares a workflow: its label set, its terminal labels, and
// the ordered steps. The first label is the starting state of every run.
type Definition struct {
	Name       string   `yaml:"name"`
	Labels     []string `yaml:"labels"`
	DoneLabel  string   `yaml:"done_label"`
	ErrorLabel string   `yaml:"error_label"`
	Steps      []Step   `yaml:"steps"`
}
// #endregion definition-types

// #region loader
// LoadDefinition reads and validates a YAML workflow definition.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read definition %s: %w", path, err)
	}
	return ParseDefinition(data)
}

// ParseDefinition parses and validates YAML definition bytes.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parse definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
// #endregion loader

// #region validation
// Validate checks internal consistency: every referenced label must be a
// member of the label set, and the terminal labels are required.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition: name is required")
	}
	if len(d.Labels) == 0 {
		return fmt.Errorf("definition %s: labels are required", d.Name)
	}
	if !d.hasLabel(d.DoneLabel) {
		return fmt.Errorf("definition %s: done_label %q not in labels", d.Name, d.DoneLabel)
	}
	if !d.hasLabel(d.ErrorLabel) {
		return fmt.Errorf("definition %s: error_label %q not in labels", d.Name, d.ErrorLabel)
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("definition %s: at least one step is required", d.Name)
	}

	seen := map[string]bool{}
	for i, s := range d.Steps {
		if s.Name == "" {
			return fmt.Errorf("definition %s: step %d has no name", d.Name, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("definition %s: duplicate step %q", d.Name, s.Name)
		}
		seen[s.Name] = true
		if !d.hasLabel(s.Label) {
			return fmt.Errorf("definition %s: step %q label %q not in labels", d.Name, s.Name, s.Label)
		}
	}
	return nil
}

func (d Definition) hasLabel(label string) bool {
	for _, l := range d.Labels {
		if l == label {
			return true
		}
	}
	return false
}
// #endregion validation

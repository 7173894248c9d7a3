// Package object provides the agent property bag: a named object holding
// string-keyed tagged values (string, number, bool, nested map).
package object

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// #region object-struct
// Object is a named property bag identified by a uuid.
type Object struct {
	ID    string
	Name  string
	props map[string]Value
}
// #endregion object-struct

// #region constructor
// New creates an empty object with a fresh ID.
func New(name string) *Object {
	return &Object{
		ID:    uuid.New().String(),
		Name:  name,
		props: make(map[string]Value),
	}
}
// #endregion constructor

// #region properties
// Set stores a property, overwriting any previous value for the key.
func (o *Object) Set(key string, v Value) {
	o.props[key] = v
}

// Get returns the property for key; ok is false if absent.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.props[key]
	return v, ok
}

// Keys returns property keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.props))
	for k := range o.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies all properties from other into o. On key collision the
// incoming value wins, replacing the existing value whole; nested maps
// are not merged recursively.
func (o *Object) Merge(other *Object) {
	for k, v := range other.props {
		o.props[k] = v
	}
}

// Snapshot returns a copy of the property map.
func (o *Object) Snapshot() map[string]Value {
	cp := make(map[string]Value, len(o.props))
	for k, v := range o.props {
		cp[k] = v
	}
	return cp
}
// #endregion properties

// #region json
// MarshalProperties serializes the property map as JSON for persistence.
func (o *Object) MarshalProperties() (string, error) {
	data, err := json.Marshal(o.props)
	if err != nil {
		return "", fmt.Errorf("marshal properties for %s: %w", o.Name, err)
	}
	return string(data), nil
}

// Restore rebuilds an object from persisted fields.
func Restore(id, name, propertiesJSON string) (*Object, error) {
	o := &Object{ID: id, Name: name, props: make(map[string]Value)}
	if propertiesJSON == "" {
		return o, nil
	}
	if err := json.Unmarshal([]byte(propertiesJSON), &o.props); err != nil {
		return nil, fmt.Errorf("restore properties for %s: %w", name, err)
	}
	return o, nil
}
// #endregion json

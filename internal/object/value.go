package object

import (
	"encoding/json"
	"fmt"
)

// #region kind
// Kind tags the variant held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
// #endregion kind

// #region value
// Value is a tagged variant: string, number, bool, or nested map.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	m    map[string]Value
}

// String wraps a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Map wraps a nested map value. The map is copied.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string value; ok is false for other kinds.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric value; ok is false for other kinds.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean value; ok is false for other kinds.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsMap returns a copy of the nested map; ok is false for other kinds.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	cp := make(map[string]Value, len(v.m))
	for k, val := range v.m {
		cp[k] = val
	}
	return cp, true
}
// #endregion value

// #region json
// MarshalJSON encodes the variant as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	default:
		return nil, fmt.Errorf("marshal value: unknown kind %d", int(v.kind))
	}
}

// UnmarshalJSON decodes a JSON string, number, bool, or object. Other JSON
// types (null, arrays) are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = String(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, inner := range x {
			b, err := json.Marshal(inner)
			if err != nil {
				return err
			}
			var iv Value
			if err := iv.UnmarshalJSON(b); err != nil {
				return fmt.Errorf("key %s: %w", k, err)
			}
			m[k] = iv
		}
		*v = Value{kind: KindMap, m: m}
	default:
		return fmt.Errorf("unmarshal value: unsupported JSON type %T", raw)
	}
	return nil
}
// #endregion json

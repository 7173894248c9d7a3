package object

import "testing"

// #region value-tests
func TestValueKinds(t *testing.T) {
	if s, ok := String("researcher").AsString(); !ok || s != "researcher" {
		t.Fatalf("AsString: %q, %v", s, ok)
	}
	if n, ok := Number(3.5).AsNumber(); !ok || n != 3.5 {
		t.Fatalf("AsNumber: %v, %v", n, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Fatalf("AsBool: %v, %v", b, ok)
	}
	if _, ok := String("x").AsNumber(); ok {
		t.Fatal("string value should not read as number")
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	v := Map(map[string]Value{
		"role":    String("builder"),
		"retries": Number(3),
		"active":  Bool(true),
		"limits":  Map(map[string]Value{"steps": Number(10)}),
	})

	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Value
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m, ok := back.AsMap()
	if !ok {
		t.Fatal("expected map kind")
	}
	if role, _ := m["role"].AsString(); role != "builder" {
		t.Fatalf("role: %q", role)
	}
	if r, _ := m["retries"].AsNumber(); r != 3 {
		t.Fatalf("retries: %v", r)
	}
	limits, ok := m["limits"].AsMap()
	if !ok {
		t.Fatal("expected nested map")
	}
	if steps, _ := limits["steps"].AsNumber(); steps != 10 {
		t.Fatalf("steps: %v", steps)
	}
}

func TestValueUnmarshalRejectsArrays(t *testing.T) {
	var v Value
	if err := v.UnmarshalJSON([]byte(`[1,2]`)); err == nil {
		t.Fatal("expected error for JSON array")
	}
}

// #endregion value-tests

// #region object-tests
func TestObjectSetGet(t *testing.T) {
	o := New("TestAgent")
	if o.ID == "" {
		t.Fatal("expected non-empty ID")
	}

	o.Set("role", String("researcher"))
	o.Set("role", String("builder")) // overwrite

	v, ok := o.Get("role")
	if !ok {
		t.Fatal("expected role property")
	}
	if s, _ := v.AsString(); s != "builder" {
		t.Fatalf("expected builder, got %q", s)
	}
	if _, ok := o.Get("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}

func TestObjectMergeLastWriteWins(t *testing.T) {
	a := New("a")
	a.Set("role", String("researcher"))
	a.Set("goal", String("analyze"))

	b := New("b")
	b.Set("role", String("builder"))
	b.Set("status", String("ready"))

	a.Merge(b)

	if v, _ := a.Get("role"); mustString(t, v) != "builder" {
		t.Fatal("collision should take incoming value")
	}
	if v, _ := a.Get("goal"); mustString(t, v) != "analyze" {
		t.Fatal("non-colliding key should survive")
	}
	if _, ok := a.Get("status"); !ok {
		t.Fatal("merged key missing")
	}
}

func TestObjectPersistRoundTrip(t *testing.T) {
	o := New("WorkflowAgent")
	o.Set("type", String("workflow"))
	o.Set("priority", Number(2))

	props, err := o.MarshalProperties()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back, err := Restore(o.ID, o.Name, props)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if back.ID != o.ID || back.Name != o.Name {
		t.Fatalf("identity mismatch: %s/%s", back.ID, back.Name)
	}
	if v, _ := back.Get("priority"); mustNumber(t, v) != 2 {
		t.Fatal("priority did not survive round trip")
	}
}

func TestObjectSnapshotIsCopy(t *testing.T) {
	o := New("a")
	o.Set("k", String("v"))

	snap := o.Snapshot()
	snap["k"] = String("mutated")

	if v, _ := o.Get("k"); mustString(t, v) != "v" {
		t.Fatal("snapshot mutation leaked into object")
	}
}

// #endregion object-tests

func mustString(t *testing.T, v Value) string {
	t.Helper()
	s, ok := v.AsString()
	if !ok {
		t.Fatalf("expected string value, got %s", v.Kind())
	}
	return s
}

func mustNumber(t *testing.T, v Value) float64 {
	t.Helper()
	n, ok := v.AsNumber()
	if !ok {
		t.Fatalf("expected number value, got %s", v.Kind())
	}
	return n
}

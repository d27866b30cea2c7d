package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewHeap(t *testing.T) {
	heap := NewHeap()
	if heap == nil {
		t.Error("no heap created")
	}
}

func TestHeapSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.runtime")
	defer teardown()
	//
	heap := NewHeap()
	heap.Set("a", Scalar(7))
	v, ok := heap.Lookup("a")
	if !ok {
		t.Fatal("cannot find stored variable in heap")
	}
	if f, _ := v.Number(); f != 7 {
		t.Errorf("expected a = 7, have %s", v)
	}
	heap.Set("a", Pointer("b"))
	if v, _ = heap.Lookup("a"); v.Kind() != PointerType {
		t.Errorf("expected plain assignment to overwrite kind, have %s", v.Kind())
	}
}

func TestHeapUndefined(t *testing.T) {
	heap := NewHeap()
	if _, ok := heap.Lookup("x"); ok {
		t.Error("expected x to be undefined")
	}
	if _, found := heap.ResolveOrDefineTag(""); found {
		t.Error("expected empty name to be rejected")
	}
	tag, _ := heap.ResolveOrDefineTag("y")
	if heap.Has("y") || tag.Value.IsDefined() {
		t.Error("expected an undefined tag not to count as defined variable")
	}
}

func TestHeapNamesSorted(t *testing.T) {
	heap := NewHeap()
	heap.BindInputs([]Value{Scalar(1), Scalar(2)})
	heap.Set("b", Scalar(0))
	heap.Set("a", Scalar(0))
	names := heap.Names()
	expected := []string{"a", "b", "p0", "p1"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, names)
	}
	for i := range names {
		if names[i] != expected[i] {
			t.Errorf("expected %v, have %v", expected, names)
			break
		}
	}
}

func TestValueConversions(t *testing.T) {
	if f, ok := Bool(true).Number(); !ok || f != 1 {
		t.Errorf("expected true to convert to 1")
	}
	if _, ok := Pointer("x").Number(); ok {
		t.Errorf("expected pointer not to be numeric")
	}
	if _, ok := ArrayValue(NewArray()).Number(); ok {
		t.Errorf("expected array not to be numeric")
	}
	if Scalar(0).Truthy() || !Scalar(-1).Truthy() || Bool(false).Truthy() || (Value{}).Truthy() {
		t.Errorf("unexpected truth values")
	}
	if s := Scalar(10.0 / 4).String(); s != "2.5" {
		t.Errorf("expected 2.5, have %s", s)
	}
	if s := Bool(false).String(); s != "false" {
		t.Errorf("expected false, have %s", s)
	}
	if !Pointer("v").Equal(Pointer("v")) || Pointer("v").Equal(Scalar(1)) {
		t.Errorf("unexpected pointer equality")
	}
}

func TestArray(t *testing.T) {
	a := NewArray()
	a.Set(3, Scalar(30))
	a.Set(1, Scalar(10))
	a.Set(2.5, Bool(true))
	if a.Len() != 3 {
		t.Errorf("expected 3 elements, have %d", a.Len())
	}
	if v, ok := a.Get(3); !ok || !v.Equal(Scalar(30)) {
		t.Errorf("expected a[3] = 30, have %s", v)
	}
	if _, ok := a.Get(9); ok {
		t.Errorf("expected a[9] to be absent")
	}
	idx := a.Indices()
	if len(idx) != 3 || idx[0] != 1 || idx[1] != 2.5 || idx[2] != 3 {
		t.Errorf("expected ordered indices, have %v", idx)
	}
	if s := ArrayValue(a).String(); s != "[1:10 2.5:true 3:30]" {
		t.Errorf("unexpected array string %q", s)
	}
}

func TestParamStack(t *testing.T) {
	ps := NewParamStack()
	ps.Push(Scalar(1))
	ps.Push(Scalar(2))
	ps.Push(Scalar(3))
	if _, ok := ps.Take(4); ok || ps.Len() != 3 {
		t.Errorf("expected Take(4) to fail and leave stack intact")
	}
	args, ok := ps.Take(2)
	if !ok || len(args) != 2 || !args[0].Equal(Scalar(1)) || !args[1].Equal(Scalar(2)) {
		t.Errorf("expected front-first arguments 1, 2; have %v", args)
	}
	if ps.Len() != 1 || !ps.Values()[0].Equal(Scalar(3)) {
		t.Errorf("expected 3 to remain on the stack")
	}
	if args, ok = ps.Take(0); !ok || len(args) != 0 {
		t.Errorf("expected Take(0) to succeed with no arguments")
	}
}

func TestLabelTable(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("end", 9)
	lt.Define("L1", 2)
	lt.Define("", 4)
	lt.Define("L1", 5)
	if pc, ok := lt.Lookup("L1"); !ok || pc != 5 {
		t.Errorf("expected last definition of L1 to win, have %d", pc)
	}
	if _, ok := lt.Lookup("L2"); ok {
		t.Errorf("expected L2 to be undefined")
	}
	labels := lt.Labels()
	if lt.Size() != 2 || labels[0] != "L1" || labels[1] != "end" {
		t.Errorf("expected labels in program order, have %v", labels)
	}
}

func TestScopeUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.runtime")
	defer teardown()
	//
	root := NewProcScope("root", nil)
	fact := NewProcedure("fact", 1)
	root.Define(fact)
	inner := NewProcScope("fact", fact.Scope)
	if p, sc := inner.Resolve("fact"); p != fact || sc != root {
		t.Errorf("expected to find fact in parent scope")
	}
	if p, _ := inner.Resolve("nope"); p != nil {
		t.Errorf("expected unknown procedure to resolve to nil")
	}
	if old := root.Define(NewProcedure("fact", 2)); old != fact {
		t.Errorf("expected redefinition to return the shadowed procedure")
	}
	if p, _ := root.Resolve("fact"); p.Arity != 2 {
		t.Errorf("expected last definition to win")
	}
}

func TestCallStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.runtime")
	defer teardown()
	//
	cs := NewCallStack("root")
	cs.Root().Heap.Set("x", Scalar(1))
	f := cs.Push("fact")
	cs.Push("fact")
	if cs.Depth() != 2 || cs.Current().Path() != "root/fact/fact" {
		t.Errorf("unexpected call stack %s at depth %d", cs.Current().Path(), cs.Depth())
	}
	if cs.Current().Heap.Has("x") {
		t.Errorf("expected a fresh heap for a pushed frame")
	}
	cs.Pop()
	if cs.Current() != f || cs.Current().IsRoot() {
		t.Errorf("expected pop to restore the caller frame")
	}
}

func TestValueClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.runtime")
	defer teardown()
	//
	inner := NewArray()
	inner.Set(0, Scalar(1))
	outer := NewArray()
	outer.Set(0, ArrayValue(inner))
	v := ArrayValue(outer)
	c := v.Clone()
	if c.Equal(v) {
		t.Fatalf("expected clone not to share storage")
	}
	inner.Set(0, Scalar(2))
	outer.Set(1, Scalar(3))
	if c.Array().Len() != 1 {
		t.Errorf("expected clone to keep 1 element, have %d", c.Array().Len())
	}
	nested, _ := c.Array().Get(0)
	if x, _ := nested.Array().Get(0); x.String() != "1" {
		t.Errorf("expected nested array to be copied, have %s", x)
	}
	if s := Scalar(5).Clone(); s.String() != "5" {
		t.Errorf("expected scalar clone 5, have %s", s)
	}
}

func TestParamStackCopiesArrays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.runtime")
	defer teardown()
	//
	a := NewArray()
	a.Set(0, Scalar(1))
	ps := NewParamStack()
	ps.Push(ArrayValue(a))
	a.Set(0, Scalar(99))
	args, _ := ps.Take(1)
	if x, _ := args[0].Array().Get(0); x.String() != "1" {
		t.Errorf("expected argument to be a copy, have %s", x)
	}
}

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{7, "7"},
		{-0.5, "-0.5"},
		{123456789, "123456789"},
		{1e300, "1e+300"},
		{1e21, "1e+21"},
		{1e20, "100000000000000000000"},
		{1e-7, "1e-07"},
		{0.000001, "0.000001"},
		{0, "0"},
	}
	for _, tt := range tests {
		if s := Scalar(tt.x).String(); s != tt.want {
			t.Errorf("expected %g to print as %s, have %s", tt.x, tt.want, s)
		}
	}
}

package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Heap for variables of one execution context.

// --- Tags -------------------------------------------------------

// Tag is a named heap slot. It may be a
// little surprising this type is not called 'Variable', but I prefer the
// name 'Tag' because it is less confusing when dealing with 3AC
// operands: operands name variables, tags are the slots holding them at runtime.
//
type Tag struct {
	name  string
	Value Value
}

// NewTag creates a new, undefined tag.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (t *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%s=%s>", t.Name(), t.Value.Kind(), t.Value)
}

// Name gets the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// === Heap ==================================================================

// Heap stores the tags of an execution context (map-like semantics).
type Heap struct {
	Table map[string]*Tag
}

// NewHeap creates an empty heap.
//
func NewHeap() *Heap {
	return &Heap{
		Table: make(map[string]*Tag),
	}
}

// ResolveTag checks for a tag in the heap.
// Returns a tag or nil.
//
func (h *Heap) ResolveTag(tagname string) *Tag {
	return h.Table[tagname]
}

// Lookup returns the value of a variable and a flag, signalling wether
// the variable is defined.
//
func (h *Heap) Lookup(name string) (Value, bool) {
	tag := h.ResolveTag(name)
	if tag == nil || !tag.Value.IsDefined() {
		return Value{}, false
	}
	return tag.Value, true
}

// Has is a predicate: is variable name defined?
func (h *Heap) Has(name string) bool {
	_, ok := h.Lookup(name)
	return ok
}

// ResolveOrDefineTag finds
// a tag in the heap, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (h *Heap) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := h.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag = NewTag(tagname)
		h.Table[tagname] = tag
		found = false
	}
	return tag, found
}

// Set stores a value into variable name, overwriting any prior value and kind.
func (h *Heap) Set(name string, v Value) {
	tag, _ := h.ResolveOrDefineTag(name)
	if tag == nil {
		return
	}
	tag.Value = v
	T().Debugf("heap: %s = %s", name, v)
}

// BindInputs binds input values to variables p0, p1, … pn.
func (h *Heap) BindInputs(inputs []Value) {
	for i, v := range inputs {
		h.Set(fmt.Sprintf("p%d", i), v)
	}
}

// Size counts the tags in a heap.
func (h *Heap) Size() int {
	return len(h.Table)
}

// Clear removes all tags.
func (h *Heap) Clear() {
	h.Table = make(map[string]*Tag)
}

// Names returns the names of all defined variables, sorted.
func (h *Heap) Names() []string {
	set := treeset.NewWith(utils.StringComparator)
	for k, tag := range h.Table {
		if tag.Value.IsDefined() {
			set.Add(k)
		}
	}
	names := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		names = append(names, k.(string))
	}
	return names
}

// Each iterates over each defined variable in name order, executing a mapper function.
func (h *Heap) Each(mapper func(string, Value)) {
	for _, k := range h.Names() {
		mapper(k, h.Table[k].Value)
	}
}

package runtime

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Array is a sparse, ordered mapping from numeric index to value.
type Array struct {
	m *treemap.Map
}

// NewArray creates an empty array.
func NewArray() *Array {
	return &Array{m: treemap.NewWith(utils.Float64Comparator)}
}

// Get returns the value at index i.
func (a *Array) Get(i float64) (Value, bool) {
	v, found := a.m.Get(i)
	if !found {
		return Value{}, false
	}
	return v.(Value), true
}

// Set stores a value at index i.
func (a *Array) Set(i float64, v Value) {
	a.m.Put(i, v)
}

// Len counts the indices set.
func (a *Array) Len() int {
	return a.m.Size()
}

// Indices returns the indices set, in ascending order.
func (a *Array) Indices() []float64 {
	keys := a.m.Keys()
	indices := make([]float64, len(keys))
	for i, k := range keys {
		indices[i] = k.(float64)
	}
	return indices
}

// Each iterates over the elements in ascending index order.
func (a *Array) Each(mapper func(float64, Value)) {
	it := a.m.Iterator()
	for it.Next() {
		mapper(it.Key().(float64), it.Value().(Value))
	}
}

// Clone returns a deep copy of the array. Nested arrays are copied as well.
func (a *Array) Clone() *Array {
	c := NewArray()
	a.Each(func(i float64, v Value) {
		c.Set(i, v.Clone())
	})
	return c
}

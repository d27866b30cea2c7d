package runtime

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// ParamStack is the queue of evaluated arguments awaiting the next call.
type ParamStack struct {
	list *arraylist.List
}

// NewParamStack creates an empty parameter stack.
func NewParamStack() *ParamStack {
	return &ParamStack{list: arraylist.New()}
}

// Push appends an argument. Arrays are copied, the callee never shares
// storage with the caller.
func (ps *ParamStack) Push(v Value) {
	ps.list.Add(v.Clone())
}

// Len counts the pending arguments.
func (ps *ParamStack) Len() int {
	return ps.list.Size()
}

// Take removes the first n arguments and returns them. If fewer than n
// arguments are pending, nothing is removed and false is returned.
func (ps *ParamStack) Take(n int) ([]Value, bool) {
	if n < 0 || ps.list.Size() < n {
		return nil, false
	}
	args := make([]Value, n)
	for i := 0; i < n; i++ {
		v, _ := ps.list.Get(0)
		args[i] = v.(Value)
		ps.list.Remove(0)
	}
	return args, true
}

// Values returns a copy of the pending arguments.
func (ps *ParamStack) Values() []Value {
	vals := make([]Value, ps.list.Size())
	for i, v := range ps.list.Values() {
		vals[i] = v.(Value)
	}
	return vals
}

// Clear drops all pending arguments.
func (ps *ParamStack) Clear() {
	ps.list.Clear()
}

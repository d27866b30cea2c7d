package runtime

import (
	"fmt"
	"strings"
)

// This module implements a stack of memory frames.
// Memory frames are used by the engine to allocate the heap of every
// procedure invocation.

// Frame is a memory frame, representing the heap of one invocation.
type Frame struct {
	Name   string
	Heap   *Heap
	Parent *Frame
	depth  int
}

// NewFrame creates a new memory frame with an empty heap.
func NewFrame(nm string) *Frame {
	return &Frame{
		Name: nm,
		Heap: NewHeap(),
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("<mem %s #%d>", f.Name, f.depth)
}

// IsRoot is a predicate: Is this a root frame?
func (f *Frame) IsRoot() bool {
	return (f.Parent == nil)
}

// Depth returns the number of frames below this one.
func (f *Frame) Depth() int {
	return f.depth
}

// Path returns the names of the frames from the root to f, separated by '/'.
func (f *Frame) Path() string {
	var names []string
	for fr := f; fr != nil; fr = fr.Parent {
		names = append(names, fr.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// ---------------------------------------------------------------------------

// CallStack is a stack of memory frames.
type CallStack struct {
	base *Frame
	tos  *Frame
}

// NewCallStack creates a call stack with a root frame.
func NewCallStack(rootName string) *CallStack {
	cs := &CallStack{}
	cs.Push(rootName)
	return cs
}

// Current gets the current memory frame of a stack (TOS).
func (cs *CallStack) Current() *Frame {
	if cs.tos == nil {
		panic("attempt to access memory frame from empty stack")
	}
	return cs.tos
}

// Root gets the outermost memory frame.
func (cs *CallStack) Root() *Frame {
	if cs.base == nil {
		panic("attempt to access root memory frame from empty stack")
	}
	return cs.base
}

// Depth returns the depth of the TOS frame (root has depth 0).
func (cs *CallStack) Depth() int {
	if cs.tos == nil {
		return -1
	}
	return cs.tos.depth
}

// Push pushes a new memory frame as TOS.
// The frame is constructed with a fresh heap, having the recent TOS as its
// parent.
//
func (cs *CallStack) Push(nm string) *Frame {
	parent := cs.tos
	f := NewFrame(nm)
	f.Parent = parent
	if parent == nil { // the new frame is the root frame
		cs.base = f
	} else {
		f.depth = parent.depth + 1
	}
	cs.tos = f
	T().Debugf("pushing memory frame %s", f)
	return f
}

// Pop pops the top-most memory frame. Returns the popped frame.
func (cs *CallStack) Pop() *Frame {
	if cs.tos == nil {
		panic("attempt to pop memory frame from empty call stack")
	}
	f := cs.tos
	T().Debugf("popping memory frame %s", f)
	cs.tos = f.Parent
	if cs.tos == nil {
		cs.base = nil
	}
	return f
}

package engine

import (
	"fmt"

	"github.com/npillmayer/threeac/runtime"
)

// SignalKind tags a Signal.
type SignalKind int8

// Signals an instruction may produce.
const (
	NoSignal SignalKind = iota
	JumpSignal
	ReturnSignal
	PrintSignal
	FaultSignal
)

// Signal communicates the effect of an instruction to the driver loop.
//
//    Jump     Position
//    Return   Value (may be undefined)
//    Print    Value, Line
//    Fault    Fault
//
type Signal struct {
	Kind     SignalKind
	Position int
	Value    runtime.Value
	Line     int
	Fault    *Fault
}

var none = Signal{}

func jumpTo(pc int) Signal {
	return Signal{Kind: JumpSignal, Position: pc}
}

func returning(v runtime.Value) Signal {
	return Signal{Kind: ReturnSignal, Value: v}
}

func printing(v runtime.Value, line int) Signal {
	return Signal{Kind: PrintSignal, Value: v, Line: line}
}

func faulting(f *Fault) Signal {
	return Signal{Kind: FaultSignal, Fault: f}
}

func (s Signal) String() string {
	switch s.Kind {
	case JumpSignal:
		return fmt.Sprintf("Jump(%d)", s.Position)
	case ReturnSignal:
		return fmt.Sprintf("Return(%s)", s.Value)
	case PrintSignal:
		return fmt.Sprintf("Print(%s, %d)", s.Value, s.Line)
	case FaultSignal:
		return fmt.Sprintf("Fault(%d: %s)", s.Fault.Code(), s.Fault.Message)
	}
	return "none"
}

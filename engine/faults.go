package engine

import (
	"fmt"
)

// FaultKind categorizes runtime errors. The numeric values are the error
// codes reported to clients.
type FaultKind int

// Fault kinds.
const (
	UnknownVariable         FaultKind = 100
	MissingOperand          FaultKind = 101
	UnknownOperator         FaultKind = 102
	InvalidPointerReference FaultKind = 104
	InvalidTypeConversion   FaultKind = 105
	UndefinedLabel          FaultKind = 106
	InvalidMethodCall       FaultKind = 107
	IndexOutOfBound         FaultKind = 108
	UnrecognizedInstruction FaultKind = 109
	InternalError           FaultKind = 120
)

func (k FaultKind) String() string {
	switch k {
	case UnknownVariable:
		return "UnknownVariable"
	case MissingOperand:
		return "MissingOperand"
	case UnknownOperator:
		return "UnknownOperator"
	case InvalidPointerReference:
		return "InvalidPointerReference"
	case InvalidTypeConversion:
		return "InvalidTypeConversion"
	case UndefinedLabel:
		return "UndefinedLabel"
	case InvalidMethodCall:
		return "InvalidMethodCall"
	case IndexOutOfBound:
		return "IndexOutOfBound"
	case UnrecognizedInstruction:
		return "UnrecognizedInstruction"
	}
	return "InternalError"
}

// Fault is an error raised by executing a single instruction.
// Line is 1-based; Proc is the name of the frame the fault occurred in.
type Fault struct {
	Kind     FaultKind
	Message  string
	Line     int
	Proc     string
	reported bool // already passed to the error sink
}

func newFault(kind FaultKind, format string, args ...interface{}) *Fault {
	return &Fault{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Code returns the numeric error code.
func (f *Fault) Code() int {
	return int(f.Kind)
}

func (f *Fault) Error() string {
	if f.Line <= 0 {
		return f.Message
	}
	if f.Proc == "" || f.Proc == rootName {
		return fmt.Sprintf("%s in line %d", f.Message, f.Line)
	}
	return fmt.Sprintf("%s in line %d of %s", f.Message, f.Line, f.Proc)
}

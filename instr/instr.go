package instr

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the category of an instruction.
type Kind int8

// Instruction kinds, in order of classification precedence (NoOp aside).
const (
	NoOp Kind = iota
	If
	Print
	Return
	Goto
	Call
	Param
	BeginFunc
	EndFunc
	Assign
	Expression
)

var kindNames = [...]string{"noop", "if", "print", "return", "goto", "call", "param",
	"BeginFunc", "EndFunc", "assign", "expr"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Instruction is a classified line of 3AC. Which fields are set depends on Kind:
//
//    If          Cond, Action
//    Print       X
//    Return      X (may be nil)
//    Goto        Name (label)
//    Call        Name (procedure), Count (call-site count or -1), Result (may be empty)
//    Param       X
//    BeginFunc   Name, Count
//    Assign      Target, X
//    Expression  X
//
type Instruction struct {
	Kind   Kind
	Label  string       // label prefix, if any
	Cond   *Expr        // condition of an if
	Action *Instruction // action of an if
	X      *Expr
	Target *Lvalue
	Name   string
	Result string
	Count  int
	Source string // the line as given
}

func (ins *Instruction) String() string {
	var b strings.Builder
	if ins.Label != "" {
		b.WriteString(ins.Label)
		b.WriteString(": ")
	}
	switch ins.Kind {
	case NoOp:
		b.WriteString("noop")
	case If:
		fmt.Fprintf(&b, "if %s %s", ins.Cond, ins.Action)
	case Print, Param:
		fmt.Fprintf(&b, "%s %s", ins.Kind, ins.X)
	case Return:
		b.WriteString("return")
		if ins.X != nil {
			fmt.Fprintf(&b, " %s", ins.X)
		}
	case Goto:
		fmt.Fprintf(&b, "goto %s", ins.Name)
	case Call:
		if ins.Result != "" {
			fmt.Fprintf(&b, "%s = ", ins.Result)
		}
		fmt.Fprintf(&b, "call %s", ins.Name)
		if ins.Count >= 0 {
			fmt.Fprintf(&b, ", %d", ins.Count)
		}
	case BeginFunc:
		fmt.Fprintf(&b, "BeginFunc %s, %d", ins.Name, ins.Count)
	case EndFunc:
		b.WriteString("EndFunc")
	case Assign:
		fmt.Fprintf(&b, "%s = %s", ins.Target, ins.X)
	case Expression:
		b.WriteString(ins.X.String())
	}
	return b.String()
}

// --- Operands and expressions ----------------------------------------------

// Operand is a variable (optionally indexed) or a numeric constant.
// An operand with neither name nor literal is empty; evaluating it is an error.
type Operand struct {
	Name      string
	Index     *Expr // for name[index]
	Literal   float64
	IsLiteral bool
	lexeme    string
}

// IsEmpty is a predicate: is this a missing operand?
func (o *Operand) IsEmpty() bool {
	return o == nil || (!o.IsLiteral && o.Name == "")
}

// IsIndexed is a predicate: is this an operand of the form name[index]?
func (o *Operand) IsIndexed() bool {
	return o != nil && o.Index != nil
}

func (o *Operand) String() string {
	switch {
	case o.IsEmpty():
		return ""
	case o.IsLiteral:
		if o.lexeme != "" {
			return o.lexeme
		}
		return strconv.FormatFloat(o.Literal, 'g', -1, 64)
	case o.Index != nil:
		return o.Name + "[" + o.Index.String() + "]"
	}
	return o.Name
}

// Expr is a binary, unary or atomic expression.
//
//    binary:   Left Op Right
//    unary:    Op Right          (Left == nil)
//    atomic:   Right             (Left == nil, Op == "")
//
type Expr struct {
	Op    string
	Left  *Operand
	Right *Operand
}

// IsUnary is a predicate: is this a unary operation?
func (e *Expr) IsUnary() bool {
	return e.Left == nil && e.Op != ""
}

// IsAtomic is a predicate: is this a single operand?
func (e *Expr) IsAtomic() bool {
	return e.Op == ""
}

func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	if e.IsAtomic() {
		return e.Right.String()
	}
	if e.IsUnary() {
		return e.Op + e.Right.String()
	}
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}

// Lvalue is the target of an assignment: a plain variable, an indexed
// element or a pointer dereference of depth Deref.
type Lvalue struct {
	Deref int
	Name  string
	Index *Expr
}

func (lv *Lvalue) String() string {
	s := strings.Repeat("*", lv.Deref) + lv.Name
	if lv.Index != nil {
		s += "[" + lv.Index.String() + "]"
	}
	return s
}

package engine

import (
	"math"

	"github.com/npillmayer/threeac/instr"
	"github.com/npillmayer/threeac/runtime"
)

// evaluate evaluates an expression against the heap of the context.
func (ctx *Context) evaluate(x *instr.Expr) (runtime.Value, *Fault) {
	if x == nil {
		return runtime.Value{}, newFault(MissingOperand, "Missing Operand")
	}
	if x.IsAtomic() {
		return ctx.getVar(x.Right)
	}
	if x.IsUnary() {
		return ctx.unary(x.Op, x.Right)
	}
	return ctx.binary(x.Op, x.Left, x.Right)
}

// getVar resolves a single operand: a literal, a variable or an
// indexed array element.
func (ctx *Context) getVar(o *instr.Operand) (runtime.Value, *Fault) {
	if o.IsEmpty() {
		return runtime.Value{}, newFault(MissingOperand, "Missing Operand")
	}
	if o.IsLiteral {
		return runtime.Scalar(o.Literal), nil
	}
	heap := ctx.heap()
	if !o.IsIndexed() {
		if v, ok := heap.Lookup(o.Name); ok {
			return v, nil
		}
		return runtime.Value{}, newFault(UnknownVariable, "Unknown variable '%s'", o)
	}
	base, ok := heap.Lookup(o.Name)
	if !ok || base.Kind() != runtime.ArrayType {
		return runtime.Value{}, newFault(UnknownVariable, "Unknown variable '%s'", o)
	}
	i, f := ctx.index(o.Index)
	if f != nil {
		return runtime.Value{}, f
	}
	v, ok := base.Array().Get(i)
	if !ok {
		return runtime.Value{}, newFault(IndexOutOfBound, "Array index out of bound '%s'", o)
	}
	return v, nil
}

// index evaluates an index expression to a number.
func (ctx *Context) index(x *instr.Expr) (float64, *Fault) {
	v, f := ctx.evaluate(x)
	if f != nil {
		return 0, f
	}
	i, ok := v.Number()
	if !ok {
		return 0, newFault(InvalidTypeConversion, "Invalid Type Conversion - cannot use %s '%s' as index", v.Kind(), x)
	}
	if math.IsNaN(i) {
		return 0, newFault(IndexOutOfBound, "Array index out of bound '%s'", x)
	}
	return i, nil
}

func (ctx *Context) unary(op string, o *instr.Operand) (runtime.Value, *Fault) {
	if o.IsEmpty() {
		return runtime.Value{}, newFault(MissingOperand, "Missing Operand")
	}
	switch op {
	case "-":
		v, f := ctx.getVar(o)
		if f != nil {
			return v, f
		}
		n, ok := v.Number()
		if !ok {
			return runtime.Value{}, newFault(InvalidTypeConversion, "Invalid Type Conversion - cannot negate %s '%s'", v.Kind(), o)
		}
		return runtime.Scalar(-n), nil
	case "*":
		return ctx.deref(o, 1)
	case "**":
		return ctx.deref(o, 2)
	case "&":
		if o.IsLiteral || o.IsIndexed() {
			return runtime.Value{}, newFault(InvalidPointerReference, "Invalid Pointer Reference '&%s'", o)
		}
		if !ctx.heap().Has(o.Name) {
			return runtime.Value{}, newFault(UnknownVariable, "Unknown variable '%s'", o)
		}
		return runtime.Pointer(o.Name), nil
	}
	return runtime.Value{}, newFault(UnknownOperator, "Unknown operator '%s'", op)
}

// deref reads through a pointer chain of the given depth.
func (ctx *Context) deref(o *instr.Operand, depth int) (runtime.Value, *Fault) {
	if o.IsLiteral || o.IsIndexed() {
		return runtime.Value{}, newFault(InvalidPointerReference, "Invalid Pointer Reference '%s'", o)
	}
	if !ctx.heap().Has(o.Name) {
		return runtime.Value{}, newFault(UnknownVariable, "Unknown variable '%s'", o)
	}
	name, f := ctx.follow(o.Name, depth)
	if f != nil {
		return runtime.Value{}, f
	}
	v, _ := ctx.heap().Lookup(name)
	return v, nil
}

// follow resolves a pointer chain: starting at variable name, it follows
// depth pointers and returns the name of the variable at the end of the chain,
// which has to exist.
func (ctx *Context) follow(name string, depth int) (string, *Fault) {
	heap := ctx.heap()
	start := name
	for i := 0; i < depth; i++ {
		v, ok := heap.Lookup(name)
		if !ok {
			return "", newFault(InvalidPointerReference, "Invalid Pointer Reference '%s'", start)
		}
		ref, ok := v.Ref()
		if !ok {
			return "", newFault(InvalidPointerReference, "Invalid Pointer Reference '%s' (%s is a %s)", start, name, v.Kind())
		}
		name = ref
	}
	if !heap.Has(name) {
		return "", newFault(InvalidPointerReference, "Invalid Pointer Reference '%s' (dangling)", start)
	}
	return name, nil
}

type arithmetic func(a, b float64) float64
type relation func(a, b float64) bool

var arithmetics = map[string]arithmetic{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
	"%": math.Mod,
}

var relations = map[string]relation{
	"==": func(a, b float64) bool { return a == b },
	"!=": func(a, b float64) bool { return a != b },
	"<":  func(a, b float64) bool { return a < b },
	">":  func(a, b float64) bool { return a > b },
	"<=": func(a, b float64) bool { return a <= b },
	">=": func(a, b float64) bool { return a >= b },
}

func (ctx *Context) binary(op string, l, r *instr.Operand) (runtime.Value, *Fault) {
	arith, isArith := arithmetics[op]
	rel, isRel := relations[op]
	if !isArith && !isRel {
		return runtime.Value{}, newFault(UnknownOperator, "Unknown operator '%s'", op)
	}
	x, f := ctx.getVar(l)
	if f != nil {
		return x, f
	}
	y, f := ctx.getVar(r)
	if f != nil {
		return y, f
	}
	a, okx := x.Number()
	b, oky := y.Number()
	if !okx || !oky {
		if op == "==" {
			return runtime.Bool(x.Equal(y)), nil
		} else if op == "!=" {
			return runtime.Bool(!x.Equal(y)), nil
		}
		culprit := x
		if okx {
			culprit = y
		}
		return runtime.Value{}, newFault(InvalidTypeConversion,
			"Invalid Type Conversion - cannot apply '%s' to %s", op, culprit.Kind())
	}
	if isArith {
		return runtime.Scalar(arith(a, b)), nil
	}
	return runtime.Bool(rel(a, b)), nil
}

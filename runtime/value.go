package runtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type tag of a heap value.
type Kind int8

// Value kinds.
const (
	Undefined Kind = iota
	ScalarType
	BooleanType
	PointerType
	ArrayType
)

func (k Kind) String() string {
	switch k {
	case ScalarType:
		return "scalar"
	case BooleanType:
		return "boolean"
	case PointerType:
		return "pointer"
	case ArrayType:
		return "array"
	}
	return "undefined"
}

// Value is a tagged union of the values a heap slot may hold.
// The zero value is Undefined.
type Value struct {
	kind Kind
	num  float64
	ref  string
	arr  *Array
}

// Scalar creates a numeric value.
func Scalar(f float64) Value {
	return Value{kind: ScalarType, num: f}
}

// Bool creates a truth value.
func Bool(b bool) Value {
	v := Value{kind: BooleanType}
	if b {
		v.num = 1
	}
	return v
}

// Pointer creates a pointer to the variable named nm.
func Pointer(nm string) Value {
	return Value{kind: PointerType, ref: nm}
}

// ArrayValue wraps an array. Array values share their storage.
func ArrayValue(a *Array) Value {
	return Value{kind: ArrayType, arr: a}
}

// Kind returns the type tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsDefined is a predicate: does v hold a value?
func (v Value) IsDefined() bool {
	return v.kind != Undefined
}

// Number converts v to a float. Scalars and booleans are numeric
// (true ⇒ 1, false ⇒ 0); other kinds are not.
func (v Value) Number() (float64, bool) {
	if v.kind == ScalarType || v.kind == BooleanType {
		return v.num, true
	}
	return 0, false
}

// Ref returns the name of the variable a pointer refers to.
func (v Value) Ref() (string, bool) {
	if v.kind != PointerType {
		return "", false
	}
	return v.ref, true
}

// Array returns the array storage of an array value, or nil.
func (v Value) Array() *Array {
	if v.kind != ArrayType {
		return nil
	}
	return v.arr
}

// Truthy is the truth value of v as a condition.
func (v Value) Truthy() bool {
	switch v.kind {
	case ScalarType, BooleanType:
		return v.num != 0 && !math.IsNaN(v.num)
	case PointerType, ArrayType:
		return true
	}
	return false
}

// Equal compares two values by kind and content. Arrays are equal if they
// share storage.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case ScalarType, BooleanType:
		return v.num == w.num
	case PointerType:
		return v.ref == w.ref
	case ArrayType:
		return v.arr == w.arr
	}
	return true
}

// Clone returns a copy of v not sharing any storage with v.
func (v Value) Clone() Value {
	if v.kind == ArrayType && v.arr != nil {
		return ArrayValue(v.arr.Clone())
	}
	return v
}

// formatNumber prints plain decimals for magnitudes in [1e-6, 1e21) and
// exponent notation outside of it, the thresholds of ECMAScript numbers.
func formatNumber(f float64) string {
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v Value) String() string {
	switch v.kind {
	case ScalarType:
		return formatNumber(v.num)
	case BooleanType:
		return strconv.FormatBool(v.num != 0)
	case PointerType:
		return "&" + v.ref
	case ArrayType:
		if v.arr == nil {
			return "[]"
		}
		var b strings.Builder
		b.WriteString("[")
		first := true
		v.arr.Each(func(i float64, x Value) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&b, "%s:%s", formatNumber(i), x)
		})
		b.WriteString("]")
		return b.String()
	}
	return "undefined"
}

package engine

import (
	"github.com/npillmayer/threeac/instr"
	"github.com/npillmayer/threeac/runtime"
)

// maxDeref is the deepest pointer chain an assignment may write through.
const maxDeref = 2

// assign writes a value into the heap location denoted by an lvalue.
func (ctx *Context) assign(lv *instr.Lvalue, v runtime.Value) *Fault {
	heap := ctx.heap()
	switch {
	case lv.Deref > 0:
		if lv.Deref > maxDeref {
			return newFault(InvalidPointerReference, "Invalid Pointer Reference '%s'", lv)
		}
		name, f := ctx.follow(lv.Name, lv.Deref)
		if f != nil {
			return f
		}
		heap.Set(name, v)
	case lv.Index != nil:
		i, f := ctx.index(lv.Index)
		if f != nil {
			return f
		}
		var arr *runtime.Array
		cur, ok := heap.Lookup(lv.Name)
		if !ok {
			arr = runtime.NewArray()
			heap.Set(lv.Name, runtime.ArrayValue(arr))
		} else if arr = cur.Array(); arr == nil {
			return newFault(InvalidTypeConversion,
				"Invalid Type Conversion - cannot convert %s '%s' to array", cur.Kind(), lv.Name)
		}
		arr.Set(i, v)
	default:
		heap.Set(lv.Name, v)
	}
	return nil
}

package engine

import (
	"github.com/npillmayer/threeac/instr"
	"github.com/npillmayer/threeac/runtime"
)

// defaultResult is the variable receiving a procedure's return value if the
// call site does not name one.
const defaultResult = "out"

// execute executes a single classified instruction located at program
// position pc and returns the signal it produced.
func (ctx *Context) execute(ins *instr.Instruction, pc int) Signal {
	switch ins.Kind {
	case instr.NoOp:
		return none
	case instr.If:
		cond, f := ctx.evaluate(ins.Cond)
		if f != nil {
			return faulting(f)
		}
		if !cond.Truthy() {
			return none
		}
		return ctx.execute(ins.Action, pc)
	case instr.Print, instr.Expression:
		v, f := ctx.evaluate(ins.X)
		if f != nil {
			return faulting(f)
		}
		return printing(v, pc+1)
	case instr.Return:
		if ins.X == nil {
			return returning(runtime.Value{})
		}
		v, f := ctx.evaluate(ins.X)
		if f != nil {
			return faulting(f)
		}
		return returning(v)
	case instr.Goto:
		pos, ok := ctx.labels.Lookup(ins.Name)
		if !ok {
			return faulting(newFault(UndefinedLabel, "Undefined Label '%s'", ins.Name))
		}
		return jumpTo(pos)
	case instr.Call:
		return ctx.call(ins)
	case instr.Param:
		v, f := ctx.evaluate(ins.X)
		if f != nil {
			return faulting(f)
		}
		ctx.params.Push(v)
		return none
	case instr.BeginFunc:
		proc := runtime.NewProcedure(ins.Name, ins.Count)
		ctx.procs.Define(proc)
		ctx.recorder = &recorder{proc: proc, depth: 1}
		tracer().Debugf("recording procedure %s", proc)
		return none
	case instr.EndFunc:
		return faulting(newFault(UnrecognizedInstruction,
			"Unrecognized instruction '%s' outside of procedure definition", ins.Kind))
	case instr.Assign:
		v, f := ctx.evaluate(ins.X)
		if f != nil {
			return faulting(f)
		}
		if f = ctx.assign(ins.Target, v); f != nil {
			return faulting(f)
		}
		return none
	}
	return faulting(newFault(UnrecognizedInstruction, "Unrecognized instruction '%s'", ins.Source))
}

// call runs a procedure synchronously in a fresh nested context.
// Parameters are taken from the caller's parameter stack and bound as
// p0…pn-1 in the callee's heap.
func (ctx *Context) call(ins *instr.Instruction) Signal {
	proc, _ := ctx.procs.Resolve(ins.Name)
	if proc == nil {
		return faulting(newFault(InvalidMethodCall, "Invalid method call - undefined procedure '%s'", ins.Name))
	}
	if ins.Count >= 0 && ins.Count != proc.Arity {
		return faulting(newFault(InvalidMethodCall,
			"Invalid method call - '%s' takes %d parameters, not %d", proc.Name, proc.Arity, ins.Count))
	}
	e := ctx.engine
	if e.calls.Depth() >= e.maxDepth {
		return faulting(newFault(InvalidMethodCall,
			"Invalid method call - maximum call depth %d exceeded by '%s'", e.maxDepth, proc.Name))
	}
	args, ok := ctx.params.Take(proc.Arity)
	if !ok {
		return faulting(newFault(InvalidMethodCall,
			"Invalid method call - '%s' takes %d parameters, %d on stack", proc.Name, proc.Arity, ctx.params.Len()))
	}
	frame := e.calls.Push(proc.Name)
	defer e.calls.Pop()
	callee := e.newContext(proc.Name, proc.Body, runtime.NewProcScope(proc.Name, proc.Scope), frame)
	callee.heap().BindInputs(args)
	tracer().Debugf("calling %s in frame %s", proc, frame.Path())
	v, returned, f := callee.run()
	if f != nil {
		return faulting(f) // callee halted
	}
	if returned && v.IsDefined() {
		result := ins.Result
		if result == "" {
			result = defaultResult
		}
		ctx.heap().Set(result, v)
	}
	return none
}

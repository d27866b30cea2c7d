package engine

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/threeac/instr"
	"github.com/npillmayer/threeac/runtime"
)

// Context is the execution state of one program or procedure invocation.
// A call creates a fresh Context for the callee; nothing but the parameter
// values and the return value crosses between contexts.
type Context struct {
	name     string
	program  []string
	labels   *runtime.LabelTable
	frame    *runtime.Frame
	procs    *runtime.ProcScope
	params   *runtime.ParamStack
	recorder *recorder // non-nil while recording a procedure body
	engine   *Engine
}

// recorder collects the body lines of a procedure definition.
type recorder struct {
	proc  *runtime.Procedure
	depth int // nesting of BeginFunc/EndFunc
}

func (e *Engine) newContext(name string, program []string, procs *runtime.ProcScope,
	frame *runtime.Frame) *Context {
	//
	return &Context{
		name:    name,
		program: program,
		labels:  runtime.NewLabelTable(),
		frame:   frame,
		procs:   procs,
		params:  runtime.NewParamStack(),
		engine:  e,
	}
}

func (ctx *Context) heap() *runtime.Heap {
	return ctx.frame.Heap
}

// scanLabels builds the label table. Lines between BeginFunc and the matching
// EndFunc belong to a procedure body; their labels are not visible here.
func (ctx *Context) scanLabels() {
	ctx.labels = runtime.NewLabelTable()
	depth := 0
	for pc, line := range ctx.program {
		label, _ := instr.SplitLabel(line)
		if depth == 0 && label != "" {
			ctx.labels.Define(label, pc)
		}
		if ins, err := instr.Classify(line); err == nil {
			switch ins.Kind {
			case instr.BeginFunc:
				depth++
			case instr.EndFunc:
				if depth > 0 {
					depth--
				}
			}
		}
	}
}

// run is the driver loop. It returns the value of the program: either
// the value of a return instruction (returned = true) or true if
// execution fell off the end. A non-nil fault means execution halted.
func (ctx *Context) run() (runtime.Value, bool, *Fault) {
	ctx.scanLabels()
	pc := 0
	for pc < len(ctx.program) {
		line := ctx.program[pc]
		if ctx.record(line) {
			pc++
			continue
		}
		sig := ctx.step(line, pc)
		switch sig.Kind {
		case JumpSignal:
			pc = sig.Position
			continue
		case ReturnSignal:
			tracer().Debugf("%s returns %s", ctx.name, sig.Value)
			return sig.Value, true, nil
		case PrintSignal:
			ctx.engine.emit(OutputRecord{Value: sig.Value, Line: sig.Line, Proc: ctx.name})
		case FaultSignal:
			if ctx.engine.fail(sig.Fault, pc, ctx.name) {
				return runtime.Value{}, false, sig.Fault
			}
		}
		pc++
	}
	return runtime.Bool(true), false, nil
}

// step classifies and executes a single line. Panics are converted into
// internal faults, unless configuration flag panic-on-internal-error is set.
func (ctx *Context) step(line string, pc int) (sig Signal) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("panic executing %q: %v", line, r)
			if gconf.GetBool("panic-on-internal-error") {
				panic(r)
			}
			sig = faulting(newFault(InternalError, "Internal error: %v", r))
		}
	}()
	ins, err := instr.Classify(line)
	if err != nil {
		return faulting(newFault(UnrecognizedInstruction, "%s", err.Error()))
	}
	return ctx.execute(ins, pc)
}

// record routes a line into the procedure body currently being recorded.
// It returns false if no recording is active.
func (ctx *Context) record(line string) bool {
	rec := ctx.recorder
	if rec == nil {
		return false
	}
	if ins, err := instr.Classify(line); err == nil {
		switch ins.Kind {
		case instr.BeginFunc:
			rec.depth++
		case instr.EndFunc:
			if rec.depth--; rec.depth == 0 {
				tracer().Debugf("recorded procedure %s", rec.proc)
				ctx.recorder = nil
				return true
			}
		}
	}
	rec.proc.Append(line)
	return true
}

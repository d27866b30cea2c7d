package engine

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/threeac/instr"
	"github.com/npillmayer/threeac/runtime"
)

// rootName is the name of the top-level frame.
const rootName = "root"

// DefaultMaxCallDepth limits the nesting of procedure calls.
const DefaultMaxCallDepth = 1000

// Engine executes 3AC programs. An Engine keeps its heap, procedure table and
// parameter stack between calls to RunLine. It is not safe for concurrent use.
type Engine struct {
	ctx         *Context
	program     []string
	output      OutputLog
	calls       *runtime.CallStack
	outputSink  func(OutputRecord)
	errorSink   func(*Fault)
	haltOnError bool
	debug       bool
	separator   string
	maxDepth    int
}

// Option configures an Engine.
type Option func(e *Engine)

// WithOutputSink sets a function to be notified of every print.
func WithOutputSink(sink func(OutputRecord)) Option {
	return func(e *Engine) {
		e.outputSink = sink
	}
}

// WithErrorSink sets a function to be notified of every fault.
func WithErrorSink(sink func(*Fault)) Option {
	return func(e *Engine) {
		e.errorSink = sink
	}
}

// HaltOnError stops execution at the first fault.
func HaltOnError(b bool) Option {
	return func(e *Engine) {
		e.haltOnError = b
	}
}

// Debug traces execution at debug level.
func Debug(b bool) Option {
	return func(e *Engine) {
		e.debug = b
	}
}

// Separator sets the line separator for RunSource. Default is "\n".
func Separator(sep string) Option {
	return func(e *Engine) {
		if sep != "" {
			e.separator = sep
		}
	}
}

// MaxCallDepth sets the maximum nesting of procedure calls.
func MaxCallDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// New creates an engine with an empty heap.
func New(opts ...Option) *Engine {
	e := &Engine{
		separator: "\n",
		maxDepth:  DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

// Result is the outcome of a run.
type Result struct {
	Value    runtime.Value // return value, or true if execution fell off the end
	Returned bool          // program executed a return instruction
	Halted   bool          // execution stopped at a fault
	Fault    *Fault        // the fault which halted execution
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("halted: %v", r.Fault)
	}
	return r.Value.String()
}

func (e *Engine) reset() {
	e.calls = runtime.NewCallStack(rootName)
	e.ctx = e.newContext(rootName, nil, runtime.NewProcScope(rootName, nil), e.calls.Root())
	e.output = nil
}

// Load replaces the program.
func (e *Engine) Load(program []string) {
	e.program = append([]string(nil), program...)
}

// Add appends a line to the program.
func (e *Engine) Add(line string) {
	e.program = append(e.program, line)
}

// Exec runs the loaded program with a clean heap. Inputs are bound to
// variables p0…pn.
func (e *Engine) Exec(inputs []float64) Result {
	e.reset()
	e.ctx.program = e.program
	e.bind(inputs)
	return e.execute()
}

// Run loads a program and executes it.
func (e *Engine) Run(program []string, inputs []float64) Result {
	e.Load(program)
	return e.Exec(inputs)
}

// RunSource splits src into lines at the separator and executes them.
func (e *Engine) RunSource(src string, inputs []float64) Result {
	return e.Run(strings.Split(src, e.separator), inputs)
}

// RunLine executes a single line against the current state of the engine.
// If clearHeap is set, heap, procedures, parameters and output are reset first.
// The only label visible to a jump is the line's own label.
func (e *Engine) RunLine(line string, inputs []float64, clearHeap bool) Result {
	if clearHeap {
		e.reset()
	}
	e.bind(inputs)
	e.ctx.program = []string{line}
	return e.execute()
}

// Get evaluates an expression against the top-level heap.
func (e *Engine) Get(expr string) (runtime.Value, error) {
	ins, err := instr.Classify(expr)
	if err != nil {
		return runtime.Value{}, err
	}
	if ins.Kind != instr.Expression {
		return runtime.Value{}, fmt.Errorf("not an expression: %q", expr)
	}
	v, f := e.ctx.evaluate(ins.X)
	if f != nil {
		return v, f
	}
	return v, nil
}

// Output returns the output records of the current run.
func (e *Engine) Output() OutputLog {
	return e.output
}

// Heap returns the top-level heap.
func (e *Engine) Heap() *runtime.Heap {
	return e.ctx.heap()
}

// Procedures returns the top-level procedure table.
func (e *Engine) Procedures() *runtime.ProcScope {
	return e.ctx.procs
}

func (e *Engine) bind(inputs []float64) {
	if len(inputs) == 0 {
		return
	}
	vals := make([]runtime.Value, len(inputs))
	for i, x := range inputs {
		vals[i] = runtime.Scalar(x)
	}
	e.ctx.heap().BindInputs(vals)
}

func (e *Engine) execute() Result {
	if e.debug {
		level := tracer().GetTraceLevel()
		tracer().SetTraceLevel(tracing.LevelDebug)
		defer tracer().SetTraceLevel(level)
	}
	v, returned, f := e.ctx.run()
	return Result{Value: v, Returned: returned, Halted: f != nil, Fault: f}
}

func (e *Engine) emit(rec OutputRecord) {
	tracer().Debugf("print %s (line %d of %s)", rec.Value, rec.Line, rec.Proc)
	e.output = append(e.output, rec)
	if e.outputSink != nil {
		e.outputSink(rec)
	}
}

// fail reports a fault raised at position pc of frame proc. It returns true
// if execution has to halt.
func (e *Engine) fail(f *Fault, pc int, proc string) bool {
	if !f.reported {
		f.Line = pc + 1
		f.Proc = proc
		f.reported = true
		tracer().Infof("%v", f)
		if e.errorSink != nil {
			e.errorSink(f)
		}
	}
	return e.haltOnError
}

/*
Package engine executes three-address code.

An Engine runs a program, i.e. a sequence of instruction lines, in a
fetch-execute loop. Every line is classified by package instr when it is
reached and then executed against the heap of the current execution context.
Executing an instruction yields at most one Signal:

	Jump(position)     set the program counter
	Return(value)      leave the current program
	Print(value, line) append an output record
	Fault(kind, line)  report an error, continue or halt

Procedures are recorded between BeginFunc and EndFunc. A call runs the
procedure body in a fresh execution context with its own heap, labels,
procedures and parameters; only the arguments and the return value cross
the boundary.

There is no timeout: a program looping forever will not return. Clients
needing a bound should run the engine on a goroutine of their own.

	eng := engine.New(engine.HaltOnError(true))
	result := eng.Run([]string{"a = p0 * 2", "print a"}, []float64{21})
	// eng.Output() holds {42, line 2}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'threeac.engine'.
func tracer() tracing.Trace {
	return tracing.Select("threeac.engine")
}

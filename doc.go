/*
Package threeac is a runtime for three-address code (3AC).

3AC is a flat intermediate representation: every line holds a label, an
assignment, a conditional or unconditional jump, a parameter push, a procedure
call or definition, a pointer or array operation, a print or a return.
ThreeAC classifies each line when it is reached and executes it directly,
without building a syntax tree. Package structure is as follows:

■ scanner: Package scanner defines a tokenizer interface and wraps lexmachine
as a scanner for instruction lines.

■ instr: Package instr classifies single lines of 3AC into tagged instructions.

■ runtime: Package runtime provides the data types of an execution context:
heap values, label and procedure tables, the parameter stack and the call stack.

■ engine: Package engine evaluates expressions, executes instructions and drives
programs. It is the entry point for clients.

■ cmd/tac: Command tac runs 3AC files or executes lines interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package threeac

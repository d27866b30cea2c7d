/*
Package instr classifies single lines of three-address code.

A line is stripped of an optional label prefix ("L1:"), tokenized by a
lexmachine DFA and then handed to an ordered list of matchers. The first
matcher accepting the complete token list determines the instruction kind:

	if, print, return, goto, call, param, BeginFunc, EndFunc, assignment/expression

Every matcher is a tiny recursive-descent parser. The result is a tagged
Instruction, holding pre-parsed operands, which package engine executes.
Lines matching no form are reported as *SyntaxError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package instr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'threeac.instr'
func tracer() tracing.Trace {
	return tracing.Select("threeac.instr")
}

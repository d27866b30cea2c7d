/*
Command tac runs three-address code.

	tac [flags] [file]

With a file argument, tac executes the file as a 3AC program and prints its
output. Files may be UTF-8 or UTF-16 with a byte order mark. Without a file
argument, tac starts an interactive session where every line entered is
executed immediately against a persistent heap. Lines starting with a colon
are commands:

	:heap    show the variables of the top-level heap
	:procs   list the procedures defined
	:reset   clear heap, procedures and parameters
	:quit    leave tac

Flags:

	-trace   trace level [Debug|Info|Error]
	-halt    stop at the first error
	-input   comma separated list of numeric inputs, bound to p0, p1, …
	-timeout abort a program after a duration, e.g. "5s"
	-digest  print a fingerprint of the output
	-sep     line separator of the program file

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'threeac.tac'
func tracer() tracing.Trace {
	return tracing.Select("threeac.tac")
}

/*
Command lr0 builds LR(0) parse tables for single-character grammars and
parses input with them.

	lr0 table grammar.txt [--html table.html] [--dot cfsm.dot]
	lr0 parse grammar.txt '1+1$' '1*0$'
	lr0 repl grammar.txt

A grammar file holds one production per line, e.g.

	E -> E*B
	E -> E+B
	E -> B
	B -> 0
	B -> 1

Within the REPL every line is parsed as input. Command ":table" prints the
parse table, ":quit" or <ctrl>D leave the REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrparser.cmd'
func tracer() tracing.Trace {
	return tracing.Select("lrparser.cmd")
}

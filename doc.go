/*
Package lrparser is a small LR(0) parsing toolbox for grammars over
single-character symbols.

It builds the canonical LR(0) automaton for a grammar given as plain text
and drives the resulting action/goto table over input strings, producing
abstract syntax trees. Package structure is as follows:

■ grammar: Package grammar reads production lists and classifies symbols.

■ lr: Package lr implements items, closures, the characteristic finite state
machine and the parse table.

■ lr/scanner: Package scanner splits input into single-symbol tokens.

■ lr/lr0: Package lr0 is the shift/reduce driver using these tables.

■ ast: Package ast holds the syntax tree type produced by the driver.

The base package contains data types which are used throughout all the other packages.
Command lr0 (in folder cmd) prints parse tables and parses input from the
command line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lrparser

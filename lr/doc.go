/*
Package lr implements the construction of LR(0) parse tables.

Items and Closures

An item is a grammar rule together with a position (the "dot") telling how
much of the rule's right hand side has already been recognized:

    E ➞ E • + B

Items are collected into sets. Item sets are ordered by rule serial number
first and dot position second, so iterating over a set always yields the same
sequence. Closure() and Goto() are the two basic operations on item sets.

Parser Construction

The characteristic finite state machine (CFSM) of a grammar is constructed
from item sets: every state is a closed item set, every edge a goto-transition
on a grammar symbol. The CFSM is then transformed into a single parse table,
holding shift-, reduce-, goto- and accept-actions. The CFSM is not thrown away
and is made available to the client for debugging purposes.
It can be exported to Graphviz's Dot-format.

Example:

    g, err := grammar.Parse("G", text)
    lrgen := lr.NewTableGenerator(g)
    lrgen.CreateTables()              // construct LR parser tables
    if lrgen.HasConflicts { … }

LR(0) tables carry no lookahead, hence many grammars produce cells with more
than one candidate action. The first action written to a cell wins. Because
states and items are enumerated in a fixed order, the outcome is reproducible;
all losing candidates are recorded as conflicts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrparser.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrparser.lr")
}

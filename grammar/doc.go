/*
Package grammar reads context-free grammars over single-character symbols.

Grammars are written one production per line:

    E -> E*B
    E -> E+B
    E -> B
    B -> 0
    B -> 1

Every non-blank character is a symbol of its own; whitespace is ignored.
The first production determines the start symbol. Every symbol appearing on
the left side of a production is a non-terminal, every other symbol is a
terminal. Both sets keep the order in which their symbols first appear in
the grammar text, which makes every later construction step reproducible.

    g, err := grammar.Parse("G", text)
    g.Dump()

    0: [F] ::= [E]
    1: [E] ::= [E * B]
    …

Rule 0 is an augmented start rule S' ➞ S, added by the package. Its left
side is a symbol not used anywhere in the grammar.

Grammars may also be assembled with a builder:

    b := grammar.NewBuilder("G")
    b.LHS('E').N('E').T('+').N('B').End()  // E ➞ E + B
    b.LHS('B').T('1').End()                // B ➞ 1
    b.LHS('B').Epsilon()                   // B ➞
    g, err := b.Grammar()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrparser.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lrparser.grammar")
}

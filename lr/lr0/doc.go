/*
Package lr0 provides an LR(0)-parser. Clients hand over a grammar, either as
text or as a grammar.Grammar, and receive a parser for it. The parser drives
the LR(0) tables of package lr over an input string and creates a syntax tree.

The main focus for this implementation is on-the-fly usage. Clients are able
to construct the parse tables from a grammar and use the parser directly,
without a code-generation or compile step.

Usage

Clients compile grammar text, one production per line:

	p, err := lr0.Compile(`
	    E -> E*B
	    E -> E+B
	    E -> B
	    B -> 0
	    B -> 1`)

Grammars which are not LR(0) are accepted as well. For every table cell with
more than one candidate action the first one written wins; the others are
reported by p.Table().Conflicts().

Input strings have to be terminated by the end marker '$', unless the parser
has been configured with option AppendEndMarker:

	forest, err := p.Parse("1+1$")
	// forest[0] = E[B[1],+,E[B[1]]]

Children of a tree node are in the order they have been taken from the
parse stack, i.e. rightmost first.

On a syntax error Parse returns an empty forest and a *ParseFailure. If the
input ends before the parser accepts it, Parse returns the partial forest
built so far, together with a *ParseFailure of reason UnexpectedEnd.

A parser does not change after construction and may be used by concurrent
goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr0

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrparser.lr0'.
func tracer() tracing.Trace {
	return tracing.Select("lrparser.lr0")
}

/*
Package ast holds the trees produced by the parsers of this module.

An LR parser recognizes its input bottom-up. Every shift creates a Terminal
leaf, every reduce creates a NonTerminal node for the left-hand side of the
reduced rule, taking over the nodes of the handle as its children. The
children are kept in the order they are taken from the parse stack, i.e. the
node for the rightmost symbol of a rule's right-hand side comes first.

A parse which does not end in an accepting state may leave more than one
node on the stack. Parsers therefore return a Forest, a sequence of trees.

Trees may be walked with a Listener, either left-to-right or right-to-left
over the children of a node, or printed with Dump:

    E
        B
            1
        +
        E
            B
                1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrparser.ast'.
func tracer() tracing.Trace {
	return tracing.Select("lrparser.ast")
}

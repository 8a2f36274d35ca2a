package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	lrparser "github.com/raiga0310/LR-parser"
)

// Node is a node of a syntax tree, either a *Terminal or a *NonTerminal.
type Node interface {
	Symbol() lrparser.Symbol
	IsTerminal() bool
	Children() []Node
	Span() lrparser.Span
	String() string
}

// Terminal is a leaf of a syntax tree, created for a shifted input symbol.
type Terminal struct {
	Sym    lrparser.Symbol
	Extent lrparser.Span // position of the symbol within the input
}

var _ Node = (*Terminal)(nil)

// NewTerminal creates a leaf for an input symbol.
func NewTerminal(sym lrparser.Symbol, span lrparser.Span) *Terminal {
	return &Terminal{Sym: sym, Extent: span}
}

// Symbol returns the input symbol of a leaf.
func (t *Terminal) Symbol() lrparser.Symbol {
	return t.Sym
}

// IsTerminal is always true for a leaf.
func (t *Terminal) IsTerminal() bool {
	return true
}

// Children returns nil.
func (t *Terminal) Children() []Node {
	return nil
}

// Span returns the position of the symbol within the input.
func (t *Terminal) Span() lrparser.Span {
	return t.Extent
}

func (t *Terminal) String() string {
	return t.Sym.String()
}

// NonTerminal is an inner node of a syntax tree, created for the reduction of
// a grammar rule.
type NonTerminal struct {
	Sym      lrparser.Symbol
	Rule     int           // serial number of the reduced rule, 0 if unknown
	Extent   lrparser.Span // input span covered by the children
	children []Node
}

var _ Node = (*NonTerminal)(nil)

// NewNonTerminal creates an inner node for a reduction of rule to sym.
// The node's span is the smallest span covering all children.
func NewNonTerminal(sym lrparser.Symbol, rule int, children ...Node) *NonTerminal {
	nt := &NonTerminal{Sym: sym, Rule: rule, children: children}
	for _, ch := range children {
		nt.Extent = nt.Extent.Extend(ch.Span())
	}
	return nt
}

// Symbol returns the left-hand side symbol of the reduced rule.
func (nt *NonTerminal) Symbol() lrparser.Symbol {
	return nt.Sym
}

// IsTerminal is always false for inner nodes.
func (nt *NonTerminal) IsTerminal() bool {
	return false
}

// Children returns the children of an inner node. For an epsilon rule the
// result is empty.
func (nt *NonTerminal) Children() []Node {
	return nt.children
}

// Span returns the input span covered by this node.
func (nt *NonTerminal) Span() lrparser.Span {
	return nt.Extent
}

// String renders a node and its sub-tree in bracket form, e.g. "E[B[1],+,B[1]]".
func (nt *NonTerminal) String() string {
	var b strings.Builder
	nt.bracket(&b)
	return b.String()
}

func (nt *NonTerminal) bracket(b *strings.Builder) {
	b.WriteRune(rune(nt.Sym))
	b.WriteByte('[')
	for i, ch := range nt.children {
		if i > 0 {
			b.WriteByte(',')
		}
		if inner, ok := ch.(*NonTerminal); ok {
			inner.bracket(b)
		} else {
			b.WriteString(ch.String())
		}
	}
	b.WriteByte(']')
}

// --- Forests ---------------------------------------------------------------

// Forest is a sequence of syntax trees. A successful parse results in a
// forest holding a single tree.
type Forest []Node

// Root returns the single tree of a forest, or nil if the forest does not
// contain exactly one tree.
func (f Forest) Root() Node {
	if len(f) != 1 {
		return nil
	}
	return f[0]
}

// String renders all trees of f in bracket form, e.g. "[E[B[1]] + 1]".
func (f Forest) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, n := range f {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal is true if two trees have the same shape and the same symbols.
// Spans and rule numbers are not compared.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Symbol() != b.Symbol() || a.IsTerminal() != b.IsTerminal() {
		return false
	}
	cha, chb := a.Children(), b.Children()
	if len(cha) != len(chb) {
		return false
	}
	for i := range cha {
		if !Equal(cha[i], chb[i]) {
			return false
		}
	}
	return true
}

// EqualForests is true if both forests hold pairwise equal trees.
func EqualForests(f, g Forest) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if !Equal(f[i], g[i]) {
			return false
		}
	}
	return true
}

// --- Dumping trees ---------------------------------------------------------

// Indent is the indentation per tree level used by Dump.
const Indent = "    "

// Dump writes a tree to w, one node per line, children indented by one level
// more than their parent.
func Dump(w io.Writer, node Node) error {
	var err error
	Walk(node, LtoR, func(n Node, level int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(Indent, level), n.Symbol())
		return true
	})
	return err
}

// DumpForest writes all trees of a forest to w.
func DumpForest(w io.Writer, f Forest) error {
	for _, n := range f {
		if err := Dump(w, n); err != nil {
			return err
		}
	}
	return nil
}

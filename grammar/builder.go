package grammar

import (
	"fmt"

	lrparser "github.com/raiga0310/LR-parser"
)

// Builder is a helper type to construct grammars programmatically.
// Terminals are declared with T, non-terminals with N; Grammar() checks
// that these declarations are consistent with the rules added.
type Builder struct {
	name      string
	prods     []production
	terminals map[lrparser.Symbol]bool // symbols declared with T
	nonterms  map[lrparser.Symbol]bool // symbols declared with N
}

// NewBuilder gets a grammar builder for a grammar with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		terminals: make(map[lrparser.Symbol]bool),
		nonterms:  make(map[lrparser.Symbol]bool),
	}
}

// RuleBuilder collects the right hand side of a single rule.
type RuleBuilder struct {
	b   *Builder
	lhs lrparser.Symbol
	rhs []lrparser.Symbol
}

// LHS starts a new rule with left hand side A.
func (b *Builder) LHS(A lrparser.Symbol) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: A}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(A lrparser.Symbol) *RuleBuilder {
	rb.b.nonterms[A] = true
	rb.rhs = append(rb.rhs, A)
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(a lrparser.Symbol) *RuleBuilder {
	rb.b.terminals[a] = true
	rb.rhs = append(rb.rhs, a)
	return rb
}

// End completes the rule and returns its serial number within the grammar.
func (rb *RuleBuilder) End() int {
	rb.b.prods = append(rb.b.prods, production{lhs: rb.lhs, rhs: rb.rhs})
	return len(rb.b.prods)
}

// Epsilon completes the rule with an empty right hand side.
func (rb *RuleBuilder) Epsilon() int {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far.
func (b *Builder) Grammar() (*Grammar, error) {
	lhs := make(map[lrparser.Symbol]bool)
	for _, p := range b.prods {
		if p.lhs == lrparser.EndMarker {
			return nil, fmt.Errorf("grammar %s: end marker %q used as left-hand side", b.name, p.lhs)
		}
		for _, sym := range p.rhs {
			if sym == lrparser.EndMarker {
				return nil, fmt.Errorf("grammar %s: end marker %q used in right-hand side", b.name, sym)
			}
		}
		lhs[p.lhs] = true
	}
	for a := range b.terminals {
		if lhs[a] {
			return nil, fmt.Errorf("grammar %s: terminal %q has rules", b.name, a)
		}
	}
	for A := range b.nonterms {
		if !lhs[A] {
			return nil, fmt.Errorf("grammar %s: non-terminal %q has no rules", b.name, A)
		}
	}
	return newGrammar(b.name, b.prods)
}

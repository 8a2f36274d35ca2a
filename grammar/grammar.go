package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/linkedhashset"
	lrparser "github.com/raiga0310/LR-parser"
)

// ErrEmptyGrammar is returned for grammars without any production.
var ErrEmptyGrammar = errors.New("grammar has no productions")

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production LHS ➞ RHS. Rules are immutable after a grammar
// has been created. Their serial number is the position within the grammar,
// with serial 0 being the augmented start rule.
type Rule struct {
	Serial int             // position within the grammar
	LHS    lrparser.Symbol // left hand side symbol
	rhs    []lrparser.Symbol
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []lrparser.Symbol {
	return append([]lrparser.Symbol(nil), r.rhs...)
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the RHS symbol at position i.
func (r *Rule) At(i int) lrparser.Symbol {
	return r.rhs[i]
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteRune(rune(r.LHS))
	b.WriteString(" ➞")
	for _, sym := range r.rhs {
		b.WriteByte(' ')
		b.WriteRune(rune(sym))
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar over single-character symbols.
// Create one with Parse or with a Builder.
type Grammar struct {
	Name         string
	rules        []*Rule            // rules[0] is the augmented start rule
	terminals    *linkedhashset.Set // in order of first occurrence
	nonterminals *linkedhashset.Set // in order of first occurrence
}

// production is an intermediate LHS/RHS pair, as read from text or a builder.
type production struct {
	lhs lrparser.Symbol
	rhs []lrparser.Symbol
}

// newGrammar classifies the symbols of a list of productions and augments
// the grammar with a start rule.
func newGrammar(name string, prods []production) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, ErrEmptyGrammar
	}
	g := &Grammar{
		Name:         name,
		rules:        make([]*Rule, 0, len(prods)+1),
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
	}
	for _, p := range prods {
		g.nonterminals.Add(p.lhs)
	}
	for _, p := range prods {
		for _, sym := range p.rhs {
			if !g.nonterminals.Contains(sym) {
				g.terminals.Add(sym)
			}
		}
	}
	start := prods[0].lhs
	g.rules = append(g.rules, &Rule{
		Serial: 0,
		LHS:    g.reserveSymbol(start),
		rhs:    []lrparser.Symbol{start},
	})
	for i, p := range prods {
		g.rules = append(g.rules, &Rule{
			Serial: i + 1,
			LHS:    p.lhs,
			rhs:    p.rhs,
		})
	}
	tracer().Debugf("grammar %s has %d terminals and %d non-terminals",
		name, g.terminals.Size(), g.nonterminals.Size())
	return g, nil
}

// reserveSymbol finds a symbol for the augmented start rule: the first code
// point after start which is neither part of the grammar nor the end marker.
func (g *Grammar) reserveSymbol(start lrparser.Symbol) lrparser.Symbol {
	sym := start
	for {
		sym++
		if sym > unicode.MaxRune {
			sym = '!'
		}
		if !utf8.ValidRune(rune(sym)) || sym == lrparser.EndMarker {
			continue
		}
		if !g.terminals.Contains(sym) && !g.nonterminals.Contains(sym) {
			return sym
		}
	}
}

// Size returns the number of rules, including the augmented start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number no, with rule 0 being the augmented start rule and
// rules 1…n the productions in the order they have been defined.
// It returns nil for an invalid rule number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns the user-defined rules 1…n.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules[1:]...)
}

// StartRule returns the augmented start rule S' ➞ S.
func (g *Grammar) StartRule() *Rule {
	return g.rules[0]
}

// Start returns the start symbol of the grammar, i.e. the LHS of its first production.
func (g *Grammar) Start() lrparser.Symbol {
	return g.rules[0].rhs[0]
}

// AugmentedStart returns the LHS of the augmented start rule.
func (g *Grammar) AugmentedStart() lrparser.Symbol {
	return g.rules[0].LHS
}

// IsTerminal is true if sym is a terminal of g.
func (g *Grammar) IsTerminal(sym lrparser.Symbol) bool {
	return g.terminals.Contains(sym)
}

// IsNonTerminal is true if sym is the LHS of some user-defined rule of g.
func (g *Grammar) IsNonTerminal(sym lrparser.Symbol) bool {
	return g.nonterminals.Contains(sym)
}

// Terminals returns all terminals in order of first occurrence.
func (g *Grammar) Terminals() []lrparser.Symbol {
	return symbols(g.terminals)
}

// NonTerminals returns all non-terminals in order of first occurrence.
// The symbol of the augmented start rule is not included.
func (g *Grammar) NonTerminals() []lrparser.Symbol {
	return symbols(g.nonterminals)
}

// EachSymbol iterates over all terminals, then over all non-terminals.
func (g *Grammar) EachSymbol(f func(A lrparser.Symbol)) {
	for _, A := range g.Terminals() {
		f(A)
	}
	for _, A := range g.NonTerminals() {
		f(A)
	}
}

// FindNonTermRules returns all rules with A as their LHS, ordered by serial number.
func (g *Grammar) FindNonTermRules(A lrparser.Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// Dump is a debugging helper, tracing all rules at level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%3d: %s\n", r.Serial, r))
	}
	return b.String()
}

func symbols(set *linkedhashset.Set) []lrparser.Symbol {
	syms := make([]lrparser.Symbol, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, v.(lrparser.Symbol))
	}
	return syms
}

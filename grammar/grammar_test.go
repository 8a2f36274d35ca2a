package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	lrparser "github.com/raiga0310/LR-parser"
)

const exprGrammar = `
E -> E*B
E -> E+B
E -> B
B -> 0
B -> 1
`

func TestParseGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	g, err := Parse("G", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("Expected grammar to have 6 rules (incl. start rule), has %d", g.Size())
	}
	if g.Start() != 'E' {
		t.Errorf("Expected start symbol to be E, is %v", g.Start())
	}
	if g.AugmentedStart() != 'F' {
		t.Errorf("Expected augmented start symbol to be F, is %v", g.AugmentedStart())
	}
	r := g.Rule(2)
	if r.LHS != 'E' || string(symbolRunes(r.RHS())) != "E+B" {
		t.Errorf("Expected rule 2 to be E ➞ E + B, is %v", r)
	}
	if g.Rule(6) != nil || g.Rule(-1) != nil {
		t.Errorf("Expected invalid rule numbers to yield nil")
	}
}

func TestSymbolOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	g, err := Parse("G", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(symbolRunes(g.Terminals())); s != "*+01" {
		t.Errorf("Expected terminals in order of occurrence '*+01', have %q", s)
	}
	if s := string(symbolRunes(g.NonTerminals())); s != "EB" {
		t.Errorf("Expected non-terminals 'EB', have %q", s)
	}
	var all []lrparser.Symbol
	g.EachSymbol(func(A lrparser.Symbol) {
		all = append(all, A)
	})
	if s := string(symbolRunes(all)); s != "*+01EB" {
		t.Errorf("Expected EachSymbol to visit '*+01EB', visited %q", s)
	}
	if !g.IsTerminal('+') || g.IsTerminal('E') || !g.IsNonTerminal('B') {
		t.Errorf("Symbol classification is wrong")
	}
}

func TestWhitespaceAndUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	g, err := Parse("G", "  S   ->  a  S  β \r\n\n\t\nS ->\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Fatalf("Expected 3 rules, have %d", g.Size())
	}
	if s := string(symbolRunes(g.Rule(1).RHS())); s != "aSβ" {
		t.Errorf("Expected RHS 'aSβ', have %q", s)
	}
	if !g.Rule(2).IsEpsilon() {
		t.Errorf("Expected rule 2 to be an epsilon rule, is %v", g.Rule(2))
	}
	if !g.IsTerminal('β') {
		t.Errorf("Expected β to be a terminal")
	}
}

func TestMalformedProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	inputs := []struct {
		text string
		line int
	}{
		{"E -> a\nE a", 2},
		{"E -> a -> b", 1},
		{"\n\n -> a", 3},
		{"$ -> a", 1},
		{"S -> a$", 1},
		{"S -> a\nS -> $", 2},
		{"E => a", 1},
	}
	for _, input := range inputs {
		_, err := Parse("G", input.text)
		var merr *MalformedProductionError
		if !errors.As(err, &merr) {
			t.Errorf("Expected MalformedProductionError for %q, got %v", input.text, err)
			continue
		}
		if merr.Line != input.line {
			t.Errorf("Expected error for %q in line %d, is in line %d", input.text, input.line, merr.Line)
		}
		t.Logf("error = %v", err)
	}
}

func TestEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	if _, err := Parse("G", "\n  \n"); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("Expected ErrEmptyGrammar, got %v", err)
	}
}

func TestAugmentedSymbolCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	g, err := Parse("G", "A -> B\nB -> Cb\nC -> c")
	if err != nil {
		t.Fatal(err)
	}
	if S := g.AugmentedStart(); S != 'D' {
		t.Errorf("Expected augmented start symbol to skip B and C, is %v", S)
	}
	g, err = Parse("G", "# -> %#")
	if err != nil {
		t.Fatal(err)
	}
	if S := g.AugmentedStart(); S == lrparser.EndMarker || S == '%' {
		t.Errorf("Expected augmented start symbol to avoid $ and %%, is %v", S)
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS('S').N('A').T('a').End()
	r := b.LHS('A').T('b').End()
	b.LHS('A').Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Rule(r).LHS != 'A' || g.Rule(r).At(0) != 'b' {
		t.Errorf("Expected rule %d to be A ➞ b, is %v", r, g.Rule(r))
	}
	if len(g.FindNonTermRules('A')) != 2 {
		t.Errorf("Expected 2 rules for A, have %d", len(g.FindNonTermRules('A')))
	}
	b = NewBuilder("G")
	b.LHS('S').N('X').End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("Expected error for non-terminal without rules")
	}
	b = NewBuilder("G")
	b.LHS('S').T('S').End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("Expected error for terminal with rules")
	}
	b = NewBuilder("G")
	b.LHS('S').T('a').T(lrparser.EndMarker).End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("Expected error for end marker in right-hand side")
	}
}

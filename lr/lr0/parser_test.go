package lr0

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	lrparser "github.com/raiga0310/LR-parser"
	"github.com/raiga0310/LR-parser/ast"
	"github.com/raiga0310/LR-parser/grammar"
	"github.com/raiga0310/LR-parser/lr/scanner"
)

const exprGrammar = `
E -> E*B
E -> E+B
E -> B
B -> 0
B -> 1
`

const parenGrammar = `
E -> EE
E -> <E>
E -> <>
`

func compile(t *testing.T, text string, opts ...Option) *Parser {
	p, err := Compile(text, opts...)
	if err != nil {
		t.Fatalf("cannot compile grammar: %v", err)
	}
	return p
}

func TestAcceptedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, exprGrammar)
	for input, tree := range map[string]string{
		"1+1$":   "E[B[1],+,E[B[1]]]",
		"1+1*1$": "E[B[1],*,E[B[1],+,E[B[1]]]]",
		"1$":     "E[B[1]]",
		"0*1+0$": "E[B[0],+,E[B[1],*,E[B[0]]]]",
	} {
		forest, err := p.Parse(input)
		if err != nil {
			t.Errorf("Expected %q to be accepted, have %v", input, err)
			continue
		}
		if len(forest) != 1 || forest[0].String() != tree {
			t.Errorf("Expected %q to produce %s, have %v", input, tree, forest)
		}
	}
}

func TestParenGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, parenGrammar)
	if !p.Table().HasConflicts() {
		t.Errorf("Expected paren grammar to have table conflicts")
	}
	for input, tree := range map[string]string{
		"<<>><>$": "E[E[>,<],E[>,E[>,<],<]]",
		"<>$":     "E[>,<]",
		"<><><>$": "E[E[>,<],E[E[>,<],E[>,<]]]",
	} {
		forest, err := p.Parse(input)
		if err != nil {
			t.Errorf("Expected %q to be accepted, have %v", input, err)
			continue
		}
		if len(forest) != 1 || forest[0].String() != tree {
			t.Errorf("Expected %q to produce %s, have %v", input, tree, forest)
		}
	}
	if forest, err := p.Parse("<<>$"); err == nil || len(forest) != 0 {
		t.Errorf("Expected <<>$ to be rejected, have %v", forest)
	}
}

func TestRejectedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, exprGrammar)
	for input, reason := range map[string]Reason{
		"1+$":  UnexpectedSymbol,
		"11$":  UnexpectedSymbol,
		"$":    UnexpectedSymbol,
		"1+2$": UnknownSymbol,
		"1 +1": UnknownSymbol,
	} {
		forest, err := p.Parse(input)
		if len(forest) != 0 {
			t.Errorf("Expected empty forest for %q, have %v", input, forest)
		}
		var failure *ParseFailure
		if !errors.As(err, &failure) {
			t.Errorf("Expected parse failure for %q, have %v", input, err)
			continue
		}
		if failure.Reason != reason {
			t.Errorf("Expected %q to fail with %v, failed with %v", input, reason, failure.Reason)
		}
		if !errors.Is(err, ErrParseFailure) {
			t.Errorf("Expected error to match ErrParseFailure")
		}
	}
	_, err := p.Parse("1+2$")
	if f := err.(*ParseFailure); f.Symbol != '2' || f.Span != (lrparser.Span{2, 3}) {
		t.Errorf("Expected failure to point to '2' at (2…3), is %v", f)
	}
}

func TestExhaustedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, exprGrammar)
	forest, err := p.Parse("1+1")
	var failure *ParseFailure
	if !errors.As(err, &failure) || failure.Reason != UnexpectedEnd {
		t.Fatalf("Expected input without end marker to fail with %v, have %v", UnexpectedEnd, err)
	}
	if s := forest.String(); s != "[E[B[1]] + 1]" {
		t.Errorf("Expected partial forest [E[B[1]] + 1], have %s", s)
	}
	if forest, err = p.Parse(""); err == nil || len(forest) != 0 {
		t.Errorf("Expected empty input to fail with an empty forest")
	}
}

func TestOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, exprGrammar, AppendEndMarker(true), SkipWhitespace(true))
	forest, err := p.Parse(" 1 + 1 ")
	if err != nil {
		t.Fatalf("Expected input to be accepted, have %v", err)
	}
	if root := forest.Root(); root == nil || root.String() != "E[B[1],+,E[B[1]]]" {
		t.Errorf("Unexpected forest %v", forest)
	}
	if root := forest.Root(); root.Span() != (lrparser.Span{1, 6}) {
		t.Errorf("Expected root to span (1…6), has %v", root.Span())
	}
}

func TestParseTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, exprGrammar)
	tok := scanner.NewTokenizer(strings.NewReader("1*0"), scanner.AppendEndMarker(true))
	forest, err := p.ParseTokens(tok)
	if err != nil {
		t.Fatal(err)
	}
	if forest.String() != "[E[B[0],*,E[B[1]]]]" {
		t.Errorf("Unexpected forest %v", forest)
	}
}

func TestEpsilonRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	b := grammar.NewBuilder("Eps")
	b.LHS('S').N('A').N('B').End()
	b.LHS('A').T('a').N('A').End()
	b.LHS('A').Epsilon()
	b.LHS('B').T('b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p, err := CompileGrammar(g)
	if err != nil {
		t.Fatal(err)
	}
	forest, err := p.Parse("aab$")
	if err != nil {
		t.Fatal(err)
	}
	if s := forest.String(); s != "[S[B[b],A[A[A[],a],a]]]" {
		t.Errorf("Unexpected forest %s", s)
	}
	// the innermost A is empty, just before the 'b'
	var eps ast.Node
	ast.Walk(forest.Root(), ast.LtoR, func(n ast.Node, level int) bool {
		if !n.IsTerminal() && len(n.Children()) == 0 {
			eps = n
		}
		return true
	})
	if eps == nil || eps.Span() != (lrparser.Span{2, 2}) {
		t.Errorf("Expected epsilon node at (2…2), have %v", eps)
	}
	if forest, err = p.Parse("b$"); err != nil || forest.String() != "[S[B[b],A[]]]" {
		t.Errorf("Expected b$ to produce S[B[b],A[]], have %v, %v", forest, err)
	}
}

func TestConstructionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	_, err := Compile("E -> E+B\nE B\n")
	var cerr *ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected construction error, have %v", err)
	}
	var merr *grammar.MalformedProductionError
	if !errors.As(err, &merr) || merr.Line != 2 {
		t.Errorf("Expected malformed production in line 2, have %v", err)
	}
	if _, err = Compile("\n\n"); !errors.Is(err, grammar.ErrEmptyGrammar) {
		t.Errorf("Expected empty grammar error, have %v", err)
	}
	if _, err = CompileGrammar(nil); !errors.Is(err, grammar.ErrEmptyGrammar) {
		t.Errorf("Expected empty grammar error for nil grammar, have %v", err)
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.lr0")
	defer teardown()
	//
	p := compile(t, parenGrammar)
	inputs := []string{"<<>><>$", "<>$", "<<>$", "<><><>$"}
	expected := make([]string, len(inputs))
	for i, input := range inputs {
		forest, _ := p.Parse(input)
		expected[i] = forest.String()
	}
	// test tracers write to t.Log unsynchronized
	for _, key := range []string{"lrparser.lr0", "lrparser.lr", "lrparser.scanner", "lrparser.ast"} {
		tracing.Select(key).SetTraceLevel(tracing.LevelError)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for k := 0; k < 10; k++ {
				i := (n + k) % len(inputs)
				forest, _ := p.Parse(inputs[i])
				if s := forest.String(); s != expected[i] {
					errs <- s
				}
			}
		}(n)
	}
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Errorf("Concurrent parse produced unexpected forest %s", s)
	}
}

package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	lrparser "github.com/raiga0310/LR-parser"
)

func leaf(sym rune, pos uint64) *Terminal {
	return NewTerminal(lrparser.Symbol(sym), lrparser.Span{pos, pos + 1})
}

// E[B[1],+,E[B[1]]] as produced for "1+1$"
func sampleTree() *NonTerminal {
	left := NewNonTerminal('E', 3, NewNonTerminal('B', 5, leaf('1', 0)))
	right := NewNonTerminal('B', 5, leaf('1', 2))
	return NewNonTerminal('E', 2, right, leaf('+', 1), left)
}

func TestTreeString(t *testing.T) {
	tree := sampleTree()
	if s := tree.String(); s != "E[B[1],+,E[B[1]]]" {
		t.Errorf("Expected E[B[1],+,E[B[1]]], have %s", s)
	}
	if tree.Span() != (lrparser.Span{0, 3}) {
		t.Errorf("Expected tree to span (0…3), has %v", tree.Span())
	}
	f := Forest{NewNonTerminal('E', 3, leaf('1', 0)), leaf('+', 1)}
	if s := f.String(); s != "[E[1] +]" {
		t.Errorf("Expected forest [E[1] +], have %s", s)
	}
	if f.Root() != nil {
		t.Errorf("Expected multi-rooted forest to have no root")
	}
	if eps := NewNonTerminal('A', 1); eps.String() != "A[]" || !eps.Span().IsNull() {
		t.Errorf("Expected epsilon node A[] with null span, have %s %v", eps, eps.Span())
	}
}

func TestEqual(t *testing.T) {
	if !Equal(sampleTree(), sampleTree()) {
		t.Errorf("Expected identically built trees to be equal")
	}
	other := NewNonTerminal('E', 2, leaf('1', 0), leaf('+', 1), leaf('1', 2))
	if Equal(sampleTree(), other) {
		t.Errorf("Expected trees of different shape to differ")
	}
	if Equal(leaf('1', 0), NewNonTerminal('1', 0)) {
		t.Errorf("Expected terminal and non-terminal to differ")
	}
	if !Equal(nil, nil) || Equal(nil, leaf('1', 0)) {
		t.Errorf("Expected nil to equal only nil")
	}
	if !EqualForests(Forest{sampleTree()}, Forest{sampleTree()}) || EqualForests(Forest{}, Forest{sampleTree()}) {
		t.Errorf("Forest comparison broken")
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.ast")
	defer teardown()
	//
	var b bytes.Buffer
	if err := Dump(&b, sampleTree()); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"E",
		"    B",
		"        1",
		"    +",
		"    E",
		"        B",
		"            1",
		"",
	}, "\n")
	if b.String() != expected {
		t.Errorf("Expected dump\n%s\nhave\n%s", expected, b.String())
	}
}

func TestWalkDirections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.ast")
	defer teardown()
	//
	collect := func(dir Direction) string {
		var b strings.Builder
		Walk(sampleTree(), dir, func(n Node, level int) bool {
			b.WriteRune(rune(n.Symbol()))
			return true
		})
		return b.String()
	}
	if s := collect(LtoR); s != "EB1+EB1" {
		t.Errorf("Expected pre-order LtoR EB1+EB1, have %s", s)
	}
	if s := collect(RtoL); s != "EEB1+B1" {
		t.Errorf("Expected pre-order RtoL EEB1+B1, have %s", s)
	}
	count := 0
	Walk(sampleTree(), LtoR, func(n Node, level int) bool {
		count++
		return level == 0
	})
	if count != 4 {
		t.Errorf("Expected pruned walk to visit 4 nodes, visited %d", count)
	}
}

// yield collects the terminals of a tree, in order of traversal
type yield struct {
	enter int
}

func (y *yield) EnterRule(nt *NonTerminal, ctxt RuleCtxt) bool {
	y.enter++
	return ctxt.Level < 1
}

func (y *yield) ExitRule(nt *NonTerminal, values []interface{}, ctxt RuleCtxt) interface{} {
	var b strings.Builder
	for _, v := range values {
		if v != nil {
			b.WriteString(v.(string))
		}
	}
	return b.String()
}

func (y *yield) Terminal(t *Terminal, ctxt RuleCtxt) interface{} {
	return t.Sym.String()
}

func TestTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrparser.ast")
	defer teardown()
	//
	y := &yield{}
	if v := TopDown(sampleTree(), y, RtoL, Continue); v != "1+1" {
		t.Errorf("Expected yield 1+1, have %v", v)
	}
	if y.enter != 4 {
		t.Errorf("Expected 4 rule nodes to be entered, have %d", y.enter)
	}
	y = &yield{}
	if v := TopDown(sampleTree(), y, LtoR, Break); v != "+" {
		t.Errorf("Expected broken traversal to yield +, have %v", v)
	}
}

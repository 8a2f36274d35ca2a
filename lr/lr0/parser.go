package lr0

import (
	"fmt"
	"strings"

	lrparser "github.com/raiga0310/LR-parser"
	"github.com/raiga0310/LR-parser/ast"
	"github.com/raiga0310/LR-parser/grammar"
	"github.com/raiga0310/LR-parser/lr"
	"github.com/raiga0310/LR-parser/lr/scanner"
)

// Parser is an LR(0)-parser type. Create one with Compile, CompileGrammar
// or NewParser.
type Parser struct {
	g     *grammar.Grammar
	table *lr.Table
	opts  []scanner.Option // options for tokenizers created by Parse
}

// Option configures a parser.
type Option func(p *Parser)

// AppendEndMarker lets Parse append the end marker to every input string.
func AppendEndMarker(b bool) Option {
	return func(p *Parser) {
		p.opts = append(p.opts, scanner.AppendEndMarker(b))
	}
}

// SkipWhitespace lets Parse ignore white space within input strings.
func SkipWhitespace(b bool) Option {
	return func(p *Parser) {
		p.opts = append(p.opts, scanner.SkipWhitespace(b))
	}
}

// Compile reads a grammar from text and creates a parser for it. Errors in
// the grammar text are returned as a *ConstructionError, wrapping a
// *grammar.MalformedProductionError.
func Compile(text string, opts ...Option) (*Parser, error) {
	g, err := grammar.Parse("G", text)
	if err != nil {
		return nil, &ConstructionError{Grammar: "G", Err: err}
	}
	return CompileGrammar(g, opts...)
}

// CompileGrammar creates the parse tables for a grammar and a parser using them.
func CompileGrammar(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	if g == nil || g.Size() < 2 {
		return nil, &ConstructionError{Err: grammar.ErrEmptyGrammar}
	}
	lrgen := lr.NewTableGenerator(g)
	lrgen.CreateTables()
	if lrgen.HasConflicts {
		tracer().Infof("grammar %s is not LR(0), %d table conflicts resolved first-come",
			g.Name, len(lrgen.Table().Conflicts()))
	}
	return NewParser(g, lrgen.Table(), opts...), nil
}

// NewParser creates an LR(0) parser from a grammar and a parse table for it.
func NewParser(g *grammar.Grammar, table *lr.Table, opts ...Option) *Parser {
	p := &Parser{g: g, table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Table returns the parse table of the parser.
func (p *Parser) Table() *lr.Table {
	return p.table
}

// Parse parses an input string, one symbol per code point.
func (p *Parser) Parse(input string) (ast.Forest, error) {
	return p.ParseTokens(scanner.NewTokenizer(strings.NewReader(input), p.opts...))
}

// We store pairs of state-IDs and tree nodes on the parse stack.
type stackitem struct {
	stateID int
	node    ast.Node
}

// ParseTokens starts a new parse, reading symbols from a tokenizer until it
// delivers scanner.EOF or the parser accepts.
//
// The parser returns the forest of completed trees if the input has been
// accepted. All of its state lives on the call stack.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) (ast.Forest, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.g == nil || p.table == nil {
		tracer().Errorf("LR(0)-parser not initialized")
		return nil, fmt.Errorf("LR(0)-parser not initialized")
	}
	stack := make([]stackitem, 1, 64)
	stack[0] = stackitem{stateID: 0}
	token := scan.NextToken()
	for token.Symbol() != scanner.EOF {
		sym := token.Symbol()
		tos := stack[len(stack)-1]
		action, known := p.table.Lookup(tos.stateID, sym)
		tracer().Debugf("action(%d,%s)=%v", tos.stateID, sym, action)
		if !known {
			return ast.Forest{}, p.fail(UnknownSymbol, tos.stateID, token)
		}
		switch action.Kind {
		case lr.ShiftAction:
			tracer().Debugf("shifting %s, next state = %d", sym, action.Target)
			stack = append(stack, stackitem{
				stateID: action.Target,
				node:    ast.NewTerminal(sym, token.Span()),
			})
			token = scan.NextToken()
		case lr.ReduceAction:
			rule := p.g.Rule(action.Target)
			var nt *ast.NonTerminal
			stack, nt = reduce(stack, rule)
			if nt == nil {
				return ast.Forest{}, p.fail(UnexpectedSymbol, tos.stateID, token)
			}
			if rule.IsEpsilon() { // epsilon was just before lookahead
				pos := token.Span().From()
				nt.Extent = lrparser.Span{pos, pos}
			}
			state := stack[len(stack)-1].stateID
			next := p.table.Action(state, rule.LHS)
			if next.Kind != lr.GotoAction {
				f := p.fail(MissingGoto, state, token)
				f.Symbol = rule.LHS
				return ast.Forest{}, f
			}
			tracer().Debugf("reduced %v, next state = %d", rule, next.Target)
			stack = append(stack, stackitem{stateID: next.Target, node: nt})
		case lr.AcceptAction:
			tracer().Infof("input accepted")
			return drain(stack), nil
		default:
			return ast.Forest{}, p.fail(UnexpectedSymbol, tos.stateID, token)
		}
	}
	f := p.fail(UnexpectedEnd, stack[len(stack)-1].stateID, token)
	return drain(stack), f
}

// reduce performs a reduce action for a rule
//
//    LHS ➞ X1 … Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as states
//
//    [TOS]  Sn(Xn) … S1(X1)  …
//
// The new node takes the popped nodes as children, in order of popping.
// If the stack holds fewer than n symbols, reduce returns a nil node.
func reduce(stack []stackitem, rule *grammar.Rule) ([]stackitem, *ast.NonTerminal) {
	tracer().Infof("reduce %v", rule)
	n := rule.Len()
	if n > len(stack)-1 {
		tracer().Errorf("stack underflow reducing %v", rule)
		return stack, nil
	}
	children := make([]ast.Node, 0, n)
	for i := len(stack) - 1; i >= len(stack)-n; i-- {
		if sym := rule.At(i - len(stack) + n); stack[i].node.Symbol() != sym {
			tracer().Errorf("Expected %v on top of stack, got %v", sym, stack[i].node.Symbol())
		}
		children = append(children, stack[i].node)
	}
	return stack[:len(stack)-n], ast.NewNonTerminal(rule.LHS, rule.Serial, children...)
}

// drain collects the nodes on the stack, bottom first.
func drain(stack []stackitem) ast.Forest {
	forest := make(ast.Forest, 0, len(stack)-1)
	for _, item := range stack[1:] {
		forest = append(forest, item.node)
	}
	return forest
}

func (p *Parser) fail(reason Reason, state int, token lrparser.Token) *ParseFailure {
	f := &ParseFailure{
		Reason: reason,
		State:  state,
		Symbol: token.Symbol(),
		Span:   token.Span(),
	}
	tracer().Infof("%v", f)
	return f
}

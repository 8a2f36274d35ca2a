package grammar

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	lrparser "github.com/raiga0310/LR-parser"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the grammar scanner.
const (
	tokArrow   = iota + 1 // "->"
	tokNewline            // end of a production
	tokSymbol             // one byte of a grammar symbol
)

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// grammarLexer returns the DFA-based scanner for grammar text. It is compiled
// once and shared; lexmachine scanners do not modify a compiled lexer.
//
// Symbols are matched byte-wise. Whitespace bytes never occur inside a UTF-8
// sequence, so the bytes of one side of a production may be decoded as a
// whole later on.
func grammarLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`->`), makeToken(tokArrow))
		lx.Add([]byte(`\n`), makeToken(tokNewline))
		lx.Add([]byte(`( |\t|\r)+`), skip)
		lx.Add([]byte(`.`), makeToken(tokSymbol))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling grammar DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, nil, m), nil
	}
}

// Parse reads a grammar from text, one production per line. It returns a
// *MalformedProductionError for the first line which is not of the form
// LHS -> RHS, and ErrEmptyGrammar if text contains no production at all.
func Parse(name string, text string) (*Grammar, error) {
	lx, err := grammarLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("cannot scan grammar %s: %w", name, err)
	}
	lines := strings.Split(text, "\n")
	var prods []production
	line := lineReader{lineno: 1}
	for tok, err, eos := scanner.Next(); ; tok, err, eos = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				tracer().Errorf("grammar scanner stuck at %d:%d", ui.FailLine, ui.FailColumn)
			}
			return nil, fmt.Errorf("cannot scan grammar %s: %w", name, err)
		}
		if eos || tok.(*lexmachine.Token).Type == tokNewline {
			p, ok, perr := line.production(lines)
			if perr != nil {
				return nil, perr
			}
			if ok {
				tracer().Debugf("production %c -> %s", p.lhs, string(symbolRunes(p.rhs)))
				prods = append(prods, p)
			}
			if eos {
				break
			}
			line = lineReader{lineno: line.lineno + 1}
			continue
		}
		token := tok.(*lexmachine.Token)
		switch token.Type {
		case tokArrow:
			line.arrows++
		case tokSymbol:
			if line.arrows == 0 {
				line.left = append(line.left, token.Lexeme...)
			} else {
				line.right = append(line.right, token.Lexeme...)
			}
		}
	}
	return newGrammar(name, prods)
}

// lineReader collects the tokens of a single line of grammar text.
type lineReader struct {
	lineno int
	arrows int
	left   []byte
	right  []byte
}

// production checks the tokens collected for a line. It returns false for
// blank lines.
func (l lineReader) production(lines []string) (production, bool, error) {
	lhs := nonSpace(l.left)
	rhs := nonSpace(l.right)
	if l.arrows == 0 && len(lhs) == 0 {
		return production{}, false, nil // blank line
	}
	text := ""
	if l.lineno <= len(lines) {
		text = strings.TrimRight(lines[l.lineno-1], "\r")
	}
	if l.arrows != 1 {
		return production{}, false, malformed(l.lineno, text, "expected exactly one '->'")
	}
	if len(lhs) == 0 {
		return production{}, false, malformed(l.lineno, text, "empty left-hand side")
	}
	if lhs[0] == lrparser.EndMarker {
		return production{}, false, malformed(l.lineno, text, "end marker used as left-hand side")
	}
	for _, sym := range rhs {
		if sym == lrparser.EndMarker {
			return production{}, false, malformed(l.lineno, text, "end marker used in right-hand side")
		}
	}
	return production{lhs: lhs[0], rhs: rhs}, true, nil
}

// nonSpace decodes UTF-8 bytes into symbols, dropping any Unicode white space.
func nonSpace(b []byte) []lrparser.Symbol {
	var syms []lrparser.Symbol
	for _, r := range string(b) {
		if !unicode.IsSpace(r) {
			syms = append(syms, lrparser.Symbol(r))
		}
	}
	return syms
}

func symbolRunes(syms []lrparser.Symbol) []rune {
	runes := make([]rune, len(syms))
	for i, sym := range syms {
		runes[i] = rune(sym)
	}
	return runes
}

/*
Package scanner defines an interface for tokenizers to be used with the parsers
of package lr0, together with a default implementation.

Grammars of this module work on single characters, so the default tokenizer
delivers every code point of the input as a token of its own. Spans count
code points, not bytes.

	tok := scanner.NewTokenizer(strings.NewReader("1 + 1"),
	    scanner.SkipWhitespace(true), scanner.AppendEndMarker(true))
	for t := tok.NextToken(); t.Symbol() != scanner.EOF; t = tok.NextToken() {
	    …
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	lrparser "github.com/raiga0310/LR-parser"
)

// tracer traces with key 'lrparser.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrparser.scanner")
}

// EOF is the symbol of the token delivered at the end of input. It is not a
// valid code point and therefore never part of a grammar.
const EOF lrparser.Symbol = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lrparser.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, reading code points from an
// io.Reader. Create one with NewTokenizer.
type DefaultTokenizer struct {
	input     *bufio.Reader
	pos       uint64      // number of code points read so far
	atEnd     bool        // input is exhausted
	Error     func(error) // error handler
	skipSpace bool        // do not pass white space
	endMarker bool        // deliver lrparser.EndMarker before EOF
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// NewTokenizer creates a tokenizer delivering one token per code point of input.
func NewTokenizer(input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		input: bufio.NewReader(input),
		Error: logError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. After the input is exhausted
// it returns tokens with symbol EOF.
func (t *DefaultTokenizer) NextToken() lrparser.Token {
	for !t.atEnd {
		r, size, err := t.input.ReadRune()
		if err != nil {
			if err != io.EOF {
				t.Error(fmt.Errorf("cannot read input at position %d: %w", t.pos, err))
			}
			t.atEnd = true
			break
		}
		start := t.pos
		t.pos++
		if r == utf8.RuneError && size == 1 {
			t.Error(fmt.Errorf("invalid UTF-8 encoding at position %d", start))
		}
		if t.skipSpace && unicode.IsSpace(r) {
			continue
		}
		return MakeToken(lrparser.Symbol(r), lrparser.Span{start, t.pos})
	}
	if t.endMarker {
		t.endMarker = false
		tracer().Debugf("appending end marker at position %d", t.pos)
		return MakeToken(lrparser.EndMarker, lrparser.Span{t.pos, t.pos + 1})
	}
	tracer().Debugf("DefaultTokenizer reached end of input")
	return MakeToken(EOF, lrparser.Span{t.pos, t.pos})
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the default
// tokenizer.
type DefaultToken struct {
	sym  lrparser.Symbol
	span lrparser.Span
}

var _ lrparser.Token = DefaultToken{}

// MakeToken creates a token for a symbol at a given span.
func MakeToken(sym lrparser.Symbol, span lrparser.Span) DefaultToken {
	return DefaultToken{sym: sym, span: span}
}

func (t DefaultToken) Symbol() lrparser.Symbol {
	return t.sym
}

func (t DefaultToken) Span() lrparser.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.sym == EOF {
		return fmt.Sprintf("<EOF>%v", t.span)
	}
	return fmt.Sprintf("%q%v", rune(t.sym), t.span)
}

// --- Tokenizer options -----------------------------------------------------

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// SkipWhitespace sets or clears option SkipWhitespace: do not deliver
// tokens for Unicode white space. Skipped code points still count for spans.
func SkipWhitespace(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.skipSpace = b
	}
}

// AppendEndMarker sets or clears option AppendEndMarker: deliver a token for
// lrparser.EndMarker after the input is exhausted and before EOF.
func AppendEndMarker(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.endMarker = b
	}
}

// Tokens reads all tokens from a tokenizer, excluding the final EOF token.
func Tokens(t Tokenizer) []lrparser.Token {
	var toks []lrparser.Token
	for tok := t.NextToken(); tok.Symbol() != EOF; tok = t.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

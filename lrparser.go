package lrparser

import "fmt"

// --- Symbols ---------------------------------------------------------------

// Symbol is a single character of a grammar's alphabet. Terminals and
// non-terminals share the same type; which one a symbol is depends on the
// grammar it is used in.
type Symbol rune

// EndMarker is the end-of-input symbol. It is not part of any grammar, but
// occupies a column in every parse table. Clients have to append it to
// input strings.
const EndMarker Symbol = '$'

func (sym Symbol) String() string {
	return string(sym)
}

// --- Tokens ----------------------------------------------------------------

// Token is an input symbol together with its position. Tokens are produced by
// tokenizers (see package lr/scanner) and consumed by the parser.
type Token interface {
	Symbol() Symbol
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end. Positions count
// symbols, not bytes.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

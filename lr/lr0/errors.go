package lr0

import (
	"errors"
	"fmt"

	lrparser "github.com/raiga0310/LR-parser"
)

// ErrParseFailure is matched by every *ParseFailure with errors.Is.
var ErrParseFailure = errors.New("parse failure")

// Reason tells why a parse has failed.
type Reason int

// Reasons for a failing parse.
const (
	UnexpectedSymbol Reason = iota + 1 // table has no action for the symbol
	UnknownSymbol                      // symbol is not part of the grammar
	UnexpectedEnd                      // input exhausted before accept
	MissingGoto                        // no goto entry after a reduce
)

func (r Reason) String() string {
	switch r {
	case UnexpectedSymbol:
		return "unexpected symbol"
	case UnknownSymbol:
		return "unknown symbol"
	case UnexpectedEnd:
		return "unexpected end of input"
	case MissingGoto:
		return "missing goto"
	}
	return "unknown reason"
}

// ParseFailure is returned for input which is not accepted by a parser.
type ParseFailure struct {
	Reason Reason
	State  int             // state on top of the stack
	Symbol lrparser.Symbol // current input symbol, or LHS for MissingGoto
	Span   lrparser.Span   // input position of Symbol
}

func (f *ParseFailure) Error() string {
	if f.Reason == UnexpectedEnd {
		return fmt.Sprintf("%s: %s in state %d at %d", ErrParseFailure, f.Reason, f.State, f.Span.From())
	}
	return fmt.Sprintf("%s: %s %q in state %d at %v", ErrParseFailure, f.Reason, rune(f.Symbol),
		f.State, f.Span)
}

// Is makes errors.Is(err, ErrParseFailure) hold.
func (f *ParseFailure) Is(target error) bool {
	return target == ErrParseFailure
}

// ConstructionError is returned if no parser can be built for a grammar.
type ConstructionError struct {
	Grammar string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct parser for grammar %q: %v", e.Grammar, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

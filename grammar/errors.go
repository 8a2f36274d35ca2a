package grammar

import "fmt"

// MalformedProductionError is returned for a line of grammar text which is not
// a production of the form LHS -> RHS.
type MalformedProductionError struct {
	Line   int    // line number, starting at 1
	Text   string // the offending line
	Reason string // what is wrong with it
}

func (e *MalformedProductionError) Error() string {
	return fmt.Sprintf("invalid production format in line %d (%s): %q", e.Line, e.Reason, e.Text)
}

func malformed(lineno int, text string, reason string) *MalformedProductionError {
	return &MalformedProductionError{
		Line:   lineno,
		Text:   text,
		Reason: reason,
	}
}

package lr

import (
	"bytes"
	"fmt"

	lrparser "github.com/raiga0310/LR-parser"
	"github.com/raiga0310/LR-parser/lr/sparse"
)

// ActionKind discriminates the entries of a parse table.
type ActionKind int8

// Kinds of actions. ErrorAction is the default for every cell.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	GotoAction
	AcceptAction
)

// Action is a parse table entry. For shift and goto actions Target is a
// state ID, for reduce actions it is the serial number of the rule to reduce
// (always ≥ 1), otherwise it is 0.
type Action struct {
	Kind   ActionKind
	Target int
}

var kindNames = map[ActionKind]string{
	ErrorAction:  "error",
	ShiftAction:  "shift",
	ReduceAction: "reduce",
	GotoAction:   "goto",
	AcceptAction: "accept",
}

// Constructors for actions.
func Shift(state int) Action { return Action{Kind: ShiftAction, Target: state} }
func Reduce(rule int) Action { return Action{Kind: ReduceAction, Target: rule} }
func GotoState(state int) Action {
	return Action{Kind: GotoAction, Target: state}
}
func Accept() Action { return Action{Kind: AcceptAction} }

// IsError is true for empty cells.
func (a Action) IsError() bool {
	return a.Kind == ErrorAction
}

// String returns the conventional short form of an action: "s3", "r2", "g4",
// "acc", or "" for an error entry.
func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.Target)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.Target)
	case GotoAction:
		return fmt.Sprintf("g%d", a.Target)
	case AcceptAction:
		return "acc"
	}
	return ""
}

// Actions are stored in a sparse int32 matrix, with the kind in the lowest
// 3 bits and the target in the remaining bits.
func (a Action) encode() int32 {
	return int32(a.Target)<<3 | int32(a.Kind)
}

func decode(v int32) Action {
	if v == sparse.DefaultNullValue {
		return Action{}
	}
	return Action{Kind: ActionKind(v & 7), Target: int(v >> 3)}
}

// Conflict records a write to a table cell which has been rejected because the
// cell already held a different action.
type Conflict struct {
	State    int
	Symbol   lrparser.Symbol
	Kept     Action
	Rejected Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s/%s conflict in state %d on %q: kept %s, dropped %s",
		kindNames[c.Kept.Kind], kindNames[c.Rejected.Kind], c.State, c.Symbol, c.Kept, c.Rejected)
}

// --- Parse table -----------------------------------------------------------

// Table is an LR(0) parse table, combining ACTION and GOTO. Columns are
// the terminals in order of first occurrence, then the end marker, then the
// non-terminals. A Table is immutable after construction and may be shared
// between goroutines.
type Table struct {
	symbols   []lrparser.Symbol
	columns   map[lrparser.Symbol]int
	terminals int // number of columns for terminals, including the end marker
	matrix    *sparse.IntMatrix
	conflicts []Conflict
}

func newTable(states int, terminals, nonterminals []lrparser.Symbol) *Table {
	t := &Table{columns: make(map[lrparser.Symbol]int)}
	add := func(sym lrparser.Symbol) {
		if _, ok := t.columns[sym]; !ok {
			t.columns[sym] = len(t.symbols)
			t.symbols = append(t.symbols, sym)
		}
	}
	for _, a := range terminals {
		add(a)
	}
	add(lrparser.EndMarker)
	t.terminals = len(t.symbols)
	for _, A := range nonterminals {
		add(A)
	}
	t.matrix = sparse.NewIntMatrix(states, len(t.symbols), sparse.DefaultNullValue)
	tracer().Infof("parse table of size %d x %d", states, len(t.symbols))
	return t
}

// Symbols returns the column symbols of the table.
func (t *Table) Symbols() []lrparser.Symbol {
	return append([]lrparser.Symbol(nil), t.symbols...)
}

// States returns the number of rows, i.e. the number of CFSM states.
func (t *Table) States() int {
	return t.matrix.M()
}

// Column returns the column index for a symbol, and false if the symbol is
// not part of the table's alphabet.
func (t *Table) Column(sym lrparser.Symbol) (int, bool) {
	col, ok := t.columns[sym]
	return col, ok
}

// IsTerminalColumn is true for columns of terminals and of the end marker.
func (t *Table) IsTerminalColumn(col int) bool {
	return col >= 0 && col < t.terminals
}

// Action returns the action for a state and a symbol. Unknown symbols and
// states yield an error action.
func (t *Table) Action(state int, sym lrparser.Symbol) Action {
	a, _ := t.Lookup(state, sym)
	return a
}

// Lookup returns the action for a state and a symbol, and false if sym is not
// part of the table's alphabet.
func (t *Table) Lookup(state int, sym lrparser.Symbol) (Action, bool) {
	col, ok := t.columns[sym]
	if !ok {
		return Action{}, false
	}
	return t.Cell(state, col), true
}

// Cell returns the action at (state, col).
func (t *Table) Cell(state, col int) Action {
	return decode(t.matrix.Value(state, col))
}

// Conflicts returns all rejected writes, in the order they occurred.
func (t *Table) Conflicts() []Conflict {
	return append([]Conflict(nil), t.conflicts...)
}

// HasConflicts is true if at least one cell had more than one candidate action.
func (t *Table) HasConflicts() bool {
	return len(t.conflicts) > 0
}

// write stores an action into an error cell. Occupied cells are never
// overwritten; a different action for an occupied cell is recorded as a
// conflict.
func (t *Table) write(state int, sym lrparser.Symbol, a Action) bool {
	col := t.columns[sym]
	ok, old := t.matrix.SetIfNull(state, col, a.encode())
	if !ok {
		if kept := decode(old); kept != a {
			c := Conflict{State: state, Symbol: sym, Kept: kept, Rejected: a}
			tracer().Infof("%s", c)
			t.conflicts = append(t.conflicts, c)
		}
		return false
	}
	tracer().Debugf("    action(%d,%s) = %s", state, sym, a)
	return true
}

// String renders the table as plain text, one row per state.
func (t *Table) String() string {
	var b bytes.Buffer
	b.WriteString("state |")
	for _, sym := range t.symbols {
		b.WriteString(fmt.Sprintf(" %4s", sym))
	}
	b.WriteString("\n")
	for state := 0; state < t.States(); state++ {
		b.WriteString(fmt.Sprintf("%5d |", state))
		for col := range t.symbols {
			b.WriteString(fmt.Sprintf(" %4s", t.Cell(state, col)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	lrparser "github.com/raiga0310/LR-parser"
	"github.com/raiga0310/LR-parser/grammar"
)

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int      // serial ID of this state
	items  *ItemSet // configuration items within this state
	Accept bool     // is this an accepting state?
}

// CFSM edge between 2 states, directed and with a grammar symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label lrparser.Symbol
}

type edgeKey struct {
	from  int
	label lrparser.Symbol
}

// Items returns the closed item set of a state.
func (s *CFSMState) Items() *ItemSet {
	return s.items
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Dump()
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, i := range s.items.Items() {
		if i.rule.Serial == 0 && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes.
type CFSM struct {
	g       *grammar.Grammar        // this CFSM is for Grammar g
	states  *treeset.Set            // all the states, ordered by ID
	edges   *arraylist.List         // all the edges between states, in order of creation
	index   map[string][]*CFSMState // states by digest of their item sets
	targets map[edgeKey]*CFSMState  // transitions
	S0      *CFSMState              // start state
}

// create an empty (initial) CFSM automaton.
func emptyCFSM(g *grammar.Grammar) *CFSM {
	return &CFSM{
		g:       g,
		states:  treeset.NewWith(stateComparator),
		edges:   arraylist.New(),
		index:   make(map[string][]*CFSMState),
		targets: make(map[edgeKey]*CFSMState),
	}
}

// addState adds a state for an item set, if no state with an equal item set
// is present. It returns the state for iset and true if it has been created.
func (c *CFSM) addState(iset *ItemSet) (*CFSMState, bool) {
	d := iset.digest()
	if s := c.findStateByItems(iset, d); s != nil {
		return s, false
	}
	s := &CFSMState{ID: c.states.Size(), items: iset}
	s.Accept = s.containsCompletedStartRule()
	c.states.Add(s)
	c.index[d] = append(c.index[d], s)
	return s, true
}

// findStateByItems finds a CFSM state by the contained item set, given the
// item set's digest. Digests only pre-select candidates; item sets are
// compared for equality.
func (c *CFSM) findStateByItems(iset *ItemSet, digest string) *CFSMState {
	for _, s := range c.index[digest] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym lrparser.Symbol) {
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
	c.targets[edgeKey{from: s0.ID, label: sym}] = s1
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= c.states.Size() {
		return nil
	}
	return c.states.Values()[id].(*CFSMState)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	vals := c.states.Values()
	states := make([]*CFSMState, len(vals))
	for n, v := range vals {
		states[n] = v.(*CFSMState)
	}
	return states
}

// Edge returns the state reached from s by a transition on A, or nil.
func (c *CFSM) Edge(s *CFSMState, A lrparser.Symbol) *CFSMState {
	return c.targets[edgeKey{from: s.ID, label: A}]
}

// EachEdge calls f for every transition, in order of creation.
func (c *CFSM) EachEdge(f func(from, to *CFSMState, label lrparser.Symbol)) {
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		f(e.from, e.to, e.label)
	}
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR(0) parser tables.
// Clients usually create a Grammar G and then a table generator for it.
// TableGenerator.CreateTables() constructs the CFSM and the parse table
// for an LR(0)-parser recognizing grammar G.
type TableGenerator struct {
	g            *grammar.Grammar
	dfa          *CFSM
	table        *Table
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a grammar.
func NewTableGenerator(g *grammar.Grammar) *TableGenerator {
	return &TableGenerator{g: g}
}

// Grammar returns the grammar this generator works on.
func (lrgen *TableGenerator) Grammar() *grammar.Grammar {
	return lrgen.g
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = lrgen.buildCFSM()
	}
	return lrgen.dfa
}

// Table returns the parse table. The table has to be built by calling
// CreateTables() previously.
func (lrgen *TableGenerator) Table() *Table {
	if lrgen.table == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.table
}

// CreateTables creates the CFSM and the parse table for the grammar.
func (lrgen *TableGenerator) CreateTables() {
	lrgen.dfa = lrgen.buildCFSM()
	lrgen.table = lrgen.BuildTable()
	lrgen.HasConflicts = lrgen.table.HasConflicts()
}

// AcceptingStates returns all states of the CFSM containing the completed
// start rule. Clients have to call CreateTables() first.
func (lrgen *TableGenerator) AcceptingStates() []int {
	if lrgen.dfa == nil {
		tracer().Errorf("tables not yet generated; call CreateTables() first")
		return nil
	}
	acc := make([]int, 0, 1)
	for _, state := range lrgen.dfa.States() {
		if state.Accept {
			acc = append(acc, state.ID)
		}
	}
	return acc
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are processed in order of their IDs, and for every state the
// symbols are tried in the order of Grammar.EachSymbol. This makes the
// numbering of states reproducible.
func (lrgen *TableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	closure0 := Closure(G, NewItemSet(StartItem(G)))
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator) // work-list of unprocessed states
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		G.EachSymbol(func(A lrparser.Symbol) {
			gotoset := Goto(G, s.items, A)
			if gotoset.Empty() {
				return
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				tracer().Debugf("new state %d for goto(%d, %s)", snew.ID, s.ID, A)
				snew.Dump()
				S.Add(snew)
			}
			cfsm.addEdge(s, snew, A)
		})
		tracer().Debugf("-----------------------------------------------------------------")
	}
	tracer().Infof("CFSM for %s has %d states", G.Name, cfsm.Size())
	return cfsm
}

// ===========================================================================

// BuildTable constructs the parse table from the CFSM. This is normally not
// called directly, but rather via CreateTables().
//
// For building the table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state, in canonical
// order.
// If an item has a symbol A immediately after the dot, we produce a shift
// entry for a terminal A or a goto entry for a non-terminal A. If an item's dot
// is behind the complete RHS of a rule, then
// - for the start rule: we produce an accept entry for the end marker
// - otherwise: we produce a reduce entry for every terminal and the end marker.
//
// Once a cell holds an action it is never overwritten.
func (lrgen *TableGenerator) BuildTable() *Table {
	dfa := lrgen.CFSM()
	G := lrgen.g
	table := newTable(dfa.Size(), G.Terminals(), G.NonTerminals())
	for _, state := range dfa.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.items.Items() {
			tracer().Debugf("item in s%d = %v", state.ID, i)
			if A, ok := i.PeekSymbol(); ok {
				next := dfa.Edge(state, A)
				if next == nil {
					continue
				}
				if G.IsNonTerminal(A) {
					table.write(state.ID, A, GotoState(next.ID))
				} else {
					table.write(state.ID, A, Shift(next.ID))
				}
			} else if i.rule.Serial == 0 { // we are at the end of the start rule
				table.write(state.ID, lrparser.EndMarker, Accept())
			} else { // we are at the end of a rule
				for _, a := range table.symbols[:table.terminals] {
					table.write(state.ID, a, Reduce(i.rule.Serial))
				}
			}
		}
	}
	return table
}

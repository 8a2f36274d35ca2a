package lr

import (
	"bytes"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	lrparser "github.com/raiga0310/LR-parser"
	"github.com/raiga0310/LR-parser/grammar"
)

// Item is a rule with a marker ("dot") inside its right hand side.
// Items are values; two items are equal if they refer to the same rule and
// have the same dot position.
type Item struct {
	rule *grammar.Rule
	dot  int
}

// StartItem returns the item S' ➞ • S for the augmented start rule of g.
func StartItem(g *grammar.Grammar) Item {
	return Item{rule: g.StartRule()}
}

// NewItem creates an item for rule r with the dot before RHS position dot.
// dot will be clipped to the length of the rule's RHS.
func NewItem(r *grammar.Rule, dot int) Item {
	if dot < 0 {
		dot = 0
	} else if dot > r.Len() {
		dot = r.Len()
	}
	return Item{rule: r, dot: dot}
}

// Rule returns the grammar rule of an item.
func (i Item) Rule() *grammar.Rule {
	return i.rule
}

// Dot returns the position of the dot within the RHS.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, if any.
func (i Item) PeekSymbol() (lrparser.Symbol, bool) {
	if i.dot >= i.rule.Len() {
		return 0, false
	}
	return i.rule.At(i.dot), true
}

// Advance returns a copy of i with the dot moved one symbol to the right.
func (i Item) Advance() Item {
	if i.dot < i.rule.Len() {
		i.dot++
	}
	return i
}

// IsComplete is true if the dot is behind the complete RHS.
func (i Item) IsComplete() bool {
	return i.dot >= i.rule.Len()
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteRune(rune(i.rule.LHS))
	b.WriteString(" ➞")
	rhs := i.rule.RHS()
	for n, sym := range rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteRune(rune(sym))
	}
	if i.dot == len(rhs) {
		b.WriteString(" •")
	}
	return b.String()
}

// itemComparator orders items by rule serial, then by dot position.
func itemComparator(a, b interface{}) int {
	i1 := a.(Item)
	i2 := b.(Item)
	if c := utils.IntComparator(i1.rule.Serial, i2.rule.Serial); c != 0 {
		return c
	}
	return utils.IntComparator(i1.dot, i2.dot)
}

// --- Item sets -------------------------------------------------------------

// ItemSet is a set of items, iterated in canonical order.
type ItemSet struct {
	items *treeset.Set
}

// NewItemSet creates a set from the given items.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{items: treeset.NewWith(itemComparator)}
	S.Add(items...)
	return S
}

// Add inserts items into the set.
func (S *ItemSet) Add(items ...Item) {
	for _, i := range items {
		S.items.Add(i)
	}
}

// Contains checks if an item is a member of S.
func (S *ItemSet) Contains(i Item) bool {
	return S.items.Contains(i)
}

// Size returns the number of items in S.
func (S *ItemSet) Size() int {
	return S.items.Size()
}

// Empty is true for a set without items.
func (S *ItemSet) Empty() bool {
	return S.items.Empty()
}

// Items returns the items of S in canonical order.
func (S *ItemSet) Items() []Item {
	vals := S.items.Values()
	items := make([]Item, len(vals))
	for n, v := range vals {
		items[n] = v.(Item)
	}
	return items
}

// Copy returns a shallow copy of S.
func (S *ItemSet) Copy() *ItemSet {
	return NewItemSet(S.Items()...)
}

// Equals is true if S and T contain the same items.
func (S *ItemSet) Equals(T *ItemSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	tit := T.items.Iterator()
	it := S.items.Iterator()
	for it.Next() && tit.Next() {
		if itemComparator(it.Value(), tit.Value()) != 0 {
			return false
		}
	}
	return true
}

// IsSupersetOf is true if every item of T is contained in S.
func (S *ItemSet) IsSupersetOf(T *ItemSet) bool {
	for _, i := range T.Items() {
		if !S.Contains(i) {
			return false
		}
	}
	return true
}

// itemKey is the hashable form of an item.
type itemKey struct {
	Rule int
	Dot  int
}

// digest returns a hash value for S. Equal sets have equal digests.
func (S *ItemSet) digest() string {
	keys := make([]itemKey, 0, S.Size())
	for _, i := range S.Items() {
		keys = append(keys, itemKey{Rule: i.rule.Serial, Dot: i.dot})
	}
	h, err := structhash.Hash(keys, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return ""
	}
	return h
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, item := range S.Items() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper
func (S *ItemSet) Dump() {
	for n, item := range S.Items() {
		tracer().Debugf("[%2d] %s", n+1, item)
	}
}

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item set: for every item with a
// non-terminal A after the dot, all items A ➞ • α are added, until a full
// pass over the set adds nothing new. S is left untouched.
func Closure(g *grammar.Grammar, S *ItemSet) *ItemSet {
	C := S.Copy() // add start items to closure
	for {
		added := false
		for _, item := range C.Items() {
			A, ok := item.PeekSymbol() // get symbol A after dot
			if !ok || !g.IsNonTerminal(A) {
				continue
			}
			for _, r := range g.FindNonTermRules(A) {
				if i := (Item{rule: r}); !C.Contains(i) {
					C.Add(i)
					added = true
				}
			}
		}
		if !added {
			return C
		}
	}
}

// Goto computes the closure of all items of S with A after the dot, with
// their dot advanced across A. If no item of S expects A, Goto returns an
// empty set.
func Goto(g *grammar.Grammar, S *ItemSet, A lrparser.Symbol) *ItemSet {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := NewItemSet()
	for _, i := range S.Items() {
		if B, ok := i.PeekSymbol(); ok && B == A {
			ii := i.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", i, A, ii)
			gotoset.Add(ii)
		}
	}
	if gotoset.Empty() {
		return gotoset
	}
	return Closure(g, gotoset)
}

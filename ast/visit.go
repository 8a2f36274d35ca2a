package ast

import (
	lrparser "github.com/raiga0310/LR-parser"
)

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// Walk visits node and its sub-tree in pre-order, calling f with every node
// and its nesting level. If f returns false, the children of the node are
// skipped.
func Walk(node Node, dir Direction, f func(n Node, level int) bool) {
	if node == nil {
		return
	}
	walk(node, dir, f, 0)
}

func walk(node Node, dir Direction, f func(Node, int) bool, level int) {
	if !f(node, level) {
		return
	}
	children := node.Children()
	if dir == RtoL {
		for i := len(children) - 1; i >= 0; i-- {
			walk(children[i], dir, f, level+1)
		}
		return
	}
	for _, ch := range children {
		walk(ch, dir, f, level+1)
	}
}

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a syntax tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree. ExitRule receives the values of the
// children in the order of the node's children, independent of the direction
// of the traversal.
type Listener interface {
	EnterRule(*NonTerminal, RuleCtxt) bool
	ExitRule(*NonTerminal, []interface{}, RuleCtxt) interface{}
	Terminal(*Terminal, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      lrparser.Span // span of input symbols covered by this node
	Level     int           // nesting level
	RuleIndex int           // -1 for terminals
}

// TopDown traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func TopDown(node Node, listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if node == nil {
		return nil
	}
	tracer().Debugf("TopDown starting at node %v", node.Symbol())
	return traverseTopDown(node, listener, dir, breakmode, 0)
}

func traverseTopDown(node Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	switch n := node.(type) {
	case *Terminal:
		return listener.Terminal(n, RuleCtxt{Span: n.Extent, Level: level, RuleIndex: -1})
	case *NonTerminal:
		ctxt := RuleCtxt{Span: n.Extent, Level: level, RuleIndex: n.Rule}
		tracer().Debugf(">>> %s", n.Sym)
		values := make([]interface{}, len(n.children))
		if listener.EnterRule(n, ctxt) || breakmode == Continue {
			i, end := 0, len(n.children)
			if dir == RtoL {
				i, end = len(n.children)-1, -1
			}
			for ; i != end; i += int(dir) {
				values[i] = traverseTopDown(n.children[i], listener, dir, breakmode, level+1)
				tracer().Debugf("child value[%d] = %v", i, values[i])
			}
		}
		value := listener.ExitRule(n, values, ctxt)
		tracer().Debugf("<<< %s", n.Sym)
		return value
	}
	tracer().Errorf("unknown node type %T", node)
	return nil
}

package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/raiga0310/LR-parser/ast"
	"github.com/raiga0310/LR-parser/lr"
)

func renderTable(t *lr.Table) {
	header := []string{"state"}
	for _, sym := range t.Symbols() {
		header = append(header, sym.String())
	}
	data := pterm.TableData{header}
	for state := 0; state < t.States(); state++ {
		row := []string{fmt.Sprintf("%d", state)}
		for col := range t.Symbols() {
			row = append(row, t.Cell(state, col).String())
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderForest displays every tree of a forest on the terminal.
func renderForest(forest ast.Forest) {
	for _, node := range forest {
		ll := pterm.LeveledList{}
		ast.Walk(node, ast.LtoR, func(n ast.Node, level int) bool {
			ll = append(ll, pterm.LeveledListItem{
				Level: level,
				Text:  n.Symbol().String(),
			})
			return true
		})
		tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	}
}

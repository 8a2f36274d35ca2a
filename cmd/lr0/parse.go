package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/raiga0310/LR-parser/lr/lr0"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path> <input>...",
		Short:   "Parse input strings and print their syntax trees",
		Example: `  lr0 parse expr.grammar '1+1$' '1*0$'`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := makeParser(args[0])
	if err != nil {
		return err
	}
	failed := 0
	for _, input := range args[1:] {
		if !parseAndShow(p, input) {
			failed++
		}
	}
	if failed > 0 {
		return errors.New(pterm.Sprintf("%d of %d inputs not accepted", failed, len(args)-1))
	}
	return nil
}

// parseAndShow parses input and renders the resulting forest. It returns
// true if input has been accepted.
func parseAndShow(p *lr0.Parser, input string) bool {
	forest, err := p.Parse(input)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("%q: %v", input, err))
		if len(forest) > 0 {
			pterm.Println("partial forest:")
			renderForest(forest)
		}
		return false
	}
	pterm.Success.Println(fmt.Sprintf("%q accepted", input))
	renderForest(forest)
	return true
}

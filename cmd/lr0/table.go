package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/raiga0310/LR-parser/lr"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	html *string
	dot  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Print the LR(0) parse table of a grammar",
		Example: `  lr0 table expr.grammar --dot expr.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.html = cmd.Flags().String("html", "", "write the parse table as HTML to this file")
	tableFlags.dot = cmd.Flags().String("dot", "", "write the automaton in Graphviz format to this file")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	lrgen := lr.NewTableGenerator(g)
	lrgen.CreateTables()
	pterm.Info.Println(fmt.Sprintf("grammar %s: %d rules, %d states", g.Name, g.Size(), lrgen.CFSM().Size()))
	renderTable(lrgen.Table())
	for _, c := range lrgen.Table().Conflicts() {
		pterm.Warning.Println(c.String())
	}
	if *tableFlags.html != "" {
		err = writeFile(*tableFlags.html, func(w io.Writer) error {
			return lr.TableAsHTML(lrgen.Table(), w)
		})
		if err != nil {
			return err
		}
	}
	if *tableFlags.dot != "" {
		return writeFile(*tableFlags.dot, lrgen.CFSM().ToGraphViz)
	}
	return nil
}

// writeFile creates a file and lets export write to it. An error closing the
// file is reported as well.
func writeFile(path string, export func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close %s: %w", path, cerr)
		}
	}()
	if err = export(f); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %s", path)
	return nil
}

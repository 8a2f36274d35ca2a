package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/raiga0310/LR-parser/grammar"
	"github.com/raiga0310/LR-parser/lr/lr0"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace     *string
	endMarker *bool
	skipSpace *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lr0",
	Short: "Build LR(0) parse tables and parse input with them",
	Long: `lr0 reads a grammar over single characters, one production per line:
- Builds the LR(0) automaton and the parse table for the grammar.
- Parses input strings with the table and prints the syntax trees.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		initTracing(*rootFlags.trace)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.endMarker = rootCmd.PersistentFlags().BoolP("end-marker", "e", false, "append the end marker '$' to every input")
	rootFlags.skipSpace = rootCmd.PersistentFlags().BoolP("skip-space", "s", false, "ignore white space within input")
}

func Execute() error {
	return rootCmd.Execute()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	gtrace.SyntaxTracer.SetTraceLevel(l)
	for _, key := range []string{"lrparser.cmd", "lrparser.grammar", "lrparser.lr",
		"lrparser.lr0", "lrparser.scanner", "lrparser.ast"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("Trace level is %s", level)
}

// readGrammar reads a grammar file. The grammar is named after the file.
func readGrammar(path string) (*grammar.Grammar, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar file: %w", err)
	}
	name := filepath.Base(path)
	g, err := grammar.Parse(name, string(text))
	if err != nil {
		return nil, &lr0.ConstructionError{Grammar: name, Err: err}
	}
	g.Dump() // only visible in debug mode
	return g, nil
}

// makeParser reads a grammar file and creates a parser for it, configured by
// the global flags.
func makeParser(path string) (*lr0.Parser, error) {
	g, err := readGrammar(path)
	if err != nil {
		return nil, err
	}
	p, err := lr0.CompileGrammar(g,
		lr0.AppendEndMarker(*rootFlags.endMarker),
		lr0.SkipWhitespace(*rootFlags.skipSpace))
	if err != nil {
		return nil, err
	}
	if n := len(p.Table().Conflicts()); n > 0 {
		pterm.Warning.Println(fmt.Sprintf("grammar %s is not LR(0): %d conflicts, first action wins", g.Name, n))
	}
	return p, nil
}

package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/raiga0310/LR-parser/lr/lr0"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Parse input lines interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	p, err := makeParser(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("lr0> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{parser: p, repl: repl}
	pterm.Info.Println("Welcome to the LR(0) REPL")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	parser *lr0.Parser
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval executes a REPL command or parses a line of input. It returns true if
// the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":table":
		renderTable(intp.parser.Table())
		return false
	}
	parseAndShow(intp.parser, line)
	return false
}

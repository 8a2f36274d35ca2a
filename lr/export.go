package lr

import (
	"fmt"
	"html"
	"io"
	"strings"

	lrparser "github.com/raiga0310/LR-parser"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items)))
	}
	c.EachEdge(func(from, to *CFSMState, label lrparser.Symbol) {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", from.ID, to.ID,
			escapeDot(label.String())))
	})
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(S *ItemSet) string {
	items := S.Items()
	labels := make([]string, len(items))
	for n, i := range items {
		labels[n] = escapeDot(i.String())
	}
	return strings.Join(labels, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// TableAsHTML exports a parse table in HTML-format.
func TableAsHTML(t *Table, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("parse table with %d states and %d actions<p>",
		t.States(), t.matrix.ValueCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range t.symbols {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html.EscapeString(A.String())))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for state := 0; state < t.States(); state++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", state))
		for col := range t.symbols {
			if a := t.Cell(state, col); a.IsError() {
				td = "&nbsp;"
			} else {
				td = a.String()
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

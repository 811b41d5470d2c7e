package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer renders errors with the offending source line and a caret under
// the error column.
type Printer struct {
	out    io.Writer
	name   string
	source []rune
	lines  []string
}

// NewPrinter creates a Printer for one compilation unit. name is the label
// used in the file:line:col prefix (a path, or something like "<stdin>").
// Color output is disabled automatically when out is not a terminal.
func NewPrinter(out io.Writer, name, source string) *Printer {
	if f, ok := out.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
	return &Printer{
		out:    out,
		name:   name,
		source: []rune(source),
		lines:  strings.Split(source, "\n"),
	}
}

// Print renders every error in order.
func (p *Printer) Print(errs []Error) {
	for _, e := range errs {
		p.PrintOne(e)
	}
}

// PrintOne renders a single error: the prefixed message, the source line,
// and a caret marking the column.
func (p *Printer) PrintOne(e Error) {
	fmt.Fprintf(p.out, "%s:%d:%d: %s %s\n",
		p.name, e.Pos.Line, e.Pos.Column,
		color.RedString("%s error:", e.Phase), e.Message)
	p.printErrorLine(e)
}

func (p *Printer) printErrorLine(e Error) {
	if e.Pos.Line < 1 || e.Pos.Line > len(p.lines) {
		return
	}
	line := p.lines[e.Pos.Line-1]
	if e.Pos.Column < 1 || e.Pos.Column > len([]rune(line))+1 {
		return
	}
	fmt.Fprintf(p.out, "  %s\n", line)
	fmt.Fprintf(p.out, "  %s%s\n", strings.Repeat(" ", e.Pos.Column-1), color.GreenString("^"))
}

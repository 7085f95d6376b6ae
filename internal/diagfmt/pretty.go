package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/source"
)

// Pretty пишет диагностики в стиле компилятора: заголовок, строка
// исходника и подчёркивание под первичным спаном.
//
//	warning[SYN2001]: unterminated "(" at end of input
//	  --> input:1:1
//	   |
//	 1 | (a = b
//	   | ^
//	   = help: close "(": append ")"
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pp := prettyPrinter{
		w:     w,
		fs:    fs,
		opts:  opts,
		bold:  paint(opts.Color, color.Bold),
		blue:  paint(opts.Color, color.FgBlue, color.Bold),
		green: paint(opts.Color, color.FgGreen),
	}
	for i, d := range bag.Items() {
		if i > 0 {
			pp.printf("\n")
		}
		pp.diagnostic(&d)
	}
	return pp.err
}

type prettyPrinter struct {
	w     io.Writer
	fs    *source.FileSet
	opts  PrettyOpts
	bold  func(a ...any) string
	blue  func(a ...any) string
	green func(a ...any) string
	err   error
}

func (pp *prettyPrinter) printf(format string, args ...any) {
	if pp.err != nil {
		return
	}
	_, pp.err = fmt.Fprintf(pp.w, format, args...)
}

func (pp *prettyPrinter) severity(sev diag.Severity) string {
	label := sev.Label()
	var c func(a ...any) string
	switch sev {
	case diag.SevError:
		c = paint(pp.opts.Color, color.FgRed, color.Bold)
	case diag.SevWarning:
		c = paint(pp.opts.Color, color.FgYellow, color.Bold)
	default:
		c = paint(pp.opts.Color, color.FgCyan, color.Bold)
	}
	return c(label)
}

func (pp *prettyPrinter) diagnostic(d *diag.Diagnostic) {
	pp.printf("%s[%s]: %s\n", pp.severity(d.Severity), d.Code.ID(), pp.bold(d.Message))
	pp.snippet(d.Primary, "^")
	if pp.opts.ShowNotes {
		for _, note := range d.Notes {
			start, _ := pp.fs.Resolve(note.Span)
			pp.printf("   %s note: %s (%s:%d:%d)\n", pp.blue("="), note.Msg,
				pp.fs.Get(note.Span.File).Path, start.Line, start.Col)
		}
	}
	if pp.opts.ShowFixes {
		for _, fix := range d.Fixes {
			pp.printf("   %s help: %s\n", pp.blue("="), pp.green(fix.Title))
		}
	}
}

func (pp *prettyPrinter) snippet(span source.Span, mark string) {
	file := pp.fs.Get(span.File)
	start, end := pp.fs.Resolve(span)
	gutter := len(fmt.Sprint(start.Line))
	pad := strings.Repeat(" ", gutter)

	pp.printf("%s%s %s:%d:%d\n", pad, pp.blue("-->"), file.Path, start.Line, start.Col)
	line := file.GetLine(start.Line)
	pp.printf("%s %s\n", pad, pp.blue("|"))
	pp.printf("%s %s %s\n", pp.blue(fmt.Sprint(start.Line)), pp.blue("|"), expandTabs(line))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(int(end.Col)-1, len(line))
	}
	// ширина в колонках терминала, а не в байтах
	lead := runewidth.StringWidth(expandTabs(line[:col]))
	width := max(runewidth.StringWidth(expandTabs(line[col:endCol])), 1)
	pp.printf("%s %s %s%s\n", pad, pp.blue("|"),
		strings.Repeat(" ", lead), pp.green(strings.Repeat(mark, width)))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

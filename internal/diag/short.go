package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"sillyfmt/internal/source"
)

type shortLine struct {
	label string
	code  string
	path  string
	pos   source.LineCol
	msg   string
}

// FormatShortDiagnostics renders diagnostics one per line as
// "severity CODE path:line:col message", sorted by location. Tests compare
// against it and the CLI prints it with --diagnostics=short.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	lines := make([]shortLine, 0, len(diags))
	add := func(label string, code Code, sp source.Span, msg string) {
		if int(sp.File) >= fs.Len() {
			return
		}
		start, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{
			label: label,
			code:  code.ID(),
			path:  cleanPath(fs.Get(sp.File).Path),
			pos:   start,
			msg:   oneLine(msg),
		})
	}
	for _, d := range diags {
		add(d.Severity.Label(), d.Code, d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			add("note", d.Code, note.Span, note.Msg)
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			strings.Compare(a.path, b.path),
			cmp.Compare(a.pos.Line, b.pos.Line),
			cmp.Compare(a.pos.Col, b.pos.Col),
			strings.Compare(a.label, b.label),
			strings.Compare(a.code, b.code),
			strings.Compare(a.msg, b.msg),
		)
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.pos.Line, l.pos.Col, l.msg)
	}
	return strings.Join(out, "\n")
}

func cleanPath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

// oneLine folds line breaks so every diagnostic stays on its own line.
func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(msg))
}

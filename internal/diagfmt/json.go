package diagfmt

import (
	"encoding/json"
	"io"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/source"
)

// PositionJSON is a 1-based line and byte column.
type PositionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// LocationJSON is a byte range in a file; From and To are set with IncludePositions.
type LocationJSON struct {
	File  string        `json:"file"`
	Start uint32        `json:"start"`
	End   uint32        `json:"end"`
	From  *PositionJSON `json:"from,omitempty"`
	To    *PositionJSON `json:"to,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FixEditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

type locator struct {
	fs        *source.FileSet
	positions bool
}

func (l locator) at(span source.Span) LocationJSON {
	loc := LocationJSON{File: l.fs.Get(span.File).Path, Start: span.Start, End: span.End}
	if l.positions {
		from, to := l.fs.Resolve(span)
		loc.From = &PositionJSON{Line: from.Line, Col: from.Col}
		loc.To = &PositionJSON{Line: to.Line, Col: to.Col}
	}
	return loc
}

// BuildDiagnosticsOutput converts bag without serialising it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	loc := locator{fs: fs, positions: opts.IncludePositions}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, bag.Len())}
	for _, d := range bag.Items() {
		dj := DiagnosticJSON{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: loc.at(d.Primary),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: loc.at(note.Span)})
			}
		}
		if opts.IncludeFixes {
			for _, fix := range d.Fixes {
				fj := FixJSON{Title: fix.Title, Edits: make([]FixEditJSON, 0, len(fix.Edits))}
				for _, edit := range fix.Edits {
					fj.Edits = append(fj.Edits, FixEditJSON{Location: loc.at(edit.Span), NewText: edit.NewText})
				}
				dj.Fixes = append(dj.Fixes, fj)
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON выводит диагностики в JSON формате
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

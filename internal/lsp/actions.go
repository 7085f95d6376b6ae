package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/driver"
	"sillyfmt/internal/fix"
	"sillyfmt/internal/source"
)

const fixAllTitle = "Close all brackets"

// normalised content no longer lines up with the editor buffer byte for byte
const rewritten = source.FileHadBOM | source.FileNormalizedCRLF | source.FileNormalizedNFC

// buildCodeActions offers one quick fix per fix of a note touching rng, and a
// fix-all action when more than one fix applies to the document.
func buildCodeActions(uri protocol.DocumentUri, res *driver.ParseResult, rng protocol.Range) []protocol.CodeAction {
	quickFix := protocol.CodeActionKindQuickFix
	items := res.Bag.Items()
	published := buildDiagnostics(uri, res)

	actions := make([]protocol.CodeAction, 0)
	for i, d := range items {
		if len(d.Fixes) == 0 || !rangesTouch(published[i].Range, rng) {
			continue
		}
		for _, f := range d.Fixes {
			actions = append(actions, protocol.CodeAction{
				Title:       f.Title,
				Kind:        &quickFix,
				Diagnostics: []protocol.Diagnostic{published[i]},
				IsPreferred: boolPtr(len(d.Fixes) == 1),
				Edit:        singleEdit(uri, textEdits(res.File, f.Edits)),
			})
		}
	}

	if res.File.Flags&rewritten != 0 {
		return actions
	}
	out, err := fix.Apply(res.File.ID, res.File.Content, items, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil || len(out.Applied) < 2 {
		return actions
	}
	fixAll := protocol.CodeActionKind("source.fixAll")
	whole := protocol.Range{End: positionForOffsetInFile(res.File, res.File.Size())}
	actions = append(actions, protocol.CodeAction{
		Title: fixAllTitle,
		Kind:  &fixAll,
		Edit:  singleEdit(uri, []protocol.TextEdit{{Range: whole, NewText: string(out.Content)}}),
	})
	return actions
}

func textEdits(file *source.File, edits []diag.FixEdit) []protocol.TextEdit {
	out := make([]protocol.TextEdit, 0, len(edits))
	for _, e := range edits {
		out = append(out, protocol.TextEdit{Range: rangeForSpan(file, e.Span), NewText: e.NewText})
	}
	return out
}

func singleEdit(uri protocol.DocumentUri, edits []protocol.TextEdit) *protocol.WorkspaceEdit {
	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{uri: edits},
	}
}

// rangesTouch reports whether a and b overlap or share an end point.
func rangesTouch(a, b protocol.Range) bool {
	return !posLess(a.End, b.Start) && !posLess(b.End, a.Start)
}

func posLess(a, b protocol.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}

package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges replays content changes in order. Whole-document changes
// replace the text; ranged ones splice it.
func applyChanges(text string, changes []any) string {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyRanged(text, c)
		case *protocol.TextDocumentContentChangeEvent:
			text = applyRanged(text, *c)
		}
	}
	return text
}

func applyRanged(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := offsetForPosition(text, change.Range.Start)
	end := offsetForPosition(text, change.Range.End)
	if end < start {
		end = start
	}
	return text[:start] + change.Text + text[end:]
}

// offsetForPosition maps an LSP position to a byte offset, clamping to the
// end of the line or text.
func offsetForPosition(text string, pos protocol.Position) int {
	line := uint32(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	var units uint32
	for i < len(text) && text[i] != '\n' {
		r, size := utf8.DecodeRuneInString(text[i:])
		need := utf16Len(r)
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}

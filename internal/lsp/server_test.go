package lsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sillyfmt/internal/driver"
	"sillyfmt/internal/grammar"
)

type notification struct {
	method string
	params any
}

func newTestContext(sink *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sink = append(*sink, notification{method: method, params: params})
		},
	}
}

func lastDiagnostics(t *testing.T, sent []notification) protocol.PublishDiagnosticsParams {
	t.Helper()
	if len(sent) == 0 {
		t.Fatal("nothing published")
	}
	last := sent[len(sent)-1]
	if last.method != protocol.ServerTextDocumentPublishDiagnostics {
		t.Fatalf("unexpected method %q", last.method)
	}
	return last.params.(protocol.PublishDiagnosticsParams)
}

const docURI = "file:///tmp/notes.txt"

func TestServer_PublishesNotes(t *testing.T) {
	var sent []notification
	ctx := newTestContext(&sent)
	s := NewServer("test", driver.Options{})

	err := s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: docURI, Version: 1, Text: "f(a,\n  b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	params := lastDiagnostics(t, sent)
	if len(params.Diagnostics) != 1 {
		t.Fatalf("want 1 diagnostic, got %+v", params.Diagnostics)
	}
	d := params.Diagnostics[0]
	if *d.Severity != protocol.DiagnosticSeverityWarning || d.Code.Value != "SYN2001" {
		t.Errorf("diagnostic = %+v", d)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 1},
		End:   protocol.Position{Line: 0, Character: 2},
	}
	if diff := cmp.Diff(want, d.Range); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}

	// закрываем скобку инкрементальной правкой
	end := protocol.Position{Line: 1, Character: 3}
	err = s.didChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: end, End: end},
			Text:  ")",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.openDocs[docURI].text; got != "f(a,\n  b)" {
		t.Fatalf("text after change = %q", got)
	}
	if n := len(lastDiagnostics(t, sent).Diagnostics); n != 0 {
		t.Errorf("want no diagnostics after the fix, got %d", n)
	}

	ranges, err := s.foldingRange(ctx, &protocol.FoldingRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]protocol.FoldingRange{{StartLine: 0, EndLine: 1}}, ranges); diff != "" {
		t.Errorf("folding mismatch (-want +got):\n%s", diff)
	}

	if err := s.didClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	}); err != nil {
		t.Fatal(err)
	}
	if n := len(lastDiagnostics(t, sent).Diagnostics); n != 0 {
		t.Errorf("close should clear diagnostics, got %d", n)
	}
	if _, ok := s.openDocs[docURI]; ok {
		t.Error("document still open")
	}
}

func TestServer_CutContainerNote(t *testing.T) {
	var sent []notification
	s := NewServer("test", driver.Options{})
	_ = s.didOpen(newTestContext(&sent), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: docURI, Version: 1, Text: "[(a]"},
	})
	diags := lastDiagnostics(t, sent).Diagnostics
	if len(diags) != 1 || len(diags[0].RelatedInformation) != 1 {
		t.Fatalf("want one cut note with related info, got %+v", diags)
	}
	if got := diags[0].RelatedInformation[0].Location.Range.Start.Character; got != 3 {
		t.Errorf("related info at character %d, want 3", got)
	}
}

func TestInitialize_WorkspaceConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "[grammar]\nrevision = \"infix\"\n"
	if err := os.WriteFile(filepath.Join(dir, "sillyfmt.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewServer("test", driver.Options{})
	root := "file://" + filepath.ToSlash(dir)
	res, err := s.initialize(nil, &protocol.InitializeParams{RootURI: &root})
	if err != nil {
		t.Fatal(err)
	}
	if s.opts.Grammar != grammar.Infix() {
		t.Errorf("workspace config not applied: %+v", s.opts.Grammar)
	}
	result := res.(protocol.InitializeResult)
	if result.Capabilities.FoldingRangeProvider == nil {
		t.Error("folding ranges not advertised")
	}
}

func TestOffsetForPosition(t *testing.T) {
	text := "ab\n😀c\n"
	tests := []struct {
		pos  protocol.Position
		want int
	}{
		{protocol.Position{Line: 0, Character: 0}, 0},
		{protocol.Position{Line: 0, Character: 9}, 2},
		{protocol.Position{Line: 1, Character: 2}, 7},
		{protocol.Position{Line: 1, Character: 3}, 8},
		{protocol.Position{Line: 5, Character: 0}, len(text)},
	}
	for _, tt := range tests {
		if got := offsetForPosition(text, tt.pos); got != tt.want {
			t.Errorf("offsetForPosition(%+v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestPositionForOffset(t *testing.T) {
	res := driver.ParseText("x", "ab\n😀c", driver.Options{})
	got := positionForOffsetInFile(res.File, 7)
	if diff := cmp.Diff(protocol.Position{Line: 1, Character: 2}, got); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyChanges_Whole(t *testing.T) {
	got := applyChanges("old", []any{protocol.TextDocumentContentChangeEventWhole{Text: "new"}})
	if got != "new" {
		t.Errorf("applyChanges = %q", got)
	}
}

func TestURIToPath(t *testing.T) {
	if got := uriToPath("file:///tmp/a%20b.txt"); got != filepath.FromSlash("/tmp/a b.txt") {
		t.Errorf("uriToPath = %q", got)
	}
	if got := uriToPath("untitled:Untitled-1"); got != "" {
		t.Errorf("non-file uri = %q", got)
	}
	if got := uriToPath("file:///C:/work/log.txt"); got != filepath.FromSlash("C:/work/log.txt") {
		t.Errorf("drive uri = %q", got)
	}
}

func TestServer_CodeActions(t *testing.T) {
	var sent []notification
	ctx := newTestContext(&sent)
	s := NewServer("test", driver.Options{})
	if err := s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: docURI, Version: 1, Text: "{[x"},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := s.codeAction(ctx, &protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
		Range:        protocol.Range{},
	})
	if err != nil {
		t.Fatal(err)
	}
	actions := got.([]protocol.CodeAction)
	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
	}
	// курсор перед "{", до "[" он не достаёт
	want := []string{`append "}"`, fixAllTitle}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}

	all := actions[len(actions)-1].Edit.Changes[docURI]
	if len(all) != 1 || all[0].NewText != "{[x]}" {
		t.Errorf("fix-all edit = %+v", all)
	}
	eof := protocol.Position{Character: 3}
	first := actions[0].Edit.Changes[docURI]
	if diff := cmp.Diff([]protocol.TextEdit{{Range: protocol.Range{Start: eof, End: eof}, NewText: "}"}}, first); diff != "" {
		t.Errorf("quick fix mismatch (-want +got):\n%s", diff)
	}
}

func TestRangesTouch(t *testing.T) {
	pos := func(line, char uint32) protocol.Position { return protocol.Position{Line: line, Character: char} }
	r := func(a, b protocol.Position) protocol.Range { return protocol.Range{Start: a, End: b} }
	if !rangesTouch(r(pos(0, 0), pos(0, 2)), r(pos(0, 2), pos(0, 2))) {
		t.Error("shared end point must touch")
	}
	if rangesTouch(r(pos(0, 0), pos(0, 1)), r(pos(1, 0), pos(1, 4))) {
		t.Error("separate lines must not touch")
	}
}

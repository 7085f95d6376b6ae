package diag

import (
	"testing"

	"sillyfmt/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Add("testdata/sample.txt", []byte("(a\nb)\n)"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynStrayClose,
			Message:  "stray ')'",
			Primary:  source.Span{File: file, Start: 6, End: 7},
		},
		New(SevInfo, SynUnterminatedContainer, source.Span{File: file, Start: 0, End: 1}, "first line\nsecond").
			WithNote(source.Span{File: file, Start: 3, End: 4}, "note line"),
	}

	expected := "info SYN2001 testdata/sample.txt:1:1 first line second\n" +
		"note SYN2001 testdata/sample.txt:2:1 note line\n" +
		"warning SYN2003 testdata/sample.txt:3:1 stray ')'"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBag_SortAndFilter(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	ReportInfo(r, SynStrayComma, source.Span{Start: 5, End: 6}, "comma").Emit()
	ReportWarning(r, SynStrayClose, source.Span{Start: 1, End: 2}, "close").Emit()
	b := ReportInfo(r, SynDanglingOperator, source.Span{Start: 1, End: 2}, "op")
	b.Emit()
	b.Emit()

	if bag.Len() != 3 {
		t.Fatalf("len = %d, Emit must be idempotent", bag.Len())
	}
	bag.Sort()
	if got := bag.Items()[0].Code; got != SynStrayClose {
		t.Fatalf("first after sort = %v", got)
	}
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("severity queries")
	}
	bag.Filter(SevWarning)
	if bag.Len() != 1 {
		t.Fatalf("after filter len = %d", bag.Len())
	}
}

func TestBag_Limit(t *testing.T) {
	bag := NewBag(1)
	if !bag.Add(Diagnostic{}) || bag.Add(Diagnostic{}) {
		t.Fatal("limit of 1 not honoured")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		SynAngleAsOperator: "SYN2004",
		IOLoadFileError:    "IO4001",
		CfgInvalid:         "CFG5001",
		UnknownCode:        "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestReporterFunc(t *testing.T) {
	var got []Code
	r := ReporterFunc(func(d Diagnostic) { got = append(got, d.Code) })
	ReportWarning(r, SynCutContainer, source.Span{}, "cut").
		WithNote(source.Span{Start: 2, End: 3}, "here").
		WithFix("insert \")\"", FixEdit{Span: source.At(0, 2), NewText: ")"}).
		Emit()
	ReportInfo(nil, SynInfo, source.Span{}, "dropped").Emit()
	if len(got) != 1 || got[0] != SynCutContainer {
		t.Errorf("reported %v", got)
	}
}

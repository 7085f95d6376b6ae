package parser_test

import (
	"strings"
	"testing"

	"sillyfmt/internal/grammar"
	"sillyfmt/internal/parser"
)

var chained = grammar.Default()

func TestLeaves(t *testing.T) {
	expectTree(t, "12:30:00", chained, tm("12:30:00"))
	expectTree(t, "hello world", chained, txt("hello"), txt("world"))
	expectTree(t, "a::b", chained, txt("a"), nsym("::"), txt("b"))
	expectTree(t, "", chained)
}

func TestSequences(t *testing.T) {
	expectTree(t, "a=b,c=d", chained,
		seq(group(bin("=", txt("a"), txt("b"))), group(bin("=", txt("c"), txt("d")))))
	expectTree(t, "a b, c", chained,
		seq(group(txt("a"), txt("b")), group(txt("c"))))
	expectTree(t, "f(a, b)", chained,
		txt("f"), cont("()", seq(group(txt("a")), group(txt("b")))))
}

func TestStrayCommas(t *testing.T) {
	expectTree(t, ",a", chained, txt(","), txt("a"))
	expectTree(t, "a,", chained, txt("a"), txt(","))
	expectTree(t, ",", chained, txt(","))
	expectTree(t, "a,,b", chained, seq(group(txt("a"), txt(",")), group(txt("b"))))
	expectTree(t, ",,a", chained, txt(","), txt(","), txt("a"))
	expectTree(t, ",a,b", chained, seq(group(txt(","), txt("a")), group(txt("b"))))
	expectTree(t, "(,)", chained, cont("()", txt(",")))
}

func TestAngles(t *testing.T) {
	expectTree(t, "<a,b>", chained,
		cont("<>", seq(group(txt("a")), group(txt("b")))))
	expectTree(t, "a<b", chained, bin("<", txt("a"), txt("b")))
	expectTree(t, "a>b", chained, bin(">", txt("a"), txt("b")))
	expectTree(t, "a<b>c", chained, txt("a"), cont("<>", txt("b")), txt("c"))
	expectTree(t, "<a<b>", chained, op("<", none, ref(txt("a"))), cont("<>", txt("b")))
	expectTree(t, "(a<b)", chained, cont("()", bin("<", txt("a"), txt("b"))))
	expectTree(t, "a<=b", chained, bin("<=", txt("a"), txt("b")))
}

func TestChained_Shapes(t *testing.T) {
	expectTree(t, "a=b=c", chained, bin("=", txt("a"), bin("=", txt("b"), txt("c"))))
	expectTree(t, "a=b<c", chained, bin("<", bin("=", txt("a"), txt("b")), txt("c")))
	expectTree(t, "a<b=c", chained, bin("<", txt("a"), bin("=", txt("b"), txt("c"))))
	expectTree(t, "x -> y => z", chained, bin("->", txt("x"), bin("=>", txt("y"), txt("z"))))
	expectTree(t, "-a", chained, op("-", none, ref(txt("a"))))
	expectTree(t, "- - a", chained, op("-", none, ref(op("-", none, ref(txt("a"))))))
	expectTree(t, "=a=b", chained, op("=", none, ref(bin("=", txt("a"), txt("b")))))
	expectTree(t, "10:00-12:00", chained, bin("-", tm("10:00"), tm("12:00")))
}

// a=<b has two readings; each revision commits to one.
func TestOpenQuestion_AssignAngle(t *testing.T) {
	expectTree(t, "a=<b", chained,
		bin("=", txt("a"), op("<", none, ref(txt("b")))))
	expectTree(t, "a = < b", grammar.Infix(),
		bin("=", txt("a"), conf("<")), txt("b"))
}

func TestInfix_Shapes(t *testing.T) {
	infix := grammar.Infix()
	expectTree(t, "a = b = c", infix, bin("=", bin("=", txt("a"), txt("b")), txt("c")))
	expectTree(t, "a = b < c", infix, bin("<", bin("=", txt("a"), txt("b")), txt("c")))
	expectTree(t, "a < b = c", infix, bin("<", txt("a"), bin("=", txt("b"), txt("c"))))
	expectTree(t, "- a", infix, sym("-"), txt("a"))
	expectTree(t, "key:value", infix, txt("key:value"))
}

func TestDanglingOperators(t *testing.T) {
	expectTree(t, "a=", chained, op("=", ref(txt("a")), none))
	expectTree(t, "=", chained, sym("="))
	expectTree(t, "<", chained, conf("<"))
	expectTree(t, "(a -)", chained, cont("()", op("-", ref(txt("a")), none)))
	expectTree(t, "a =, b", chained, seq(group(op("=", ref(txt("a")), none)), group(txt("b"))))
}

func TestContainers_Recovery(t *testing.T) {
	expectTree(t, "(a", chained, cont("(", txt("a")))
	expectTree(t, "a)", chained, txt("a"), txt(")"))
	expectTree(t, "[(a]", chained, cont("[]", cont("(", txt("a"))))
	expectTree(t, "(a]b)", chained, cont("()", txt("a"), txt("]"), txt("b")))
	expectTree(t, "{a: [1, 2]}", chained,
		cont("{}", bin(":", txt("a"), cont("[]", seq(group(txt("1")), group(txt("2")))))))
	expectTree(t, "((", chained, cont("(", cont("(")))
}

func TestDiagnostics_Recovery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(a", "[SYN2001]"},
		{"[(a]", "[SYN2002]"},
		{"a)", "[SYN2003]"},
		{"a<b", "[SYN2004]"},
		{"a=", "[SYN2005]"},
		{",a", "[SYN2006]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := parse(t, tt.input, chained)
			summary := diagnosticsSummary(tree.Bag)
			if !strings.Contains(summary, tt.want) {
				t.Fatalf("want %s, got %s", tt.want, summary)
			}
			if tree.Bag.HasErrors() {
				t.Fatalf("recovery must not produce errors: %s", summary)
			}
		})
	}
}

func TestDiagnostics_CleanInput(t *testing.T) {
	tree := parse(t, "f(a, <b>) => {c: 12:30}", chained)
	if tree.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(tree.Bag))
	}
}

func TestUnterminated_FixAppendsClose(t *testing.T) {
	tree := parse(t, "{[x", chained)
	var fixes []string
	for _, d := range tree.Bag.Items() {
		for _, fix := range d.Fixes {
			for _, e := range fix.Edits {
				fixes = append(fixes, e.NewText)
			}
		}
	}
	if strings.Join(fixes, "") != "]}" {
		t.Fatalf("fixes = %q", fixes)
	}
}

func TestDepthMatchesText(t *testing.T) {
	inputs := []string{"((a))", "[<x>]", "{(", "a<b"}
	want := []int{2, 2, 2, 0}
	for i, input := range inputs {
		tree := parse(t, input, chained)
		if got := tree.Builder.FileDepth(tree.File); got != want[i] {
			t.Errorf("%q: depth %d, want %d", input, got, want[i])
		}
	}
}

func TestParseFile_ZeroOptions(t *testing.T) {
	tree := parser.ParseText("z", "a=b=c", parser.Options{})
	if got := tree.Snapshot(); len(got) != 1 || got[0].Right == nil || got[0].Right.Kind != "binary_op" {
		t.Fatalf("zero options must use the chained table, got %+v", got)
	}
}

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sillyfmt/internal/ast"
	"sillyfmt/internal/diag"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/parser"
	"sillyfmt/internal/testkit"
)

func parse(t *testing.T, input string, tbl grammar.Table) *parser.Tree {
	t.Helper()
	tree := parser.ParseText("test.txt", input, parser.Options{Grammar: tbl})
	if err := testkit.CheckTree(tree.Builder, tree.File, tree.Tokens); err != nil {
		t.Fatalf("input %q breaks tree invariants: %v", input, err)
	}
	return tree
}

func expectTree(t *testing.T, input string, tbl grammar.Table, want ...ast.Snapshot) {
	t.Helper()
	got := parse(t, input, tbl).Snapshot()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input %q: tree mismatch (-want +got):\n%s", input, diff)
	}
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// Конструкторы ожидаемых снимков.

func txt(s string) ast.Snapshot  { return ast.Snapshot{Kind: "text", Text: s} }
func tm(s string) ast.Snapshot   { return ast.Snapshot{Kind: "time", Text: s} }
func sym(s string) ast.Snapshot  { return ast.Snapshot{Kind: "symbol", Text: s} }
func conf(s string) ast.Snapshot { return ast.Snapshot{Kind: "conflicting_symbol", Text: s} }
func nsym(s string) ast.Snapshot { return ast.Snapshot{Kind: "nonsymbol", Text: s} }

// none marks a missing operand.
var none *ast.Snapshot

func op(s string, left, right *ast.Snapshot) ast.Snapshot {
	return ast.Snapshot{
		Kind:        "binary_op",
		Text:        s,
		Conflicting: s == "<" || s == ">",
		Left:        left,
		Right:       right,
	}
}

func bin(s string, left, right ast.Snapshot) ast.Snapshot {
	return op(s, &left, &right)
}

func cont(brackets string, children ...ast.Snapshot) ast.Snapshot {
	return ast.Snapshot{Kind: "container", Text: brackets, Children: children}
}

func seq(groups ...[]ast.Snapshot) ast.Snapshot {
	return ast.Snapshot{Kind: "comma_delimited_sequence", Groups: groups}
}

func group(members ...ast.Snapshot) []ast.Snapshot { return members }

func ref(s ast.Snapshot) *ast.Snapshot { return &s }

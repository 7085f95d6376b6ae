package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sillyfmt/internal/config"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/observ"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestParseText(t *testing.T) {
	timer := observ.NewTimer()
	res := ParseText("stdin", "a=b,c=d", Options{Timer: timer})
	exprs := res.Builder.FileSnapshot(res.FileID)
	if len(exprs) != 1 || exprs[0].Kind != "comma_delimited_sequence" {
		t.Fatalf("unexpected tree: %+v", exprs)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
	var names []string
	for _, p := range timer.Phases() {
		names = append(names, p.Name)
	}
	want := []string{observ.PhaseLoad, observ.PhaseLex, observ.PhaseResolve, observ.PhaseParse}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("phases mismatch (-want +got):\n%s", diff)
	}
}

func TestParseText_Balance(t *testing.T) {
	res := ParseText("stdin", "a)(b", Options{Balance: true})
	if got := string(res.File.Content); got != "(a)(b)" {
		t.Errorf("balanced content = %q", got)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("balanced input still has notes: %v", res.Bag.Items())
	}
}

func TestTokenize_GrammarTextRule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	writeFile(t, path, "key:value")

	strict, err := Tokenize(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(strict.Tokens) != 3 {
		t.Errorf("strict: want 3 tokens, got %d", len(strict.Tokens))
	}
	permissive, err := Tokenize(path, Options{Grammar: grammar.Infix()})
	if err != nil {
		t.Fatal(err)
	}
	if len(permissive.Tokens) != 1 {
		t.Errorf("permissive: want 1 token, got %d", len(permissive.Tokens))
	}
}

func TestParse_MissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, ".hidden", "d.txt"), "d")
	writeFile(t, filepath.Join(dir, ".e.txt"), "e")

	got, err := ExpandPaths([]string{dir, "missing.txt"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.txt"),
		"missing.txt",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"1.txt": "(a",
		"2.txt": "a<b",
		"3.txt": "12:30:00",
		"4.txt": "f(x, y)",
	}
	for name, content := range inputs {
		writeFile(t, filepath.Join(dir, name), content)
	}
	missing := filepath.Join(dir, "missing.txt")

	var (
		mu     sync.Mutex
		events int
	)
	timer := observ.NewTimer()
	opts := Options{
		Jobs:  2,
		Timer: timer,
		Observer: func(PhaseEvent) {
			mu.Lock()
			events++
			mu.Unlock()
		},
	}
	_, results, err := ParseFiles(context.Background(), []string{dir, missing}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("want 5 results, got %d", len(results))
	}
	for _, r := range results[:4] {
		if r.Err != nil || r.Result == nil {
			t.Fatalf("%s: err=%v", r.Path, r.Err)
		}
	}
	if results[0].Result.Bag.Len() != 1 {
		t.Errorf("unterminated input: want 1 note, got %d", results[0].Result.Bag.Len())
	}
	first := results[2].Result.Builder.FileSnapshot(results[2].Result.FileID)
	if len(first) != 1 || first[0].Kind != "time" {
		t.Errorf("3.txt tree = %+v", first)
	}
	if results[4].Err == nil || results[4].Result != nil {
		t.Errorf("missing file: %+v", results[4])
	}
	// load for all five, then lex/resolve/parse for the four that loaded
	if events != 5+3*4 {
		t.Errorf("observer saw %d events", events)
	}
	if load := timer.Phases()[0]; load.Name != observ.PhaseLoad || load.Count != 5 {
		t.Errorf("load phase = %+v", load)
	}
}

func TestParseFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ParseFiles(ctx, []string{dir}, Options{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grammar.Revision = "infix"
	cfg.Input.Balance = true
	cfg.Input.NFC = true
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Grammar != grammar.Infix() || !opts.Balance || !opts.Load.NFC {
		t.Errorf("unexpected options: %+v", opts)
	}
}

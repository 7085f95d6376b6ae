package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sillyfmt/internal/driver"
)

func TestReadBlocks(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		perLine bool
		want    []string
	}{
		{"blank line separates", "a=b\nc\n\nd\n", false, []string{"a=b\nc", "d"}},
		{"trailing block without blank line", "x(y", false, []string{"x(y"}},
		{"runs of blank lines", "\n\n a \n \n\nb\n", false, []string{" a ", "b"}},
		{"per line", "a\nb\n\nc", true, []string{"a", "b", "c"}},
		{"crlf", "a\r\n\r\nb\r\n", false, []string{"a", "b"}},
		{"empty", "", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			err := readBlocks(strings.NewReader(tt.input), tt.perLine, func(block string) error {
				got = append(got, block)
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadBlocks_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := readBlocks(strings.NewReader("a\n\nb\n"), false, func(string) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 1 {
		t.Errorf("err = %v after %d calls", err, calls)
	}
}

func TestLogVerbosity(t *testing.T) {
	tests := []struct {
		level   string
		verbose int
		want    int
		wantErr bool
	}{
		{"", 0, -1, false},
		{"", 2, 1, false},
		{"debug", 0, 2, false},
		{"error", 1, -1, false},
		{"loud", 0, 0, true},
	}
	for _, tt := range tests {
		got, err := logVerbosity(tt.level, tt.verbose)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("logVerbosity(%q, %d) = %d, %v", tt.level, tt.verbose, got, err)
		}
	}
}

func TestWriteTree(t *testing.T) {
	res := driver.ParseText("in", "a=b", driver.Options{})
	var buf bytes.Buffer
	if err := writeTree(&buf, "sexp", false, res); err != nil {
		t.Fatal(err)
	}
	want := `(source_file (binary_op (text "a") (symbol "=") (text "b")))` + "\n"
	if buf.String() != want {
		t.Errorf("sexp = %q", buf.String())
	}
	if err := writeTree(&buf, "yaml", false, res); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestWriteDiagnostics(t *testing.T) {
	res := driver.ParseText("in", "(a", driver.Options{})
	var buf bytes.Buffer
	if err := writeDiagnostics(&buf, "short", false, res.Bag, res.FileSet); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `warning SYN2001 in:1:1 "(" is never closed` {
		t.Errorf("short = %q", got)
	}
	if err := writeDiagnostics(&buf, "bogus", false, res.Bag, res.FileSet); err == nil {
		t.Error("unknown style accepted")
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3"}
	if err := renderVersionJSON(&buf, info, versionOptions{showHash: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	want := versionPayload{Tool: "sillyfmt", Version: "1.2.3", GitCommit: "unknown"}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

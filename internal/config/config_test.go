package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sillyfmt/internal/grammar"
	"sillyfmt/internal/lexer"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[grammar]
revision = "infix"
text = "strict"

[input]
balance = true

[output]
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "auto" || !cfg.Input.Balance {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	tbl, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if tbl.Revision != grammar.RevisionInfix || tbl.Text != lexer.TextStrict {
		t.Fatalf("text override not applied: %+v", tbl)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown key", "[output]\nfromat = \"json\"\n", "unknown keys"},
		{"bad format", "[output]\nformat = \"yaml\"\n", "[output].format"},
		{"bad revision", "[grammar]\nrevision = \"pratt\"\n", "[grammar].revision"},
		{"bad text", "[grammar]\ntext = \"loose\"\n", "[grammar].text"},
		{"bad toml", "[output\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nformat = \"tree\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Output.Format != "tree" || cfg.Path == "" {
		t.Fatalf("config not found from nested dir: %+v", cfg)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
	if Default().LoadOptions().NFC {
		t.Fatal("NFC must be opt-in")
	}
}

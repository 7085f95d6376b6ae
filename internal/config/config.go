// Package config loads sillyfmt.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"sillyfmt/internal/grammar"
	"sillyfmt/internal/lexer"
	"sillyfmt/internal/source"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "sillyfmt.toml"

var (
	Formats = []string{"sexp", "tree", "json", "msgpack"}
	Colors  = []string{"auto", "on", "off"}
)

type Config struct {
	Grammar GrammarConfig `toml:"grammar"`
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`

	// Path is the file the config came from, empty for defaults.
	Path string `toml:"-"`
}

type GrammarConfig struct {
	Revision string `toml:"revision"`
	// Text overrides the text rule of the revision when set.
	Text string `toml:"text"`
}

type InputConfig struct {
	Balance bool `toml:"balance"`
	NFC     bool `toml:"nfc"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Grammar: GrammarConfig{Revision: "chained"},
		Output:  OutputConfig{Format: "sexp", Color: "auto"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest config; without one it returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := c.Table(); err != nil {
		return err
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("[output].format: %q is not one of %s", c.Output.Format, strings.Join(Formats, "|"))
	}
	if !slices.Contains(Colors, c.Output.Color) {
		return fmt.Errorf("[output].color: %q is not one of %s", c.Output.Color, strings.Join(Colors, "|"))
	}
	return nil
}

// Table returns the grammar table selected by [grammar].
func (c Config) Table() (grammar.Table, error) {
	tbl, err := grammar.ByName(c.Grammar.Revision)
	if err != nil {
		return grammar.Table{}, fmt.Errorf("[grammar].revision: %w", err)
	}
	if c.Grammar.Text != "" {
		rule, err := lexer.ParseTextRule(c.Grammar.Text)
		if err != nil {
			return grammar.Table{}, fmt.Errorf("[grammar].text: %w", err)
		}
		tbl.Text = rule
	}
	return tbl, nil
}

// LoadOptions returns the source normalisation selected by [input].
func (c Config) LoadOptions() source.LoadOptions {
	return source.LoadOptions{NFC: c.Input.NFC}
}

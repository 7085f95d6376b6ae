package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"sillyfmt/internal/config"
	"sillyfmt/internal/driver"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/observ"
)

// settings is the configuration file with command-line flags applied on top.
type settings struct {
	cfg     config.Config
	opts    driver.Options
	quiet   bool
	timings *observ.Timer
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		cliLog.Infof("using %s", cfg.Path)
	}

	if flags.Changed("color") {
		c, _ := flags.GetString("color")
		if !slices.Contains(config.Colors, c) {
			return nil, fmt.Errorf("invalid --color %q (expected: %s)", c, strings.Join(config.Colors, "|"))
		}
		cfg.Output.Color = c
	}
	if f := flags.Lookup("grammar"); f != nil && f.Changed {
		cfg.Grammar.Revision = f.Value.String()
		// правило текста по умолчанию берётся из ревизии
		cfg.Grammar.Text = ""
	}
	if f := flags.Lookup("text"); f != nil && f.Changed {
		cfg.Grammar.Text = f.Value.String()
	}
	if flags.Lookup("balance") != nil && flags.Changed("balance") {
		cfg.Input.Balance, _ = flags.GetBool("balance")
	}
	if flags.Lookup("nfc") != nil && flags.Changed("nfc") {
		cfg.Input.NFC, _ = flags.GetBool("nfc")
	}

	opts, err := driver.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := &settings{cfg: cfg, opts: opts}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		s.timings = observ.NewTimer()
		s.opts.Timer = s.timings
	}
	return s, nil
}

// useColor resolves [output].color for f.
func (s *settings) useColor(f *os.File) bool {
	switch s.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

func (s *settings) printTimings() {
	if s.timings != nil {
		fmt.Fprint(os.Stderr, s.timings.Summary())
	}
}

func addGrammarFlags(cmd *cobra.Command) {
	cmd.Flags().String("grammar", grammar.Default().Revision.String(), "grammar revision (chained|infix)")
	cmd.Flags().String("text", "", "text rule override (strict|permissive)")
	cmd.Flags().Bool("balance", false, "pad unbalanced ( [ { before parsing")
	cmd.Flags().Bool("nfc", false, "normalise input to Unicode NFC")
}

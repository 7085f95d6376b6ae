package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"sillyfmt/internal/config"
	"sillyfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file|directory|-]...",
	Short: "Parse files, directories or stdin and print their trees",
	Long: `Parse builds a tree for every input. Directories are walked recursively.
Without arguments, or with "-", stdin is read in blocks separated by an
empty line (every line with --newline).`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "", "output format (sexp|tree|json|msgpack), default from config")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for files (0=auto)")
	parseCmd.Flags().Bool("newline", false, "on stdin, parse every line on its own")
	addGrammarFlags(parseCmd)
	addDiagnosticsFlag(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.printTimings()

	format := s.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
		if !slices.Contains(config.Formats, format) {
			return fmt.Errorf("unknown format %q (expected: %s)", format, strings.Join(config.Formats, "|"))
		}
	}
	if s.opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		perLine, err := cmd.Flags().GetBool("newline")
		if err != nil {
			return fmt.Errorf("failed to get newline flag: %w", err)
		}
		return parseStdin(cmd, s, format, perLine)
	}
	return parsePaths(cmd, s, format, args)
}

func parseStdin(cmd *cobra.Command, s *settings, format string, perLine bool) error {
	if isTerminal(os.Stdin) && !perLine && !s.quiet {
		fmt.Fprintln(os.Stderr, stdinHint)
	}
	color := s.useColor(os.Stdout)
	return readBlocks(cmd.InOrStdin(), perLine, func(block string) error {
		res := driver.ParseText("<stdin>", block, s.opts)
		if err := printDiagnostics(cmd, s, res.Bag, res.FileSet); err != nil {
			return err
		}
		return writeTree(os.Stdout, format, color, res)
	})
}

func parsePaths(cmd *cobra.Command, s *settings, format string, args []string) error {
	_, results, err := driver.ParseFiles(cmd.Context(), args, s.opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	color := s.useColor(os.Stdout)
	headers := textual(format) && !s.quiet && len(results) > 1
	var loadErrs []error
	for idx, r := range results {
		if r.Err != nil {
			loadErrs = append(loadErrs, r.Err)
			continue
		}
		if err := printDiagnostics(cmd, s, r.Result.Bag, r.Result.FileSet); err != nil {
			return err
		}
		if headers {
			if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if err := writeTree(os.Stdout, format, color, r.Result); err != nil {
			return err
		}
		if headers && idx < len(results)-1 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				return err
			}
		}
	}
	return errors.Join(loadErrs...)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sillyfmt/internal/driver"
	"sillyfmt/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [file|directory|-]...",
	Short: "Close unterminated and cut brackets using the parser's fixes",
	Long: `Fix parses every input and applies the edits suggested by its notes:
missing closes are appended at the end of the text or inserted before the
bracket that cut a container. The result goes to stdout unless --write is set.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("once", false, "apply only the first available fix")
	fixCmd.Flags().String("code", "", "apply only fixes of one diagnostic code (e.g. SYN2001)")
	fixCmd.Flags().BoolP("write", "w", false, "write results back to the files")
	addGrammarFlags(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	once, err := flags.GetBool("once")
	if err != nil {
		return err
	}
	code, err := flags.GetString("code")
	if err != nil {
		return err
	}
	write, err := flags.GetBool("write")
	if err != nil {
		return err
	}
	if once && code != "" {
		return errors.New("--once cannot be combined with --code")
	}
	opts := fix.ApplyOptions{Mode: fix.ApplyModeAll}
	switch {
	case once:
		opts.Mode = fix.ApplyModeOnce
	case code != "":
		opts.Mode, opts.Code = fix.ApplyModeCode, code
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.printTimings()
	// выровненный текст не даёт заметок, чинить было бы нечего
	s.opts.Balance = false

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if write {
			return errors.New("--write needs file arguments")
		}
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res := driver.ParseText("<stdin>", string(data), s.opts)
		out, applyErr := fix.Apply(res.File.ID, res.File.Content, res.Bag.Items(), opts)
		if applyErr != nil && !errors.Is(applyErr, fix.ErrNoFixes) {
			return applyErr
		}
		s.reportFix("<stdin>", out)
		_, err = os.Stdout.Write(out.Content)
		return err
	}

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	var errs []error
	for _, path := range paths {
		if err := s.fixFile(path, opts, write, len(paths) > 1); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *settings) fixFile(path string, opts fix.ApplyOptions, write, header bool) error {
	res, err := driver.Parse(path, s.opts)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	out, err := fix.Apply(res.File.ID, res.File.Content, res.Bag.Items(), opts)
	if err != nil && !errors.Is(err, fix.ErrNoFixes) {
		return fmt.Errorf("fix %s: %w", path, err)
	}
	s.reportFix(path, out)

	if !write {
		if header {
			fmt.Fprintf(os.Stdout, "== %s ==\n", path)
		}
		_, err = os.Stdout.Write(out.Content)
		return err
	}
	if len(out.Applied) == 0 {
		return nil
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, out.Content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// reportFix prints what was applied and skipped on stderr.
func (s *settings) reportFix(path string, res *fix.Result) {
	if s.quiet || res == nil {
		return
	}
	for _, a := range res.Applied {
		cliLog.Debugf("%s: %s at byte %d", path, a.Title, a.Primary.Start)
	}
	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stderr, "%s: applied %d fix(es)\n", path, len(res.Applied))
	}
	for _, skip := range res.Skipped {
		title := skip.Title
		if title == "" {
			title = "(unnamed)"
		}
		fmt.Fprintf(os.Stderr, "%s: skipped %s: %s\n", path, title, skip.Reason)
	}
}

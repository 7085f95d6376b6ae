package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/diagfmt"
	"sillyfmt/internal/source"
)

var diagnosticFormats = []string{"pretty", "short", "json", "none"}

func addDiagnosticsFlag(cmd *cobra.Command) {
	cmd.Flags().String("diagnostics", "pretty", "how to print parse notes on stderr (pretty|short|json|none)")
}

// printDiagnostics writes bag to stderr in the selected style.
func printDiagnostics(cmd *cobra.Command, s *settings, bag *diag.Bag, fs *source.FileSet) error {
	if s.quiet || bag == nil || bag.Len() == 0 {
		return nil
	}
	style, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	return writeDiagnostics(os.Stderr, style, s.useColor(os.Stderr), bag, fs)
}

func writeDiagnostics(w io.Writer, style string, color bool, bag *diag.Bag, fs *source.FileSet) error {
	switch style {
	case "pretty":
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: color, ShowNotes: true, ShowFixes: true})
	case "short":
		_, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, false))
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true})
	case "none":
		return nil
	}
	return fmt.Errorf("unknown diagnostics style %q (expected one of %v)", style, diagnosticFormats)
}

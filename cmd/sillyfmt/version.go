package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sillyfmt/internal/grammar"
	"sillyfmt/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sillyfmt build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show all recorded build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	full, _ := flags.GetBool("full")
	showHash, _ := flags.GetBool("hash")
	showDate, _ := flags.GetBool("date")
	colorFlag, _ := flags.GetString("color")

	info := version.Current()
	if !full {
		info.GoVersion = ""
		if !showHash {
			info.GitCommit = ""
		}
		if !showDate {
			info.BuildDate = ""
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "pretty":
		color := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		return printVersion(cmd.OutOrStdout(), info, color, full || showHash, full || showDate)
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func printVersion(w io.Writer, info version.Info, color, hash, date bool) error {
	lines := []string{"sillyfmt " + version.Colored(info.Version, color)}
	if hash {
		lines = append(lines, "commit:  "+orUnknown(info.GitCommit))
	}
	if date {
		lines = append(lines, "built:   "+orUnknown(info.BuildDate))
	}
	if info.GoVersion != "" {
		lines = append(lines, "go:      "+info.GoVersion,
			fmt.Sprintf("grammar: %s (default), %s", grammar.Default().Revision, grammar.Infix().Revision))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

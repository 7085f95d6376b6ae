package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sillyfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sillyfmt",
	Short: "Parse and inspect loosely bracketed debug output",
	Long: `sillyfmt reads text such as debug prints, log lines and config dumps,
and builds a best-effort tree of brackets, operators and comma groups.
It never rejects input.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
}

// main registers subcommands and persistent flags, then executes the root
// command. A returned error exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress diagnostics and file headers")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to sillyfmt.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (error|warning|notice|info|debug)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	err := rootCmd.Execute()
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "failed to stop profiling: %v\n", stopErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

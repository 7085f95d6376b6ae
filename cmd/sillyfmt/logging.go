package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var cliLog = commonlog.GetLogger("sillyfmt.cli")

// logLevels maps --log-level onto commonlog verbosity, where 0 is notice.
var logLevels = map[string]int{
	"error":   -2,
	"warning": -1,
	"notice":  0,
	"info":    1,
	"debug":   2,
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	verbose, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	verbosity, err := logVerbosity(level, verbose)
	if err != nil {
		return err
	}
	commonlog.Configure(verbosity, nil)
	return nil
}

func logVerbosity(level string, verbose int) (int, error) {
	base := logLevels["warning"]
	if level != "" {
		v, ok := logLevels[level]
		if !ok {
			return 0, fmt.Errorf("invalid log level %q (expected: error|warning|notice|info|debug)", level)
		}
		base = v
	}
	return base + verbose, nil
}

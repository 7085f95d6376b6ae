package main

import (
	"github.com/spf13/cobra"

	"sillyfmt/internal/lsp"
	"sillyfmt/internal/version"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the sillyfmt language server over stdio",
	RunE:  runLSP,
}

func init() {
	addGrammarFlags(lspCmd)
}

func runLSP(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s.opts.Timer = nil
	cliLog.Infof("starting language server")
	return lsp.NewServer(version.Version, s.opts).RunStdio()
}

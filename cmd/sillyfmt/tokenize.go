package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sillyfmt/internal/diagfmt"
	"sillyfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file|-]",
	Short: "Print the tokens of a file or stdin",
	Long:  `Tokenize lexes the input with the selected grammar's text rule and prints one token per line`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	addGrammarFlags(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.printTimings()

	var result *driver.TokenizeResult
	if len(args) == 0 || args[0] == "-" {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result = driver.TokenizeText("<stdin>", string(data), s.opts)
	} else {
		result, err = driver.Tokenize(args[0], s.opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

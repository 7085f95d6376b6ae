package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sillyfmt/internal/ui"
)

var liveCmd = &cobra.Command{
	Use:   "live [file]",
	Short: "Edit text and watch its tree update on every keystroke",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLive,
}

func init() {
	addGrammarFlags(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("live needs an interactive terminal")
	}
	initial := ""
	if len(args) == 1 {
		// #nosec G304 -- path is provided by the user
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		initial = string(data)
	}
	// таймингам здесь не место: каждое нажатие перепарсивает буфер
	s.opts.Timer = nil
	p := tea.NewProgram(ui.NewLiveModel(initial, s.opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("live view failed: %w", err)
	}
	return nil
}

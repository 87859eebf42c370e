package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/snippet"
	"github.com/opendatadetector/cmlc/internal/widget"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"tui"},
	Short:   "Interactively configure a dataset download",
	GroupID: groupCore,
	Long: `Open the interactive dataset configurator.

Pick a pileup scenario and physics channel, toggle object types, and set
the events-per-channel tier. The estimated download size and the Python
load command update live; press 'c' to copy the command.

On exit the final load command is printed to stdout, so the result can be
piped or redirected even after the TUI closes.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if err := checkTTY(); err != nil {
		return err
	}
	if err := checkTERM(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	loader := newLoader(cfg, logger)

	applyColorProfile(cfg.UI.Color)

	model := widget.NewModel(cfg, loader)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("configurator failed: %w", err)
	}

	final, ok := finalModel.(widget.Model)
	if !ok {
		return nil
	}
	fmt.Println(snippet.Generate(final.Selections(), cfg.Catalog.DatasetID))
	return nil
}

// checkTERM verifies that the TERM environment variable is not "dumb".
func checkTERM() error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TERM=dumb is not supported; use 'cmlc snippet' instead")
	}
	return nil
}

// applyColorProfile forces or disables color per the ui.color setting,
// leaving termenv detection in place for "auto".
func applyColorProfile(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

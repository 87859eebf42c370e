package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/clipboard"
	"github.com/opendatadetector/cmlc/internal/snippet"
)

var (
	snippetFlags selectionFlags
	snippetCopy  bool
)

var snippetCmd = &cobra.Command{
	Use:     "snippet",
	Short:   "Print the Python load command for a selection",
	GroupID: groupCore,
	Long: `Print the load_dataset snippet for a dataset selection without
opening the TUI. Flags default to the configured selection defaults.

Examples:
  cmlc snippet
  cmlc snippet --channel higgs --objects particles,calo_hits
  cmlc snippet --copy      # Also place the snippet on the clipboard`,
	RunE: runSnippet,
}

func init() {
	snippetFlags.register(snippetCmd)
	snippetCmd.Flags().BoolVar(&snippetCopy, "copy", false, "Copy the snippet to the clipboard")
}

func runSnippet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	cat := newLoader(cfg, logger).Load(cmd.Context())

	sel, err := snippetFlags.resolve(cfg, cat)
	if err != nil {
		return err
	}

	text := snippet.Generate(sel, cfg.Catalog.DatasetID)
	fmt.Println(text)

	if snippetCopy {
		if err := clipboard.Write(text); err != nil {
			logger.Warn("clipboard write failed", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "cmlc: copy failed: %v\n", err)
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%scopied to clipboard%s\n", colorGreen, colorReset)
	}
	return nil
}

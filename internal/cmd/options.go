package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/catalog"
	"github.com/opendatadetector/cmlc/internal/selection"
)

var optionsJSON bool

var optionsCmd = &cobra.Command{
	Use:     "options",
	Short:   "List the available dataset options",
	GroupID: groupCore,
	Long: `List the pileup scenarios, physics channels, object types and event
tiers the catalog currently offers.

Options are discovered from the remote dataset manifest; when the remote
is unreachable a built-in catalog is used and marked as such.

Examples:
  cmlc options           # Human-readable listing
  cmlc options --json    # Machine-readable output`,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Output as JSON")
}

// optionsDoc is the JSON shape emitted by --json.
type optionsDoc struct {
	Pileups    []catalog.Option `json:"pileups"`
	Channels   []catalog.Option `json:"channels"`
	Objects    []catalog.Option `json:"objects"`
	EventTiers []int            `json:"event_tiers"`
	Fallback   bool             `json:"fallback"`
}

func runOptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	cat := newLoader(cfg, logger).Load(cmd.Context())

	if optionsJSON {
		doc := optionsDoc{
			Pileups:    cat.Pileups,
			Channels:   cat.Processes,
			Objects:    cat.Objects,
			EventTiers: selection.EventScale,
			Fallback:   cat.SizesFallback || cat.FacetsFallback,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if cat.SizesFallback || cat.FacetsFallback {
		fmt.Printf("%s(offline: using built-in catalog)%s\n\n", colorDim, colorReset)
	}

	printOptionGroup("Pileup scenarios", cat.Pileups)
	printOptionGroup("Physics channels", cat.Processes)
	printOptionGroup("Object types", cat.Objects)

	fmt.Printf("%sEvent tiers%s\n", colorBold, colorReset)
	for _, tier := range selection.EventScale {
		fmt.Printf("  %d\n", tier)
	}
	return nil
}

func printOptionGroup(title string, opts []catalog.Option) {
	fmt.Printf("%s%s%s\n", colorBold, title, colorReset)
	for _, opt := range opts {
		if opt.Description != "" {
			fmt.Printf("  %-14s %s%s%s\n", opt.ID, colorDim, opt.Description, colorReset)
		} else {
			fmt.Printf("  %-14s %s%s%s\n", opt.ID, colorDim, opt.Label, colorReset)
		}
	}
	fmt.Println()
}

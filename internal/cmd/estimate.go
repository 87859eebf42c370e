package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/estimate"
)

var (
	estimateFlags selectionFlags
	estimateJSON  bool
)

var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Short:   "Estimate the download size for a selection",
	GroupID: groupCore,
	Long: `Estimate the download size for a dataset selection without opening
the TUI. Flags default to the configured selection defaults.

Examples:
  cmlc estimate
  cmlc estimate --pileup pu200 --objects particles,tracks --events 5000
  cmlc estimate --json`,
	RunE: runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd)
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Output as JSON")
}

// estimateDoc is the JSON shape emitted by --json.
type estimateDoc struct {
	Pileup   string   `json:"pileup"`
	Channels []string `json:"channels"`
	Objects  []string `json:"objects"`
	Events   int      `json:"events"`
	GB       float64  `json:"gb"`
	Display  string   `json:"display"`
	Fallback bool     `json:"fallback"`
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	cat := newLoader(cfg, logger).Load(cmd.Context())

	sel, err := estimateFlags.resolve(cfg, cat)
	if err != nil {
		return err
	}

	gb := estimate.GB(sel, cat.Sizes)

	if estimateJSON {
		doc := estimateDoc{
			Pileup:   sel.Pileup,
			Channels: sel.Channels,
			Objects:  sel.Objects,
			Events:   sel.Events,
			GB:       gb,
			Display:  estimate.Format(gb),
			Fallback: cat.SizesFallback,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	channel := "(none)"
	if len(sel.Channels) > 0 {
		channel = strings.Join(sel.Channels, ", ")
	}
	fmt.Printf("%sSelection%s\n", colorBold, colorReset)
	fmt.Printf("  pileup:   %s\n", sel.Pileup)
	fmt.Printf("  channel:  %s\n", channel)
	fmt.Printf("  objects:  %s\n", strings.Join(sel.Objects, ", "))
	fmt.Printf("  events:   %d\n", sel.Events)
	fmt.Println()
	fmt.Printf("%sEstimated download: %s%s\n", colorBold, estimate.Format(gb), colorReset)
	if cat.SizesFallback {
		fmt.Printf("%s(based on built-in size table)%s\n", colorDim, colorReset)
	}
	return nil
}

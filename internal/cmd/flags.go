package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/catalog"
	"github.com/opendatadetector/cmlc/internal/config"
	"github.com/opendatadetector/cmlc/internal/selection"
)

// selectionFlags holds the shared --pileup/--channel/--objects/--events
// flag values used by the estimate and snippet commands.
type selectionFlags struct {
	pileup  string
	channel string
	objects []string
	events  int
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pileup, "pileup", "", "Pileup scenario (e.g. pu0, pu200)")
	cmd.Flags().StringVar(&f.channel, "channel", "", "Physics channel (e.g. ttbar)")
	cmd.Flags().StringSliceVar(&f.objects, "objects", nil, "Object types (comma separated)")
	cmd.Flags().IntVar(&f.events, "events", 0, "Events per channel (snapped down to the nearest tier)")
}

// resolve merges flag values over the configured defaults and validates
// them against the catalog's known options.
func (f *selectionFlags) resolve(cfg *config.Config, cat *catalog.Catalog) (selection.Selections, error) {
	sel := selection.Selections{
		Pileup:  cfg.Defaults.Pileup,
		Objects: append([]string(nil), cfg.Defaults.Objects...),
		Events:  cfg.Defaults.Events,
	}
	if cfg.Defaults.Channel != "" {
		sel.Channels = []string{cfg.Defaults.Channel}
	}

	if f.pileup != "" {
		sel.SelectPileup(f.pileup)
	}
	if f.channel != "" {
		sel.SelectChannel(f.channel)
	}
	if f.objects != nil {
		sel.DeselectAllObjects()
		for _, obj := range f.objects {
			sel.ToggleObject(strings.TrimSpace(obj))
		}
	}
	if f.events > 0 {
		sel.Events = f.events
	}
	sel.SetEventIndex(sel.EventIndex()) // snap to the nearest tier

	if !cat.HasPileup(sel.Pileup) {
		return sel, fmt.Errorf("unknown pileup %q (run 'cmlc options' to list)", sel.Pileup)
	}
	if len(sel.Channels) > 0 && !cat.HasProcess(sel.Channels[0]) {
		return sel, fmt.Errorf("unknown channel %q (run 'cmlc options' to list)", sel.Channels[0])
	}
	known := make(map[string]bool)
	for _, id := range cat.ObjectIDs() {
		known[id] = true
	}
	for _, obj := range sel.Objects {
		if !known[obj] {
			return sel, fmt.Errorf("unknown object type %q (run 'cmlc options' to list)", obj)
		}
	}
	return sel, nil
}

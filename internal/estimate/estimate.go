// Package estimate derives download-size estimates from the current
// selections and the loaded size table. Estimates are cheap pure functions
// recomputed on every read; nothing is cached.
package estimate

import (
	"fmt"
	"math"

	"github.com/opendatadetector/cmlc/internal/catalog"
	"github.com/opendatadetector/cmlc/internal/selection"
)

// GB computes the estimated download size in gigabytes: the sum of the
// per-object GB/1000-events figures for the active pileup row (missing
// entries contribute zero), scaled linearly by the channel count and by
// events/1000. No objects or no channels yields zero.
func GB(sel selection.Selections, sizes catalog.SizeTable) float64 {
	row := sizes.Row(sel.Pileup)

	var perThousand float64
	for _, obj := range sel.Objects {
		perThousand += row[obj]
	}

	return perThousand * float64(len(sel.Channels)) * float64(sel.Events) / 1000
}

// Format renders a GB figure for display. The figure is converted to MB
// (x1024): at or above 1024 MB it is shown in GB with one decimal place,
// below 1 MB in KB rounded to the nearest integer, otherwise in MB rounded
// to the nearest integer.
func Format(gb float64) string {
	mb := gb * 1024
	switch {
	case mb >= 1024:
		return fmt.Sprintf("%.1fGB", mb/1024)
	case mb < 1:
		return fmt.Sprintf("%.0fKB", math.Round(mb*1024))
	default:
		return fmt.Sprintf("%.0fMB", math.Round(mb))
	}
}

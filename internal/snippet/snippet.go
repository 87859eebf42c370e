// Package snippet renders the copyable load_dataset invocation for the
// current selections. Output is recomputed from scratch on every call.
package snippet

import (
	"fmt"
	"strings"

	"github.com/opendatadetector/cmlc/internal/selection"
)

// Placeholder is emitted instead of a command when no object types are
// selected.
const Placeholder = "# Select at least one object type to generate a load command."

// importLine opens every generated snippet.
const importLine = "from datasets import load_dataset"

// ConfigName composes the partition identifier for one object type:
// {channel}_{pileup}_{object}.
func ConfigName(channel, pileup, object string) string {
	return channel + "_" + pileup + "_" + object
}

// VarName derives a Python variable name from an object id by collapsing
// underscores (tracker_hits -> trackerhits).
func VarName(object string) string {
	return strings.ReplaceAll(object, "_", "")
}

// Generate renders the load command for the given selections against the
// dataset identifier. With a single selected object the result is a
// two-line invocation assigning to "dataset"; with several objects each gets
// its own assignment line named after the object, all sharing the same
// event-count slice bound.
func Generate(sel selection.Selections, datasetID string) string {
	if len(sel.Objects) == 0 {
		return Placeholder
	}

	channel := ""
	if len(sel.Channels) > 0 {
		channel = sel.Channels[0]
	}

	var b strings.Builder
	b.WriteString(importLine)
	b.WriteByte('\n')

	if len(sel.Objects) == 1 {
		b.WriteString(loadLine("dataset", datasetID, ConfigName(channel, sel.Pileup, sel.Objects[0]), sel.Events))
		return b.String()
	}

	for i, obj := range sel.Objects {
		b.WriteString(loadLine(VarName(obj), datasetID, ConfigName(channel, sel.Pileup, obj), sel.Events))
		if i < len(sel.Objects)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func loadLine(varName, datasetID, configName string, events int) string {
	return fmt.Sprintf("%s = load_dataset(%q, %q, split=\"train[:%d]\")", varName, datasetID, configName, events)
}

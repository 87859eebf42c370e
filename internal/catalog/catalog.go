// Package catalog loads the facet options and size-estimate table that drive
// the dataset configurator. Data comes from two independent remote sources
// (a static size-estimate document and the dataset manifest API); every
// failure degrades silently to a last-good snapshot or to the hardcoded
// fallback data, so the configurator stays fully functional offline.
package catalog

// Option is one selectable value within a facet.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SizeTable maps pileup level -> object type -> GB per 1000 events.
// Absent keys are treated as zero contributions.
type SizeTable map[string]map[string]float64

// Row returns the per-object sizes for a pileup level, or an empty map when
// the level is unknown.
func (t SizeTable) Row(pileup string) map[string]float64 {
	if row, ok := t[pileup]; ok {
		return row
	}
	return map[string]float64{}
}

// Catalog is the loaded metadata the configurator operates on.
type Catalog struct {
	Pileups   []Option
	Processes []Option
	Objects   []Option
	Sizes     SizeTable

	// SizesFallback and FacetsFallback report whether the corresponding
	// remote fetch failed and fallback data was substituted.
	SizesFallback  bool
	FacetsFallback bool
}

// ObjectIDs returns the ids of all known object-type options, in order.
func (c *Catalog) ObjectIDs() []string {
	ids := make([]string, len(c.Objects))
	for i, o := range c.Objects {
		ids[i] = o.ID
	}
	return ids
}

// HasPileup reports whether id is a known pileup level.
func (c *Catalog) HasPileup(id string) bool {
	for _, o := range c.Pileups {
		if o.ID == id {
			return true
		}
	}
	return false
}

// HasProcess reports whether id is a known physics process.
func (c *Catalog) HasProcess(id string) bool {
	for _, o := range c.Processes {
		if o.ID == id {
			return true
		}
	}
	return false
}

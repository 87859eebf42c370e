package catalog

// Hardcoded fallback data. Used whenever a remote fetch fails (network
// error, non-2xx status, parse error) or discovery returns zero configs, so
// the configurator never enters an error state.

// knownPileups maps pileup ids to display metadata. Ids discovered remotely
// but absent here are shown with the raw id as label.
var knownPileups = map[string]Option{
	"pu0":   {ID: "pu0", Label: "No pileup", Description: "Hard-scatter events only"},
	"pu10":  {ID: "pu10", Label: "Pileup 10", Description: "10 overlaid minimum-bias interactions per event"},
	"pu200": {ID: "pu200", Label: "Pileup 200", Description: "200 overlaid minimum-bias interactions per event"},
}

// knownProcesses maps physics-process ids to display metadata.
var knownProcesses = map[string]Option{
	"ttbar":   {ID: "ttbar", Label: "Top pair production"},
	"qcd":     {ID: "qcd", Label: "QCD multijet"},
	"wjets":   {ID: "wjets", Label: "W + jets"},
	"zjets":   {ID: "zjets", Label: "Z + jets"},
	"higgs":   {ID: "higgs", Label: "Higgs"},
	"susy":    {ID: "susy", Label: "SUSY"},
	"exotics": {ID: "exotics", Label: "Exotics"},
}

// fallbackPileupIDs is the pileup facet when discovery fails.
var fallbackPileupIDs = []string{"pu0", "pu10", "pu200"}

// fallbackProcessIDs is the process facet when discovery fails.
var fallbackProcessIDs = []string{"ttbar", "qcd", "wjets", "zjets", "higgs", "susy", "exotics"}

// objectOptions is the fixed object-type facet. Object types are not
// discovered remotely; the set is part of the dataset layout.
var objectOptions = []Option{
	{ID: "particles", Label: "Particles", Description: "Truth-level particle records"},
	{ID: "tracker_hits", Label: "Tracker hits", Description: "Raw silicon tracker measurements"},
	{ID: "calo_hits", Label: "Calorimeter hits", Description: "Raw calorimeter cell deposits"},
	{ID: "tracks", Label: "Tracks", Description: "Reconstructed track candidates"},
}

// FallbackSizes returns the hardcoded size-estimate table, in GB per 1000
// events.
func FallbackSizes() SizeTable {
	return SizeTable{
		"pu0": {
			"particles":    0.25,
			"tracker_hits": 0.2,
			"calo_hits":    0.60,
			"tracks":       0.003,
		},
		"pu10": {
			"particles":    0.3,
			"tracker_hits": 1.2,
			"calo_hits":    2.4,
			"tracks":       0.01,
		},
		"pu200": {
			"particles":    1.4,
			"tracker_hits": 12.0,
			"calo_hits":    18.0,
			"tracks":       0.08,
		},
	}
}

// FallbackCatalog returns the complete offline catalog.
func FallbackCatalog() *Catalog {
	return &Catalog{
		Pileups:        pileupOptions(fallbackPileupIDs),
		Processes:      processOptions(fallbackProcessIDs),
		Objects:        objectOptions,
		Sizes:          FallbackSizes(),
		SizesFallback:  true,
		FacetsFallback: true,
	}
}

// pileupOptions resolves pileup ids to display options.
func pileupOptions(ids []string) []Option {
	opts := make([]Option, 0, len(ids))
	for _, id := range ids {
		if o, ok := knownPileups[id]; ok {
			opts = append(opts, o)
		} else {
			opts = append(opts, Option{ID: id, Label: id})
		}
	}
	return opts
}

// processOptions resolves process ids to display options.
func processOptions(ids []string) []Option {
	opts := make([]Option, 0, len(ids))
	for _, id := range ids {
		if o, ok := knownProcesses[id]; ok {
			opts = append(opts, o)
		} else {
			opts = append(opts, Option{ID: id, Label: id})
		}
	}
	return opts
}

package catalog

import "strings"

// SplitConfigName decomposes a config name of the form
// {process}_{pileup}_{objecttype} into its process and pileup identifiers.
// The pileup is the first underscore-separated segment with the literal
// prefix "pu"; everything before it, re-joined with underscores, is the
// process (so multi-word processes like "mssm_higgs" survive). Names with no
// pu-prefixed segment, or where the pu segment comes first, are rejected.
func SplitConfigName(name string) (process, pileup string, ok bool) {
	segs := strings.Split(name, "_")
	for i, seg := range segs {
		if strings.HasPrefix(seg, "pu") {
			if i == 0 {
				return "", "", false
			}
			return strings.Join(segs[:i], "_"), seg, true
		}
	}
	return "", "", false
}

// ConfigsFromManifest extracts the distinct config names from manifest file
// paths. Only paths of the form data/<config-name>/... are considered;
// order of first appearance is preserved.
func ConfigsFromManifest(paths []string) []string {
	seen := make(map[string]struct{})
	var configs []string
	for _, p := range paths {
		rest, found := strings.CutPrefix(p, "data/")
		if !found {
			continue
		}
		name, _, found := strings.Cut(rest, "/")
		if !found || name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		configs = append(configs, name)
	}
	return configs
}

// facetsFromConfigs collects the distinct process and pileup identifiers
// across config names, in order of first appearance. Config names that do
// not decompose are skipped.
func facetsFromConfigs(configs []string) (processes, pileups []string) {
	seenProc := make(map[string]struct{})
	seenPU := make(map[string]struct{})
	for _, name := range configs {
		proc, pu, ok := SplitConfigName(name)
		if !ok {
			continue
		}
		if _, dup := seenProc[proc]; !dup {
			seenProc[proc] = struct{}{}
			processes = append(processes, proc)
		}
		if _, dup := seenPU[pu]; !dup {
			seenPU[pu] = struct{}{}
			pileups = append(pileups, pu)
		}
	}
	return processes, pileups
}

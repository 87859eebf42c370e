package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitConfigName(t *testing.T) {
	tests := []struct {
		name    string
		process string
		pileup  string
		ok      bool
	}{
		{"ttbar_pu0_particles", "ttbar", "pu0", true},
		{"ttbar_pu200_tracker_hits", "ttbar", "pu200", true},
		{"qcd_pu10_calo_hits", "qcd", "pu10", true},
		// Multi-segment process names are re-joined with underscores.
		{"mssm_higgs_pu200_tracks", "mssm_higgs", "pu200", true},
		// The pileup segment is the *first* one with the pu prefix;
		// later segments stay part of the object type.
		{"wjets_pu0_pu_weights", "wjets", "pu0", true},
		// No pu-prefixed segment.
		{"ttbar_nopileup_particles", "", "", false},
		{"particles", "", "", false},
		{"", "", "", false},
		// pu segment with nothing before it has no process.
		{"pu0_particles", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			process, pileup, ok := SplitConfigName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.process, process)
			assert.Equal(t, tt.pileup, pileup)
		})
	}
}

func TestConfigsFromManifest(t *testing.T) {
	paths := []string{
		"README.md",
		"data/ttbar_pu0_particles/train-00000.parquet",
		"data/ttbar_pu0_particles/train-00001.parquet",
		"data/ttbar_pu0_tracks/train-00000.parquet",
		"data/qcd_pu200_calo_hits/train-00000.parquet",
		"docs/data/notreally/readme.txt",
		"data/",
		"data/loosefile.parquet",
	}

	configs := ConfigsFromManifest(paths)
	assert.Equal(t, []string{"ttbar_pu0_particles", "ttbar_pu0_tracks", "qcd_pu200_calo_hits"}, configs)
}

func TestConfigsFromManifestEmpty(t *testing.T) {
	assert.Empty(t, ConfigsFromManifest(nil))
	assert.Empty(t, ConfigsFromManifest([]string{"README.md", "weights/model.bin"}))
}

func TestFacetsFromConfigs(t *testing.T) {
	configs := []string{
		"ttbar_pu0_particles",
		"ttbar_pu0_tracks",
		"ttbar_pu200_particles",
		"qcd_pu0_calo_hits",
		"broken-name",
		"mssm_higgs_pu200_tracks",
	}

	processes, pileups := facetsFromConfigs(configs)
	assert.Equal(t, []string{"ttbar", "qcd", "mssm_higgs"}, processes)
	assert.Equal(t, []string{"pu0", "pu200"}, pileups)
}

func TestFacetsFromConfigsAllBroken(t *testing.T) {
	processes, pileups := facetsFromConfigs([]string{"nounderscores", "no_pile_here"})
	assert.Empty(t, processes)
	assert.Empty(t, pileups)
}

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendatadetector/cmlc/internal/cache"
	"github.com/opendatadetector/cmlc/internal/config"
)

const sizesDoc = `{
	"pu0":   {"particles": 0.5, "tracks": 0.01},
	"pu200": {"particles": 3.0, "tracks": 0.2}
}`

const manifestDoc = `{
	"siblings": [
		{"rfilename": "README.md"},
		{"rfilename": "data/ttbar_pu0_particles/train-00000.parquet"},
		{"rfilename": "data/ttbar_pu0_tracks/train-00000.parquet"},
		{"rfilename": "data/qcd_pu200_particles/train-00000.parquet"}
	]
}`

func newTestLoader(t *testing.T, sizesURL, manifestURL string, store *cache.Store) *Loader {
	t.Helper()
	return NewLoader(config.CatalogConfig{
		SizesURL:    sizesURL,
		ManifestURL: manifestURL,
		TimeoutMs:   2000,
	}, store, nil)
}

func serve(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadRemoteData(t *testing.T) {
	sizes := serve(t, sizesDoc, http.StatusOK)
	manifest := serve(t, manifestDoc, http.StatusOK)

	l := newTestLoader(t, sizes.URL, manifest.URL, nil)
	cat := l.Load(context.Background())

	require.NotNil(t, cat)
	assert.False(t, cat.SizesFallback)
	assert.False(t, cat.FacetsFallback)

	assert.Equal(t, 0.5, cat.Sizes.Row("pu0")["particles"])
	assert.Equal(t, 3.0, cat.Sizes.Row("pu200")["particles"])

	procIDs := make([]string, len(cat.Processes))
	for i, o := range cat.Processes {
		procIDs[i] = o.ID
	}
	assert.Equal(t, []string{"ttbar", "qcd"}, procIDs)

	puIDs := make([]string, len(cat.Pileups))
	for i, o := range cat.Pileups {
		puIDs[i] = o.ID
	}
	assert.Equal(t, []string{"pu0", "pu200"}, puIDs)

	// Object types are fixed regardless of discovery.
	assert.Equal(t, []string{"particles", "tracker_hits", "calo_hits", "tracks"}, cat.ObjectIDs())
}

func TestLoadSizesFallbackOnStatus(t *testing.T) {
	sizes := serve(t, "not found", http.StatusNotFound)
	manifest := serve(t, manifestDoc, http.StatusOK)

	l := newTestLoader(t, sizes.URL, manifest.URL, nil)
	cat := l.Load(context.Background())

	assert.True(t, cat.SizesFallback)
	assert.False(t, cat.FacetsFallback)
	assert.Equal(t, FallbackSizes(), cat.Sizes)
}

func TestLoadSizesFallbackOnParseError(t *testing.T) {
	sizes := serve(t, "{broken", http.StatusOK)
	manifest := serve(t, manifestDoc, http.StatusOK)

	l := newTestLoader(t, sizes.URL, manifest.URL, nil)
	cat := l.Load(context.Background())

	assert.True(t, cat.SizesFallback)
	assert.Equal(t, FallbackSizes(), cat.Sizes)
}

func TestLoadFacetsFallbackOnNetworkError(t *testing.T) {
	sizes := serve(t, sizesDoc, http.StatusOK)
	manifest := serve(t, manifestDoc, http.StatusOK)
	manifestURL := manifest.URL
	manifest.Close() // connection refused

	l := newTestLoader(t, sizes.URL, manifestURL, nil)
	cat := l.Load(context.Background())

	assert.False(t, cat.SizesFallback)
	assert.True(t, cat.FacetsFallback)
	assert.Equal(t, FallbackCatalog().Processes, cat.Processes)
	assert.Equal(t, FallbackCatalog().Pileups, cat.Pileups)
}

func TestLoadFacetsFallbackOnZeroConfigs(t *testing.T) {
	sizes := serve(t, sizesDoc, http.StatusOK)
	manifest := serve(t, `{"siblings": [{"rfilename": "README.md"}]}`, http.StatusOK)

	l := newTestLoader(t, sizes.URL, manifest.URL, nil)
	cat := l.Load(context.Background())

	assert.True(t, cat.FacetsFallback)
	assert.Equal(t, FallbackCatalog().Processes, cat.Processes)
}

func TestLoadBothFallback(t *testing.T) {
	// Unroutable endpoints: everything degrades to the hardcoded catalog.
	l := newTestLoader(t, "http://127.0.0.1:1/sizes.json", "http://127.0.0.1:1/api", nil)
	cat := l.Load(context.Background())

	want := FallbackCatalog()
	assert.Equal(t, want.Sizes, cat.Sizes)
	assert.Equal(t, want.Processes, cat.Processes)
	assert.Equal(t, want.Pileups, cat.Pileups)
	assert.Equal(t, want.Objects, cat.Objects)
	assert.True(t, cat.SizesFallback)
	assert.True(t, cat.FacetsFallback)
}

func TestLoadWritesSnapshot(t *testing.T) {
	sizes := serve(t, sizesDoc, http.StatusOK)
	manifest := serve(t, manifestDoc, http.StatusOK)
	store := cache.NewStore(filepath.Join(t.TempDir(), "catalog.json"), 0)

	l := newTestLoader(t, sizes.URL, manifest.URL, store)
	l.Load(context.Background())

	snap := store.Read()
	require.NotNil(t, snap)
	assert.Equal(t, 0.5, snap.Sizes["pu0"]["particles"])
	assert.Equal(t, []string{"ttbar", "qcd"}, snap.Processes)
	assert.Equal(t, []string{"pu0", "pu200"}, snap.Pileups)
}

func TestLoadUsesSnapshotBeforeFallback(t *testing.T) {
	store := cache.NewStore(filepath.Join(t.TempDir(), "catalog.json"), time.Hour)
	err := store.Write(&cache.Snapshot{
		Sizes:     map[string]map[string]float64{"pu10": {"particles": 1.5}},
		Processes: []string{"susy"},
		Pileups:   []string{"pu10"},
	})
	require.NoError(t, err)

	l := newTestLoader(t, "http://127.0.0.1:1/sizes.json", "http://127.0.0.1:1/api", store)
	cat := l.Load(context.Background())

	// Snapshot data is preferred over the hardcoded tables, and is not
	// flagged as fallback.
	assert.False(t, cat.SizesFallback)
	assert.False(t, cat.FacetsFallback)
	assert.Equal(t, 1.5, cat.Sizes.Row("pu10")["particles"])
	require.Len(t, cat.Processes, 1)
	assert.Equal(t, "susy", cat.Processes[0].ID)
}

func TestFetchSizesDirect(t *testing.T) {
	sizes := serve(t, sizesDoc, http.StatusOK)
	l := newTestLoader(t, sizes.URL, "http://127.0.0.1:1/api", nil)

	table, err := l.FetchSizes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.01, table.Row("pu0")["tracks"])
	// Unknown pileup rows read as empty, not nil panics.
	assert.Empty(t, table.Row("pu999"))
}

func TestDiscoverFacetsDirect(t *testing.T) {
	manifest := serve(t, manifestDoc, http.StatusOK)
	l := newTestLoader(t, "http://127.0.0.1:1/sizes.json", manifest.URL, nil)

	processes, pileups, err := l.DiscoverFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ttbar", "qcd"}, processes)
	assert.Equal(t, []string{"pu0", "pu200"}, pileups)
}

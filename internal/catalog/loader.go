package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/opendatadetector/cmlc/internal/cache"
	"github.com/opendatadetector/cmlc/internal/config"
)

// maxBodyBytes caps the size of remote documents we are willing to parse.
const maxBodyBytes = 8 << 20

// Loader fetches the size-estimate document and the dataset manifest.
type Loader struct {
	client      *http.Client
	sizesURL    string
	manifestURL string
	store       *cache.Store
	logger      *slog.Logger
}

// NewLoader creates a loader for the configured endpoints. store may be nil
// to disable the last-good snapshot; logger may be nil.
func NewLoader(cfg config.CatalogConfig, store *cache.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client:      &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
		sizesURL:    cfg.SizesURL,
		manifestURL: cfg.ManifestURL,
		store:       store,
		logger:      logger,
	}
}

// manifestResponse is the dataset API document shape. Only the sibling file
// listing is used.
type manifestResponse struct {
	Siblings []struct {
		RFilename string `json:"rfilename"`
	} `json:"siblings"`
}

// FetchSizes retrieves and parses the remote size-estimate table.
func (l *Loader) FetchSizes(ctx context.Context) (SizeTable, error) {
	body, err := l.get(ctx, l.sizesURL)
	if err != nil {
		return nil, err
	}

	var table SizeTable
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("failed to parse size estimates: %w", err)
	}
	return table, nil
}

// DiscoverFacets retrieves the dataset manifest and extracts the distinct
// process and pileup identifiers from its config names. Discovering zero
// configs is an error so callers fall back to known-good data.
func (l *Loader) DiscoverFacets(ctx context.Context) (processes, pileups []string, err error) {
	body, err := l.get(ctx, l.manifestURL)
	if err != nil {
		return nil, nil, err
	}

	var manifest manifestResponse
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	paths := make([]string, len(manifest.Siblings))
	for i, s := range manifest.Siblings {
		paths[i] = s.RFilename
	}

	configs := ConfigsFromManifest(paths)
	processes, pileups = facetsFromConfigs(configs)
	if len(processes) == 0 || len(pileups) == 0 {
		return nil, nil, fmt.Errorf("manifest yielded no usable configs (%d entries)", len(manifest.Siblings))
	}
	return processes, pileups, nil
}

// Load runs both fetches concurrently and always returns a complete catalog.
// Each fetch independently resolves to remote data, the last-good snapshot,
// or the hardcoded fallback; the catalog is ready once both have resolved.
func (l *Loader) Load(ctx context.Context) *Catalog {
	var (
		wg        sync.WaitGroup
		sizes     SizeTable
		sizesErr  error
		processes []string
		pileups   []string
		facetsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sizes, sizesErr = l.FetchSizes(ctx)
	}()
	go func() {
		defer wg.Done()
		processes, pileups, facetsErr = l.DiscoverFacets(ctx)
	}()
	wg.Wait()

	var snap *cache.Snapshot
	if l.store != nil && (sizesErr != nil || facetsErr != nil) {
		snap = l.store.Read()
	}

	cat := &Catalog{Objects: objectOptions}

	switch {
	case sizesErr == nil:
		cat.Sizes = sizes
	case snap != nil && snap.Sizes != nil:
		l.logger.Warn("size-estimate fetch failed, using cached snapshot", "error", sizesErr)
		cat.Sizes = SizeTable(snap.Sizes)
	default:
		l.logger.Warn("size-estimate fetch failed, using fallback table", "error", sizesErr)
		cat.Sizes = FallbackSizes()
		cat.SizesFallback = true
	}

	switch {
	case facetsErr == nil:
		cat.Processes = processOptions(processes)
		cat.Pileups = pileupOptions(pileups)
	case snap != nil && len(snap.Processes) > 0 && len(snap.Pileups) > 0:
		l.logger.Warn("facet discovery failed, using cached snapshot", "error", facetsErr)
		cat.Processes = processOptions(snap.Processes)
		cat.Pileups = pileupOptions(snap.Pileups)
	default:
		l.logger.Warn("facet discovery failed, using fallback facets", "error", facetsErr)
		cat.Processes = processOptions(fallbackProcessIDs)
		cat.Pileups = pileupOptions(fallbackPileupIDs)
		cat.FacetsFallback = true
	}

	if l.store != nil && sizesErr == nil && facetsErr == nil {
		if err := l.store.Write(&cache.Snapshot{
			Sizes:     cat.Sizes,
			Processes: processes,
			Pileups:   pileups,
		}); err != nil {
			l.logger.Warn("failed to persist catalog snapshot", "error", err)
		}
	}

	return cat
}

// get issues a GET and returns the body, treating any non-2xx status as an
// error.
func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

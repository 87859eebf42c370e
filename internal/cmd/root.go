package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/opendatadetector/cmlc/internal/cache"
	"github.com/opendatadetector/cmlc/internal/catalog"
	"github.com/opendatadetector/cmlc/internal/config"
	"github.com/opendatadetector/cmlc/internal/logging"
)

// Command group IDs for help output.
const (
	groupCore  = "core"
	groupSetup = "setup"
)

var rootCmd = &cobra.Command{
	Use:   "cmlc",
	Short: "configure and size ColliderML dataset downloads",
	Long: `cmlc - ColliderML dataset configurator
  - pick pileup, physics channel, object types and event count
  - see the estimated download size before committing
  - copy a ready-to-run load_dataset snippet`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Dataset commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup commands:"},
	)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the user config. Environment overrides are applied as
// part of loading.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger opens the log file under the cache directory. Commands log
// there rather than to stderr so their stdout stays parseable. Falls back
// to a discard logger when the file cannot be opened.
func newLogger(cfg *config.Config) *slog.Logger {
	paths := config.DefaultPaths()
	if err := os.MkdirAll(paths.CacheDir, 0o755); err != nil {
		return logging.Discard()
	}
	f, err := os.OpenFile(paths.LogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logging.Discard()
	}
	return logging.New(&logging.Config{
		Output: f,
		Level:  logging.ParseLevel(cfg.Log.Level),
		Debug:  os.Getenv("CMLC_DEBUG") == "1",
	})
}

// newLoader builds the catalog loader with its on-disk snapshot store.
func newLoader(cfg *config.Config, logger *slog.Logger) *catalog.Loader {
	paths := config.DefaultPaths()
	ttl := time.Duration(cfg.Catalog.CacheTTLMin) * time.Minute
	store := cache.NewStore(paths.CatalogCacheFile(), ttl)
	return catalog.NewLoader(cfg.Catalog, store, logger)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the cmlc configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Defaults DefaultsConfig `yaml:"defaults"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// CatalogConfig holds the remote metadata endpoints.
type CatalogConfig struct {
	SizesURL    string `yaml:"sizes_url"`    // Size-estimate JSON document
	ManifestURL string `yaml:"manifest_url"` // Dataset manifest API endpoint
	DatasetID   string `yaml:"dataset_id"`   // Dataset identifier used in generated snippets
	TimeoutMs   int    `yaml:"timeout_ms"`   // Per-fetch HTTP timeout
	CacheTTLMin int    `yaml:"cache_ttl_min"` // Last-good catalog snapshot lifetime (0 = never expire)
}

// DefaultsConfig holds the initial widget selections.
type DefaultsConfig struct {
	Pileup  string   `yaml:"pileup"`
	Channel string   `yaml:"channel"`
	Objects []string `yaml:"objects"`
	Events  int      `yaml:"events"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Color     string `yaml:"color"`       // auto, always, or never
	CopyAckMs int    `yaml:"copy_ack_ms"` // How long the "copied" acknowledgment stays visible
}

// LogConfig holds developer-log settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (empty = default under cache dir)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			SizesURL:    "https://opendatadetector.github.io/ColliderML/size-estimates.json",
			ManifestURL: "https://huggingface.co/api/datasets/OpenDataDetector/ColliderML",
			DatasetID:   "OpenDataDetector/ColliderML",
			TimeoutMs:   10000,
			CacheTTLMin: 0,
		},
		Defaults: DefaultsConfig{
			Pileup:  "pu0",
			Channel: "ttbar",
			Objects: []string{"particles"},
			Events:  1000,
		},
		UI: UIConfig{
			Color:     "auto",
			CopyAckMs: 2000,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get retrieves a configuration value by dot-separated key.
// For example: "catalog.sizes_url" or "defaults.events"
func (c *Config) Get(key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "catalog":
		return c.getCatalogField(field)
	case "defaults":
		return c.getDefaultsField(field)
	case "ui":
		return c.getUIField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by dot-separated key.
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "catalog":
		return c.setCatalogField(field, value)
	case "defaults":
		return c.setDefaultsField(field, value)
	case "ui":
		return c.setUIField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) getCatalogField(field string) (string, error) {
	switch field {
	case "sizes_url":
		return c.Catalog.SizesURL, nil
	case "manifest_url":
		return c.Catalog.ManifestURL, nil
	case "dataset_id":
		return c.Catalog.DatasetID, nil
	case "timeout_ms":
		return strconv.Itoa(c.Catalog.TimeoutMs), nil
	case "cache_ttl_min":
		return strconv.Itoa(c.Catalog.CacheTTLMin), nil
	default:
		return "", fmt.Errorf("unknown field: catalog.%s", field)
	}
}

func (c *Config) setCatalogField(field, value string) error {
	switch field {
	case "sizes_url":
		c.Catalog.SizesURL = value
	case "manifest_url":
		c.Catalog.ManifestURL = value
	case "dataset_id":
		c.Catalog.DatasetID = value
	case "timeout_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for timeout_ms: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid timeout_ms: must be >= 1")
		}
		c.Catalog.TimeoutMs = v
	case "cache_ttl_min":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for cache_ttl_min: %w", err)
		}
		if v < 0 {
			return fmt.Errorf("invalid cache_ttl_min: must be non-negative")
		}
		c.Catalog.CacheTTLMin = v
	default:
		return fmt.Errorf("unknown field: catalog.%s", field)
	}
	return nil
}

func (c *Config) getDefaultsField(field string) (string, error) {
	switch field {
	case "pileup":
		return c.Defaults.Pileup, nil
	case "channel":
		return c.Defaults.Channel, nil
	case "objects":
		return strings.Join(c.Defaults.Objects, ","), nil
	case "events":
		return strconv.Itoa(c.Defaults.Events), nil
	default:
		return "", fmt.Errorf("unknown field: defaults.%s", field)
	}
}

func (c *Config) setDefaultsField(field, value string) error {
	switch field {
	case "pileup":
		c.Defaults.Pileup = value
	case "channel":
		c.Defaults.Channel = value
	case "objects":
		c.Defaults.Objects = splitList(value)
	case "events":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for events: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid events: must be >= 1")
		}
		c.Defaults.Events = v
	default:
		return fmt.Errorf("unknown field: defaults.%s", field)
	}
	return nil
}

func (c *Config) getUIField(field string) (string, error) {
	switch field {
	case "color":
		return c.UI.Color, nil
	case "copy_ack_ms":
		return strconv.Itoa(c.UI.CopyAckMs), nil
	default:
		return "", fmt.Errorf("unknown field: ui.%s", field)
	}
}

func (c *Config) setUIField(field, value string) error {
	switch field {
	case "color":
		if !isValidColorMode(value) {
			return fmt.Errorf("invalid color: %s (must be auto, always, or never)", value)
		}
		c.UI.Color = value
	case "copy_ack_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for copy_ack_ms: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid copy_ack_ms: must be >= 1")
		}
		c.UI.CopyAckMs = v
	default:
		return fmt.Errorf("unknown field: ui.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog.SizesURL == "" {
		return errors.New("catalog.sizes_url must not be empty")
	}

	if c.Catalog.ManifestURL == "" {
		return errors.New("catalog.manifest_url must not be empty")
	}

	if c.Catalog.DatasetID == "" {
		return errors.New("catalog.dataset_id must not be empty")
	}

	if c.Catalog.TimeoutMs < 1 {
		return errors.New("catalog.timeout_ms must be >= 1")
	}

	if c.Catalog.CacheTTLMin < 0 {
		return errors.New("catalog.cache_ttl_min must be >= 0")
	}

	if c.Defaults.Events < 1 {
		return errors.New("defaults.events must be >= 1")
	}

	if !isValidColorMode(c.UI.Color) {
		return fmt.Errorf("ui.color must be auto, always, or never (got: %s)", c.UI.Color)
	}

	if c.UI.CopyAckMs < 1 {
		return errors.New("ui.copy_ack_ms must be >= 1")
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CMLC_SIZES_URL"); v != "" {
		c.Catalog.SizesURL = v
	}
	if v := os.Getenv("CMLC_MANIFEST_URL"); v != "" {
		c.Catalog.ManifestURL = v
	}
	if v := os.Getenv("CMLC_DATASET_ID"); v != "" {
		c.Catalog.DatasetID = v
	}
	if v := os.Getenv("CMLC_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("CMLC_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
	if v := os.Getenv("CMLC_COLOR"); v != "" {
		if isValidColorMode(v) {
			c.UI.Color = v
		}
	}
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"catalog.sizes_url",
		"catalog.manifest_url",
		"catalog.dataset_id",
		"catalog.timeout_ms",
		"catalog.cache_ttl_min",
		"defaults.pileup",
		"defaults.channel",
		"defaults.objects",
		"defaults.events",
		"ui.color",
		"ui.copy_ack_ms",
		"log.level",
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func isValidColorMode(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	default:
		return false
	}
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

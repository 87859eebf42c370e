// Package config provides configuration management for cmlc.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for cmlc.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/cmlc)
	ConfigDir string

	// CacheDir is the directory for cached catalog data and logs (~/.cache/cmlc)
	CacheDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return &Paths{
			ConfigDir: filepath.Join(appData, "cmlc"),
			CacheDir:  filepath.Join(localAppData, "cmlc", "cache"),
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	return &Paths{
		ConfigDir: filepath.Join(configHome, "cmlc"),
		CacheDir:  filepath.Join(cacheHome, "cmlc"),
	}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// CatalogCacheFile returns the path to the last-good catalog snapshot.
func (p *Paths) CatalogCacheFile() string {
	return filepath.Join(p.CacheDir, "catalog.json")
}

// LogFile returns the path to the developer log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.CacheDir, "cmlc.log")
}

// homeDir returns the user's home directory, falling back to the current
// directory if it cannot be determined.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

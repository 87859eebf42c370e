// Package cache persists the last successfully fetched catalog metadata so
// later runs can degrade to recent data instead of the hardcoded fallback.
// User selections are never persisted.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Snapshot is the cached remote metadata.
type Snapshot struct {
	Sizes     map[string]map[string]float64 `json:"sizes,omitempty"`
	Processes []string                      `json:"processes,omitempty"`
	Pileups   []string                      `json:"pileups,omitempty"`
	FetchedAt time.Time                     `json:"fetched_at"`
}

// Store reads and writes catalog snapshots at a fixed path.
type Store struct {
	path string
	ttl  time.Duration // 0 = snapshots never expire
}

// NewStore creates a store for the given snapshot file.
func NewStore(path string, ttl time.Duration) *Store {
	return &Store{path: path, ttl: ttl}
}

// Read returns the cached snapshot, or nil if none exists, it cannot be
// parsed, or it has expired.
func (s *Store) Read() *Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	if s.ttl > 0 && time.Since(snap.FetchedAt) > s.ttl {
		return nil
	}
	return &snap
}

// Write stores a snapshot, stamping it with the current time.
func (s *Store) Write(snap *Snapshot) error {
	snap.FetchedAt = time.Now()
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Clear removes the snapshot file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

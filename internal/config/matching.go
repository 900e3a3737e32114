package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical matching defaults file.
const DefaultConfigPath = "config/matching.defaults.json"

const (
	defaultEffThreshold    = 0.5
	defaultMinHitsPerTrack = 2
)

// MatchingConfig is the on-disk form of the hit-matching parameters.
// Fields left out of the JSON stay nil and resolve to defaults through the
// Get* methods, so partial files are safe.
type MatchingConfig struct {
	// Minimum per-track efficiency for a reconstructed track to count as a match.
	EffThreshold *float64 `json:"eff_threshold,omitempty"`
	// Minimum number of distinct hits for a reconstructed track to be scored.
	MinHitsPerTrack *int `json:"min_hits_per_track,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyMatchingConfig returns a MatchingConfig with all fields set to nil.
func EmptyMatchingConfig() *MatchingConfig {
	return &MatchingConfig{}
}

// DefaultMatchingConfig returns a MatchingConfig with every field populated
// from the built-in defaults.
func DefaultMatchingConfig() *MatchingConfig {
	return &MatchingConfig{
		EffThreshold:    ptrFloat64(defaultEffThreshold),
		MinHitsPerTrack: ptrInt(defaultMinHitsPerTrack),
	}
}

// LoadMatchingConfig loads a MatchingConfig from a JSON file.
// The path must have a .json extension and the file must be under 1MB.
func LoadMatchingConfig(path string) (*MatchingConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyMatchingConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repository root.
// Panics if the file cannot be loaded; intended for test setup.
func MustLoadDefaultConfig() *MatchingConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,    // from metrics/
		"../../" + DefaultConfigPath, // from internal/config/
	}
	for _, path := range candidates {
		if cfg, err := LoadMatchingConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that any set values are in range.
func (c *MatchingConfig) Validate() error {
	if c.EffThreshold != nil {
		v := *c.EffThreshold
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("eff_threshold must be between 0 and 1, got %f", v)
		}
	}
	if c.MinHitsPerTrack != nil && *c.MinHitsPerTrack < 0 {
		return fmt.Errorf("min_hits_per_track must be non-negative, got %d", *c.MinHitsPerTrack)
	}
	return nil
}

// GetEffThreshold returns the eff_threshold value or the default.
func (c *MatchingConfig) GetEffThreshold() float64 {
	if c.EffThreshold == nil {
		return defaultEffThreshold
	}
	return *c.EffThreshold
}

// GetMinHitsPerTrack returns the min_hits_per_track value or the default.
func (c *MatchingConfig) GetMinHitsPerTrack() int {
	if c.MinHitsPerTrack == nil {
		return defaultMinHitsPerTrack
	}
	return *c.MinHitsPerTrack
}

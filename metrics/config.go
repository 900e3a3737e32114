package metrics

import (
	"fmt"
	"math"

	"github.com/banshee-data/trackutils/internal/config"
)

// NoiseLabel marks a hit that belongs to no track.
const NoiseLabel = -1

// Config holds the matcher parameters.
type Config struct {
	// EffThreshold is the minimum per-track efficiency for a reconstructed
	// track to count as a match of its majority true track.
	EffThreshold float64
	// MinHitsPerTrack is the minimum number of distinct hits a
	// reconstructed track needs to be scored.
	MinHitsPerTrack int
}

// DefaultConfig returns EffThreshold 0.5 and MinHitsPerTrack 2.
func DefaultConfig() Config {
	return fromFile(config.EmptyMatchingConfig())
}

// Validate reports ErrInvalidConfig for out-of-range parameters.
func (c Config) Validate() error {
	if math.IsNaN(c.EffThreshold) || c.EffThreshold < 0 || c.EffThreshold > 1 {
		return fmt.Errorf("%w: eff threshold %v not in [0, 1]", ErrInvalidConfig, c.EffThreshold)
	}
	if c.MinHitsPerTrack < 0 {
		return fmt.Errorf("%w: min hits per track %d is negative", ErrInvalidConfig, c.MinHitsPerTrack)
	}
	return nil
}

// LoadConfig reads a JSON matcher config. Keys missing from the file keep
// their defaults:
//
//	{"eff_threshold": 0.5, "min_hits_per_track": 2}
func LoadConfig(path string) (Config, error) {
	fc, err := config.LoadMatchingConfig(path)
	if err != nil {
		return Config{}, fmt.Errorf("load matcher config: %w", err)
	}
	return fromFile(fc), nil
}

func fromFile(fc *config.MatchingConfig) Config {
	return Config{
		EffThreshold:    fc.GetEffThreshold(),
		MinHitsPerTrack: fc.GetMinHitsPerTrack(),
	}
}

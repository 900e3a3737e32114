package metrics

import "github.com/banshee-data/trackutils/internal/monitoring"

// SetLogger replaces the logger used for diagnostics about degenerate
// events: no scored tracks (LabelMatcher's NaN average) or no true tracks.
// The default is log.Printf. Passing nil mutes the diagnostics.
//
// The logger is package-wide and safe to change while matchers are scoring.
func SetLogger(f func(format string, v ...interface{})) {
	monitoring.SetLogger(f)
}

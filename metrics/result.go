package metrics

// TrackMatch describes how one reconstructed track was scored.
type TrackMatch struct {
	// Index is the track's position in Result.Tracks. For IndexMatcher this
	// is the input order; for LabelMatcher tracks are in ascending RecoLabel
	// order.
	Index int `json:"index"`
	// RecoLabel is the reconstructed label (LabelMatcher). IndexMatcher
	// tracks have no label and report NoiseLabel.
	RecoLabel int `json:"reco_label"`
	// NumHits is the number of distinct hits in the track.
	NumHits int `json:"num_hits"`
	// MatchedLabel is the majority true label, or NoiseLabel when the track
	// was not scored.
	MatchedLabel int `json:"matched_label"`
	// TiedLabels lists every true label sharing the majority count,
	// ascending.
	TiedLabels []int   `json:"tied_labels,omitempty"`
	Efficiency float64 `json:"efficiency"`
	// Scored is false for tracks below MinHitsPerTrack.
	Scored   bool `json:"scored"`
	Accepted bool `json:"accepted"`
	Ghost    bool `json:"ghost"`
}

// Result holds the metrics of one scored event.
type Result struct {
	// Efficiencies holds one entry per track contributing to AvgEfficiency.
	Efficiencies  []float64 `json:"efficiencies"`
	AvgEfficiency float64   `json:"avg_efficiency"`

	ReconstructionEfficiency float64 `json:"reconstruction_efficiency"`
	GhostRate                float64 `json:"ghost_rate"`
	CloneRate                float64 `json:"clone_rate"`

	// NTracks is the number of true tracks used as the rate denominator.
	NTracks int `json:"n_tracks"`
	NGhosts int `json:"n_ghosts"`
	NClones int `json:"n_clones"`

	Tracks []TrackMatch `json:"tracks"`
}

// rate divides by the true track count, returning 0 for an event without
// true tracks.
func rate(n, nTracks int) float64 {
	if nTracks == 0 {
		return 0
	}
	return float64(n) / float64(nTracks)
}

package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/trackutils/internal/hitset"
	"github.com/banshee-data/trackutils/internal/monitoring"
)

// IndexMatcher scores reconstructed tracks given as lists of hit indices.
//
// Its counting policy differs from LabelMatcher in three ways:
//
//   - a track with fewer than MinHitsPerTrack distinct hits (including an
//     empty track) gets efficiency 0, which lowers AvgEfficiency, but it is
//     never a ghost;
//   - NoiseLabel counts as a true track in NTracks and may be matched;
//   - when several true labels tie for the majority, every tied label is
//     recorded as a match, so one track can produce more than one entry.
//     CloneRate counts these entries, not accepted tracks, which keeps it
//     non-negative: a track tied between labels 0 and 1 plus a second
//     track on label 0 give one clone.
type IndexMatcher struct {
	cfg Config
}

// NewIndexMatcher validates cfg and returns a matcher using it.
func NewIndexMatcher(cfg Config) (*IndexMatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &IndexMatcher{cfg: cfg}, nil
}

// Config returns the matcher parameters.
func (m *IndexMatcher) Config() Config { return m.cfg }

// Score computes the event metrics. Each element of trackInds lists the
// indices into trueLabels of one reconstructed track; tracks may overlap
// and repeat indices. An index outside trueLabels aborts scoring with
// ErrIndexOutOfRange.
func (m *IndexMatcher) Score(trueLabels []int, trackInds [][]int) (Result, error) {
	res := Result{
		Efficiencies: make([]float64, 0, len(trackInds)),
		Tracks:       make([]TrackMatch, 0, len(trackInds)),
	}

	// one entry per tied majority label of every accepted track
	var matched []int

	for i, inds := range trackInds {
		hits, err := hitset.FromIndices(inds, len(trueLabels))
		if err != nil {
			return Result{}, fmt.Errorf("track %d: %w", i, err)
		}

		tm := TrackMatch{
			Index:        i,
			RecoLabel:    NoiseLabel,
			NumHits:      hitset.Size(hits),
			MatchedLabel: NoiseLabel,
		}
		if tm.NumHits == 0 || tm.NumHits < m.cfg.MinHitsPerTrack {
			res.Efficiencies = append(res.Efficiencies, 0)
			res.Tracks = append(res.Tracks, tm)
			continue
		}

		vote := hitset.Majority(trueLabels, hits)
		tm.Scored = true
		tm.MatchedLabel = vote.Label
		tm.TiedLabels = vote.Tied
		tm.Efficiency = float64(vote.Count) / float64(tm.NumHits)
		res.Efficiencies = append(res.Efficiencies, tm.Efficiency)

		if tm.Efficiency >= m.cfg.EffThreshold {
			tm.Accepted = true
			matched = append(matched, vote.Tied...)
		} else {
			tm.Ghost = true
			res.NGhosts++
		}
		res.Tracks = append(res.Tracks, tm)
	}

	if len(res.Efficiencies) > 0 {
		res.AvgEfficiency = stat.Mean(res.Efficiencies, nil)
	}

	res.NTracks = len(hitset.Distinct(trueLabels))
	if res.NTracks == 0 {
		monitoring.Logf("[IndexMatcher] event has no true tracks; rates reported as 0")
	}
	res.GhostRate = rate(res.NGhosts, res.NTracks)

	if len(matched) > 0 {
		nDistinct := len(hitset.Distinct(matched))
		res.NClones = len(matched) - nDistinct
		res.ReconstructionEfficiency = rate(nDistinct, res.NTracks)
		res.CloneRate = rate(res.NClones, res.NTracks)
	}

	return res, nil
}

package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/trackutils/internal/hitset"
	"github.com/banshee-data/trackutils/internal/monitoring"
)

// LabelMatcher scores reconstructed tracks given as one label per hit.
//
// Hits labelled NoiseLabel in the reconstruction belong to no track. A
// track with fewer than MinHitsPerTrack hits is skipped: it has no
// efficiency and is not a ghost. A scored track is accepted when its
// efficiency reaches EffThreshold and its majority true label is not
// NoiseLabel; every other scored track is a ghost.
type LabelMatcher struct {
	cfg Config
}

// NewLabelMatcher validates cfg and returns a matcher using it.
func NewLabelMatcher(cfg Config) (*LabelMatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &LabelMatcher{cfg: cfg}, nil
}

// Config returns the matcher parameters.
func (m *LabelMatcher) Config() Config { return m.cfg }

// Score computes the event metrics. trueLabels[i] and recoLabels[i] must
// describe the same hit.
//
// When no reconstructed track is scored, AvgEfficiency is NaN: the mean of
// no efficiencies is undefined. The rates are still well defined and are
// returned as usual.
func (m *LabelMatcher) Score(trueLabels, recoLabels []int) (Result, error) {
	if len(trueLabels) != len(recoLabels) {
		return Result{}, fmt.Errorf("%w: %d true, %d reconstructed", ErrLengthMismatch, len(trueLabels), len(recoLabels))
	}

	groups, err := hitset.GroupByLabel(recoLabels, NoiseLabel)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Efficiencies: make([]float64, 0, len(groups)),
		Tracks:       make([]TrackMatch, 0, len(groups)),
	}

	// accepted reconstructed tracks per matched true label
	matches := make(map[int]int)
	nAccepted := 0

	for i, g := range groups {
		tm := TrackMatch{
			Index:        i,
			RecoLabel:    g.Label,
			NumHits:      hitset.Size(g.Hits),
			MatchedLabel: NoiseLabel,
		}
		if tm.NumHits < m.cfg.MinHitsPerTrack {
			res.Tracks = append(res.Tracks, tm)
			continue
		}

		vote := hitset.Majority(trueLabels, g.Hits)
		tm.Scored = true
		tm.MatchedLabel = vote.Label
		tm.TiedLabels = vote.Tied
		tm.Efficiency = float64(vote.Count) / float64(tm.NumHits)
		res.Efficiencies = append(res.Efficiencies, tm.Efficiency)

		if tm.Efficiency >= m.cfg.EffThreshold && vote.Label != NoiseLabel {
			tm.Accepted = true
			matches[vote.Label]++
			nAccepted++
		} else {
			tm.Ghost = true
		}
		res.Tracks = append(res.Tracks, tm)
	}

	if len(res.Efficiencies) == 0 {
		monitoring.Logf("[LabelMatcher] no reconstructed track with at least %d hits among %d hits; average efficiency is NaN",
			m.cfg.MinHitsPerTrack, len(recoLabels))
		res.AvgEfficiency = math.NaN()
	} else {
		res.AvgEfficiency = stat.Mean(res.Efficiencies, nil)
	}

	res.NTracks = len(hitset.Distinct(trueLabels, NoiseLabel))
	res.NGhosts = len(res.Efficiencies) - nAccepted
	for _, n := range matches {
		res.NClones += n - 1
	}

	if res.NTracks == 0 {
		monitoring.Logf("[LabelMatcher] event has no true tracks; rates reported as 0")
	}
	res.ReconstructionEfficiency = rate(len(matches), res.NTracks)
	res.GhostRate = rate(res.NGhosts, res.NTracks)
	res.CloneRate = rate(res.NClones, res.NTracks)

	return res, nil
}

package hitset

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/samber/lo"
)

// ErrIndexOutOfRange indicates a hit index outside the event's label slice,
// or beyond the 2^32 hits a bitmap can address.
var ErrIndexOutOfRange = errors.New("hit index out of range")

// maxHits is the largest event a hit set can hold.
var maxHits uint64 = math.MaxUint32 + 1

// Group is the set of hits sharing one reconstructed label.
type Group struct {
	Label int
	Hits  *roaring.Bitmap
}

// Vote is the outcome of counting true labels over a track's hits.
type Vote struct {
	// Label is the majority label; the lowest value wins a tie.
	Label int
	// Count is the number of hits carrying Label.
	Count int
	// Tied lists every label reaching Count, ascending. Tied[0] == Label.
	Tied []int
}

// FromIndices builds the deduplicated hit set for one track. Every index
// must address a hit in an event of nHits hits.
func FromIndices(indices []int, nHits int) (*roaring.Bitmap, error) {
	hits := roaring.New()
	for pos, idx := range indices {
		if idx < 0 || idx >= nHits || uint64(idx) >= maxHits {
			return nil, fmt.Errorf("%w: index %d at position %d (event has %d hits)", ErrIndexOutOfRange, idx, pos, nHits)
		}
		hits.Add(uint32(idx))
	}
	return hits, nil
}

// GroupByLabel collects hit indices per label, ignoring hits labelled skip.
// Groups are returned in ascending label order. Events with more hits than
// a bitmap can address are rejected with ErrIndexOutOfRange.
func GroupByLabel(labels []int, skip int) ([]Group, error) {
	if uint64(len(labels)) > maxHits {
		return nil, fmt.Errorf("%w: event has %d hits (max %d)", ErrIndexOutOfRange, len(labels), maxHits)
	}

	byLabel := make(map[int]*roaring.Bitmap)
	for i, label := range labels {
		if label == skip {
			continue
		}
		hits, ok := byLabel[label]
		if !ok {
			hits = roaring.New()
			byLabel[label] = hits
		}
		hits.Add(uint32(i))
	}

	keys := lo.Keys(byLabel)
	slices.Sort(keys)

	groups := make([]Group, 0, len(keys))
	for _, label := range keys {
		groups = append(groups, Group{Label: label, Hits: byLabel[label]})
	}
	return groups, nil
}

// Size returns the number of distinct hits in the set.
func Size(hits *roaring.Bitmap) int {
	return int(hits.GetCardinality())
}

// Majority counts trueLabels over hits and returns the most frequent label.
// An empty set yields a zero Vote with no tied labels.
func Majority(trueLabels []int, hits *roaring.Bitmap) Vote {
	if hits.IsEmpty() {
		return Vote{}
	}

	members := lo.Map(hits.ToArray(), func(idx uint32, _ int) int {
		return trueLabels[idx]
	})
	counts := lo.CountValues(members)

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}

	tied := lo.Keys(lo.PickByValues(counts, []int{best}))
	slices.Sort(tied)

	return Vote{Label: tied[0], Count: best, Tied: tied}
}

// Distinct returns the distinct labels in ascending order, dropping any
// listed in exclude.
func Distinct(labels []int, exclude ...int) []int {
	uniq := lo.Without(lo.Uniq(labels), exclude...)
	slices.Sort(uniq)
	return uniq
}

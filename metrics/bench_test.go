package metrics

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkLabelMatcher_Score(b *testing.B) {
	SetLogger(nil)
	rng := rand.New(rand.NewPCG(3, 5))
	trueLbls, recoLbls, _ := randomEvent(rng, 10000, 200, 240)

	m, err := NewLabelMatcher(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Score(trueLbls, recoLbls); err != nil {
			b.Fatalf("Score failed: %v", err)
		}
	}
}

func BenchmarkIndexMatcher_Score(b *testing.B) {
	SetLogger(nil)
	rng := rand.New(rand.NewPCG(3, 5))
	trueLbls, _, tracks := randomEvent(rng, 10000, 200, 240)

	m, err := NewIndexMatcher(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Score(trueLbls, tracks); err != nil {
			b.Fatalf("Score failed: %v", err)
		}
	}
}

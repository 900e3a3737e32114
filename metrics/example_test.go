package metrics_test

import (
	"fmt"

	"github.com/banshee-data/trackutils/metrics"
)

func ExampleLabelMatcher_Score() {
	m, err := metrics.NewLabelMatcher(metrics.DefaultConfig())
	if err != nil {
		panic(err)
	}

	// two reconstructed tracks split true track 0
	res, err := m.Score(
		[]int{0, 0, 0, 0, 1, 1},
		[]int{1, 1, 2, 2, -1, -1},
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("efficiencies=%v\n", res.Efficiencies)
	fmt.Printf("reco=%.2f ghost=%.2f clone=%.2f\n",
		res.ReconstructionEfficiency, res.GhostRate, res.CloneRate)
	// Output:
	// efficiencies=[1 1]
	// reco=0.50 ghost=0.00 clone=0.50
}

func ExampleIndexMatcher_Score() {
	m, err := metrics.NewIndexMatcher(metrics.DefaultConfig())
	if err != nil {
		panic(err)
	}

	res, err := m.Score(
		[]int{0, 0, 1, 1, 1},
		[][]int{{0, 1}, {2, 3, 4, 4}, {0, 2}, {4}},
	)
	if err != nil {
		panic(err)
	}

	for _, tm := range res.Tracks {
		fmt.Printf("track %d: hits=%d eff=%.2f accepted=%v ghost=%v\n",
			tm.Index, tm.NumHits, tm.Efficiency, tm.Accepted, tm.Ghost)
	}
	fmt.Printf("avg=%.3f reco=%.2f ghost=%.2f clone=%.2f\n",
		res.AvgEfficiency, res.ReconstructionEfficiency, res.GhostRate, res.CloneRate)
	// Output:
	// track 0: hits=2 eff=1.00 accepted=true ghost=false
	// track 1: hits=3 eff=1.00 accepted=true ghost=false
	// track 2: hits=2 eff=0.50 accepted=true ghost=false
	// track 3: hits=1 eff=0.00 accepted=false ghost=false
	// avg=0.625 reco=1.00 ghost=0.00 clone=1.00
}

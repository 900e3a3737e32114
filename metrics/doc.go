// Package metrics scores the output of a track pattern recognition algorithm
// against the true hit-to-track assignment of one detector event.
//
// Two matchers are provided. They answer the same question under different
// input contracts and deliberately keep different counting policies:
//
//   - LabelMatcher takes one reconstructed label per hit. Tracks below the
//     minimum hit count are dropped from every metric, and the noise label
//     -1 is neither a true track nor a valid match.
//   - IndexMatcher takes each reconstructed track as a list of hit indices.
//     Tracks below the minimum hit count score efficiency 0 and still count
//     towards the average, the noise label counts as a true track, and tied
//     majority labels are all recorded as matches.
//
// Both return an immutable Result with the per-track efficiencies, the
// average efficiency, the reconstruction efficiency, the ghost rate and the
// clone rate. Ghost, clone and reconstruction rates are normalised by the
// number of true tracks and are 0 when the event has none.
//
// In a tie for the majority true label, the lowest label value is the
// matched label.
package metrics

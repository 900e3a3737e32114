// Package hitset groups detector hits into reconstructed tracks and counts
// the true labels inside each one.
//
// Hits are identified only by their position in the event's label slice.
// A track's membership is held as a roaring bitmap of hit indices, which
// collapses duplicate indices and iterates in ascending hit order.
package hitset

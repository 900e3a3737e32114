package metrics

import (
	"errors"

	"github.com/banshee-data/trackutils/internal/hitset"
)

var (
	// ErrInvalidConfig indicates a threshold outside [0, 1] or a negative
	// minimum hit count.
	ErrInvalidConfig = errors.New("metrics: invalid matcher config")

	// ErrLengthMismatch indicates true and reconstructed label slices that
	// do not describe the same hits.
	ErrLengthMismatch = errors.New("metrics: true and reconstructed labels differ in length")

	// ErrIndexOutOfRange indicates a track refers to a hit that is not in
	// the true label slice.
	ErrIndexOutOfRange = hitset.ErrIndexOutOfRange
)

// Package optimizer: sentinel error set. Every message is prefixed
// "optimizer: ..."; validation and shape failures return these so
// callers can use errors.Is rather than string matching.
package optimizer

import "errors"

var (
	// ErrOddCoordinateCount indicates a flat []float64 passed to
	// PointsFromFlat has an odd length and cannot be paired into (x, y).
	ErrOddCoordinateCount = errors.New("optimizer: flat coordinate slice must have even length")

	// ErrInfeasibleConfig indicates that even the unbounded ε-fallback
	// could not produce a cover: the length window (MinSegmentLen,
	// MaxSegmentLen) cannot span the input at all, regardless of the
	// residual ceiling.
	ErrInfeasibleConfig = errors.New("optimizer: no admissible cover exists for this length window")
)

// Package config: sentinel error set.
// Every message is prefixed "config: ..." for consistent grepping; all
// validation failures return these sentinels so callers can use
// errors.Is rather than string matching.
package config

import "errors"

var (
	// ErrMinSegmentLen indicates MinSegmentLen < 3 in strict construction.
	ErrMinSegmentLen = errors.New("config: min_segment_len must be >= 3")

	// ErrMaxSegmentLen indicates MaxSegmentLen < MinSegmentLen in strict construction.
	ErrMaxSegmentLen = errors.New("config: max_segment_len must be >= min_segment_len")

	// ErrMaxError indicates MaxError <= 0 in strict construction.
	ErrMaxError = errors.New("config: max_error must be > 0")
)

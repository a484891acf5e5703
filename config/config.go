// Package config defines FitConfig, the validated (min length, max
// length, max error) tuple that governs segmentation.
package config

// Default bounds, matching the original kernel's defaults.
const (
	DefaultMinSegmentLen = 30
	DefaultMaxSegmentLen = 200
	DefaultMaxError      = 2.0

	// minAllowedSegmentLen is the floor both New and NewClamped enforce:
	// a least-squares fit needs at least 3 samples to be meaningful.
	minAllowedSegmentLen = 3

	// minAllowedMaxError is the floor NewClamped repairs MaxError to.
	minAllowedMaxError = 0.1
)

// FitConfig is the validated, immutable tuple governing segmentation:
// the admissible segment-length window and the per-segment mean
// squared residual ceiling.
type FitConfig struct {
	MinSegmentLen int     `json:"min_segment_len"`
	MaxSegmentLen int     `json:"max_segment_len"`
	MaxError      float64 `json:"max_error"`
}

// Default returns the kernel's default configuration: (30, 200, 2.0).
func Default() FitConfig {
	return FitConfig{
		MinSegmentLen: DefaultMinSegmentLen,
		MaxSegmentLen: DefaultMaxSegmentLen,
		MaxError:      DefaultMaxError,
	}
}

// New validates (minSegmentLen, maxSegmentLen, maxError) and returns a
// FitConfig, failing fast with a sentinel error on the first violation:
//   - minSegmentLen < 3            -> ErrMinSegmentLen
//   - maxSegmentLen < minSegmentLen -> ErrMaxSegmentLen
//   - maxError <= 0                -> ErrMaxError
func New(minSegmentLen, maxSegmentLen int, maxError float64) (FitConfig, error) {
	if minSegmentLen < minAllowedSegmentLen {
		return FitConfig{}, ErrMinSegmentLen
	}
	if maxSegmentLen < minSegmentLen {
		return FitConfig{}, ErrMaxSegmentLen
	}
	if maxError <= 0 {
		return FitConfig{}, ErrMaxError
	}

	return FitConfig{
		MinSegmentLen: minSegmentLen,
		MaxSegmentLen: maxSegmentLen,
		MaxError:      maxError,
	}, nil
}

// NewClamped repairs out-of-range parameters instead of failing:
// MinSegmentLen is raised to at least 3, MaxSegmentLen is raised to at
// least the (already-clamped) MinSegmentLen, and MaxError is raised to
// at least 0.1. NewClamped never errors.
func NewClamped(minSegmentLen, maxSegmentLen int, maxError float64) FitConfig {
	minLen := minSegmentLen
	if minLen < minAllowedSegmentLen {
		minLen = minAllowedSegmentLen
	}

	maxLen := maxSegmentLen
	if maxLen < minLen {
		maxLen = minLen
	}

	err := maxError
	if err < minAllowedMaxError {
		err = minAllowedMaxError
	}

	return FitConfig{
		MinSegmentLen: minLen,
		MaxSegmentLen: maxLen,
		MaxError:      err,
	}
}

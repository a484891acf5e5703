package optimizer

// Test-only bridge for optimizer_test: exposes the unexported interval
// math, error-cache build, and option wiring so white-box behavior can
// be verified from the external test package without widening the
// production API.

import (
	"github.com/katalvlaran/bezierfit/config"
	"github.com/katalvlaran/bezierfit/fit"
	"github.com/katalvlaran/bezierfit/geom"
	"github.com/katalvlaran/bezierfit/internal/parallel"
)

// CacheKeyTestOnly mirrors cacheKey for use by optimizer_test.
type CacheKeyTestOnly struct {
	I, J int
}

// AdmissibleStartsTestOnly exposes admissibleStarts.
func AdmissibleStartsTestOnly(i int, cfg config.FitConfig) (start, end int) {
	return admissibleStarts(i, cfg)
}

// AdmissibleIntervalsTestOnly exposes admissibleIntervals.
func AdmissibleIntervalsTestOnly(n int, cfg config.FitConfig) []CacheKeyTestOnly {
	intervals := admissibleIntervals(n, cfg)
	out := make([]CacheKeyTestOnly, len(intervals))
	for i, k := range intervals {
		out[i] = CacheKeyTestOnly{I: k.I, J: k.J}
	}

	return out
}

// ErrorCacheTestOnly exposes errorCache.get.
type ErrorCacheTestOnly struct {
	c errorCache
}

// Get exposes errorCache.get.
func (e ErrorCacheTestOnly) Get(i, j int) (fit.Result, bool) {
	return e.c.get(i, j)
}

// BuildErrorCacheTestOnly exposes buildErrorCache.
func BuildErrorCacheTestOnly(pool *parallel.Pool, points []geom.Point, cfg config.FitConfig) ErrorCacheTestOnly {
	return ErrorCacheTestOnly{c: buildErrorCache(pool, points, cfg)}
}

// FitOptionsTestOnly exposes fitOptions.warn.
type FitOptionsTestOnly struct {
	o *fitOptions
}

// NewFitOptionsTestOnly exposes newFitOptions.
func NewFitOptionsTestOnly(opts ...Option) FitOptionsTestOnly {
	return FitOptionsTestOnly{o: newFitOptions(opts...)}
}

// Warn exposes fitOptions.warn.
func (f FitOptionsTestOnly) Warn(msg string) {
	f.o.warn(msg)
}

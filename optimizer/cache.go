package optimizer

import (
	"github.com/katalvlaran/bezierfit/config"
	"github.com/katalvlaran/bezierfit/fit"
	"github.com/katalvlaran/bezierfit/geom"
	"github.com/katalvlaran/bezierfit/internal/parallel"
)

// cacheKey identifies an admissible candidate segment by its inclusive
// sample range [i, j], i <= j.
type cacheKey struct {
	I, J int
}

// errorCache is a read-only (after buildErrorCache returns) mapping
// from an admissible interval to its fit.Result. A dense triangular
// array indexed by (j, j-i) is a valid alternative representation; the
// map is kept behind this type so that swap would stay local.
type errorCache struct {
	entries map[cacheKey]fit.Result
}

// get returns the cached fit for [i, j] and whether it is present.
func (c errorCache) get(i, j int) (fit.Result, bool) {
	v, ok := c.entries[cacheKey{I: i, J: j}]

	return v, ok
}

// admissibleStarts returns the inclusive range [start, end] of segment
// starts j admissible for a segment ending at i: i-j+1 (the inclusive
// sample count) must lie in [MinSegmentLen, MaxSegmentLen]. Returns an
// empty range (start > end) if i is below the window entirely.
func admissibleStarts(i int, cfg config.FitConfig) (start, end int) {
	start = i - (cfg.MaxSegmentLen - 1)
	if start < 0 {
		start = 0
	}
	end = i - (cfg.MinSegmentLen - 1)

	return start, end
}

// admissibleIntervals enumerates every candidate (i, j) the DP will
// need: for each end index i in [MinSegmentLen-1, n-1], every
// admissible start j.
func admissibleIntervals(n int, cfg config.FitConfig) []cacheKey {
	var intervals []cacheKey
	for i := cfg.MinSegmentLen - 1; i < n; i++ {
		start, end := admissibleStarts(i, cfg)
		for j := start; j <= end; j++ {
			intervals = append(intervals, cacheKey{I: j, J: i})
		}
	}

	return intervals
}

// buildErrorCache computes the truncated-residual fit (fit.FitWithLimit)
// for every admissible interval, in parallel over pool. Each task reads
// an immutable slice of points and produces one (key, value) pair; the
// assembled map is frozen before the DP reads it.
func buildErrorCache(pool *parallel.Pool, points []geom.Point, cfg config.FitConfig) errorCache {
	intervals := admissibleIntervals(len(points), cfg)

	type entry struct {
		key    cacheKey
		result fit.Result
	}

	entries := parallel.Map(pool, intervals, func(k cacheKey) entry {
		segment := points[k.I : k.J+1]

		return entry{key: k, result: fit.FitWithLimit(segment, cfg.MaxError)}
	})

	cache := errorCache{entries: make(map[cacheKey]fit.Result, len(entries))}
	for _, e := range entries {
		cache.entries[e.key] = e.result
	}

	return cache
}

// Package optimizer implements the segmentation optimizer: given the
// full sample sequence and a config.FitConfig, it produces the
// piecewise quadratic Bézier cover minimizing (segment count,
// cumulative residual) lexicographically.
package optimizer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bezierfit/config"
	"github.com/katalvlaran/bezierfit/fit"
	"github.com/katalvlaran/bezierfit/geom"
	"github.com/katalvlaran/bezierfit/internal/parallel"
)

// infSegCount stands in for the DP's +∞ segment count. It is far below
// math.MaxInt so seg[j]+1 never overflows during relaxation.
const infSegCount = math.MaxInt32

// FitCurve is the callable entry point: it fits points with cfg and
// returns the resulting FitResult. Trivial cases (empty input, input
// no longer than cfg.MinSegmentLen) are handled without running the
// DP. The only error this returns is ErrInfeasibleConfig, raised when
// even the unbounded ε-fallback cannot cover the input; no partial
// result ever accompanies a non-nil error.
func FitCurve(points []geom.Point, cfg config.FitConfig, opts ...Option) (FitResult, error) {
	o := newFitOptions(opts...)

	return fitCurve(points, cfg, o.warn, false)
}

// fitCurve is FitCurve's recursive core. isFallback is true exactly
// once a retry with an unbounded residual ceiling is already underway;
// a second infeasibility at that point escalates to ErrInfeasibleConfig
// instead of recursing again.
func fitCurve(points []geom.Point, cfg config.FitConfig, warn func(string), isFallback bool) (FitResult, error) {
	n := len(points)

	if n == 0 {
		return FitResult{Config: cfg}, nil
	}

	if n <= cfg.MinSegmentLen {
		r := fit.Fit(points)

		return FitResult{
			Curves:      []geom.QuadraticBezier{r.Bezier},
			TotalError:  r.Residual,
			NumSegments: 1,
			Config:      cfg,
		}, nil
	}

	pool := parallel.New(0)
	defer pool.Close()

	cache := buildErrorCache(pool, points, cfg)
	segCount, cumError, parent := relax(n, cfg, cache)

	total := cumError[n-1]
	if math.IsInf(total, 1) {
		if isFallback {
			return FitResult{}, ErrInfeasibleConfig
		}

		warn(fmt.Sprintf(
			"no cover satisfies max_error=%.4g within length window [%d,%d]; retrying with unbounded error",
			cfg.MaxError, cfg.MinSegmentLen, cfg.MaxSegmentLen,
		))

		unbounded := cfg
		unbounded.MaxError = math.Inf(1)

		return fitCurve(points, unbounded, warn, true)
	}

	_ = segCount // seg counts are implicit in len(curves); kept for clarity during relaxation
	curves := backtrack(n-1, parent, cache, warn)

	return FitResult{
		Curves:      curves,
		TotalError:  total,
		NumSegments: len(curves),
		Config:      cfg,
	}, nil
}

// relax runs the Bellman-style DP: for each end index i, try every
// admissible start j and adopt the candidate cover iff it is
// lexicographically smaller (fewer segments first, then lower
// cumulative residual). Ties keep the earlier j (no update).
func relax(n int, cfg config.FitConfig, cache errorCache) (segCount []int, cumError []float64, parent []int) {
	segCount = make([]int, n)
	cumError = make([]float64, n)
	parent = make([]int, n)

	var i int
	for i = 1; i < n; i++ {
		segCount[i] = infSegCount
		cumError[i] = math.Inf(1)
	}

	var (
		start, end, j int
		f             fit.Result
		ok            bool
		candSeg       int
		candErr       float64
	)
	for i = cfg.MinSegmentLen - 1; i < n; i++ {
		start, end = admissibleStarts(i, cfg)
		for j = start; j <= end; j++ {
			f, ok = cache.get(j, i)
			if !ok || f.Residual > cfg.MaxError {
				continue // pruned: missing or exceeds the residual ceiling
			}
			if segCount[j] == infSegCount {
				continue // j itself is unreachable
			}

			candSeg = segCount[j] + 1
			candErr = cumError[j] + f.Residual

			if candSeg < segCount[i] || (candSeg == segCount[i] && candErr < cumError[i]) {
				segCount[i] = candSeg
				cumError[i] = candErr
				parent[i] = j
			}
		}
	}

	return segCount, cumError, parent
}

// backtrack reconstructs the cover ending at end by following parent
// pointers back to 0, then reverses the result into forward order. A
// missing cache entry (which should never happen for a well-formed
// parent chain) is logged via warn and that segment is skipped rather
// than aborting the whole reconstruction: an internal consistency
// problem is a warning here, never a panic or an error return.
func backtrack(end int, parent []int, cache errorCache, warn func(string)) []geom.QuadraticBezier {
	var segments []geom.QuadraticBezier

	for end > 0 {
		start := parent[end]
		if f, ok := cache.get(start, end); ok {
			segments = append(segments, f.Bezier)
		} else {
			warn(fmt.Sprintf("backtrack: missing cache entry for segment (%d,%d); skipping", start, end))
		}
		end = start
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return segments
}

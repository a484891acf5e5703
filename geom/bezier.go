package geom

import "math"

// minDistanceSamples and maxDistanceSamples bound the adaptive sample
// count used by DistanceToPoint: a floor so short or nearly straight
// curves aren't under-sampled, a ceiling so a single query stays cheap.
const (
	minDistanceSamples = 50
	maxDistanceSamples = 200
)

// QuadraticBezier is a degree-2 planar Bézier curve defined by three
// control points. P0 and P2 are the curve endpoints; P1 is the single
// control point and is not interpolated by the curve. Degenerate forms
// (all three points equal, or collinear) are valid values.
type QuadraticBezier struct {
	P0, P1, P2 Point
}

// NewQuadraticBezier returns the curve through p0, p1, p2.
func NewQuadraticBezier(p0, p1, p2 Point) QuadraticBezier {
	return QuadraticBezier{P0: p0, P1: p1, P2: p2}
}

// Evaluate computes the curve at parameter t via the de Casteljau
// identity (1-t)²·P0 + 2(1-t)t·P1 + t²·P2. t outside [0,1] extrapolates;
// the optimizer never calls Evaluate with such a t.
func (c QuadraticBezier) Evaluate(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	return Point{
		X: mt2*c.P0.X + 2*mt*t*c.P1.X + t2*c.P2.X,
		Y: mt2*c.P0.Y + 2*mt*t*c.P1.Y + t2*c.P2.Y,
	}
}

// Sample returns k points evenly spaced in t, t_i = i/max(k-1, 1).
// k<=1 degenerates to a single point (c.Evaluate(0)).
func (c QuadraticBezier) Sample(k int) []Point {
	if k <= 1 {
		return []Point{c.Evaluate(0)}
	}

	denom := float64(k - 1)
	out := make([]Point, k)
	for i := 0; i < k; i++ {
		out[i] = c.Evaluate(float64(i) / denom)
	}

	return out
}

// DistanceToPoint approximates min_t ‖c.Evaluate(t) − q‖ by uniform
// t-sampling. The sample count adapts to the curve's control-polygon
// length L = ‖P0−P1‖ + ‖P1−P2‖, clamped to [minDistanceSamples,
// maxDistanceSamples]: L bounds arc length from above, the ceiling
// bounds per-query cost, the floor prevents under-sampling short or
// nearly straight curves. Ties between equally close samples keep the
// first one found.
func (c QuadraticBezier) DistanceToPoint(q Point) float64 {
	controlLen := c.P0.Distance(c.P1) + c.P1.Distance(c.P2)
	samples := clampSampleCount(int(math.Round(controlLen / 2.0)))

	denom := float64(samples - 1)
	if denom <= 0 {
		denom = 1
	}

	best := math.Inf(1)
	for i := 0; i < samples; i++ {
		t := float64(i) / denom
		d := c.Evaluate(t).Distance(q)
		if d < best {
			best = d
		}
	}

	return best
}

// clampSampleCount bounds n to [minDistanceSamples, maxDistanceSamples].
func clampSampleCount(n int) int {
	if n < minDistanceSamples {
		return minDistanceSamples
	}
	if n > maxDistanceSamples {
		return maxDistanceSamples
	}

	return n
}

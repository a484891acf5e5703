package fit

import (
	"github.com/katalvlaran/bezierfit/geom"
)

// coincidenceTolerance is the chord-length total below which all
// samples are treated as coincident and parameterized evenly instead
// of by cumulative distance (which would divide by ~0).
const coincidenceTolerance = 1e-10

// weightTolerance is the |w_i| floor below which a sample's weight in
// the P1 least-squares solve is treated as zero (t_i pinned at 0 or 1,
// contributing nothing to the free parameter).
const weightTolerance = 1e-10

// Result pairs a fitted curve with its mean squared residual against
// the samples it was fit to.
type Result struct {
	Bezier   geom.QuadraticBezier
	Residual float64
}

// Fit returns the least-squares quadratic Bézier through points and its
// mean squared residual.
//
// Boundary policies by len(points):
//   - 0: the triple-origin curve, residual 0.
//   - 1: (p, p, p), residual 0.
//   - 2: (p0, midpoint, p1), residual 0.
//   - >=3: chord-length-parameterized least squares (see computeBezier).
func Fit(points []geom.Point) Result {
	bezier := computeBezier(points)

	return Result{Bezier: bezier, Residual: computeResidual(bezier, points)}
}

// FitWithLimit behaves like Fit but short-circuits the residual sum
// once it exceeds maxError·len(points): the returned residual is then
// the partial sum divided by len(points), which is no larger than the
// true residual but already above maxError, so comparing it against
// maxError gives the same verdict as the full residual would.
func FitWithLimit(points []geom.Point, maxError float64) Result {
	bezier := computeBezier(points)

	return Result{Bezier: bezier, Residual: computeResidualWithLimit(bezier, points, maxError)}
}

// computeBezier implements the boundary policies and the N>=3
// least-squares solve for P1 with P0, P2 pinned at the run's endpoints.
func computeBezier(points []geom.Point) geom.QuadraticBezier {
	n := len(points)

	if n == 0 {
		origin := geom.NewPoint(0, 0)

		return geom.NewQuadraticBezier(origin, origin, origin)
	}

	if n == 1 {
		p := points[0]

		return geom.NewQuadraticBezier(p, p, p)
	}

	if n == 2 {
		p0, p2 := points[0], points[1]

		return geom.NewQuadraticBezier(p0, p0.Lerp(p2, 0.5), p2)
	}

	p0 := points[0]
	p2 := points[n-1]
	tValues := chordLengthParameters(points)

	// Accumulate the weighted least-squares solve for P1, component-wise.
	var (
		sumX, sumY, sumWeight2 float64
		i                      int
		t, mt, weight, absW    float64
		targetX, targetY       float64
	)
	for i = 0; i < n; i++ {
		t = tValues[i]
		mt = 1.0 - t
		weight = 2.0 * mt * t

		absW = weight
		if absW < 0 {
			absW = -absW
		}
		if absW < weightTolerance {
			continue // t_i pinned at 0 or 1: contributes nothing to P1
		}

		targetX = points[i].X - mt*mt*p0.X - t*t*p2.X
		targetY = points[i].Y - mt*mt*p0.Y - t*t*p2.Y

		sumX += weight * targetX
		sumY += weight * targetY
		sumWeight2 += weight * weight
	}

	var p1 geom.Point
	if sumWeight2 > coincidenceTolerance {
		p1 = geom.NewPoint(sumX/sumWeight2, sumY/sumWeight2)
	} else {
		p1 = p0.Lerp(p2, 0.5) // pathological weighting: fall back to midpoint
	}

	return geom.NewQuadraticBezier(p0, p1, p2)
}

// chordLengthParameters assigns each sample a parameter t_i in [0,1]
// proportional to its cumulative Euclidean distance along points,
// normalized by the total chord length. If the total length is below
// coincidenceTolerance (all samples effectively coincident), falls
// back to an even split i/max(n-1, 1).
func chordLengthParameters(points []geom.Point) []float64 {
	n := len(points)
	cumulative := make([]float64, n)

	var i int
	for i = 1; i < n; i++ {
		cumulative[i] = cumulative[i-1] + points[i].Distance(points[i-1])
	}

	total := cumulative[n-1]
	if total < coincidenceTolerance {
		denom := n - 1
		if denom < 1 {
			denom = 1
		}
		t := make([]float64, n)
		for i = 0; i < n; i++ {
			t[i] = float64(i) / float64(denom)
		}

		return t
	}

	t := make([]float64, n)
	for i = 0; i < n; i++ {
		t[i] = cumulative[i] / total
	}

	return t
}

// computeResidual returns the arithmetic mean over points of the
// squared distance from each point to bezier. Empty input is 0.
func computeResidual(bezier geom.QuadraticBezier, points []geom.Point) float64 {
	if len(points) == 0 {
		return 0
	}

	var sum float64
	for _, p := range points {
		d := bezier.DistanceToPoint(p)
		sum += d * d
	}

	return sum / float64(len(points))
}

// computeResidualWithLimit is computeResidual with an early exit: once
// the running sum exceeds maxError*len(points), it returns sum/n
// immediately without visiting the remaining samples.
func computeResidualWithLimit(bezier geom.QuadraticBezier, points []geom.Point, maxError float64) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}

	budget := maxError * float64(n)

	var sum float64
	var i int
	for i = 0; i < n; i++ {
		d := bezier.DistanceToPoint(points[i])
		sum += d * d
		if sum > budget {
			return sum / float64(n)
		}
	}

	return sum / float64(n)
}

package optimizer

import "github.com/katalvlaran/bezierfit/geom"

// PointsFromFlat materializes an owned []geom.Point from a flat
// [x0,y0,x1,y1,...] slice. This is the Go-native equivalent of the
// original binding's "matrix with shape other than (N,2)" check: a
// slice of odd length cannot be paired into (x, y) and is rejected
// with ErrOddCoordinateCount rather than silently truncated.
func PointsFromFlat(flat []float64) ([]geom.Point, error) {
	if len(flat)%2 != 0 {
		return nil, ErrOddCoordinateCount
	}

	points := make([]geom.Point, len(flat)/2)
	for i := range points {
		points[i] = geom.NewPoint(flat[2*i], flat[2*i+1])
	}

	return points, nil
}

// PointsFromPairs materializes an owned []geom.Point from explicit
// (x, y) pairs. Every shape is valid here, so this never errors.
func PointsFromPairs(pairs [][2]float64) []geom.Point {
	points := make([]geom.Point, len(pairs))
	for i, p := range pairs {
		points[i] = geom.NewPoint(p[0], p[1])
	}

	return points
}

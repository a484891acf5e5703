package optimizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/bezierfit/config"
	"github.com/katalvlaran/bezierfit/geom"
)

// FitResult is the output of FitCurve: the ordered curve cover, its
// cumulative residual, segment count, and the config it was produced
// under.
type FitResult struct {
	Curves      []geom.QuadraticBezier
	TotalError  float64
	NumSegments int
	Config      config.FitConfig
}

// ControlPoints returns one [P0, P1, P2] triple per curve, in cover
// order. Present in the original Rust FitResult's control_points and
// used by its Python binding; kept here for the same drawing-pipeline
// consumers.
func (r FitResult) ControlPoints() [][3]geom.Point {
	out := make([][3]geom.Point, len(r.Curves))
	for i, c := range r.Curves {
		out[i] = [3]geom.Point{c.P0, c.P1, c.P2}
	}

	return out
}

// SamplePoints samples each curve at perSegment points (via
// geom.QuadraticBezier.Sample) and concatenates them in cover order.
// Adjacent segments share their join point, so consecutive samples at
// a join coincide; callers building a continuous polyline can dedupe
// or draw through it, either is harmless.
func (r FitResult) SamplePoints(perSegment int) []geom.Point {
	var out []geom.Point
	for _, c := range r.Curves {
		out = append(out, c.Sample(perSegment)...)
	}

	return out
}

// ToSVGPath renders the cover as an SVG path data string: a moveto to
// the first curve's start, then one quadratic "Q" command per curve.
// Coordinates are formatted to two decimal places. An empty result
// (no curves) renders as the empty string.
func (r FitResult) ToSVGPath() string {
	if len(r.Curves) == 0 {
		return ""
	}

	var b strings.Builder
	first := r.Curves[0]
	fmt.Fprintf(&b, "M %.2f %.2f", first.P0.X, first.P0.Y)
	for _, c := range r.Curves {
		fmt.Fprintf(&b, " Q %.2f %.2f, %.2f %.2f", c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
	}

	return b.String()
}

// curveJSON is FitResult's curve shape on the wire: each control point
// as an [x, y] pair.
type curveJSON struct {
	P0 [2]float64 `json:"p0"`
	P1 [2]float64 `json:"p1"`
	P2 [2]float64 `json:"p2"`
}

// resultJSON is FitResult's wire shape, matching the original Rust
// Serialize/to_json round-trip's field set exactly.
type resultJSON struct {
	Curves      []curveJSON      `json:"curves"`
	TotalError  float64          `json:"total_error"`
	NumSegments int              `json:"num_segments"`
	Config      config.FitConfig `json:"config"`
}

// ToJSON marshals the result via encoding/json: fields curves,
// total_error, num_segments, config.
func (r FitResult) ToJSON() ([]byte, error) {
	curves := make([]curveJSON, len(r.Curves))
	for i, c := range r.Curves {
		curves[i] = curveJSON{
			P0: [2]float64{c.P0.X, c.P0.Y},
			P1: [2]float64{c.P1.X, c.P1.Y},
			P2: [2]float64{c.P2.X, c.P2.Y},
		}
	}

	return json.Marshal(resultJSON{
		Curves:      curves,
		TotalError:  r.TotalError,
		NumSegments: r.NumSegments,
		Config:      r.Config,
	})
}

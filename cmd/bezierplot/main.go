// Command bezierplot is a drawing-pipeline consumer of the bezierfit
// kernel: it reads a polyline as "x,y" lines from stdin (or a file
// given as the first argument), fits it, and writes an HTML chart
// overlaying the raw samples with the fitted curve's sample points.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/bezierfit/config"
	"github.com/katalvlaran/bezierfit/geom"
	"github.com/katalvlaran/bezierfit/optimizer"
)

func main() {
	outPath := flag.String("out", "bezierplot.html", "output HTML file")
	perSegment := flag.Int("samples", 20, "sample points rendered per fitted segment")
	flag.Parse()

	points, err := readPoints(flag.Args())
	if err != nil {
		log.Fatalf("bezierplot: %v", err)
	}

	result, err := optimizer.FitCurve(points, config.Default(), optimizer.WithWarningFunc(func(msg string) {
		fmt.Fprintln(os.Stderr, "bezierplot:", msg)
	}))
	if err != nil {
		log.Fatalf("bezierplot: fit failed: %v", err)
	}

	page, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("bezierplot: %v", err)
	}
	defer page.Close()

	if err := render(points, result, *perSegment).Render(page); err != nil {
		log.Fatalf("bezierplot: render: %v", err)
	}

	fmt.Printf("bezierplot: %d segments, total error %.4f, written to %s\n", result.NumSegments, result.TotalError, *outPath)
}

// readPoints loads "x,y" samples from args[0] if given, else stdin.
func readPoints(args []string) ([]geom.Point, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var points []geom.Point
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed line %q: want \"x,y\"", line)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed line %q: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed line %q: %w", line, err)
		}

		points = append(points, geom.NewPoint(x, y))
	}

	return points, scanner.Err()
}

// render builds the overlay chart: raw samples and the fitted curve's
// dense sample points as two line series on one chart.
func render(samples []geom.Point, result optimizer.FitResult, perSegment int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "bezierfit",
			Subtitle: fmt.Sprintf("%d segments, total error %.4f", result.NumSegments, result.TotalError),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xAxis := make([]string, len(samples))
	sampleData := make([]opts.LineData, len(samples))
	for i, p := range samples {
		xAxis[i] = strconv.FormatFloat(p.X, 'f', 2, 64)
		sampleData[i] = opts.LineData{Value: p.Y}
	}

	fitted := result.SamplePoints(perSegment)
	fitData := make([]opts.LineData, len(fitted))
	for i, p := range fitted {
		fitData[i] = opts.LineData{Value: p.Y}
	}

	line.SetXAxis(xAxis).
		AddSeries("samples", sampleData).
		AddSeries("fit", fitData)

	return line
}

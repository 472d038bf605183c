package qqman_api

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	ErrEmptyQuantiles  = errors.New("cannot plot empty quantile set")
	ErrDegenerateRange = errors.New("degenerate axis range")
)

const (
	// Margin added to both QQ axes
	qqMargin = 0.1

	// Radius in points of a plotted variant
	pointRadius = 2.2
)

// Keep the p-values in the open interval (0,1). NaN, 0 and 1 are dropped.
func FilterPValues(pValues []float64) []float64 {
	filtered := make([]float64, 0, len(pValues))
	for _, p := range pValues {
		if math.IsNaN(p) || p <= 0 || p >= 1 {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Calculate the expected and observed -log10(p) quantiles of the valid p-values.
// The i-th smallest p-value (1-based) has the expected quantile -log10((i-0.5)/n).
func QQQuantiles(pValues []float64) (expected []float64, observed []float64) {
	sorted := FilterPValues(pValues)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	expected = make([]float64, len(sorted))
	observed = make([]float64, len(sorted))
	for i, p := range sorted {
		observed[i] = negLog10(p)
		expected[i] = negLog10((float64(i+1) - 0.5) / n)
	}
	return expected, observed
}

// The width and height of the QQ figure
func (options QQOptions) FigureSize() (vg.Length, vg.Length) {
	side := vg.Length(8*options.Size) * vg.Inch
	return side, side
}

// Create the QQ plot of the p-values. When file isn't empty the figure is
// saved to it and only returned once the file is written.
func QQPlot(pValues []float64, options QQOptions, file string) (*Figure, error) {
	expected, observed := QQQuantiles(pValues)
	if len(expected) == 0 {
		return nil, ErrEmptyQuantiles
	}
	if options.Size <= 0 {
		return nil, fmt.Errorf("%w: figure size %v must be positive", ErrDegenerateRange, options.Size)
	}

	pointColor, err := ParseColor(options.PointColor)
	if err != nil {
		return nil, fmt.Errorf("qq pointcolor: %w", err)
	}
	lineColor, err := ParseColor(options.LineColor)
	if err != nil {
		return nil, fmt.Errorf("qq linecolor: %w", err)
	}

	maxi := math.Max(floats.Max(expected), floats.Max(observed))

	figure := &Figure{Plot: plot.New()}
	figure.Width, figure.Height = options.FigureSize()
	p := figure.Plot
	p.Title.Text = options.Title
	p.X.Label.Text = "Expected -log10(p)"
	p.Y.Label.Text = "Observed -log10(p)"

	points := make(plotter.XYs, len(expected))
	for i := range expected {
		points[i].X = expected[i]
		points[i].Y = observed[i]
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, pfx.Err(err)
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(pointRadius)

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: maxi, Y: maxi}})
	if err != nil {
		return nil, pfx.Err(err)
	}
	diagonal.LineStyle.Color = lineColor
	diagonal.LineStyle.Width = vg.Points(1.5)

	figure.add(scatter, diagonal)
	figure.Points = append(figure.Points, scatter)
	figure.Lines = append(figure.Lines, diagonal)
	p.X.Min, p.X.Max = 0, maxi+qqMargin
	p.Y.Min, p.Y.Max = 0, maxi+qqMargin

	if file != "" {
		if err := figure.Save(file); err != nil {
			return nil, err
		}
	}
	return figure, nil
}

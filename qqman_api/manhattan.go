package qqman_api

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"sort"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrNoVariants = errors.New("no variants with a plottable p-value")

const (
	// Head room above the highest point
	yHeadroom = 1.3

	// Margin to the right of the last variant
	xMargin = 1.005
)

// The variants of one chromosome placed on the genome-wide axis
type ChromosomeGroup struct {
	Chromosome Chromosome

	// The distance of the first base of this chromosome from the genome start
	Offset int64

	// The genome-wide position of each variant
	X []float64

	// The -log10(p) of each variant
	LogP []float64

	// The identifier of each variant
	Ids []string

	// The position of the axis tick: the mean genome-wide position of the group
	Tick float64
}

// The genome-wide placement of all variants
type Layout struct {
	// The chromosomes with at least one variant, in chromosome order
	Groups []ChromosomeGroup

	// The largest genome-wide position
	MaxX float64

	// The largest -log10(p)
	MaxLogP float64
}

// Calculate the offset of each chromosome: the sum of the largest position
// of every chromosome before it. Every chromosome gets an offset, those
// without variants add nothing to the ones after them.
func ComputeOffsets(variants []Variant) map[Chromosome]int64 {
	maxPos := map[Chromosome]int64{}
	for _, variant := range variants {
		if current, ok := maxPos[variant.Chromosome]; !ok || variant.Pos > current {
			maxPos[variant.Chromosome] = variant.Pos
		}
	}

	offsets := map[Chromosome]int64{}
	var add int64
	for _, chr := range ChromosomeOrder() {
		offsets[chr] = add
		add += maxPos[chr]
	}
	return offsets
}

// Sort the variants by chromosome and place them on the genome-wide axis.
// The offsets use every variant, only variants with a plottable p-value
// end up in the groups.
func ComputeLayout(variants []Variant) *Layout {
	sorted := append([]Variant{}, variants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Chromosome < sorted[j].Chromosome
	})
	offsets := ComputeOffsets(sorted)

	layout := &Layout{}
	for _, variant := range sorted {
		if !plottable(variant.P) {
			continue
		}
		last := len(layout.Groups) - 1
		if last < 0 || layout.Groups[last].Chromosome != variant.Chromosome {
			layout.Groups = append(layout.Groups, ChromosomeGroup{
				Chromosome: variant.Chromosome,
				Offset:     offsets[variant.Chromosome],
			})
			last++
		}
		group := &layout.Groups[last]
		group.X = append(group.X, float64(variant.Pos+group.Offset))
		group.LogP = append(group.LogP, negLog10(variant.P))
		group.Ids = append(group.Ids, variant.Id)
	}

	for i := range layout.Groups {
		group := &layout.Groups[i]
		group.Tick = stat.Mean(group.X, nil)
		layout.MaxX = math.Max(layout.MaxX, floats.Max(group.X))
		layout.MaxLogP = math.Max(layout.MaxLogP, floats.Max(group.LogP))
	}
	return layout
}

// The axis ticks of the chromosomes
func (layout *Layout) Ticks() []plot.Tick {
	ticks := make([]plot.Tick, len(layout.Groups))
	for i, group := range layout.Groups {
		ticks[i] = plot.Tick{Value: group.Tick, Label: group.Chromosome.String()}
	}
	return ticks
}

// The highlighted variants of each group. Groups without highlighted variants are left out.
func (layout *Layout) Highlighted(highlight HighlightSet) []ChromosomeGroup {
	groups := []ChromosomeGroup{}
	if len(highlight) == 0 {
		return groups
	}
	for _, group := range layout.Groups {
		selected := ChromosomeGroup{Chromosome: group.Chromosome, Offset: group.Offset}
		for i, id := range group.Ids {
			if highlight.Contains(id) {
				selected.X = append(selected.X, group.X[i])
				selected.LogP = append(selected.LogP, group.LogP[i])
				selected.Ids = append(selected.Ids, id)
			}
		}
		if len(selected.X) > 0 {
			selected.Tick = stat.Mean(selected.X, nil)
			groups = append(groups, selected)
		}
	}
	return groups
}

// The width and height of the Manhattan figure
func (options ManhattanOptions) FigureSize() (vg.Length, vg.Length) {
	return vg.Length(12*options.Size) * vg.Inch, vg.Length(6*options.Size) * vg.Inch
}

// The point and highlight colors, taking the rainbow option into account
func (options ManhattanOptions) colors() ([]color.Color, []color.Color, error) {
	pointNames, highlightNames := options.PointColor, options.HighlightColor
	if options.Rainbow {
		pointNames, highlightNames = rainbowColors()
	}
	points, err := ParseColors(pointNames)
	if err != nil {
		return nil, nil, fmt.Errorf("man pointcolor: %w", err)
	}
	highlights, err := ParseColors(highlightNames)
	if err != nil {
		return nil, nil, fmt.Errorf("man highlightcolor: %w", err)
	}
	return points, highlights, nil
}

// Whether the p-value can be placed on the -log10(p) axis
func plottable(p float64) bool {
	return !math.IsNaN(p) && p > 0
}

// Count the variants that can be plotted and report the others
func countPlottable(variants []Variant) int {
	logger := log.New(os.Stderr, "", 0)

	count := 0
	for _, variant := range variants {
		if plottable(variant.P) {
			count++
		}
	}
	if dropped := len(variants) - count; dropped > 0 {
		logger.Printf("Skipping %d variants with a missing or non-positive p-value in the Manhattan plot", dropped)
	}
	return count
}

// Create the Manhattan plot of the variants. When file isn't empty the
// figure is saved to it and only returned once the file is written.
func ManhattanPlot(variants []Variant, highlight HighlightSet, options ManhattanOptions, file string) (*Figure, error) {
	if countPlottable(variants) == 0 {
		return nil, ErrNoVariants
	}
	if options.Size <= 0 {
		return nil, fmt.Errorf("%w: figure size %v must be positive", ErrDegenerateRange, options.Size)
	}

	pointColors, highlightColors, err := options.colors()
	if err != nil {
		return nil, err
	}

	layout := ComputeLayout(variants)
	if layout.MaxLogP <= 0 {
		return nil, fmt.Errorf("%w: all p-values are 1 or larger", ErrDegenerateRange)
	}
	if layout.MaxX <= 0 {
		return nil, fmt.Errorf("%w: all variants are at genome position 0", ErrDegenerateRange)
	}
	xMax := layout.MaxX * xMargin

	figure := &Figure{Plot: plot.New()}
	figure.Width, figure.Height = options.FigureSize()
	p := figure.Plot
	p.Title.Text = options.Title
	p.X.Label.Text = "Chromosome"
	p.Y.Label.Text = "-log10(p)"

	for num, group := range layout.Groups {
		scatter, err := groupScatter(group, pointColors[num%len(pointColors)], draw.CircleGlyph{}, pointRadius)
		if err != nil {
			return nil, err
		}
		figure.add(scatter)
		figure.Points = append(figure.Points, scatter)
	}

	highlightRadius := math.Sqrt(45*options.Size) / 2
	for num, group := range layout.Highlighted(highlight) {
		scatter, err := groupScatter(group, highlightColors[num%len(highlightColors)], draw.TriangleGlyph{}, highlightRadius)
		if err != nil {
			return nil, err
		}
		figure.add(scatter)
		figure.Highlights = append(figure.Highlights, scatter)
	}

	thresholds := []struct {
		p     float64
		color string
		width float64
	}{
		{options.SigP, options.SigColor, 1.2},
		{options.SugP, options.SugColor, 0.5},
	}
	for _, threshold := range thresholds {
		if threshold.p <= 0 {
			continue
		}
		line, err := thresholdLine(threshold.p, threshold.color, threshold.width, xMax)
		if err != nil {
			return nil, err
		}
		figure.add(line)
		figure.Lines = append(figure.Lines, line)
	}

	p.X.Tick.Marker = plot.ConstantTicks(layout.Ticks())
	p.X.Min, p.X.Max = 0, xMax
	p.Y.Min, p.Y.Max = 0, layout.MaxLogP*yHeadroom

	if file != "" {
		if err := figure.Save(file); err != nil {
			return nil, err
		}
	}
	return figure, nil
}

func groupScatter(group ChromosomeGroup, c color.Color, shape draw.GlyphDrawer, radius float64) (*plotter.Scatter, error) {
	points := make(plotter.XYs, len(group.X))
	for i := range group.X {
		points[i].X = group.X[i]
		points[i].Y = group.LogP[i]
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("chromosome %s: %w", group.Chromosome, err))
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Shape = shape
	scatter.GlyphStyle.Radius = vg.Points(radius)
	return scatter, nil
}

// A dashed horizontal line at -log10(p) over the whole genome
func thresholdLine(p float64, colorName string, width float64, xMax float64) (*plotter.Line, error) {
	lineColor, err := ParseColor(colorName)
	if err != nil {
		return nil, err
	}
	y := negLog10(p)
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: xMax, Y: y}})
	if err != nil {
		return nil, pfx.Err(err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return line, nil
}

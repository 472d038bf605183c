package qqman_api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// The resolution of raster output
const DPI = 300

var ErrUnknownFormat = errors.New("unsupported image format")

// A rendered plot together with its size and layers
type Figure struct {
	Plot *plot.Plot

	// The size of the figure when saved
	Width  vg.Length
	Height vg.Length

	// The base scatter layers, one per chromosome for Manhattan plots
	Points []*plotter.Scatter

	// The highlight overlay layers
	Highlights []*plotter.Scatter

	// The reference and threshold lines
	Lines []*plotter.Line
}

func (figure *Figure) add(layers ...plot.Plotter) {
	figure.Plot.Add(layers...)
}

// Save the figure to the file, the format follows the extension
func (figure *Figure) Save(file string) error {
	return SavePlot(figure.Plot, figure.Width, figure.Height, file)
}

// Create the encoder for the image format belonging to the file extension
func plotWriter(p *plot.Plot, width vg.Length, height vg.Length, file string) (io.WriterTo, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))

	switch extension {
	case "png", "jpg", "jpeg", "tif", "tiff":
		canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI))
		p.Draw(draw.New(canvas))
		switch extension {
		case "png":
			return vgimg.PngCanvas{Canvas: canvas}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: canvas}, nil
		default:
			return vgimg.TiffCanvas{Canvas: canvas}, nil
		}
	case "svg", "pdf", "eps":
		return p.WriterTo(width, height, extension)
	}
	return nil, fmt.Errorf("%w: '%s', use one of png, jpg, tiff, svg, pdf or eps", ErrUnknownFormat, file)
}

// Save the plot to the file. The image is written to a temporary file next
// to the target first, so a failing render never leaves a partial output.
func SavePlot(p *plot.Plot, width vg.Length, height vg.Length, file string) error {
	logger := log.New(os.Stderr, "", 0)

	writer, err := plotWriter(p, width, height, file)
	if err != nil {
		return pfx.Err(err)
	}

	dir := filepath.Dir(file)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(file)+".*")
	if err != nil {
		return pfx.Err(fmt.Errorf("failed to create the output file: %w", err))
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName)

	if _, err := writer.WriteTo(tmpFile); err != nil {
		tmpFile.Close()
		return pfx.Err(fmt.Errorf("failed to write '%s': %w", file, err))
	}
	if err := tmpFile.Close(); err != nil {
		return pfx.Err(fmt.Errorf("failed to write '%s': %w", file, err))
	}
	if err := os.Rename(tmpName, file); err != nil {
		return pfx.Err(fmt.Errorf("failed to move the image to '%s': %w", file, err))
	}

	logger.Printf("Wrote %s", file)
	return nil
}

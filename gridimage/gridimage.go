// Package gridimage provides the PNG-backed obstacle/field I/O
// collaborators described in spec.md §6, grounded on
// GraphSearchBase::save_U_values_image and Environnement's PNG-decoding
// constructor. It is the only package in this module that reads or writes
// an external encoding format (through io.Reader/io.Writer; it opens no
// files itself), so it is also the only one that surfaces ErrIO.
package gridimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/gridwave/field"
)

// ErrIO wraps failures from the underlying image codec.
var ErrIO = errors.New("gridimage: I/O error")

// DefaultThreshold is the default grayscale/mean-RGB obstacle cutoff: a
// pixel darker than this is an obstacle.
const DefaultThreshold = 128

// DecodeObstacles reads a 2-D image and builds a rectangular Grid with
// dims = (width, height), one cell per pixel. A pixel is an obstacle
// when its grayscale value (or mean RGB) is below threshold; threshold
// <= 0 uses DefaultThreshold. The alpha channel, if any, is ignored.
func DecodeObstacles(r io.Reader, threshold int) (*field.Grid, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrIO, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	g, err := field.NewGrid(field.Dimensions{width, height})
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit-per-channel values; scale to 8-bit mean.
			mean := (r32>>8 + g32>>8 + b32>>8) / 3
			if int(mean) < threshold {
				if err := g.SetObstacle(field.CellCoord{x, y}, true); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// EncodeField writes a 2-D Grid's field as a PNG: obstacle cells render
// black, unreached non-obstacle cells (cost +Inf) render dark gray
// (50,50,50), and every other finite-cost cell is colored by a four-stop
// blue -> green -> yellow -> red colormap normalized against the global
// finite maximum. Returns an error if the grid is not 2-D.
func EncodeField(w io.Writer, g *field.Grid) error {
	dims := g.Dims()
	if len(dims) != 2 {
		return fmt.Errorf("%w: field encoding requires a 2-D grid, got %d dimensions", ErrIO, len(dims))
	}
	width, height := dims[0], dims[1]

	maxValue := 0.0
	for idx := 0; idx < g.Len(); idx++ {
		cell := g.CellAt(idx)
		if !cell.Obstacle && !math.IsInf(cell.Cost, 1) && cell.Cost > maxValue {
			maxValue = cell.Cost
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx, ok := g.IndexOf(field.CellCoord{x, y})
			var c color.RGBA
			if !ok {
				c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
			} else {
				c = colorFor(g.CellAt(idx), maxValue)
			}
			img.SetRGBA(x, y, c)
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrIO, err)
	}
	return nil
}

// colorFor maps a single cell to its display color, per the palette
// documented on EncodeField.
func colorFor(cell *field.Cell, maxValue float64) color.RGBA {
	if cell.Obstacle {
		return color.RGBA{A: 255}
	}
	if math.IsInf(cell.Cost, 1) {
		return color.RGBA{R: 50, G: 50, B: 50, A: 255}
	}

	normalized := 0.0
	if maxValue > 0 {
		normalized = cell.Cost / maxValue
	}

	var r, gc, b float64
	switch {
	case normalized < 0.33:
		t := normalized / 0.33
		r, gc, b = 0, 255*t, 255*(1-t)
	case normalized < 0.66:
		t := (normalized - 0.33) / 0.33
		r, gc, b = 255*t, 255, 0
	default:
		t := (normalized - 0.66) / 0.34
		r, gc, b = 255, 255*(1-t), 0
	}
	return color.RGBA{R: uint8(r), G: uint8(gc), B: uint8(b), A: 255}
}

package gridimage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/gridimage"
)

func encodeTestPNG(t *testing.T, pixels [][]color.Gray) []byte {
	t.Helper()
	height := len(pixels)
	width := len(pixels[0])
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			img.SetGray(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeObstacles_ThresholdsDarkPixels(t *testing.T) {
	data := encodeTestPNG(t, [][]color.Gray{
		{{Y: 200}, {Y: 10}},
		{{Y: 10}, {Y: 200}},
	})
	g, err := gridimage.DecodeObstacles(bytes.NewReader(data), 128)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dims()[0])
	assert.Equal(t, 2, g.Dims()[1])

	cell, err := g.Get(field.CellCoord{1, 0})
	require.NoError(t, err)
	assert.True(t, cell.Obstacle, "dark pixel should be an obstacle")

	cell, err = g.Get(field.CellCoord{0, 0})
	require.NoError(t, err)
	assert.False(t, cell.Obstacle, "bright pixel should not be an obstacle")
}

func TestEncodeField_RejectsNon2D(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{2, 2, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, gridimage.EncodeField(&buf, g), "expected error encoding a non-2D grid")
}

func TestEncodeField_ProducesValidPNG(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{3, 3})
	require.NoError(t, err)
	require.NoError(t, g.SetObstacle(field.CellCoord{1, 1}, true))

	var buf bytes.Buffer
	require.NoError(t, gridimage.EncodeField(&buf, g))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
}

// Package gridtext renders a 2-D Grid's field as a plain-text table,
// grounded on GraphSearchBase::display_U_values_grid.
package gridtext

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridwave/field"
)

// ErrNot2D indicates the textual dump was attempted on a grid whose
// dimensionality isn't exactly 2, matching display_U_values_grid's own
// 2-D-only restriction.
var ErrNot2D = errors.New("gridtext: textual dump requires a 2-D grid")

// Dump renders g as a column-labeled grid of costs: "###" for an
// obstacle, " ∞ " for an unreached non-obstacle cell, and the truncated
// integer cost otherwise.
func Dump(g *field.Grid) (string, error) {
	dims := g.Dims()
	if len(dims) != 2 {
		return "", fmt.Errorf("%w: got %d dimensions", ErrNot2D, len(dims))
	}
	width, height := dims[0], dims[1]

	var b strings.Builder
	b.WriteString("    ")
	for x := 0; x < width; x++ {
		if x%10 == 0 {
			fmt.Fprintf(&b, "%3d", x)
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("\n")

	for y := 0; y < height; y++ {
		fmt.Fprintf(&b, "%3d: ", y)
		for x := 0; x < width; x++ {
			idx, ok := g.IndexOf(field.CellCoord{x, y})
			if !ok {
				b.WriteString(" ? ")
				continue
			}
			cell := g.CellAt(idx)
			switch {
			case cell.Obstacle:
				b.WriteString("###")
			case math.IsInf(cell.Cost, 1):
				b.WriteString(" ∞ ")
			default:
				fmt.Fprintf(&b, "%3d", int(cell.Cost))
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

package field

import (
	"fmt"
	"math"
)

// PeriodicGrid specializes Grid with per-axis toroidal wraparound: bounds,
// neighbor enumeration, hypercube interpolation, and distance all honor
// Periodic[i] for each axis i.
type PeriodicGrid struct {
	*Grid
	Periodic []bool
}

// NewPeriodicGrid allocates a PeriodicGrid. Returns ErrDimensionMismatch if
// len(periodic) != len(dims); otherwise behaves like NewGrid.
func NewPeriodicGrid(dims Dimensions, periodic []bool) (*PeriodicGrid, error) {
	if len(periodic) != len(dims) {
		return nil, fmt.Errorf("%w: periodic flags has %d entries, dims has %d", ErrDimensionMismatch, len(periodic), len(dims))
	}
	g, err := NewGrid(dims)
	if err != nil {
		return nil, err
	}
	return &PeriodicGrid{Grid: g, Periodic: append([]bool(nil), periodic...)}, nil
}

// normalizeAxisInt reduces an integer axis coordinate modulo its dimension
// when the axis is periodic; non-periodic axes pass through unchanged.
func (pg *PeriodicGrid) normalizeAxisInt(axis, v int) int {
	if !pg.Periodic[axis] {
		return v
	}
	d := pg.dims[axis]
	v %= d
	if v < 0 {
		v += d
	}
	return v
}

// normalizeAxisReal reduces a real axis coordinate modulo its dimension via
// fmod when the axis is periodic.
func (pg *PeriodicGrid) normalizeAxisReal(axis int, v float64) float64 {
	if !pg.Periodic[axis] {
		return v
	}
	d := float64(pg.dims[axis])
	v = math.Mod(v, d)
	if v < 0 {
		v += d
	}
	return v
}

// NormalizeInt wraps every periodic axis of an integer coordinate into
// [0, dims[i]).
func (pg *PeriodicGrid) NormalizeInt(c CellCoord) CellCoord {
	out := make(CellCoord, len(c))
	for i, v := range c {
		out[i] = pg.normalizeAxisInt(i, v)
	}
	return out
}

// NormalizeReal wraps every periodic axis of a real coordinate into
// [0, dims[i]).
func (pg *PeriodicGrid) NormalizeReal(q Coordinate) Coordinate {
	out := make(Coordinate, len(q))
	for i, v := range q {
		out[i] = pg.normalizeAxisReal(i, v)
	}
	return out
}

// InBoundsInt reports true unconditionally on periodic axes (any integer
// value normalizes into range); non-periodic axes use the standard test.
func (pg *PeriodicGrid) InBoundsInt(c CellCoord) bool {
	if len(c) != len(pg.dims) {
		return false
	}
	for i, v := range c {
		if pg.Periodic[i] {
			continue
		}
		if v < 0 || v >= pg.dims[i] {
			return false
		}
	}
	return true
}

// InBounds reports true unconditionally on periodic axes; non-periodic
// axes use the standard real-valued test.
func (pg *PeriodicGrid) InBounds(q Coordinate) bool {
	if len(q) != len(pg.dims) {
		return false
	}
	for i, v := range q {
		if pg.Periodic[i] {
			continue
		}
		if v < 0 || v >= float64(pg.dims[i]) {
			return false
		}
	}
	return true
}

// IndexOf normalizes periodic axes, then delegates to Grid.IndexOf.
func (pg *PeriodicGrid) IndexOf(c CellCoord) (int, bool) {
	return pg.Grid.IndexOf(pg.NormalizeInt(c))
}

// AxisPairs enumerates the (minus, plus) neighbor cell indices per axis,
// normalizing the shifted coordinate on periodic axes before lookup so
// that, e.g., column -1 resolves to the last column.
func (pg *PeriodicGrid) AxisPairs(idx int) [][2]int {
	base := pg.Coordinate(idx)
	n := len(pg.dims)
	pairs := make([][2]int, n)
	probe := make(CellCoord, n)
	for axis := 0; axis < n; axis++ {
		copy(probe, base)
		for side, off := range axisOffsets {
			probe[axis] = pg.normalizeAxisInt(axis, base[axis]+off)
			if ni, ok := pg.Grid.IndexOf(probe); ok {
				pairs[axis][side] = ni
			} else {
				pairs[axis][side] = -1
			}
		}
		probe[axis] = base[axis]
	}
	return pairs
}

// Neighbors flattens AxisPairs, identical contract to Grid.Neighbors.
func (pg *PeriodicGrid) Neighbors(idx int) []int {
	pairs := pg.AxisPairs(idx)
	out := make([]int, 0, 2*len(pairs))
	for _, p := range pairs {
		for _, ni := range p {
			if ni >= 0 {
				out = append(out, ni)
			}
		}
	}
	return out
}

// Distance combines per-axis distance into an L_p norm. Non-periodic axes
// use |a[i]-b[i]|; periodic axes use min(|a[i]-b[i]|, dims[i]-|a[i]-b[i]|)
// — the shorter of the direct and wraparound paths.
func (pg *PeriodicGrid) Distance(a, b Coordinate, p float64) (float64, error) {
	if len(a) != len(pg.dims) || len(b) != len(pg.dims) {
		return 0, fmt.Errorf("%w: distance operands must have %d axes", ErrDimensionMismatch, len(pg.dims))
	}
	axisDist := func(i int, av, bv float64) float64 {
		d := math.Abs(av - bv)
		if !pg.Periodic[i] {
			return d
		}
		wrap := float64(pg.dims[i]) - d
		if wrap < d {
			return wrap
		}
		return d
	}
	return minkowski(a, b, p, axisDist), nil
}

// HypercubeCorners enumerates the 2^N enclosing corners of a real
// coordinate, with each corner coordinate normalized before lookup so
// hypercubes that straddle a periodic boundary resolve correctly.
func (pg *PeriodicGrid) HypercubeCorners(q Coordinate) []WeightedCorner {
	n := len(pg.dims)
	if len(q) != n {
		return nil
	}

	nq := pg.NormalizeReal(q)
	base := make([]int, n)
	frac := make([]float64, n)
	for i := 0; i < n; i++ {
		b := math.Floor(nq[i])
		f := nq[i] - b
		if pg.Periodic[i] {
			// Periodic axes may legitimately have base == dims[i]-1 with
			// the "+1" corner wrapping around to index 0.
			if int(b) > pg.dims[i]-1 {
				b = float64(pg.dims[i] - 1)
				f = nq[i] - b
			}
		} else {
			maxBase := pg.dims[i] - 2
			if maxBase < 0 {
				maxBase = 0
			}
			if int(b) > maxBase {
				b = float64(maxBase)
				f = 1
			}
		}
		if b < 0 {
			b = 0
			f = 0
		}
		base[i] = int(b)
		frac[i] = f
	}

	numCorners := 1 << uint(n)
	out := make([]WeightedCorner, 0, numCorners)
	corner := make(CellCoord, n)
	for k := 0; k < numCorners; k++ {
		weight := 1.0
		for i := 0; i < n; i++ {
			bit := (k >> uint(i)) & 1
			if bit == 1 {
				corner[i] = pg.normalizeAxisInt(i, base[i]+1)
				weight *= frac[i]
			} else {
				corner[i] = base[i]
				weight *= 1 - frac[i]
			}
		}
		if idx, ok := pg.Grid.IndexOf(corner); ok {
			out = append(out, WeightedCorner{Index: idx, Weight: weight})
		}
	}
	return out
}

// Interpolate mirrors Grid.Interpolate but resolves corners through the
// periodic-aware HypercubeCorners.
func (pg *PeriodicGrid) Interpolate(q Coordinate) float64 {
	pg.mu.RLock()
	defer pg.mu.RUnlock()
	return interpolateFrom(pg.cells, pg.HypercubeCorners(q))
}

// AllCornersFrozen mirrors Grid.AllCornersFrozen with periodic corners.
func (pg *PeriodicGrid) AllCornersFrozen(q Coordinate) bool {
	pg.mu.RLock()
	defer pg.mu.RUnlock()
	corners := pg.HypercubeCorners(q)
	if len(corners) == 0 {
		return false
	}
	for _, wc := range corners {
		if pg.cells[wc.Index].State != Frozen {
			return false
		}
	}
	return true
}

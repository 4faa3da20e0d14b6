package field

import (
	"fmt"
	"math"
	"sync"
)

// Grid owns every cell of a rectangular N-dimensional lattice. Cells are
// stored densely in row-major order (index = Σ c[i]·Π_{j>i} dims[j]), a
// single allocation sized to the product of dims.
//
// mu guards the cell slice against concurrent *readers* calling Get/Has/
// Interpolate/Distance/AllCornersFrozen between runs. A SearchEngine's Run
// mutates cells directly without taking mu — per spec, at most one search
// may be in flight against a Grid at a time, and Run is documented as the
// sole owner of the Grid for its duration.
type Grid struct {
	mu      sync.RWMutex
	dims    Dimensions
	strides []int
	cells   []Cell
}

// NewGrid allocates a Grid of the given dimensions. Every cell starts
// (Far, +Inf, NoParent, non-obstacle). Returns ErrInvalidDimensions if any
// axis size is not positive.
func NewGrid(dims Dimensions) (*Grid, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: dims must have at least one axis", ErrInvalidDimensions)
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d size %d", ErrInvalidDimensions, i, d)
		}
	}

	n := len(dims)
	strides := make([]int, n)
	strides[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}

	total := 1
	for _, d := range dims {
		total *= d
	}

	g := &Grid{
		dims:    append(Dimensions(nil), dims...),
		strides: strides,
		cells:   make([]Cell, total),
	}

	coord := make(CellCoord, n)
	for idx := range g.cells {
		rem := idx
		for i := 0; i < n; i++ {
			coord[i] = rem / strides[i]
			rem %= strides[i]
		}
		c := append(CellCoord(nil), coord...)
		g.cells[idx] = Cell{Coord: c, State: Far, Cost: math.Inf(1), Parent: NoParent}
	}

	return g, nil
}

// Dims returns the dimension tuple (a defensive copy).
func (g *Grid) Dims() Dimensions {
	return append(Dimensions(nil), g.dims...)
}

// Len returns the total number of cells (Π dims[i]).
func (g *Grid) Len() int {
	return len(g.cells)
}

// index computes the row-major index of an integer coordinate without
// bounds checking. Callers must validate first.
func (g *Grid) index(c CellCoord) int {
	idx := 0
	for i, v := range c {
		idx += v * g.strides[i]
	}
	return idx
}

// Coordinate converts a row-major index back to an integer coordinate.
func (g *Grid) Coordinate(idx int) CellCoord {
	c := make(CellCoord, len(g.dims))
	rem := idx
	for i := range g.dims {
		c[i] = rem / g.strides[i]
		rem %= g.strides[i]
	}
	return c
}

// InBoundsInt reports whether an integer coordinate addresses a real cell:
// len(c) == N and 0 <= c[i] < dims[i] for every axis.
func (g *Grid) InBoundsInt(c CellCoord) bool {
	if len(c) != len(g.dims) {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= g.dims[i] {
			return false
		}
	}
	return true
}

// InBounds reports whether a real coordinate lies within [0, dims[i]) on
// every axis (rectangular grid: identical test for integer and fractional
// coordinates).
func (g *Grid) InBounds(q Coordinate) bool {
	if len(q) != len(g.dims) {
		return false
	}
	for i, v := range q {
		if v < 0 || v >= float64(g.dims[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the row-major index of an integer coordinate and whether
// it is in bounds.
func (g *Grid) IndexOf(c CellCoord) (int, bool) {
	if !g.InBoundsInt(c) {
		return 0, false
	}
	return g.index(c), true
}

// cellPtr returns a direct pointer to the cell at idx, bypassing mu. Only
// SearchEngine (which documents exclusive ownership during Run) and other
// field-package internals should call this.
func (g *Grid) cellPtr(idx int) *Cell {
	return &g.cells[idx]
}

// Get returns a copy of the cell at coord. Fails with ErrDimensionMismatch
// if the arity is wrong, ErrNotFound if coord is out of bounds.
func (g *Grid) Get(c CellCoord) (Cell, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(c) != len(g.dims) {
		return Cell{}, fmt.Errorf("%w: want %d axes, got %d", ErrDimensionMismatch, len(g.dims), len(c))
	}
	idx, ok := g.IndexOf(c)
	if !ok {
		return Cell{}, fmt.Errorf("%w: %v", ErrNotFound, c)
	}
	return g.cells[idx], nil
}

// Has reports whether coord addresses a cell in this Grid.
func (g *Grid) Has(c CellCoord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.InBoundsInt(c)
}

// SetObstacle marks (or unmarks) the cell at coord as an obstacle. This is
// the dense-storage analogue of the reference's add_cell: cells always
// exist once the Grid is constructed, so "adding" a cell means configuring
// its immutable obstacle flag before the first run.
func (g *Grid) SetObstacle(c CellCoord, obstacle bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(c) != len(g.dims) {
		return fmt.Errorf("%w: want %d axes, got %d", ErrDimensionMismatch, len(g.dims), len(c))
	}
	idx, ok := g.IndexOf(c)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	cell := &g.cells[idx]
	cell.Obstacle = obstacle
	if obstacle {
		cell.State = Far
		cell.Cost = math.Inf(1)
		cell.Parent = NoParent
	}
	return nil
}

// axisOffsets holds the two integer offsets (-1, +1) applied to a
// single axis when enumerating axis-aligned neighbors.
var axisOffsets = [2]int{-1, +1}

// AxisPairs enumerates, for each of the N axes, the (minus-side, plus-side)
// neighbor cell indices of the cell at idx. A side is -1 when the
// corresponding neighbor coordinate is out of bounds. Order is axis-major:
// axis 0's minus then plus, axis 1's minus then plus, and so on — the FMM
// engine depends on this grouping to pick the lesser-cost side per axis.
func (g *Grid) AxisPairs(idx int) [][2]int {
	base := g.Coordinate(idx)
	n := len(g.dims)
	pairs := make([][2]int, n)
	probe := make(CellCoord, n)
	for axis := 0; axis < n; axis++ {
		copy(probe, base)
		for side, off := range axisOffsets {
			probe[axis] = base[axis] + off
			if ni, ok := g.IndexOf(probe); ok {
				pairs[axis][side] = ni
			} else {
				pairs[axis][side] = -1
			}
		}
		probe[axis] = base[axis]
	}
	return pairs
}

// Neighbors flattens AxisPairs into the axis-aligned neighbor list used by
// Dijkstra/A* relaxation: each axis contributes at most one entry per side
// (fixing the reference implementation's double-insert-on-missing-upper
// bug noted in spec §9 — a missing side simply contributes nothing, it is
// never backfilled with the opposite side's cell).
func (g *Grid) Neighbors(idx int) []int {
	pairs := g.AxisPairs(idx)
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

// Distance returns the L_p norm (p in {1, 2, +Inf}) of the componentwise
// difference between two real coordinates. On a rectangular (non-periodic)
// Grid this is plain Minkowski distance.
func (g *Grid) Distance(a, b Coordinate, p float64) (float64, error) {
	if len(a) != len(g.dims) || len(b) != len(g.dims) {
		return 0, fmt.Errorf("%w: distance operands must have %d axes", ErrDimensionMismatch, len(g.dims))
	}
	return minkowski(a, b, p, nil), nil
}

// minkowski computes the L_p norm of a-b, where per-axis is computed by
// axisDist if non-nil, or plain |a[i]-b[i]| otherwise.
func minkowski(a, b Coordinate, p float64, axisDist func(i int, a, b float64) float64) float64 {
	switch {
	case math.IsInf(p, 1):
		max := 0.0
		for i := range a {
			d := axisDelta(i, a[i], b[i], axisDist)
			if d > max {
				max = d
			}
		}
		return max
	case p == 1:
		sum := 0.0
		for i := range a {
			sum += axisDelta(i, a[i], b[i], axisDist)
		}
		return sum
	default: // p == 2 (Euclidean) and any other finite p handled as L2, per spec's {1,2,∞} domain
		sum := 0.0
		for i := range a {
			d := axisDelta(i, a[i], b[i], axisDist)
			sum += d * d
		}
		return math.Sqrt(sum)
	}
}

func axisDelta(i int, a, b float64, axisDist func(i int, a, b float64) float64) float64 {
	if axisDist != nil {
		return axisDist(i, a, b)
	}
	return math.Abs(a - b)
}

// HypercubeCorners enumerates the 2^N integer lattice corners enclosing
// real coordinate q, clamped so each axis's base index stays within
// [0, dims[i]-2] (or the unique valid index for axes of size 1), with
// multilinear weights. Only corners actually present in the Grid are
// emitted; weights over emitted corners need not sum to 1.
func (g *Grid) HypercubeCorners(q Coordinate) []WeightedCorner {
	return g.hypercubeCorners(q, func(c CellCoord) (int, bool) { return g.IndexOf(c) })
}

// hypercubeCorners is the shared implementation used by both Grid and
// PeriodicGrid; lookup abstracts over plain vs. normalizing coordinate
// resolution.
func (g *Grid) hypercubeCorners(q Coordinate, lookup func(CellCoord) (int, bool)) []WeightedCorner {
	n := len(g.dims)
	if len(q) != n {
		return nil
	}

	base := make([]int, n)
	frac := make([]float64, n)
	for i := 0; i < n; i++ {
		b := math.Floor(q[i])
		f := q[i] - b
		maxBase := g.dims[i] - 2
		if maxBase < 0 {
			maxBase = 0
		}
		if int(b) > maxBase {
			b = float64(maxBase)
			f = 1
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
				corner[i] = base[i] + 1
				weight *= frac[i]
			} else {
				corner[i] = base[i]
				weight *= 1 - frac[i]
			}
		}
		if idx, ok := lookup(corner); ok {
			out = append(out, WeightedCorner{Index: idx, Weight: weight})
		}
	}
	return out
}

// Interpolate returns the multilinear interpolation of cost at a real
// coordinate: Σ w_k·cost(corner_k) / Σ w_k over present, non-obstacle,
// finite-cost corners. Returns +Inf if no such corner is present (spec §9
// "renormalize only when Σw > 0, otherwise +Inf").
func (g *Grid) Interpolate(q Coordinate) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return interpolateFrom(g.cells, g.HypercubeCorners(q))
}

func interpolateFrom(cells []Cell, corners []WeightedCorner) float64 {
	var wsum, vsum float64
	for _, wc := range corners {
		c := &cells[wc.Index]
		if c.Obstacle || math.IsInf(c.Cost, 1) {
			continue
		}
		wsum += wc.Weight
		vsum += wc.Weight * c.Cost
	}
	if wsum <= 0 {
		return math.Inf(1)
	}
	return vsum / wsum
}

// AllCornersFrozen reports whether every present corner of the hypercube
// enclosing q is in the Frozen state. It returns false when no corner is
// present.
func (g *Grid) AllCornersFrozen(q Coordinate) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	corners := g.HypercubeCorners(q)
	if len(corners) == 0 {
		return false
	}
	for _, wc := range corners {
		if g.cells[wc.Index].State != Frozen {
			return false
		}
	}
	return true
}

// ResetNonObstacles restores every non-obstacle cell to (Far, +Inf,
// NoParent). Obstacles are never mutated, per invariant 1.
func (g *Grid) ResetNonObstacles() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		c := &g.cells[i]
		if c.Obstacle {
			continue
		}
		c.State = Far
		c.Cost = math.Inf(1)
		c.Parent = NoParent
	}
}

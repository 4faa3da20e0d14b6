package field

// Topology is the interface SearchEngine and HeuristicStrategy program
// against, satisfied by both *Grid (rectangular) and *PeriodicGrid
// (per-axis toroidal). It captures exactly the operations spec.md assigns
// to the Grid/PeriodicGrid component pair.
type Topology interface {
	// Dims returns the dimension tuple.
	Dims() Dimensions
	// Len returns the total number of cells.
	Len() int
	// Coordinate converts a row-major index back to an integer coordinate.
	Coordinate(idx int) CellCoord
	// IndexOf resolves an integer coordinate to a cell index, honoring
	// periodicity; ok is false if the coordinate is out of bounds.
	IndexOf(c CellCoord) (idx int, ok bool)
	// InBoundsInt reports whether an integer coordinate addresses a cell.
	InBoundsInt(c CellCoord) bool
	// InBounds reports whether a real coordinate is addressable.
	InBounds(q Coordinate) bool
	// CellAt returns a direct pointer to the cell at idx. SearchEngine is
	// the only expected caller during a live Run.
	CellAt(idx int) *Cell
	// Neighbors returns the axis-aligned neighbor indices of the cell at
	// idx (each present axis-side contributes at most one entry).
	Neighbors(idx int) []int
	// AxisPairs returns, per axis, the (minus, plus) neighbor indices
	// (-1 where absent), in axis-major order — required by FMMEngine.
	AxisPairs(idx int) [][2]int
	// Distance returns the L_p norm (p in {1,2,+Inf}) between two real
	// coordinates, honoring periodic wraparound where applicable.
	Distance(a, b Coordinate, p float64) (float64, error)
	// HypercubeCorners enumerates the 2^N corners enclosing q with
	// multilinear weights, periodicity-aware.
	HypercubeCorners(q Coordinate) []WeightedCorner
	// Interpolate returns the weighted cost at a real coordinate, +Inf if
	// no present corner has a finite cost.
	Interpolate(q Coordinate) float64
	// AllCornersFrozen reports whether every present corner of q is Frozen.
	AllCornersFrozen(q Coordinate) bool
	// ResetNonObstacles restores every non-obstacle cell to (Far, +Inf, NoParent).
	ResetNonObstacles()
}

// CellAt returns a direct pointer to the cell at idx.
func (g *Grid) CellAt(idx int) *Cell { return g.cellPtr(idx) }

var (
	_ Topology = (*Grid)(nil)
	_ Topology = (*PeriodicGrid)(nil)
)

// Package gridrand synthesizes obstacle layouts for field.Grid and
// field.PeriodicGrid: uniform random scattering and maze-style corridor
// carving, grounded on Environnement::createRandomEnvironment and
// Environnement::createMazeEnvironment, generalized to N dimensions and
// to rand's own deterministic-seed convention from tsp/rng.go.
package gridrand

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridwave/field"
)

// ErrInvalidProbability indicates an obstacle probability outside [0, 1].
var ErrInvalidProbability = errors.New("gridrand: obstacle probability must be in [0, 1]")

// rngFromSeed returns a deterministic *rand.Rand for seed != 0, or a
// high-resolution time-seeded one when seed == 0, per spec.md §6
// ("seed (0 → use a high-resolution time-based seed)"). This is the one
// deliberate divergence from tsp/rng.go's rngFromSeed, which always
// falls back to a fixed default seed; gridrand's obstacle generators are
// specified to want real randomness on seed==0, not a reproducible
// default.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewRandomGrid builds a rectangular Grid of the given dims where each
// cell independently becomes an obstacle with probability
// obstacleProbability (must be in [0, 1]). seed == 0 uses a time-based
// seed; any other value is deterministic.
func NewRandomGrid(dims field.Dimensions, obstacleProbability float64, seed int64) (*field.Grid, error) {
	if obstacleProbability < 0 || obstacleProbability > 1 {
		return nil, ErrInvalidProbability
	}
	g, err := field.NewGrid(dims)
	if err != nil {
		return nil, err
	}
	scatterObstacles(g, obstacleProbability, rngFromSeed(seed))
	return g, nil
}

// NewPeriodicRandomGrid is the periodic-topology counterpart of NewRandomGrid.
func NewPeriodicRandomGrid(dims field.Dimensions, periodic []bool, obstacleProbability float64, seed int64) (*field.PeriodicGrid, error) {
	if obstacleProbability < 0 || obstacleProbability > 1 {
		return nil, ErrInvalidProbability
	}
	pg, err := field.NewPeriodicGrid(dims, periodic)
	if err != nil {
		return nil, err
	}
	scatterObstacles(pg.Grid, obstacleProbability, rngFromSeed(seed))
	return pg, nil
}

func scatterObstacles(g *field.Grid, probability float64, rng *rand.Rand) {
	for idx := 0; idx < g.Len(); idx++ {
		if rng.Float64() < probability {
			_ = g.SetObstacle(g.Coordinate(idx), true)
		}
	}
}

// corridorDirections returns the 2N axis-aligned unit step vectors (+e_i
// and -e_i for each axis i), matching getPossibleDirections.
func corridorDirections(n int) []field.CellCoord {
	dirs := make([]field.CellCoord, 0, 2*n)
	for axis := 0; axis < n; axis++ {
		pos := make(field.CellCoord, n)
		pos[axis] = 1
		neg := make(field.CellCoord, n)
		neg[axis] = -1
		dirs = append(dirs, pos, neg)
	}
	return dirs
}

// isAtBorder reports whether coord touches the boundary on any
// non-periodic axis; periodic axes have no border.
func isAtBorder(coord field.CellCoord, dims field.Dimensions, periodic []bool) bool {
	for i, v := range coord {
		if periodic != nil && periodic[i] {
			continue
		}
		if v == 0 || v == dims[i]-1 {
			return true
		}
	}
	return false
}

// carveMaze fills g with obstacles everywhere except pre-freed borders
// (on non-periodic axes), then carves num_paths random corridors of
// randomized length and direction starting from non-border cells, per
// createMazeEnvironment. periodic may be nil for a fully rectangular grid.
func carveMaze(g *field.Grid, dims field.Dimensions, periodic []bool, rng *rand.Rand) {
	n := len(dims)
	for idx := 0; idx < g.Len(); idx++ {
		_ = g.SetObstacle(g.Coordinate(idx), true)
	}
	for idx := 0; idx < g.Len(); idx++ {
		coord := g.Coordinate(idx)
		if isAtBorder(coord, dims, periodic) {
			_ = g.SetObstacle(coord, false)
		}
	}

	dirs := corridorDirections(n)

	totalVolume := 1
	for _, d := range dims {
		totalVolume *= d
	}
	numPaths := totalVolume / 10

	startRange := make([]int, n)
	for i, d := range dims {
		r := d - 2
		if r < 1 {
			r = 1
		}
		startRange[i] = r
	}

	for p := 0; p < numPaths; p++ {
		start := make(field.CellCoord, n)
		for i := range start {
			start[i] = 1 + rng.Intn(startRange[i])
		}

		length := 5 + rng.Intn(10)
		current := append(field.CellCoord(nil), start...)
		dir := dirs[rng.Intn(len(dirs))]

		for step := 0; step < length; step++ {
			if idx, ok := resolveCoord(g, current, dims, periodic); ok {
				_ = g.SetObstacle(g.Coordinate(idx), false)
			}
			for i := range current {
				current[i] += dir[i]
				if periodic != nil && periodic[i] {
					current[i] = ((current[i] % dims[i]) + dims[i]) % dims[i]
				}
			}
		}
	}
}

// resolveCoord looks up a cell index honoring periodicity, returning
// false for an out-of-bounds coordinate on a non-periodic axis.
func resolveCoord(g *field.Grid, coord field.CellCoord, dims field.Dimensions, periodic []bool) (int, bool) {
	normalized := make(field.CellCoord, len(coord))
	for i, v := range coord {
		if periodic != nil && periodic[i] {
			v = ((v % dims[i]) + dims[i]) % dims[i]
		} else if v < 0 || v >= dims[i] {
			return 0, false
		}
		normalized[i] = v
	}
	return g.IndexOf(normalized)
}

// NewMazeGrid builds a rectangular Grid of the given dims whose
// interior is entirely obstacle except for corridors carved by a
// randomized walk, with borders pre-freed. seed == 0 uses a time-based
// seed.
func NewMazeGrid(dims field.Dimensions, seed int64) (*field.Grid, error) {
	g, err := field.NewGrid(dims)
	if err != nil {
		return nil, err
	}
	carveMaze(g, dims, nil, rngFromSeed(seed))
	return g, nil
}

// NewPeriodicMazeGrid is the periodic-topology counterpart of
// NewMazeGrid: periodic axes are never treated as borders, so corridors
// may wrap around them freely.
func NewPeriodicMazeGrid(dims field.Dimensions, periodic []bool, seed int64) (*field.PeriodicGrid, error) {
	pg, err := field.NewPeriodicGrid(dims, periodic)
	if err != nil {
		return nil, err
	}
	carveMaze(pg.Grid, dims, periodic, rngFromSeed(seed))
	return pg, nil
}

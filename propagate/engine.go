// Package propagate implements SearchEngine, the generic wavefront
// driver shared by Dijkstra, A*, and Fast Marching Method propagation,
// and its three concrete engines.
//
// All three engines share the same lifecycle (add sources/goals, reset,
// run) and the same lazy-decrease-key frontier from package frontier;
// they differ only in their relax rule and termination predicate, which
// is exactly how dijkstra.go's runner/relax split is organized.
package propagate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/frontier"
)

// Sentinel errors returned by the propagate package.
var (
	// ErrInvalidConfig indicates a non-positive edge cost or tau, a
	// missing heuristic strategy where one is required, or an attempt to
	// run with no registered sources.
	ErrInvalidConfig = errors.New("propagate: invalid configuration")
	// ErrNilTopology indicates a nil field.Topology was bound to an engine.
	ErrNilTopology = errors.New("propagate: topology is nil")
)

// relaxFunc computes the candidate cost of relaxing the edge from
// current to neighbor. Implementations read whatever engine-specific
// state they need via closure.
type relaxFunc func(current, neighbor int) float64

// continueFunc reports whether the main loop should keep popping from
// the frontier, given a peek at the next entry.
type continueFunc func(next *frontier.Entry) bool

// base holds the state and algorithm shared by all three engines: the
// bound topology, registered sources/goals, the frontier, and the
// processed-cell counter. Concrete engines embed base and pass their
// relax and shouldContinue closures to run.
type base struct {
	topo      field.Topology
	sources   []field.CellCoord
	goals     []field.CellCoord
	front     *frontier.Frontier
	processed int
}

func newBase(topo field.Topology) base {
	return base{topo: topo, front: frontier.New()}
}

// AddSource registers a coordinate that will seed the wavefront at cost
// zero on the next Run.
func (b *base) AddSource(c field.CellCoord) {
	b.sources = append(b.sources, append(field.CellCoord(nil), c...))
}

// AddGoal registers a goal coordinate. Dijkstra ignores goals entirely;
// A* uses them for both heuristic targeting and early termination; FMM
// retains them only structurally (spec parity, no early termination).
func (b *base) AddGoal(c field.CellCoord) {
	b.goals = append(b.goals, append(field.CellCoord(nil), c...))
}

// ClearSources empties the registered source list.
func (b *base) ClearSources() { b.sources = nil }

// ClearGoals empties the registered goal list.
func (b *base) ClearGoals() { b.goals = nil }

// Processed returns the number of cells finalized (FROZEN) during the
// most recent Run.
func (b *base) Processed() int { return b.processed }

// Reset restores the topology's non-obstacle cells to FAR and empties the
// frontier, leaving registered sources/goals untouched. Run calls this
// itself at the start of every call; callers may also invoke it directly
// between runs, per spec's SearchEngine lifecycle (add_source/add_goal/
// clear_sources/clear_goals/reset/run).
func (b *base) Reset() {
	b.topo.ResetNonObstacles()
	b.front.Reset()
	b.processed = 0
}

// seedSources primes the frontier from the registered source list,
// silently skipping any source that is out of bounds or an obstacle
// (spec §7: not an error, a structural skip). Returns the number of
// cells actually seeded.
func (b *base) seedSources() int {
	seeded := 0
	for _, c := range b.sources {
		idx, ok := b.topo.IndexOf(c)
		if !ok {
			continue
		}
		cell := b.topo.CellAt(idx)
		if cell.Obstacle {
			continue
		}
		cell.Cost = 0
		cell.State = field.Front
		cell.Parent = field.NoParent
		b.front.Push(idx, 0)
		seeded++
	}
	return seeded
}

// run executes the shared SearchEngine main loop (spec §4.3): reset,
// seed, then pop-relax until shouldContinue says stop or the frontier
// drains. relax and shouldContinue are supplied by the concrete engine.
func (b *base) run(relax relaxFunc, shouldContinue continueFunc) error {
	if len(b.sources) == 0 {
		return fmt.Errorf("%w: no sources registered", ErrInvalidConfig)
	}

	b.Reset()
	if b.seedSources() == 0 {
		// Every registered source was out of bounds or an obstacle; the
		// engine logs nothing further (no logging facility is wired into
		// this library-only package) and returns without mutating cells.
		return nil
	}

	for b.front.Len() > 0 {
		next, _ := b.front.Peek()
		if !shouldContinue(next) {
			break
		}

		entry := b.front.Pop()
		cell := b.topo.CellAt(entry.Index)
		if cell.State == field.Frozen {
			continue // stale duplicate, see frontier package doc
		}
		cell.State = field.Frozen
		b.processed++

		b.process(entry.Index, relax)
	}

	return nil
}

// process relaxes every non-obstacle, non-FROZEN neighbor of the cell at
// idx, per spec §4.3 step 6.
func (b *base) process(idx int, relax relaxFunc) {
	for _, nIdx := range b.topo.Neighbors(idx) {
		neighbor := b.topo.CellAt(nIdx)
		if neighbor.Obstacle || neighbor.State == field.Frozen {
			continue
		}
		v := relax(idx, nIdx)
		if neighbor.State == field.Far || v < neighbor.Cost {
			neighbor.Cost = v
			neighbor.Parent = idx
			neighbor.State = field.Front
			b.front.Push(nIdx, v)
		}
	}
}

// closestGoalIndex returns the index (into b.goals) of the goal nearest
// neighborCoord under squared Euclidean distance, ties broken by
// earliest insertion order, and false if there are no goals.
func closestGoalIndex(goals []field.CellCoord, neighborCoord field.Coordinate) (int, bool) {
	if len(goals) == 0 {
		return 0, false
	}
	best := -1
	bestD := math.Inf(1)
	for i, g := range goals {
		var d float64
		for axis, gv := range g {
			diff := neighborCoord[axis] - float64(gv)
			d += diff * diff
		}
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, true
}

// goalMatches reports whether the integer coordinate of idx equals any
// registered goal. Goals are registered as integer CellCoord values, so
// the comparison is plain integer equality with no rounding or
// truncation step.
func goalMatches(topo field.Topology, idx int, goals []field.CellCoord) bool {
	if len(goals) == 0 {
		return false
	}
	coord := topo.Coordinate(idx)
	for _, g := range goals {
		if len(g) != len(coord) {
			continue
		}
		match := true
		for i := range g {
			if g[i] != coord[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

package propagate

import (
	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/frontier"
	"github.com/katalvlaran/gridwave/heuristic"
)

// AStarOptions configures an AStarEngine.
type AStarOptions struct {
	// EdgeCost is the constant per-step cost applied to g(n). Must be > 0.
	EdgeCost float64
	// Heuristic estimates h(n). May be nil, in which case AStarEngine
	// degenerates to Dijkstra (f = g), matching AStar::calculate_new_value's
	// documented fallback when no strategy is configured.
	Heuristic heuristic.Strategy
}

// AStarOption is a functional option for AStarOptions.
type AStarOption func(*AStarOptions)

// DefaultAStarOptions returns the default configuration: EdgeCost = 1, no
// heuristic.
func DefaultAStarOptions() AStarOptions {
	return AStarOptions{EdgeCost: 1}
}

// WithAStarEdgeCost overrides the constant per-step edge cost. Panics if
// cost is not strictly positive.
func WithAStarEdgeCost(cost float64) AStarOption {
	if cost <= 0 {
		panic(ErrInvalidConfig.Error())
	}
	return func(o *AStarOptions) { o.EdgeCost = cost }
}

// WithHeuristic sets the admissible heuristic strategy used for h(n).
func WithHeuristic(h heuristic.Strategy) AStarOption {
	return func(o *AStarOptions) { o.Heuristic = h }
}

// AStarEngine computes goal-directed shortest-path distances with f = g + h
// and early termination on goal pop, per spec.md §4.5.
type AStarEngine struct {
	base
	opts AStarOptions
}

// NewAStarEngine binds an AStarEngine to topo.
func NewAStarEngine(topo field.Topology, opts ...AStarOption) *AStarEngine {
	if topo == nil {
		panic(ErrNilTopology.Error())
	}
	cfg := DefaultAStarOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AStarEngine{base: newBase(topo), opts: cfg}
}

// AddSource registers a source coordinate.
func (e *AStarEngine) AddSource(c field.CellCoord) { e.base.AddSource(c) }

// AddGoal registers a goal coordinate used both for the heuristic target
// and for early termination.
func (e *AStarEngine) AddGoal(c field.CellCoord) { e.base.AddGoal(c) }

// ClearSources empties the registered source list.
func (e *AStarEngine) ClearSources() { e.base.ClearSources() }

// ClearGoals empties the registered goal list.
func (e *AStarEngine) ClearGoals() { e.base.ClearGoals() }

// Reset restores the topology's non-obstacle cells to FAR and empties the
// frontier, leaving registered sources/goals untouched.
func (e *AStarEngine) Reset() { e.base.Reset() }

// Processed returns the number of cells finalized during the last Run.
func (e *AStarEngine) Processed() int { return e.base.Processed() }

// Run executes the A* wavefront, stopping early once the frontier's
// minimum-cost entry is a registered goal (spec §4.5 should_continue).
// With a heuristic and goals, each reached non-source cell's Cost holds
// f = g + h (sources hold 0); at a goal, where h is 0, that is the path
// cost g.
func (e *AStarEngine) Run() error {
	estimate := func(idx int) float64 {
		coord := field.ToCoordinate(e.topo.Coordinate(idx))
		gi, _ := closestGoalIndex(e.goals, coord)
		return e.opts.Heuristic.Estimate(coord, field.ToCoordinate(e.goals[gi]))
	}
	relax := func(current, neighbor int) float64 {
		cur := e.topo.CellAt(current)
		if len(e.goals) == 0 || e.opts.Heuristic == nil {
			return cur.Cost + e.opts.EdgeCost
		}
		// Strip h from the predecessor's stored f to recover its g.
		g := cur.Cost
		if cur.Parent != field.NoParent {
			g -= estimate(current)
		}
		return g + e.opts.EdgeCost + estimate(neighbor)
	}
	shouldContinue := func(next *frontier.Entry) bool {
		if next == nil {
			return false
		}
		return !goalMatches(e.topo, next.Index, e.goals)
	}
	return e.base.run(relax, shouldContinue)
}

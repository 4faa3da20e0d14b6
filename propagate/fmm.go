package propagate

import (
	"math"

	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/frontier"
)

// FMMOptions configures an FMMEngine.
type FMMOptions struct {
	// Tau is the per-step Eikonal coefficient (inverse local propagation
	// speed) appearing on the right-hand side of |∇T| = 1/F. Must be > 0.
	Tau float64
}

// FMMOption is a functional option for FMMOptions.
type FMMOption func(*FMMOptions)

// DefaultFMMOptions returns the default configuration: Tau = 1.
func DefaultFMMOptions() FMMOptions {
	return FMMOptions{Tau: 1}
}

// WithTau overrides the Eikonal coefficient. Panics if tau is not
// strictly positive.
func WithTau(tau float64) FMMOption {
	if tau <= 0 {
		panic(ErrInvalidConfig.Error())
	}
	return func(o *FMMOptions) { o.Tau = tau }
}

// FMMEngine approximates the Eikonal equation |∇T| = 1/F via a quadratic
// upwind update over axis-minimum causal neighbors, per spec.md §4.6.
//
// add_goal is honored only structurally here (spec §9 Open Question):
// FMM does not early-terminate on goal pop, for parity with the
// reference implementation; a caller wanting goal-directed early
// termination should use AStarEngine instead.
type FMMEngine struct {
	base
	opts FMMOptions
}

// NewFMMEngine binds an FMMEngine to topo.
func NewFMMEngine(topo field.Topology, opts ...FMMOption) *FMMEngine {
	if topo == nil {
		panic(ErrNilTopology.Error())
	}
	cfg := DefaultFMMOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FMMEngine{base: newBase(topo), opts: cfg}
}

// AddSource registers a source coordinate.
func (e *FMMEngine) AddSource(c field.CellCoord) { e.base.AddSource(c) }

// AddGoal registers a goal coordinate (structural only; see type doc).
func (e *FMMEngine) AddGoal(c field.CellCoord) { e.base.AddGoal(c) }

// ClearSources empties the registered source list.
func (e *FMMEngine) ClearSources() { e.base.ClearSources() }

// ClearGoals empties the registered goal list.
func (e *FMMEngine) ClearGoals() { e.base.ClearGoals() }

// Reset restores the topology's non-obstacle cells to FAR and empties the
// frontier, leaving registered sources/goals untouched.
func (e *FMMEngine) Reset() { e.base.Reset() }

// Processed returns the number of cells finalized during the last Run.
func (e *FMMEngine) Processed() int { return e.base.Processed() }

// Run executes the FMM wavefront to completion.
func (e *FMMEngine) Run() error {
	relax := func(_, neighbor int) float64 {
		return e.solveEikonal(neighbor)
	}
	return e.base.run(relax, func(*frontier.Entry) bool { return true })
}

// solveEikonal computes the new value for neighbor from the lesser-cost
// side of each of its axis pairs (spec §4.6 steps 1-3). current is
// unused by the update rule itself, matching FMM::calculate_new_value
// ignoring its own "current" parameter.
func (e *FMMEngine) solveEikonal(neighbor int) float64 {
	pairs := e.topo.AxisPairs(neighbor)

	var u []float64
	for _, pair := range pairs {
		minCost := math.Inf(1)
		for _, side := range pair {
			if side < 0 {
				continue
			}
			if c := e.topo.CellAt(side).Cost; c < minCost {
				minCost = c
			}
		}
		if !math.IsInf(minCost, 1) {
			u = append(u, minCost)
		}
	}

	if len(u) == 0 {
		return math.Inf(1)
	}

	a := float64(len(u))
	var sum, sumSquares float64
	minU := math.Inf(1)
	for _, v := range u {
		sum += v
		sumSquares += v * v
		if v < minU {
			minU = v
		}
	}

	b := -2 * sum
	c := sumSquares - e.opts.Tau*e.opts.Tau
	delta := b*b - 4*a*c

	if delta >= 0 && !math.IsInf(delta, 0) {
		return (-b + math.Sqrt(delta)) / (2 * a)
	}
	return minU + e.opts.Tau
}

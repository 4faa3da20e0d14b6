package propagate

import (
	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/frontier"
)

// DijkstraOptions configures a DijkstraEngine.
type DijkstraOptions struct {
	// EdgeCost is the constant per-step cost applied to every relaxation.
	// Must be > 0.
	EdgeCost float64
}

// DijkstraOption is a functional option for DijkstraOptions.
type DijkstraOption func(*DijkstraOptions)

// DefaultDijkstraOptions returns the default configuration: EdgeCost = 1.
func DefaultDijkstraOptions() DijkstraOptions {
	return DijkstraOptions{EdgeCost: 1}
}

// WithEdgeCost overrides the constant per-step edge cost. Panics if cost
// is not strictly positive, matching the functional-options convention
// of failing fast on invalid configuration at call time.
func WithEdgeCost(cost float64) DijkstraOption {
	if cost <= 0 {
		panic(ErrInvalidConfig.Error())
	}
	return func(o *DijkstraOptions) { o.EdgeCost = cost }
}

// DijkstraEngine computes uniform-cost shortest-path distances from a
// set of sources over a field.Topology, per spec.md §4.4.
type DijkstraEngine struct {
	base
	opts DijkstraOptions
}

// NewDijkstraEngine binds a DijkstraEngine to topo. topo must be non-nil.
func NewDijkstraEngine(topo field.Topology, opts ...DijkstraOption) *DijkstraEngine {
	if topo == nil {
		panic(ErrNilTopology.Error())
	}
	cfg := DefaultDijkstraOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DijkstraEngine{base: newBase(topo), opts: cfg}
}

// AddSource registers a source coordinate.
func (e *DijkstraEngine) AddSource(c field.CellCoord) { e.base.AddSource(c) }

// ClearSources empties the registered source list.
func (e *DijkstraEngine) ClearSources() { e.base.ClearSources() }

// Reset restores the topology's non-obstacle cells to FAR and empties the
// frontier, leaving registered sources untouched.
func (e *DijkstraEngine) Reset() { e.base.Reset() }

// Processed returns the number of cells finalized during the last Run.
func (e *DijkstraEngine) Processed() int { return e.base.Processed() }

// Run executes the Dijkstra wavefront to completion. Returns
// ErrInvalidConfig if no sources are registered.
func (e *DijkstraEngine) Run() error {
	relax := func(current, _ int) float64 {
		return e.topo.CellAt(current).Cost + e.opts.EdgeCost
	}
	return e.base.run(relax, func(*frontier.Entry) bool { return true })
}

// Package heuristic provides the h(n) estimators SearchEngine's A* mode
// consults when ranking frontier cells. Each Strategy estimates the
// remaining distance from a cell to a goal coordinate; admissible
// strategies (those that never overestimate) preserve A*'s optimality
// guarantee.
//
// Strategies that accept a field.Topology back-reference route their
// distance calculation through it, which makes them periodicity-aware
// automatically (the wraparound-shortest-path rule a plain Euclidean or
// Manhattan formula would otherwise miss). Strategies built without one
// fall back to the direct (non-periodic) formula.
package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridwave/field"
)

// Strategy estimates h(n), the remaining distance from a coordinate to a
// goal, for SearchEngine's A* mode.
type Strategy interface {
	// Estimate returns h(from, goal). Must be non-negative.
	Estimate(from, goal field.Coordinate) float64
	// Name identifies the strategy for logging and debug output.
	Name() string
	// Admissible reports whether this configuration never overestimates
	// the true remaining cost, which A* requires for optimality.
	Admissible() bool
	// Description gives a short human-readable summary of the strategy's
	// configuration, e.g. "manhattan (weight=1.00, periodic-aware)".
	Description() string
}

// topologyStrategy is the shared shape of the Lp-norm-backed strategies:
// an optional grid back-reference, a norm exponent, and a weight factor.
type topologyStrategy struct {
	topo   field.Topology
	p      float64
	weight float64
	name   string
}

func (s *topologyStrategy) Estimate(from, goal field.Coordinate) float64 {
	var d float64
	if s.topo != nil {
		dist, err := s.topo.Distance(from, goal, s.p)
		if err != nil {
			// Dimension mismatch between from/goal and the topology is a
			// caller bug, not a recoverable runtime condition.
			panic(fmt.Errorf("heuristic: %w", err))
		}
		d = dist
	} else {
		d = directMinkowski(from, goal, s.p)
	}
	return s.weight * d
}

func (s *topologyStrategy) Name() string { return s.name }

func (s *topologyStrategy) Admissible() bool { return s.weight <= 1.0 }

func (s *topologyStrategy) Description() string {
	periodic := "direct"
	if s.topo != nil {
		periodic = "periodic-aware"
	}
	return fmt.Sprintf("%s (weight=%.2f, %s)", s.name, s.weight, periodic)
}

// directMinkowski computes the Lp norm of from-goal with no periodicity
// awareness, used when a strategy has no topology back-reference.
func directMinkowski(from, goal field.Coordinate, p float64) float64 {
	switch {
	case math.IsInf(p, 1):
		var m float64
		for i := range from {
			if d := math.Abs(from[i] - goal[i]); d > m {
				m = d
			}
		}
		return m
	case p == 1:
		var sum float64
		for i := range from {
			sum += math.Abs(from[i] - goal[i])
		}
		return sum
	default:
		var sum float64
		for i := range from {
			d := from[i] - goal[i]
			sum += d * d
		}
		return math.Sqrt(sum)
	}
}

// NewManhattan returns the L1 heuristic, admissible for 4-connected (and
// higher-dimensional axis-only) movement. weight must be >= 1.0; weight
// values above 1.0 trade admissibility for faster, greedier search.
// topo is optional; when non-nil, distance is periodicity-aware.
func NewManhattan(weight float64, topo field.Topology) Strategy {
	if weight < 1.0 {
		panic("heuristic: weight must be >= 1.0 for admissibility")
	}
	return &topologyStrategy{topo: topo, p: 1, weight: weight, name: "manhattan"}
}

// NewEuclidean returns the L2 heuristic, admissible whenever movement in
// any direction is allowed. weight must be >= 1.0.
func NewEuclidean(weight float64, topo field.Topology) Strategy {
	if weight < 1.0 {
		panic("heuristic: weight must be >= 1.0 for admissibility")
	}
	return &topologyStrategy{topo: topo, p: 2, weight: weight, name: "euclidean"}
}

// diagonal is the Chebyshev ("DiagonalHeuristic") estimator: diagCost times
// the L-infinity norm of from-goal. orthoCost is never used in Estimate —
// it exists solely to gate Admissible, exactly as the reference
// DiagonalHeuristic stores but never reads it in calculate_heuristic. It
// does not route through field.Topology: like Octile, it is a fixed
// per-axis cost decomposition, not a general Lp norm.
type diagonal struct {
	diagCost  float64
	orthoCost float64
}

// NewChebyshev returns the Chebyshev ("DiagonalHeuristic") heuristic:
// diagCost * max_i |from[i]-goal[i]|. Admissible iff diagCost >= 1 and
// orthoCost >= 1 (matching DiagonalHeuristic::is_admissible, which checks
// both costs even though only diagCost enters the formula).
func NewChebyshev(diagCost, orthoCost float64) Strategy {
	if diagCost <= 0 || orthoCost <= 0 {
		panic("heuristic: chebyshev costs must be positive")
	}
	return &diagonal{diagCost: diagCost, orthoCost: orthoCost}
}

func (d *diagonal) Estimate(from, goal field.Coordinate) float64 {
	var max float64
	for i := range from {
		if v := math.Abs(from[i] - goal[i]); v > max {
			max = v
		}
	}
	return d.diagCost * max
}

func (d *diagonal) Name() string { return "chebyshev" }

func (d *diagonal) Admissible() bool {
	return d.diagCost >= 1.0 && d.orthoCost >= 1.0
}

func (d *diagonal) Description() string {
	return fmt.Sprintf("chebyshev (diagonal=%.3f, orthogonal=%.3f)", d.diagCost, d.orthoCost)
}

// octile combines diagonal and orthogonal step costs: it is the tight
// admissible heuristic for 8-connected grids with non-unit diagonal cost.
// It does not route through field.Topology since it is a fixed
// diagonal/orthogonal decomposition, not a general Lp norm.
type octile struct {
	diagonalCost   float64
	orthogonalCost float64
}

// NewOctile returns the octile heuristic. diagonalCost and orthogonalCost
// must both be >= their canonical values (sqrt(2) and 1 respectively) for
// admissibility; NewOctile panics if either is non-positive.
func NewOctile(diagonalCost, orthogonalCost float64) Strategy {
	if diagonalCost <= 0 || orthogonalCost <= 0 {
		panic("heuristic: octile costs must be positive")
	}
	return &octile{diagonalCost: diagonalCost, orthogonalCost: orthogonalCost}
}

func (o *octile) Estimate(from, goal field.Coordinate) float64 {
	var sum, max float64
	for i := range from {
		d := math.Abs(from[i] - goal[i])
		sum += d
		if d > max {
			max = d
		}
	}
	return o.diagonalCost*max + o.orthogonalCost*(sum-max)
}

func (o *octile) Name() string { return "octile" }

func (o *octile) Admissible() bool {
	return o.diagonalCost >= math.Sqrt2 && o.orthogonalCost >= 1.0
}

func (o *octile) Description() string {
	return fmt.Sprintf("octile (diagonal=%.3f, orthogonal=%.3f)", o.diagonalCost, o.orthogonalCost)
}

// CombineMode selects how CompositeHeuristic merges its member estimates.
type CombineMode int

const (
	// CombineMax takes the largest estimate (admissible only if every
	// member is admissible; the max of admissible lower bounds is still
	// a lower bound — note this strategy's own Admissible() is
	// conservative and reports false regardless, matching the
	// reference implementation's deliberately cautious stance).
	CombineMax CombineMode = iota
	// CombineMin takes the smallest estimate.
	CombineMin
	// CombineAverage takes the unweighted mean.
	CombineAverage
	// CombineWeighted takes a weighted mean using each member's weight.
	CombineWeighted
)

// Composite merges several Strategy estimates under a single CombineMode.
type Composite struct {
	members []Strategy
	weights []float64
	mode    CombineMode
}

// NewComposite returns an empty Composite in the given combine mode.
func NewComposite(mode CombineMode) *Composite {
	return &Composite{mode: mode}
}

// Add registers a member strategy with an optional weight (used only by
// CombineWeighted).
func (c *Composite) Add(s Strategy, weight float64) {
	c.members = append(c.members, s)
	c.weights = append(c.weights, weight)
}

func (c *Composite) Estimate(from, goal field.Coordinate) float64 {
	if len(c.members) == 0 {
		return 0
	}
	values := make([]float64, len(c.members))
	for i, m := range c.members {
		values[i] = m.Estimate(from, goal)
	}
	switch c.mode {
	case CombineMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	case CombineAverage:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	case CombineWeighted:
		var wsum, vsum float64
		for i, v := range values {
			vsum += v * c.weights[i]
			wsum += c.weights[i]
		}
		if wsum <= 0 {
			return 0
		}
		return vsum / wsum
	default: // CombineMax
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	}
}

func (c *Composite) Name() string {
	mode := [...]string{"max", "min", "average", "weighted"}[c.mode]
	return fmt.Sprintf("composite(%s,%d)", mode, len(c.members))
}

func (c *Composite) Description() string {
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name()
	}
	return fmt.Sprintf("%s of %v", c.Name(), names)
}

// Admissible reports true only for non-CombineMax modes whose every
// member is itself admissible. CombineMax is reported as inadmissible
// regardless of its members, a conservative choice matching the
// reference heuristic's stance (see CombineMax).
func (c *Composite) Admissible() bool {
	if c.mode == CombineMax {
		return false
	}
	for _, m := range c.members {
		if !m.Admissible() {
			return false
		}
	}
	return true
}

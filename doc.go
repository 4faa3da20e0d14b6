// Package gridwave computes scalar cost fields over N-dimensional
// regular grids by propagating a wavefront outward from one or more
// source cells.
//
// Three propagation strategies share a single driver:
//
//	Dijkstra — uniform-cost shortest path
//	A*       — goal-directed shortest path with an admissible heuristic
//	FMM      — Fast Marching Method, a numerical Eikonal solver approximating
//	           continuous distance
//
// Any subset of axes may be periodic (toroidal), and fields can be
// sampled at fractional coordinates via multilinear interpolation over
// the enclosing 2^N hypercube.
//
// Subpackages:
//
//	field/      — Grid, PeriodicGrid, Topology: dense cell storage, neighbors,
//	              distance, interpolation
//	frontier/   — the lazy-decrease-key min-heap the engines share
//	heuristic/  — HeuristicStrategy family for A*
//	propagate/  — SearchEngine driver plus DijkstraEngine, AStarEngine, FMMEngine
//	path/       — parent-chain path reconstruction
//	gridimage/  — PNG obstacle decoding and field visualization
//	gridrand/   — random and maze obstacle generation
//	gridtext/   — plain-text field dumps
//
// A typical session constructs a Grid (possibly periodic), marks
// obstacles, binds one SearchEngine to it, registers sources (and goals,
// for A*), and runs the engine. The engine mutates each cell's cost,
// state, and parent in place; callers then query cells directly or
// interpolate at fractional coordinates.
package gridwave

package propagate_test

import (
	"testing"

	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/propagate"
)

// S1 (Dijkstra, trivial): dims=(3,3), no obstacles, source (0,0), edge_cost 1.
func TestDijkstra_S1_Trivial(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{3, 3})
	if err != nil {
		t.Fatal(err)
	}
	e := propagate.NewDijkstraEngine(g, propagate.WithEdgeCost(1))
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	want := map[[2]int]float64{
		{0, 0}: 0, {1, 0}: 1, {0, 1}: 1,
		{1, 1}: 2, {2, 0}: 2, {0, 2}: 2,
		{2, 1}: 3, {1, 2}: 3,
		{2, 2}: 4,
	}
	for coord, cost := range want {
		idx, _ := g.IndexOf(field.CellCoord{coord[0], coord[1]})
		got := g.CellAt(idx).Cost
		if got != cost {
			t.Fatalf("cost at %v = %v, want %v", coord, got, cost)
		}
	}
}

// S2 (Dijkstra, obstacle): dims=(3,3), obstacles (1,0) and (1,1), source (0,0).
func TestDijkstra_S2_Obstacle(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{3, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetObstacle(field.CellCoord{1, 0}, true); err != nil {
		t.Fatal(err)
	}
	if err := g.SetObstacle(field.CellCoord{1, 1}, true); err != nil {
		t.Fatal(err)
	}

	e := propagate.NewDijkstraEngine(g, propagate.WithEdgeCost(1))
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	idx, _ := g.IndexOf(field.CellCoord{2, 0})
	if got := g.CellAt(idx).Cost; got != 6 {
		t.Fatalf("cost at (2,0) = %v, want 6", got)
	}
}

func TestDijkstra_NoSourcesIsInvalidConfig(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{2, 2})
	e := propagate.NewDijkstraEngine(g)
	if err := e.Run(); err == nil {
		t.Fatal("expected ErrInvalidConfig when no sources registered")
	}
}

func TestDijkstra_ObstacleSourceSkippedSilently(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{2, 2})
	_ = g.SetObstacle(field.CellCoord{0, 0}, true)
	e := propagate.NewDijkstraEngine(g)
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.Processed() != 0 {
		t.Fatalf("expected zero processed cells, got %d", e.Processed())
	}
}

// Invariant 1: after run, no cell remains FRONT.
func TestDijkstra_NoFrontStateSurvives(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{4, 4})
	e := propagate.NewDijkstraEngine(g)
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Len(); i++ {
		if g.CellAt(i).State == field.Front {
			t.Fatalf("cell %d left in FRONT state after run", i)
		}
	}
}

// Invariant 5: idempotence, bit-exact for Dijkstra.
func TestDijkstra_Idempotent(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{5, 5})
	e := propagate.NewDijkstraEngine(g)
	e.AddSource(field.CellCoord{2, 2})

	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	first := make([]float64, g.Len())
	for i := range first {
		first[i] = g.CellAt(i).Cost
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if g.CellAt(i).Cost != first[i] {
			t.Fatalf("idempotence violated at cell %d: %v != %v", i, g.CellAt(i).Cost, first[i])
		}
	}
}

// Reset exposes the SearchEngine lifecycle's reset step directly: after
// calling it, every non-obstacle cell must read back as FAR, independent
// of Run.
func TestDijkstra_PublicReset(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{3, 3})
	e := propagate.NewDijkstraEngine(g)
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.Processed() == 0 {
		t.Fatal("expected Run to process at least one cell")
	}

	e.Reset()
	if e.Processed() != 0 {
		t.Fatalf("Processed() after Reset() = %d, want 0", e.Processed())
	}
	for i := 0; i < g.Len(); i++ {
		if g.CellAt(i).State != field.Far {
			t.Fatalf("cell %d state = %v after Reset(), want FAR", i, g.CellAt(i).State)
		}
	}
}

// Invariant 6: parent-chain consistency.
func TestDijkstra_ParentChainConsistency(t *testing.T) {
	g, _ := field.NewGrid(field.Dimensions{4, 4})
	e := propagate.NewDijkstraEngine(g)
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Len(); i++ {
		cell := g.CellAt(i)
		if cell.State != field.Frozen || cell.Parent == field.NoParent {
			continue
		}
		parent := g.CellAt(cell.Parent)
		if parent.State != field.Frozen || parent.Cost > cell.Cost {
			t.Fatalf("parent chain broken at cell %d: parent state=%v cost=%v, cell cost=%v", i, parent.State, parent.Cost, cell.Cost)
		}
	}
}

// S4 (Periodic Dijkstra): dims=(10,10) periodic both axes, source (0,0).
func TestDijkstra_S4_Periodic(t *testing.T) {
	pg, err := field.NewPeriodicGrid(field.Dimensions{10, 10}, []bool{true, true})
	if err != nil {
		t.Fatal(err)
	}
	e := propagate.NewDijkstraEngine(pg, propagate.WithEdgeCost(1))
	e.AddSource(field.CellCoord{0, 0})
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	idx90, _ := pg.IndexOf(field.CellCoord{9, 0})
	if got := pg.CellAt(idx90).Cost; got != 1 {
		t.Fatalf("cost at (9,0) = %v, want 1 (wraparound)", got)
	}
	idx55, _ := pg.IndexOf(field.CellCoord{5, 5})
	if got := pg.CellAt(idx55).Cost; got != 10 {
		t.Fatalf("cost at (5,5) = %v, want 10", got)
	}
}

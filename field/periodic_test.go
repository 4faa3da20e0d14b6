package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridwave/field"
)

func TestPeriodicGrid_DimensionMismatch(t *testing.T) {
	if _, err := field.NewPeriodicGrid(field.Dimensions{3, 3}, []bool{true}); err == nil {
		t.Fatal("expected ErrDimensionMismatch for periodic flags of wrong length")
	}
}

// S6 (Periodic distance): dims (10,8), both periodic.
// distance((1,1),(9,7),1) = 4; distance((1,1),(9,7),2) = sqrt(8).
func TestPeriodicGrid_Distance_S6(t *testing.T) {
	pg, err := field.NewPeriodicGrid(field.Dimensions{10, 8}, []bool{true, true})
	if err != nil {
		t.Fatal(err)
	}
	a := field.Coordinate{1, 1}
	b := field.Coordinate{9, 7}
	l1, err := pg.Distance(a, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if l1 != 4 {
		t.Fatalf("L1 periodic distance = %v, want 4", l1)
	}
	l2, err := pg.Distance(a, b, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l2-math.Sqrt(8)) > 1e-9 {
		t.Fatalf("L2 periodic distance = %v, want sqrt(8)", l2)
	}
}

func TestPeriodicGrid_DistanceMixedAxes(t *testing.T) {
	// axis 0 periodic, axis 1 not: periodic axis wraps, non-periodic doesn't.
	pg, err := field.NewPeriodicGrid(field.Dimensions{10, 10}, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	d, _ := pg.Distance(field.Coordinate{1, 0}, field.Coordinate{9, 0}, 1)
	if d != 2 { // wraparound: min(8, 10-8)=2
		t.Fatalf("periodic axis distance = %v, want 2", d)
	}
	d2, _ := pg.Distance(field.Coordinate{0, 1}, field.Coordinate{0, 9}, 1)
	if d2 != 8 { // non-periodic axis: direct distance only
		t.Fatalf("non-periodic axis distance = %v, want 8", d2)
	}
}

func TestPeriodicGrid_NeighborsWraparound(t *testing.T) {
	pg, err := field.NewPeriodicGrid(field.Dimensions{10, 10}, []bool{true, true})
	if err != nil {
		t.Fatal(err)
	}
	origin, _ := pg.IndexOf(field.CellCoord{0, 0})
	ns := pg.Neighbors(origin)
	if len(ns) != 4 {
		t.Fatalf("periodic interior cell should have 4 neighbors, got %d", len(ns))
	}
	wantCoord := field.CellCoord{9, 0}
	wantIdx, _ := pg.IndexOf(wantCoord)
	found := false
	for _, n := range ns {
		if n == wantIdx {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected wraparound neighbor %v among %v", wantCoord, ns)
	}
}

func TestPeriodicGrid_InBoundsAlwaysTrueOnPeriodicAxis(t *testing.T) {
	pg, err := field.NewPeriodicGrid(field.Dimensions{5, 5}, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	if !pg.InBounds(field.Coordinate{123.4, 2}) {
		t.Fatal("periodic axis should always be in bounds")
	}
	if pg.InBounds(field.Coordinate{1, 123.4}) {
		t.Fatal("non-periodic axis should reject out-of-range coordinate")
	}
}

func TestPeriodicGrid_InterpolateWraparound(t *testing.T) {
	pg, err := field.NewPeriodicGrid(field.Dimensions{4, 4}, []bool{true, true})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []field.CellCoord{{3, 0}, {0, 0}, {3, 1}, {0, 1}} {
		idx, _ := pg.IndexOf(c)
		cell := pg.CellAt(idx)
		cell.Cost = 2
		cell.State = field.Frozen
	}
	got := pg.Interpolate(field.Coordinate{3.5, 0.5})
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("wraparound interpolation = %v, want 2", got)
	}
}

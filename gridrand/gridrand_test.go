package gridrand_test

import (
	"testing"

	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/gridrand"
)

func TestNewRandomGrid_DeterministicWithFixedSeed(t *testing.T) {
	g1, err := gridrand.NewRandomGrid(field.Dimensions{10, 10}, 0.3, 42)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := gridrand.NewRandomGrid(field.Dimensions{10, 10}, 0.3, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g1.Len(); i++ {
		if g1.CellAt(i).Obstacle != g2.CellAt(i).Obstacle {
			t.Fatalf("same seed should produce identical layouts, diverged at cell %d", i)
		}
	}
}

func TestNewRandomGrid_RejectsInvalidProbability(t *testing.T) {
	if _, err := gridrand.NewRandomGrid(field.Dimensions{2, 2}, 1.5, 1); err == nil {
		t.Fatal("expected error for probability > 1")
	}
	if _, err := gridrand.NewRandomGrid(field.Dimensions{2, 2}, -0.1, 1); err == nil {
		t.Fatal("expected error for negative probability")
	}
}

func TestNewRandomGrid_ZeroProbabilityIsObstacleFree(t *testing.T) {
	g, err := gridrand.NewRandomGrid(field.Dimensions{5, 5}, 0, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Len(); i++ {
		if g.CellAt(i).Obstacle {
			t.Fatalf("expected no obstacles at probability 0, found one at cell %d", i)
		}
	}
}

func TestNewMazeGrid_BordersFree(t *testing.T) {
	g, err := gridrand.NewMazeGrid(field.Dimensions{10, 10}, 99)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 10; x++ {
		cell, _ := g.Get(field.CellCoord{x, 0})
		if cell.Obstacle {
			t.Fatalf("border cell (%d,0) should be free", x)
		}
	}
}

func TestNewPeriodicMazeGrid_AllocatesFullGrid(t *testing.T) {
	pg, err := gridrand.NewPeriodicMazeGrid(field.Dimensions{10, 10}, []bool{true, true}, 99)
	if err != nil {
		t.Fatal(err)
	}
	if pg.Len() != 100 {
		t.Fatalf("unexpected grid size %d", pg.Len())
	}
}

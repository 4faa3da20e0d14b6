package field_test

import (
	"testing"

	"github.com/katalvlaran/gridwave/field"
)

func TestComponents_SplitByWall(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{5, 3})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		if err := g.SetObstacle(field.CellCoord{2, y}, true); err != nil {
			t.Fatal(err)
		}
	}

	comps := field.Components(g)
	if len(comps) != 2 {
		t.Fatalf("expected 2 components split by the wall, got %d", len(comps))
	}
}

func TestSameComponent_AcrossWallIsFalse(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{5, 3})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		if err := g.SetObstacle(field.CellCoord{2, y}, true); err != nil {
			t.Fatal(err)
		}
	}

	if field.SameComponent(g, field.CellCoord{0, 0}, field.CellCoord{4, 0}) {
		t.Fatal("cells separated by a full wall should not be in the same component")
	}
	if !field.SameComponent(g, field.CellCoord{0, 0}, field.CellCoord{1, 2}) {
		t.Fatal("cells on the same side of the wall should be in the same component")
	}
}

func TestSameComponent_ObstacleIsFalse(t *testing.T) {
	g, err := field.NewGrid(field.Dimensions{3, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetObstacle(field.CellCoord{1, 1}, true); err != nil {
		t.Fatal(err)
	}
	if field.SameComponent(g, field.CellCoord{1, 1}, field.CellCoord{0, 0}) {
		t.Fatal("an obstacle cell cannot be in any component")
	}
}

package ability

import (
	"math"
	"testing"
)

func TestNewQuadGrid_SpansPrior(t *testing.T) {
	g := newQuadGrid(0.5, 1.0, 2.0, 40)

	if len(g.points) != 40 || len(g.density) != 40 {
		t.Fatalf("grid size = %d/%d, want 40/40", len(g.points), len(g.density))
	}
	if g.points[0] != -1.5 {
		t.Errorf("first point = %f, want mean-2sd = -1.5", g.points[0])
	}
	if math.Abs(g.points[39]-2.5) > 1e-9 {
		t.Errorf("last point = %f, want mean+2sd = 2.5", g.points[39])
	}

	// Density peaks at the grid point nearest the mean.
	peak := 0
	for i := range g.density {
		if g.density[i] > g.density[peak] {
			peak = i
		}
	}
	if math.Abs(g.points[peak]-0.5) > 0.1 {
		t.Errorf("density peak at %f, want near mean 0.5", g.points[peak])
	}
}

func TestGridCache_ReusesGrids(t *testing.T) {
	c := NewGridCache(4)

	a := c.get(0, 1, 2, 40)
	b := c.get(0, 1, 2, 40)
	if a != b {
		t.Error("identical parameters should return the cached grid")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestGridCache_EvictsAtCapacity(t *testing.T) {
	c := NewGridCache(2)

	c.get(0, 1, 2, 40)
	c.get(1, 1, 2, 40)
	c.get(2, 1, 2, 40)

	if c.Len() > 2 {
		t.Errorf("Len = %d, want at most 2 after eviction", c.Len())
	}
}

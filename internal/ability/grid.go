package ability

import (
	"math"
	"sync"
)

// quadGrid is a fixed quadrature grid over the ability scale with the
// Gaussian prior density evaluated at each point.
type quadGrid struct {
	points  []float64
	density []float64
}

// newQuadGrid builds a grid of n evenly spaced points spanning
// mean ± spread·sd, with prior density weights.
func newQuadGrid(mean, sd, spread float64, n int) *quadGrid {
	g := &quadGrid{
		points:  make([]float64, n),
		density: make([]float64, n),
	}
	lo := mean - spread*sd
	hi := mean + spread*sd
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		g.points[i] = x
		z := (x - mean) / sd
		g.density[i] = math.Exp(-0.5*z*z) / (sd * math.Sqrt(2*math.Pi))
	}
	return g
}

type gridKey struct {
	mean, sd, spread float64
	n                int
}

// GridCache caches quadrature grids by their defining parameters. It is an
// explicit handle passed into the estimator rather than process-wide state,
// and holds at most maxEntries grids: when full, an arbitrary entry is
// evicted (grids are cheap to rebuild, the cache only avoids rebuilding the
// common case of one grid per prior configuration).
type GridCache struct {
	mu         sync.Mutex
	maxEntries int
	grids      map[gridKey]*quadGrid
}

// DefaultGridCacheSize bounds the number of cached grids. One grid per
// (prior, dimension) configuration is typical, so a handful suffices.
const DefaultGridCacheSize = 16

// NewGridCache creates a cache holding at most maxEntries grids.
// maxEntries <= 0 falls back to DefaultGridCacheSize.
func NewGridCache(maxEntries int) *GridCache {
	if maxEntries <= 0 {
		maxEntries = DefaultGridCacheSize
	}
	return &GridCache{
		maxEntries: maxEntries,
		grids:      make(map[gridKey]*quadGrid),
	}
}

// get returns the grid for the given parameters, building it on first use.
func (c *GridCache) get(mean, sd, spread float64, n int) *quadGrid {
	key := gridKey{mean: mean, sd: sd, spread: spread, n: n}

	c.mu.Lock()
	defer c.mu.Unlock()

	if g, ok := c.grids[key]; ok {
		return g
	}
	if len(c.grids) >= c.maxEntries {
		for k := range c.grids {
			delete(c.grids, k)
			break
		}
	}
	g := newQuadGrid(mean, sd, spread, n)
	c.grids[key] = g
	return g
}

// Len returns the number of cached grids.
func (c *GridCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.grids)
}

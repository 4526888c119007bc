package projection

import (
	"slices"
)

// Cache memoizes a sorted projection of an unordered snapshot.
// The zero value is ready to use and holds no valid projection.
type Cache[E any] struct {
	sorted []E
	valid  bool
}

// Invalidate discards the memoized projection.
// The next Project call recomputes it from a fresh snapshot.
func (c *Cache[E]) Invalidate() {
	c.sorted = nil
	c.valid = false
}

// Project returns the memoized projection, computing it on first use after
// an invalidation. snapshot must return a slice the cache may take ownership
// of; cmp orders it. The sort is stable, so elements that compare as equal
// keep their snapshot order.
//
// The returned slice must not be mutated by the caller. Project never
// mutates a previously returned slice: a recomputation builds a new one, so
// holders of an older projection keep a consistent view.
func (c *Cache[E]) Project(snapshot func() []E, cmp func(a, b E) int) []E {
	if !c.valid {
		sorted := snapshot()
		slices.SortStableFunc(sorted, cmp)
		c.sorted = sorted
		c.valid = true
	}
	return c.sorted
}

// Valid reports whether a memoized projection is present.
func (c *Cache[E]) Valid() bool {
	return c.valid
}

// Package catalog builds the container catalog: a read-only mapping from a
// loot container identifier to the shape of its slot grid.
package catalog

import (
	"math"
	"sort"

	"github.com/specialistvlad/lootgridgo/internal/policy"
)

// Shape is the grid of a loot container. Slots is always derived from the
// grid and never stored.
type Shape struct {
	Rows    int
	Columns int
}

// Slots returns the total number of slots in the grid.
func (s Shape) Slots() int {
	return s.Rows * s.Columns
}

// Catalog maps container identifiers to shapes. It is populated only by this
// package and read-only for everyone else.
type Catalog struct {
	shapes map[string]Shape
}

// New returns a catalog seeded with a copy of the given defaults.
func New(defaults map[string]policy.Shape) *Catalog {
	c := &Catalog{shapes: make(map[string]Shape, len(defaults))}
	for id, s := range defaults {
		c.put(id, Shape{Rows: s.Rows, Columns: s.Columns})
	}
	return c
}

// Lookup returns the shape registered for id. Missing ids are not inserted.
func (c *Catalog) Lookup(id string) (Shape, bool) {
	s, ok := c.shapes[id]
	return s, ok
}

// Len reports the number of known containers.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// IDs returns every known identifier in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.shapes))
	for id := range c.shapes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// put rejects empty ids, non-positive grids and grids whose slot count
// does not fit in an int.
func (c *Catalog) put(id string, s Shape) {
	if id == "" || s.Rows <= 0 || s.Columns <= 0 {
		return
	}
	if s.Rows > math.MaxInt/s.Columns {
		return
	}
	c.shapes[id] = s
}

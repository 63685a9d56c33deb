package board

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CorridorSet is a dense membership bitmap over a width×height grid. The bit
// for (x,y) lives at index x + width*y.
type CorridorSet struct {
	width  int
	height int
	bits   *bitset.BitSet
}

// NewCorridorSet creates an empty set covering a width×height grid.
//
// Precondition: width and height must be >= 0.
func NewCorridorSet(width, height int) *CorridorSet {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("board.NewCorridorSet: negative size %dx%d", width, height))
	}
	return &CorridorSet{
		width:  width,
		height: height,
		bits:   bitset.New(uint(width * height)),
	}
}

// Width returns the grid width the set was created for.
func (c *CorridorSet) Width() int { return c.width }

// Height returns the grid height the set was created for.
func (c *CorridorSet) Height() int { return c.height }

// InBounds reports whether p lies inside the grid.
func (c *CorridorSet) InBounds(p Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Add marks p as a corridor cell.
//
// Precondition: p must be in bounds.
func (c *CorridorSet) Add(p Point) {
	if !c.InBounds(p) {
		panic(fmt.Sprintf("board.CorridorSet.Add: %s outside %dx%d grid", p, c.width, c.height))
	}
	c.bits.Set(c.index(p))
}

// Has reports whether p is a corridor cell. Out-of-range points are never
// corridors.
func (c *CorridorSet) Has(p Point) bool {
	if !c.InBounds(p) {
		return false
	}
	return c.bits.Test(c.index(p))
}

// Len returns the number of corridor cells.
func (c *CorridorSet) Len() int {
	return int(c.bits.Count())
}

// Points returns every corridor cell in row-major order.
func (c *CorridorSet) Points() []Point {
	out := make([]Point, 0, c.Len())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, Point{X: int(i) % c.width, Y: int(i) / c.width})
	}
	return out
}

func (c *CorridorSet) index(p Point) uint {
	return uint(p.X + c.width*p.Y)
}

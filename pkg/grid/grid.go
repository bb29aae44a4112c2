package grid

import (
	"fmt"

	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/tile"
)

// OutOfRangeError is returned by Grid.At when the requested coordinate
// falls outside [0,Width) x [0,Height). It is a programming error: callers
// are expected to stay within bounds, and this type exists so the caller can
// distinguish it from other failures.
type OutOfRangeError struct {
	X, Y, Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("grid: tile (%d,%d) out of range [0,%d) x [0,%d)", e.X, e.Y, e.Width, e.Height)
}

// Grid is the width x height tile arena. It is the single canonical owner
// of every Tile; all neighbor queries and pipeline stages mutate tiles
// through it.
type Grid struct {
	Width, Height int
	tiles         []tile.Tile
}

// New allocates a width x height grid. Every tile starts as a Wall with no
// region, matching the state Fill(Wall) would produce; New and Fill are
// kept separate so tests can construct a grid and fill it in a distinct
// step, mirroring the pipeline's own fill stage.
func New(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.tiles = make([]tile.Tile, width*height)
	g.Fill(tile.Wall)
	return g
}

// Fill resets every tile in the grid to the given type with no region.
func (g *Grid) Fill(t tile.Type) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.tiles[g.index(x, y)] = tile.New(x, y, t)
		}
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether (x,y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the canonical tile at (x,y), or an *OutOfRangeError
// if the coordinate is outside the grid.
func (g *Grid) At(x, y int) (*tile.Tile, error) {
	if !g.InBounds(x, y) {
		return nil, &OutOfRangeError{X: x, Y: y, Width: g.Width, Height: g.Height}
	}
	return &g.tiles[g.index(x, y)], nil
}

// MustAt is like At but panics on an out-of-range coordinate. It exists for
// internal pipeline code that has already bounds-checked the coordinate and
// would treat an error here as a programming bug.
func (g *Grid) MustAt(x, y int) *tile.Tile {
	t, err := g.At(x, y)
	if err != nil {
		panic(err)
	}
	return t
}

// Neighbor returns the tile adjacent to (x,y) in direction d, and whether
// that neighbor is in-bounds. A direction is absent (ok == false) iff the
// neighbor would fall outside the grid.
func (g *Grid) Neighbor(x, y int, d coord.Direction) (t *tile.Tile, ok bool) {
	off := d.Offset()
	nx, ny := x+off.X, y+off.Y
	if !g.InBounds(nx, ny) {
		return nil, false
	}
	return &g.tiles[g.index(nx, ny)], true
}

// Neighbors returns the in-bounds subset of neighbors of (x,y) along the
// given directions, in the same order as dirs.
func (g *Grid) Neighbors(x, y int, dirs []coord.Direction) []*tile.Tile {
	result := make([]*tile.Tile, 0, len(dirs))
	for _, d := range dirs {
		if t, ok := g.Neighbor(x, y, d); ok {
			result = append(result, t)
		}
	}
	return result
}

// CardinalNeighbors returns the in-bounds cardinal (n,e,s,w) neighbors of
// (x,y).
func (g *Grid) CardinalNeighbors(x, y int) []*tile.Tile {
	return g.Neighbors(x, y, coord.Cardinal)
}

// IntercardinalNeighbors returns the in-bounds eight-way neighbors of (x,y).
func (g *Grid) IntercardinalNeighbors(x, y int) []*tile.Tile {
	return g.Neighbors(x, y, coord.Intercardinal)
}

// Each calls fn for every tile in the grid in row-major order.
func (g *Grid) Each(fn func(t *tile.Tile)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}

package dungeon

import (
	"github.com/gridforge/dungeon/pkg/grid"
	"github.com/gridforge/dungeon/pkg/room"
	"github.com/gridforge/dungeon/pkg/tile"
)

// Results is the immutable output of a Build call: the generated grid, the
// list of placed rooms, and the exact seed the PRNG stream used (including
// any auto-generated slug), so a caller can reproduce the run.
type Results struct {
	grid  *grid.Grid
	Rooms []room.Room
	Seed  string
}

// Width returns the generated grid's width.
func (r *Results) Width() int {
	return r.grid.Width
}

// Height returns the generated grid's height.
func (r *Results) Height() int {
	return r.grid.Height
}

// GetTile returns the tile at (x,y), or an *OutOfRangeTileError if the
// coordinate falls outside the generated grid.
func (r *Results) GetTile(x, y int) (*tile.Tile, error) {
	return r.grid.At(x, y)
}

// Each calls fn for every tile of the result grid in row-major order.
func (r *Results) Each(fn func(t *tile.Tile)) {
	r.grid.Each(fn)
}

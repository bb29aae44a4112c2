// Package room implements the axis-aligned rectangle type placed by the
// generator's room-placement stage, along with the overlap/touch tests that
// enforce the one-tile wall gap between rooms (I5).
package room

import "github.com/gridforge/dungeon/pkg/coord"

// Room is an axis-aligned rectangle on the grid. X and Y are the top-left
// corner; Width and Height are the room's full floor extent. The room
// placement stage chooses X, Y, Width, and Height so that at least one wall
// tile surrounds the rectangle on every side; Room itself carries no
// separate interior inset.
type Room struct {
	X, Y, Width, Height int
}

// Right returns the exclusive right bound (X + Width).
func (r Room) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom bound (Y + Height).
func (r Room) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether p falls within the room's floor rectangle.
func (r Room) Contains(p coord.Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Overlaps reports whether the two rectangles share any tile.
func (r Room) Overlaps(o Room) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Touches reports whether the two rooms are close enough that no one-tile
// wall gap separates them: each rectangle inflated by 1 tile on every side
// intersects the other (I5).
func (r Room) Touches(o Room) bool {
	inflated := Room{X: r.X - 1, Y: r.Y - 1, Width: r.Width + 2, Height: r.Height + 2}
	return inflated.Overlaps(o)
}

package dungeon

import (
	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/tile"
)

// removeDeadEnds repeatedly sweeps the grid, reverting to wall any non-wall
// tile outside every room that has at most one non-wall cardinal neighbor,
// until a full pass makes no changes. Termination is guaranteed because
// each pass can only add walls, bounded by the tile count.
func (g *Generator) removeDeadEnds() {
	for {
		changed := false

		g.grid.Each(func(t *tile.Tile) {
			if t.Type == tile.Wall {
				return
			}
			if g.inRoom(t.X, t.Y) {
				return
			}

			openCount := 0
			for _, n := range g.grid.CardinalNeighbors(t.X, t.Y) {
				if n.Type != tile.Wall {
					openCount++
				}
			}
			if openCount > 1 {
				return
			}

			t.Type = tile.Wall
			t.ClearRegion()
			changed = true
		})

		if !changed {
			return
		}
	}
}

func (g *Generator) inRoom(x, y int) bool {
	p := coord.Point{X: x, Y: y}
	for _, r := range g.rooms {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

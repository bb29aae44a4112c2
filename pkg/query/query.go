package query

import (
	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/grid"
	"github.com/gridforge/dungeon/pkg/tile"
)

// Filter is an immutable neighbor-traversal descriptor. Each builder method
// returns a new Filter; nothing is mutated in place, so a Filter can be
// safely reused as the base for several different queries.
type Filter struct {
	grid   *grid.Grid
	start  coord.Point
	dirs   []coord.Direction
	levels int // BFS radius; 0 means unlimited

	typeFilter    *tile.Type
	notTypeFilter *tile.Type
	regionFilter  *int
	notRegion     *int
	uniqueAttr    string
}

// From begins a cardinal, level-1 query rooted at start. Use Intercardinal,
// Levels, Type, NotType, Region, NotRegion, Unique, and Start to refine it
// before calling Get.
func From(g *grid.Grid, start coord.Point) Filter {
	return Filter{grid: g, start: start, dirs: coord.Cardinal, levels: 1}
}

// Cardinal restricts traversal to the four cardinal directions (the
// default).
func (f Filter) Cardinal() Filter {
	f.dirs = coord.Cardinal
	return f
}

// Intercardinal allows traversal across all eight compass directions.
func (f Filter) Intercardinal() Filter {
	f.dirs = coord.Intercardinal
	return f
}

// Levels sets the BFS radius. k == 0 means unlimited (flood across matching
// tiles).
func (f Filter) Levels(k int) Filter {
	f.levels = k
	return f
}

// Type keeps only tiles whose type equals t.
func (f Filter) Type(t tile.Type) Filter {
	f.typeFilter = &t
	return f
}

// NotType keeps only tiles whose type differs from t.
func (f Filter) NotType(t tile.Type) Filter {
	f.notTypeFilter = &t
	return f
}

// Region keeps only tiles whose region equals r.
func (f Filter) Region(r int) Filter {
	f.regionFilter = &r
	return f
}

// NotRegion keeps only tiles whose region differs from r.
func (f Filter) NotRegion(r int) Filter {
	f.notRegion = &r
	return f
}

// Unique collapses the result to at most one tile per distinct value of
// attr, keeping the first (closest) match encountered. The only recognized
// attr is "region"; any other value is a no-op, matching a descriptor that
// simply has nothing to deduplicate by.
func (f Filter) Unique(attr string) Filter {
	f.uniqueAttr = attr
	return f
}

// Start overrides the root tile the traversal begins from.
func (f Filter) Start(p coord.Point) Filter {
	f.start = p
	return f
}

func (f Filter) matches(t *tile.Tile) bool {
	if f.typeFilter != nil && t.Type != *f.typeFilter {
		return false
	}
	if f.notTypeFilter != nil && t.Type == *f.notTypeFilter {
		return false
	}
	if f.regionFilter != nil && t.Region != *f.regionFilter {
		return false
	}
	if f.notRegion != nil && t.Region == *f.notRegion {
		return false
	}
	return true
}

type visitKey struct{ x, y int }

// Get materializes the traversal: starting at the root tile's neighbors,
// it walks the grid along the configured directions up to Levels deep (or
// without limit when Levels is 0, continuing only through matching tiles),
// collecting each distinct tile that
// matches every configured predicate. The start tile itself is never
// included, and each tile appears at most once.
func (f Filter) Get() []*tile.Tile {
	type queued struct {
		x, y, depth int
	}

	visited := map[visitKey]bool{{f.start.X, f.start.Y}: true}
	queue := []queued{{f.start.X, f.start.Y, 0}}

	var matched []*tile.Tile
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range f.dirs {
			off := d.Offset()
			nx, ny := cur.x+off.X, cur.y+off.Y
			key := visitKey{nx, ny}
			if visited[key] {
				continue
			}
			t, err := f.grid.At(nx, ny)
			if err != nil {
				continue
			}
			visited[key] = true

			depth := cur.depth + 1
			if f.matches(t) {
				matched = append(matched, t)
			}
			if f.levels == 0 {
				if f.matches(t) {
					queue = append(queue, queued{nx, ny, depth})
				}
			} else if depth < f.levels {
				queue = append(queue, queued{nx, ny, depth})
			}
		}
	}

	return f.dedupe(matched)
}

func (f Filter) dedupe(tiles []*tile.Tile) []*tile.Tile {
	if f.uniqueAttr != "region" {
		return tiles
	}
	seen := map[int]bool{}
	result := make([]*tile.Tile, 0, len(tiles))
	for _, t := range tiles {
		if seen[t.Region] {
			continue
		}
		seen[t.Region] = true
		result = append(result, t)
	}
	return result
}

package dungeon

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/query"
	"github.com/gridforge/dungeon/pkg/tile"
)

// connectRegions places doors so that every region becomes reachable from
// its neighbors. It buckets connector candidates by the pair of region ids
// they border, then places between 1 and MaxDoors doors per bucket,
// guaranteeing at least one via a fallback.
func (g *Generator) connectRegions() {
	buckets := g.findConnectorBuckets()

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		g.connectBucket(key, buckets[key])
	}
}

// findConnectorBuckets scans every wall tile with no region and groups the
// ones bordering at least two distinct regions by the sorted-join key of
// the region-id pair.
func (g *Generator) findConnectorBuckets() map[string][]coord.Point {
	buckets := map[string][]coord.Point{}

	g.grid.Each(func(t *tile.Tile) {
		if t.Type != tile.Wall {
			return
		}
		p := coord.Point{X: t.X, Y: t.Y}
		neighbors := query.From(g.grid, p).Cardinal().Levels(1).
			NotRegion(tile.NoRegion).Unique("region").Get()
		if len(neighbors) < 2 {
			return
		}

		ids := make([]int, len(neighbors))
		for i, n := range neighbors {
			ids[i] = n.Region
		}
		sort.Ints(ids)

		key := bucketKey(ids)
		buckets[key] = append(buckets[key], p)
	})

	return buckets
}

func bucketKey(ids []int) string {
	key := ""
	for i, id := range ids {
		if i > 0 {
			key += "-"
		}
		key += fmt.Sprintf("%d", id)
	}
	return key
}

// connectBucket places doors for a single region-pair bucket, following the
// accept/fallback policy: a connector is accepted if it is not a corner,
// has no adjacent door, and is not at the end of a corridor; acceptance
// still rolls a 1/DoorChance chance. If no door is placed by chance, one is
// forced from the "failed by chance" list, or the whole bucket if that list
// is empty.
func (g *Generator) connectBucket(key string, candidates []coord.Point) {
	if len(candidates) == 0 {
		return
	}

	target := g.rng.IntBetween(1, g.opts.MaxDoors)
	placed := 0
	var failedByChance []coord.Point

	for attempt := 0; attempt < g.opts.DoorChance && placed < target; attempt++ {
		p := candidates[g.rng.IntBetween(0, len(candidates)-1)]
		t := g.grid.MustAt(p.X, p.Y)
		if t.Type == tile.Door {
			continue
		}
		if g.isCorner(p) || g.hasAdjacentDoor(p) || g.isAtCorridorEnd(p) {
			continue
		}

		if g.rng.OneIn(g.opts.DoorChance) {
			t.Type = tile.Door
			placed++
		} else {
			failedByChance = append(failedByChance, p)
		}
	}

	if placed > 0 {
		return
	}

	pool := failedByChance
	if len(pool) == 0 {
		pool = candidates
	}
	p := pool[g.rng.IntBetween(0, len(pool)-1)]
	g.grid.MustAt(p.X, p.Y).Type = tile.Door

	if len(pool) == 0 {
		warn := &GenerationWarning{
			Message: "connector bucket produced no door even after fallback",
			Fields:  map[string]any{"bucket": key},
		}
		g.log.WithFields(logrus.Fields(warn.Fields)).Warn(warn.Error())
	}
}

// isCorner reports whether exactly one of the four diagonal quadrants
// around p has both its cardinal neighbors (e.g. north and east) floored.
func (g *Generator) isCorner(p coord.Point) bool {
	quadrants := [4][2]coord.Direction{
		{coord.North, coord.East},
		{coord.East, coord.South},
		{coord.South, coord.West},
		{coord.West, coord.North},
	}

	count := 0
	for _, q := range quadrants {
		a, okA := g.grid.Neighbor(p.X, p.Y, q[0])
		b, okB := g.grid.Neighbor(p.X, p.Y, q[1])
		if okA && okB && a.Type == tile.Floor && b.Type == tile.Floor {
			count++
		}
	}
	return count == 1
}

// hasAdjacentDoor reports whether any of the 8 intercardinal neighbors of p
// is already a door.
func (g *Generator) hasAdjacentDoor(p coord.Point) bool {
	for _, n := range g.grid.IntercardinalNeighbors(p.X, p.Y) {
		if n.Type == tile.Door {
			return true
		}
	}
	return false
}

// isAtCorridorEnd reports whether p has exactly one cardinally adjacent
// floor tile, meaning a door here would sit at a corridor's dead end.
func (g *Generator) isAtCorridorEnd(p coord.Point) bool {
	floors := 0
	for _, n := range g.grid.CardinalNeighbors(p.X, p.Y) {
		if n.Type == tile.Floor {
			floors++
		}
	}
	return floors == 1
}

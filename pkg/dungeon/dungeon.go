package dungeon

import (
	"github.com/sirupsen/logrus"

	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/grid"
	"github.com/gridforge/dungeon/pkg/region"
	"github.com/gridforge/dungeon/pkg/rng"
	"github.com/gridforge/dungeon/pkg/room"
	"github.com/gridforge/dungeon/pkg/tile"
)

// maxGrowthSteps bounds a single growMaze call. Outer iteration over every
// odd lattice cell guarantees full coverage even if one call is truncated.
const maxGrowthSteps = 500

// Generator owns the mutable state of a single Build call: the grid, the
// seeded PRNG, and the region allocator. It must not be reused across
// goroutines while a Build is in flight.
type Generator struct {
	grid   *grid.Grid
	rng    *rng.RNG
	region *region.Registry
	opts   Options
	rooms  []room.Room
	log    *logrus.Logger
}

// Build runs the full generation pipeline for req and returns the result.
// It validates the Options, then the dimensions (returning
// *InvalidDimensionError without allocating anything), normalizes width/height to odd values scaled by
// Options.Multiplier, then runs fill, room placement, maze growth, region
// connection, and (if enabled) dead-end removal in that order.
func Build(req Request) (*Results, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	width, height, err := normalizeDimensions(req.Width, req.Height, req.Options.Multiplier)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		grid:   grid.New(width, height),
		rng:    rng.New(req.Seed),
		region: region.NewRegistry(),
		opts:   req.Options,
		log:    logrus.New(),
	}

	g.log.WithFields(logrus.Fields{
		"seed":   g.rng.Seed(),
		"width":  width,
		"height": height,
	}).Info("starting dungeon generation")

	g.fill()
	g.addRooms()
	g.growMazes()
	g.connectRegions()
	if g.opts.RemoveDeadEnds {
		g.removeDeadEnds()
	}

	return &Results{
		grid:  g.grid,
		Rooms: g.rooms,
		Seed:  g.rng.Seed(),
	}, nil
}

// normalizeDimensions rejects width/height below 5, rounds even dimensions
// up to the next odd value, and scales both by multiplier (which is
// coerced to at least 1).
func normalizeDimensions(width, height, multiplier int) (int, int, error) {
	if width < 5 {
		return 0, 0, &InvalidDimensionError{Dimension: "width", Value: width}
	}
	if height < 5 {
		return 0, 0, &InvalidDimensionError{Dimension: "height", Value: height}
	}
	if multiplier < 1 {
		multiplier = 1
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return width * multiplier, height * multiplier, nil
}

// fill resets every tile in the grid to Wall with no region, the pipeline's
// starting state.
func (g *Generator) fill() {
	g.grid.Fill(tile.Wall)
}

// addRooms attempts opts.RoomTries room placements, each consuming the same
// fixed sequence of PRNG draws (size, rectangularity, axis bit, x, y)
// whether or not the candidate is ultimately accepted.
func (g *Generator) addRooms() {
	for i := 0; i < g.opts.RoomTries; i++ {
		size := g.rng.IntBetween(1, 3+g.opts.RoomExtraSize)*2 + 1
		rectangularity := g.rng.IntBetween(0, 1+size/2) * 2

		width, height := size, size
		if g.rng.OneIn(2) {
			width += rectangularity
		} else {
			height += rectangularity
		}

		width = clampRoomDimension(width, g.grid.Width, g.opts.Multiplier)
		height = clampRoomDimension(height, g.grid.Height, g.opts.Multiplier)

		x := g.rng.IntBetween(0, (g.grid.Width-width)/2)*2 + 1
		y := g.rng.IntBetween(0, (g.grid.Height-height)/2)*2 + 1

		if x+width >= g.grid.Width {
			x = max(1, g.grid.Width-width-1)
		}
		if y+height >= g.grid.Height {
			y = max(1, g.grid.Height-height-1)
		}

		candidate := room.Room{X: x, Y: y, Width: width, Height: height}

		overlapsExisting := false
		for _, existing := range g.rooms {
			if candidate.Touches(existing) {
				overlapsExisting = true
				break
			}
		}
		if overlapsExisting {
			continue
		}

		g.carveRoom(candidate)
		g.rooms = append(g.rooms, candidate)
	}
}

// clampRoomDimension applies the outer room-size limit: stageDim -
// 4*multiplier, further capped at ceil(stageDim*0.5) once stageDim exceeds
// 10.
func clampRoomDimension(size, stageDim, multiplier int) int {
	outer := stageDim - 4*multiplier
	if stageDim > 10 {
		half := (stageDim + 1) / 2
		if half < outer {
			outer = half
		}
	}
	if size > outer {
		return outer
	}
	return size
}

// carveRoom starts a new room region and floors the whole of r's rectangle,
// tagging it with that region. r is itself the floor rectangle (its origin
// and size are chosen so that a single wall ring surrounds it); there is no
// separate interior inset.
func (g *Generator) carveRoom(r room.Room) {
	reg := g.region.Start(tile.RegionRoom)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			t := g.grid.MustAt(x, y)
			t.Type = tile.Floor
			t.SetRegion(reg.ID, tile.RegionRoom)
		}
	}
}

// growMazes runs growMaze over every odd-coordinate lattice cell, filling
// every uncarved pocket of the grid with a winding corridor region.
func (g *Generator) growMazes() {
	for y := 1; y < g.grid.Height; y += 2 {
		for x := 1; x < g.grid.Width; x += 2 {
			start := g.grid.MustAt(x, y)
			if start.Type == tile.Floor {
				continue
			}
			g.growMaze(x, y)
		}
	}
}

// growMaze grows a single corridor region outward from (startX, startY)
// using a growing-tree algorithm biased by WindingPercent. It aborts
// without allocating a region if the start cell is already adjacent to
// floor, preventing double-carving next to rooms.
func (g *Generator) growMaze(startX, startY int) {
	for _, n := range g.grid.CardinalNeighbors(startX, startY) {
		if n.Type == tile.Floor {
			return
		}
	}

	reg := g.region.Start(tile.RegionCorridor)
	g.carveCorridorTile(startX, startY, reg.ID)

	stack := []coord.Point{{X: startX, Y: startY}}
	lastDir := -1

	for step := 0; len(stack) > 0 && step < maxGrowthSteps; step++ {
		cur := stack[len(stack)-1]

		var candidates []int
		for i, d := range coord.Cardinal {
			if g.canCarve(cur, d) {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			lastDir = -1
			continue
		}

		chosen := -1
		if lastDir >= 0 && contains(candidates, lastDir) && g.rng.IntBetween(1, 100) <= g.opts.WindingPercent {
			chosen = lastDir
		} else {
			chosen = candidates[g.rng.IntBetween(0, len(candidates)-1)]
		}

		d := coord.Cardinal[chosen]
		off := d.Offset()
		wall := coord.Point{X: cur.X + off.X, Y: cur.Y + off.Y}
		next := coord.Point{X: cur.X + 2*off.X, Y: cur.Y + 2*off.Y}

		g.carveCorridorTile(wall.X, wall.Y, reg.ID)
		g.carveCorridorTile(next.X, next.Y, reg.ID)

		stack = append(stack, next)
		lastDir = chosen
	}
}

// canCarve reports whether direction d can be carved from cell: the tile
// three steps away must be in-bounds and still wall, and the tile two steps
// away must not already be floor.
func (g *Generator) canCarve(cell coord.Point, d coord.Direction) bool {
	off := d.Offset()
	far := coord.Point{X: cell.X + 3*off.X, Y: cell.Y + 3*off.Y}
	if !g.grid.InBounds(far.X, far.Y) {
		return false
	}
	farTile := g.grid.MustAt(far.X, far.Y)
	if farTile.Type != tile.Wall {
		return false
	}

	mid := coord.Point{X: cell.X + 2*off.X, Y: cell.Y + 2*off.Y}
	midTile, err := g.grid.At(mid.X, mid.Y)
	if err != nil {
		return false
	}
	return midTile.Type != tile.Floor
}

func (g *Generator) carveCorridorTile(x, y, regionID int) {
	t := g.grid.MustAt(x, y)
	t.Type = tile.Floor
	t.SetRegion(regionID, tile.RegionCorridor)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

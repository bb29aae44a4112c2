package dungeon

import (
	"sort"
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/gridforge/dungeon/pkg/coord"
	"github.com/gridforge/dungeon/pkg/tile"
)

func mustBuild(t *testing.T, req Request) *Results {
	t.Helper()
	results, err := Build(req)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return results
}

func TestBuild_InvalidDimensionNamesWidth(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height = 4, 10

	_, err := Build(req)
	if err == nil {
		t.Fatal("expected an error for width=4, got nil")
	}
	dimErr, ok := err.(*InvalidDimensionError)
	if !ok {
		t.Fatalf("expected *InvalidDimensionError, got %T", err)
	}
	if dimErr.Dimension != "width" {
		t.Errorf("Dimension = %q, want %q", dimErr.Dimension, "width")
	}
}

func TestBuild_EvenDimensionsBecomeOdd(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 10, 10, "even-dims"

	results := mustBuild(t, req)
	if results.Width()%2 == 0 || results.Height()%2 == 0 {
		t.Errorf("dimensions = %dx%d, want both odd", results.Width(), results.Height())
	}
	if results.Width() < 5 || results.Height() < 5 {
		t.Errorf("dimensions = %dx%d, want both >= 5", results.Width(), results.Height())
	}
}

func TestBuild_SeedIsRecordedOnResults(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 21, 21, "scenario-s1"

	results := mustBuild(t, req)
	if results.Seed != "scenario-s1" {
		t.Errorf("Seed = %q, want %q", results.Seed, "scenario-s1")
	}
}

func TestBuild_AutoGeneratedSeedIsNonEmpty(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height = 21, 21

	results := mustBuild(t, req)
	if results.Seed == "" {
		t.Error("expected an auto-generated seed, got empty string")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 31, 31, "deterministic-seed"

	a := mustBuild(t, req)
	b := mustBuild(t, req)

	if a.Seed != b.Seed {
		t.Fatalf("seeds differ: %q vs %q", a.Seed, b.Seed)
	}
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Fatalf("room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ta, _ := a.GetTile(x, y)
			tb, _ := b.GetTile(x, y)
			if ta.Type != tb.Type || ta.Region != tb.Region {
				t.Fatalf("tile (%d,%d) differs: %+v vs %+v", x, y, ta, tb)
			}
		}
	}
}

func TestBuild_FloorAndWallRegionInvariant(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 25, 25, "region-invariant"

	results := mustBuild(t, req)
	results.Each(func(tl *tile.Tile) {
		switch tl.Type {
		case tile.Wall:
			if tl.Region != tile.NoRegion {
				t.Errorf("wall tile (%d,%d) has region %d, want %d", tl.X, tl.Y, tl.Region, tile.NoRegion)
			}
		case tile.Floor:
			if tl.Region == tile.NoRegion {
				t.Errorf("floor tile (%d,%d) has no region", tl.X, tl.Y)
			}
		}
	})
}

func TestBuild_NoTwoRoomsTouch(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed, req.Options.RoomTries = 41, 41, "touch-check", 200

	results := mustBuild(t, req)
	for i := 0; i < len(results.Rooms); i++ {
		for j := i + 1; j < len(results.Rooms); j++ {
			if results.Rooms[i].Touches(results.Rooms[j]) {
				t.Errorf("rooms %+v and %+v touch", results.Rooms[i], results.Rooms[j])
			}
		}
	}
}

func TestBuild_ScenarioFiveByFive(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 5, 5, "s1"

	results := mustBuild(t, req)
	if results.Width() != 5 || results.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 5x5", results.Width(), results.Height())
	}
	if len(results.Rooms) > 1 {
		t.Errorf("expected at most one room in a 5x5 grid, got %d", len(results.Rooms))
	}

	floors := 0
	results.Each(func(tl *tile.Tile) {
		if tl.Type != tile.Wall {
			floors++
		}
	})
	if floors == 0 {
		t.Error("expected the single interior lattice cell to be carved")
	}
}

func TestBuild_MaxDoorsOneYieldsExactlyOneDoorPerBucket(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 21, 21, "s3"
	req.Options.MaxDoors = 1

	results := mustBuild(t, req)

	doorNeighborRegionPairs := map[string]int{}
	for y := 0; y < results.Height(); y++ {
		for x := 0; x < results.Width(); x++ {
			tl, _ := results.GetTile(x, y)
			if tl.Type != tile.Door {
				continue
			}
			regions := map[int]bool{}
			for _, d := range []struct{ dx, dy int }{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				n, err := results.GetTile(x+d.dx, y+d.dy)
				if err != nil || n.Region == tile.NoRegion {
					continue
				}
				regions[n.Region] = true
			}
			ids := make([]int, 0, len(regions))
			for r := range regions {
				ids = append(ids, r)
			}
			sort.Ints(ids)
			key := ""
			for _, r := range ids {
				key += strconv.Itoa(r) + ","
			}
			doorNeighborRegionPairs[key]++
		}
	}

	for key, count := range doorNeighborRegionPairs {
		if count != 1 {
			t.Errorf("bucket %q has %d doors, want exactly 1", key, count)
		}
	}
}

func TestBuild_RemoveDeadEndsEveryCorridorFloorHasTwoExits(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 21, 21, "s3"
	req.Options.RemoveDeadEnds = true

	results := mustBuild(t, req)

	for y := 0; y < results.Height(); y++ {
		for x := 0; x < results.Width(); x++ {
			tl, _ := results.GetTile(x, y)
			if tl.Type == tile.Wall {
				continue
			}
			inRoom := false
			for _, r := range results.Rooms {
				if r.Contains(coord.Point{X: x, Y: y}) {
					inRoom = true
					break
				}
			}
			if inRoom {
				continue
			}

			open := 0
			for _, d := range []struct{ dx, dy int }{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				n, err := results.GetTile(x+d.dx, y+d.dy)
				if err == nil && n.Type != tile.Wall {
					open++
				}
			}
			if open < 2 {
				t.Errorf("non-room floor tile (%d,%d) has %d non-wall cardinal neighbors, want >= 2", x, y, open)
			}
		}
	}
}

func TestBuild_PropertyEffectiveDimensionsOddAndAtLeastFive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := DefaultRequest()
		req.Width = rapid.IntRange(5, 60).Draw(t, "width")
		req.Height = rapid.IntRange(5, 60).Draw(t, "height")
		req.Seed = "property-seed"

		results := mustBuildRapid(t, req)
		if results.Width()%2 == 0 || results.Height()%2 == 0 {
			t.Fatalf("dimensions = %dx%d, want both odd", results.Width(), results.Height())
		}
		if results.Width() < 5 || results.Height() < 5 {
			t.Fatalf("dimensions = %dx%d, want both >= 5", results.Width(), results.Height())
		}
	})
}

func TestBuild_PropertyDeterministicAcrossOptions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := DefaultRequest()
		req.Width = rapid.IntRange(5, 41).Draw(t, "width")
		req.Height = rapid.IntRange(5, 41).Draw(t, "height")
		req.Seed = rapid.StringMatching(`[a-z0-9]{4,12}`).Draw(t, "seed")
		req.Options.WindingPercent = rapid.IntRange(0, 100).Draw(t, "windingPercent")

		a, err := Build(req)
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		b, err := Build(req)
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}

		if len(a.Rooms) != len(b.Rooms) {
			t.Fatalf("room counts differ across identical requests: %d vs %d", len(a.Rooms), len(b.Rooms))
		}
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				ta, _ := a.GetTile(x, y)
				tb, _ := b.GetTile(x, y)
				if ta.Type != tb.Type {
					t.Fatalf("tile (%d,%d) type differs across identical requests", x, y)
				}
			}
		}
	})
}

func mustBuildRapid(t *rapid.T, req Request) *Results {
	results, err := Build(req)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return results
}

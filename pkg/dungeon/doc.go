// Package dungeon provides the core dungeon generation pipeline: it
// orchestrates fill, room placement, maze growth, region connection, and
// optional dead-end pruning over a single tile Grid, a region Registry, and
// one seeded rng.RNG.
//
// Generate a dungeon by loading or constructing a Request and calling
// Build:
//
//	req := dungeon.DefaultRequest()
//	req.Width, req.Height, req.Seed = 41, 41, "my-seed"
//	results, err := dungeon.Build(req)
//
// The pipeline is synchronous and single-threaded: a Generator owns its
// Grid, RNG, and region Registry exclusively for the duration of one Build
// call, and must not be shared across goroutines while a call is in
// flight.
package dungeon

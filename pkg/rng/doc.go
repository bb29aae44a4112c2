// Package rng provides deterministic random number generation for the dungeon
// generation pipeline.
//
// # Overview
//
// The RNG type ensures reproducible dungeons by deriving a master math/rand
// source from a seed string:
//
//	source_seed = first8Bytes(SHA-256(seed))
//
// A single RNG instance is threaded through every pipeline stage (room
// placement, maze growth, region connection) so that the full sequence of
// draws — and therefore the generated grid — depends only on the seed string
// and the option values that influence draw counts.
//
// # Thread Safety
//
// RNG is NOT safe for concurrent use. A generator owns exactly one RNG for
// the duration of a single Build call.
package rng

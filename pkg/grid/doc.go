// Package grid implements the tile arena shared by every pipeline stage: a
// flat width*height vector of tiles addressed by row-major index. Neighbor
// lookups are computed from coordinate arithmetic rather than stored
// per-tile, so mutating a tile through Grid.At is observed by every other
// neighbor lookup against the same coordinate (there is exactly one
// canonical tile per position).
package grid

// Package tile defines the Tile cell type and the enumerations (TileType,
// RegionKind) carved and labeled by the generation pipeline.
//
// Per the arena design used by the Grid (pkg/grid), a Tile does not own
// neighbor back-references; it only carries its coordinates and mutable
// type/region state. Neighbor lookups are a derived view computed by the
// Grid from coordinate arithmetic.
package tile

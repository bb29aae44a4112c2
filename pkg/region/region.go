// Package region implements the monotonically increasing region id
// allocator shared by the generation pipeline: every new room or corridor
// mints its own id from a single counter kept on the generator.
package region

import "github.com/gridforge/dungeon/pkg/tile"

// Region identifies a single room or corridor by id and kind.
type Region struct {
	ID   int
	Kind tile.RegionKind
}

// Registry hands out sequential region ids, starting at 0.
type Registry struct {
	next int
}

// NewRegistry returns a registry with no regions allocated yet.
func NewRegistry() *Registry {
	return &Registry{}
}

// Start mints a new region of the given kind and returns it. Ids are never
// reused, even for regions that are later abandoned (e.g. a discarded room
// candidate never calls Start and so never consumes an id).
func (r *Registry) Start(kind tile.RegionKind) Region {
	id := r.next
	r.next++
	return Region{ID: id, Kind: kind}
}

// Count returns the number of regions minted so far.
func (r *Registry) Count() int {
	return r.next
}

package dungeon

import (
	"fmt"

	"github.com/gridforge/dungeon/pkg/grid"
)

// InvalidDimensionError is returned by Build when the requested stage width
// or height is below the minimum of 5. The pipeline never starts in this
// case.
type InvalidDimensionError struct {
	Dimension string // "width" or "height"
	Value     int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("dungeon: %s must be >= 5, got %d", e.Dimension, e.Value)
}

// OutOfRangeTileError is returned by Results.GetTile for a coordinate
// outside the generated grid. It is an alias of grid.OutOfRangeError so
// callers can pattern-match on either name.
type OutOfRangeTileError = grid.OutOfRangeError

// GenerationWarning records a non-fatal condition encountered while
// generating a dungeon, e.g. a connector bucket that somehow produced no
// door even after the fallback policy ran. Generation continues after a
// GenerationWarning is logged; it is never returned as an error from Build.
type GenerationWarning struct {
	Message string
	Fields  map[string]any
}

func (w *GenerationWarning) Error() string {
	return w.Message
}

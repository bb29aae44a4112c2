// Package render provides a small SVG debug renderer for a generated
// dungeon grid, for use by the dungeongen CLI's -svg flag. It is a debug
// visualization aid, not a serialization format.
package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/gridforge/dungeon/pkg/dungeon"
	"github.com/gridforge/dungeon/pkg/tile"
)

// Options configures the SVG export.
type Options struct {
	CellSize int    // pixels per tile, default 16
	Title    string // optional canvas title
}

// DefaultOptions returns sensible default SVG export options.
func DefaultOptions() Options {
	return Options{CellSize: 16, Title: "dungeon"}
}

var fillByType = map[tile.Type]string{
	tile.Wall:   "fill:#1a1a2e",
	tile.Floor:  "fill:#e8e8e8",
	tile.Door:   "fill:#c9a227",
	tile.Shaft:  "fill:#5566aa",
	tile.Stairs: "fill:#66aa77",
}

// SVG renders results as an SVG document: one rectangle per tile, colored
// by tile type.
func SVG(results *dungeon.Results, opts Options) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("render: results cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}

	width := results.Width() * opts.CellSize
	height := results.Height() * opts.CellSize

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, "fill:#000000")

	results.Each(func(t *tile.Tile) {
		style, ok := fillByType[t.Type]
		if !ok {
			style = "fill:#ff00ff"
		}
		canvas.Rect(t.X*opts.CellSize, t.Y*opts.CellSize, opts.CellSize, opts.CellSize, style)
	})

	canvas.End()
	return buf.Bytes(), nil
}

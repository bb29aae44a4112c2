package dungeon

import (
	"fmt"
	"strings"

	"github.com/gridforge/dungeon/pkg/tile"
)

// glyphs maps each tile type to the character RenderText draws for it.
var glyphs = map[tile.Type]rune{
	tile.Wall:   '#',
	tile.Floor:  '.',
	tile.Door:   '+',
	tile.Shaft:  '>',
	tile.Stairs: '<',
}

// RenderText renders an ASCII preview of the result grid for debugging. It
// is not a serialization format: the output is meant for a terminal or log
// line, not for round-tripping back into a Results value.
func (r *Results) RenderText() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("dungeon %dx%d seed=%s rooms=%d\n", r.Width(), r.Height(), r.Seed, len(r.Rooms)))

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			t, err := r.GetTile(x, y)
			if err != nil {
				sb.WriteRune('?')
				continue
			}
			g, ok := glyphs[t.Type]
			if !ok {
				g = '?'
			}
			sb.WriteRune(g)
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}

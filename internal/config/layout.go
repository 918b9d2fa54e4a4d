package config

import (
	"fmt"

	astar "github.com/pdrpinto/gridastar"
)

// Layout cell glyphs.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Layout is a map drawn in text, one string per grid row:
//
//	S..#....
//	...#..G.
//
// Spaces count as open cells. Rows may differ in length; missing cells are
// open.
type Layout struct {
	Rows []string `yaml:"rows"`
}

// Grid is a parsed layout in pixel coordinates.
type Grid struct {
	Start, Goal       astar.Coord
	HasStart, HasGoal bool
	Walls             []astar.Coord
}

// Size returns the layout dimensions in cells.
func (l Layout) Size() (cols, rows int) {
	for _, row := range l.Rows {
		cols = max(cols, len(row))
	}
	return cols, len(l.Rows)
}

// Parse converts the layout to pixel coordinates for cellSize.
func (l Layout) Parse(cellSize int) (Grid, error) {
	var grid Grid
	for y, row := range l.Rows {
		for x, glyph := range []byte(row) {
			c := astar.Coord{X: x * cellSize, Y: y * cellSize}
			switch glyph {
			case GlyphOpen, ' ':
			case GlyphWall:
				grid.Walls = append(grid.Walls, c)
			case GlyphStart:
				if grid.HasStart {
					return Grid{}, fmt.Errorf("layout row %d col %d: second start", y, x)
				}
				grid.Start, grid.HasStart = c, true
			case GlyphGoal:
				if grid.HasGoal {
					return Grid{}, fmt.Errorf("layout row %d col %d: second goal", y, x)
				}
				grid.Goal, grid.HasGoal = c, true
			default:
				return Grid{}, fmt.Errorf("layout row %d col %d: unknown glyph %q", y, x, glyph)
			}
		}
	}
	return grid, nil
}

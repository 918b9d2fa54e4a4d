package astar

import "strconv"

// Coord is a grid cell position in pixel space. Both components are
// multiples of the engine's cell size, except transiently after a lossy
// rescale. Two coords are the same cell when X and Y match.
type Coord struct {
	X, Y int
}

// Quantize snaps a raw pixel position onto the top-left corner of the cell
// containing it.
func Quantize(pixelX, pixelY, cellSize int) Coord {
	return Coord{X: pixelX - pixelX%cellSize, Y: pixelY - pixelY%cellSize}
}

// Add returns c moved by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Bounds is the drawable area in pixels. A cell is inside when its
// top-left corner is.
type Bounds struct {
	Width, Height int
}

// Contains reports whether c lies inside the area.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

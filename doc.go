// Package astar is an A* shortest-path engine for pixel-space grids, built
// to drive interactive visualizations.
//
// It exposes two ways to search:
//
//   - Engine.Run (or the one-shot Search): run to completion and get a Result.
//   - Engine.Setup followed by Engine.Step: advance one expansion at a time,
//     typically from a Driver tick, and draw Engine.Snapshot in between.
//
// Cells are addressed by the pixel position of their top-left corner, so
// every coordinate is a multiple of the cell size. Changing the cell size
// (Rescale, SetCellSize, Zoom) maps all tracked coordinates, including those
// of a search in progress.
//
// The open set is selected lowest f first, then lowest h, then oldest
// insertion. Explored cells are final and never reopened.
package astar

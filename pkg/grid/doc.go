// Package grid provides the geometry value types and snapping functions
// shared by the layout engine.
//
// All coordinates are in pixels. A [Point] is a position in page space or
// container space depending on where it came from; the functions in this
// package never convert between the two.
//
// # Snapping
//
// [Snap] aligns both axes of a point to a grid interval. Rounding down
// drops the remainder; rounding up always advances to the next grid line,
// even when the coordinate is already aligned:
//
//	grid.Snap(grid.Point{X: 45, Y: 40}, 20, false) // {40 40}
//	grid.Snap(grid.Point{X: 45, Y: 40}, 20, true)  // {60 60}
//
// The remainder follows the sign of the coordinate (as [math.Mod] does),
// so negative coordinates round toward zero when rounding down.
//
// Everything here is a pure function over values and is safe for
// concurrent use.
package grid

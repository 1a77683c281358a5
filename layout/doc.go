// Package layout resolves declarative per-axis size constraints into pixel
// geometry for window elements.
//
// A container hands its available [Size] and the ordered [SizeConstraint]s of
// its children to [Resolve] (or walks them one at a time with a
// [PlacementResolver]) and gets back a concrete [Size] and [Position] for each
// child. Percentages always refer to the container, never to leftover space.
// Running out of space is not an error: extents are clamped at zero so the UI
// degrades instead of failing.
package layout

package layout

// Size is a fully resolved width/height pair in pixels.
type Size struct {
	Width, Height float32
}

// Position is a pixel offset from the parent's origin.
type Position struct {
	X, Y float32
}

// Add returns p offset by other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Contains reports whether the point (x, y) lies inside the rectangle at p
// with the given size. Points on the edge are considered inside.
func (s Size) Contains(p Position, x, y float32) bool {
	return x >= p.X && x <= p.X+s.Width &&
		y >= p.Y && y <= p.Y+s.Height
}

// PartialSize is a size whose axes may still be pending. A pending axis is
// resolved later from measured content with Finalize.
type PartialSize struct {
	Width, Height float32
	// WidthPending and HeightPending mark axes that were declared Auto and
	// have no pixel value yet.
	WidthPending, HeightPending bool

	available Size
}

// Resolved reports whether both axes are concrete.
func (p PartialSize) Resolved() bool {
	return !p.WidthPending && !p.HeightPending
}

// Finalize fills pending axes from the measured content size and returns the
// concrete Size. Concrete axes are returned unchanged. Content is clamped to
// the available space the partial size was resolved against.
func (p PartialSize) Finalize(content Size) Size {
	s := Size{Width: p.Width, Height: p.Height}
	if p.WidthPending {
		s.Width = clamp(content.Width, 0, p.available.Width)
	}
	if p.HeightPending {
		s.Height = clamp(content.Height, 0, p.available.Height)
	}
	return s
}

// clamp restricts v to [lo, hi]. If hi < lo, lo wins.
func clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

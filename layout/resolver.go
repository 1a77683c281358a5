package layout

// Orientation selects the primary axis siblings are placed along.
type Orientation uint8

const (
	Horizontal Orientation = iota // Children placed left-to-right
	Vertical                      // Children placed top-to-bottom
)

// Placement is the resolved geometry of one child.
type Placement struct {
	Size     Size
	Position Position
}

// PlacementResolver is a cursor that walks a sibling list, handing out space
// from the container along the primary axis. The sum of all extents it hands
// out never exceeds the container.
type PlacementResolver struct {
	container   Size
	orientation Orientation
	spacing     float32
	cursor      Position
	remaining   Size
	placed      int
}

// NewPlacementResolver creates a resolver for a container of the given size.
// spacing is inserted between consecutive siblings along the primary axis.
func NewPlacementResolver(container Size, orientation Orientation, spacing float32) *PlacementResolver {
	return &PlacementResolver{
		container:   container,
		orientation: orientation,
		spacing:     spacing,
		remaining:   container,
	}
}

// Allocate resolves the next child. The returned Position is the cursor before
// this step. A Remaining child on the primary axis takes everything that is
// left; an Auto axis is returned pending and consumes no space.
func (r *PlacementResolver) Allocate(c SizeConstraint) (PartialSize, Position) {
	if r.placed > 0 {
		r.advance(r.spacing)
	}
	r.placed++

	mainAxis, crossAxis := r.axes(c)
	mainContainer, crossContainer := r.split(r.container)
	mainRemaining, _ := r.split(r.remaining)

	p := PartialSize{available: r.container}
	var mainExtent, crossExtent float32
	var mainPending, crossPending bool

	switch mainAxis.Sizing {
	case SizingRemaining:
		mainExtent = mainRemaining
	case SizingAuto:
		mainPending = true
	default:
		mainExtent = mainAxis.resolve(mainContainer, mainRemaining)
	}

	switch crossAxis.Sizing {
	case SizingRemaining:
		crossExtent = crossContainer
	case SizingAuto:
		crossPending = true
	default:
		crossExtent = crossAxis.resolve(crossContainer, crossContainer)
	}

	if r.orientation == Horizontal {
		p.Width, p.Height = mainExtent, crossExtent
		p.WidthPending, p.HeightPending = mainPending, crossPending
	} else {
		p.Width, p.Height = crossExtent, mainExtent
		p.WidthPending, p.HeightPending = crossPending, mainPending
	}

	position := r.cursor
	r.advance(mainExtent)
	return p, position
}

// Cursor returns the current write offset.
func (r *PlacementResolver) Cursor() Position {
	return r.cursor
}

// Remaining returns the space not yet handed out. The cross axis is never
// consumed by siblings.
func (r *PlacementResolver) Remaining() Size {
	return r.remaining
}

// advance moves the cursor along the primary axis and consumes the same
// amount of remaining space, clamped at zero.
func (r *PlacementResolver) advance(extent float32) {
	if r.orientation == Horizontal {
		r.cursor.X += extent
		r.remaining.Width = clamp(r.remaining.Width-extent, 0, r.remaining.Width)
	} else {
		r.cursor.Y += extent
		r.remaining.Height = clamp(r.remaining.Height-extent, 0, r.remaining.Height)
	}
}

// axes returns the child's constraint on the primary and cross axis.
func (r *PlacementResolver) axes(c SizeConstraint) (main, cross AxisConstraint) {
	if r.orientation == Horizontal {
		return c.Width, c.Height
	}
	return c.Height, c.Width
}

// split returns a size's extent on the primary and cross axis.
func (r *PlacementResolver) split(s Size) (main, cross float32) {
	if r.orientation == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// join builds a Size from primary and cross extents.
func (r *PlacementResolver) join(main, cross float32) Size {
	if r.orientation == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Resolve places all siblings at once. Fixed and Flexible children are
// resolved first, in order, against what is left of the container; the
// leftover is then divided evenly between Remaining children. Auto axes
// resolve to zero. Positions are assigned in declaration order.
func Resolve(container Size, orientation Orientation, spacing float32, constraints []SizeConstraint) []Placement {
	if len(constraints) == 0 {
		return nil
	}

	r := NewPlacementResolver(container, orientation, spacing)
	mainContainer, crossContainer := r.split(container)

	free := mainContainer - spacing*float32(len(constraints)-1)
	if free < 0 {
		free = 0
	}

	extents := make([]float32, len(constraints))
	remainingCount := 0
	for i, c := range constraints {
		mainAxis, _ := r.axes(c)
		if mainAxis.Sizing == SizingRemaining {
			remainingCount++
			continue
		}
		extents[i] = mainAxis.resolve(mainContainer, free)
		free -= extents[i]
	}

	if remainingCount > 0 {
		share := free / float32(remainingCount)
		for i, c := range constraints {
			if mainAxis, _ := r.axes(c); mainAxis.Sizing == SizingRemaining {
				extents[i] = share
			}
		}
	}

	placements := make([]Placement, len(constraints))
	for i, c := range constraints {
		_, crossAxis := r.axes(c)
		var cross float32
		switch crossAxis.Sizing {
		case SizingRemaining:
			cross = crossContainer
		case SizingAuto:
		default:
			cross = crossAxis.resolve(crossContainer, crossContainer)
		}

		if i > 0 {
			r.advance(spacing)
		}
		placements[i] = Placement{
			Size:     r.join(extents[i], cross),
			Position: r.cursor,
		}
		r.advance(extents[i])
	}
	return placements
}

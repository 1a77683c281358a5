package ui

import "github.com/phanxgames/lantern/layout"

// DefaultWindowConstraint sizes editor windows: 250 pixels wide when there is
// room, never narrower than 200 or wider than 300, as tall as the content.
var DefaultWindowConstraint = layout.Constraint(
	layout.Flexible(layout.Pixels(200), layout.Pixels(250), layout.Pixels(300)),
	layout.Auto(),
)

// Window is a titled container of resolved elements.
type Window interface {
	Title() string
	// Class returns the window's class, if it has one. Only one window per
	// class is open at a time and its placement is cached.
	Class() (string, bool)
	Area() Area
	TitleArea() Area
	// MoveTo places the window at position, kept inside available.
	MoveTo(position layout.Position, available layout.Size)
	// ElementAt returns the index of the element under (x, y).
	ElementAt(x, y float32) (int, bool)
	// Element returns an element and its absolute area.
	Element(index int) (Element, Area)
	Render(p Painter, settings *InterfaceSettings, hoverX, hoverY float32)
}

// FramedWindow is a window with a title bar and a border, its elements
// stacked top to bottom.
type FramedWindow struct {
	title    string
	class    string
	elements []Element
	// areas are relative to the window's origin.
	areas []Area

	position    layout.Position
	size        layout.Size
	titleHeight float32
}

// NewFramedWindow resolves the window's size from constraint and its
// elements' constraints. An empty class means the window has none. A cached
// placement for the class takes precedence over the constraint's width and
// over centering.
func NewFramedWindow(cache *WindowCache, settings *InterfaceSettings, available layout.Size, title, class string, elements []Element, constraint layout.SizeConstraint) *FramedWindow {
	border := settings.scaled(settings.BorderSize)
	gap := settings.scaled(settings.GapSize)
	titleHeight := settings.scaled(settings.TitleHeight)

	partial := constraint.ResolvePartial(available)
	width := partial.Finalize(layout.Size{Width: available.Width}).Width

	var state WindowState
	cached := false
	if class != "" {
		state, cached = cache.Lookup(class)
	}
	if cached && state.Size.Width > 0 {
		width = minf(state.Size.Width, available.Width)
	}

	content := layout.Size{
		Width:  maxf(width-2*border, 0),
		Height: maxf(available.Height-titleHeight-2*border, 0),
	}
	origin := layout.Position{X: border, Y: titleHeight + border}
	resolver := layout.NewPlacementResolver(content, layout.Vertical, gap)

	areas := make([]Area, len(elements))
	for i, element := range elements {
		partialSize, position := resolver.Allocate(element.Constraint())
		areas[i] = Area{
			Position: position.Add(origin),
			Size:     partialSize.Finalize(layout.Size{}),
		}
	}

	height := partial.Finalize(layout.Size{
		Width:  width,
		Height: titleHeight + resolver.Cursor().Y + 2*border,
	}).Height

	w := &FramedWindow{
		title:       title,
		class:       class,
		elements:    elements,
		areas:       areas,
		size:        layout.Size{Width: width, Height: height},
		titleHeight: titleHeight,
	}

	position := layout.Position{
		X: (available.Width - width) / 2,
		Y: (available.Height - height) / 2,
	}
	if cached {
		position = state.Position
	}
	w.MoveTo(position, available)
	return w
}

func (w *FramedWindow) Title() string {
	return w.title
}

func (w *FramedWindow) Class() (string, bool) {
	return w.class, w.class != ""
}

func (w *FramedWindow) Area() Area {
	return Area{Position: w.position, Size: w.size}
}

func (w *FramedWindow) TitleArea() Area {
	return Area{
		Position: w.position,
		Size:     layout.Size{Width: w.size.Width, Height: w.titleHeight},
	}
}

// State returns the placement to remember for the window's class.
func (w *FramedWindow) State() WindowState {
	return WindowState{Position: w.position, Size: w.size}
}

func (w *FramedWindow) MoveTo(position layout.Position, available layout.Size) {
	w.position = layout.Position{
		X: clampf(position.X, 0, available.Width-w.size.Width),
		Y: clampf(position.Y, 0, available.Height-w.size.Height),
	}
}

func (w *FramedWindow) ElementAt(x, y float32) (int, bool) {
	lx, ly := x-w.position.X, y-w.position.Y
	for i, a := range w.areas {
		if a.Contains(lx, ly) {
			return i, true
		}
	}
	return 0, false
}

func (w *FramedWindow) Element(index int) (Element, Area) {
	a := w.areas[index]
	a.Position = a.Position.Add(w.position)
	return w.elements[index], a
}

// Len returns the number of elements.
func (w *FramedWindow) Len() int {
	return len(w.elements)
}

func (w *FramedWindow) Render(p Painter, settings *InterfaceSettings, hoverX, hoverY float32) {
	x, y := w.position.X, w.position.Y
	p.FillRect(x, y, w.size.Width, w.size.Height, settings.BackgroundColor)
	p.FillRect(x, y, w.size.Width, w.titleHeight, settings.TitleColor)
	p.DrawText(w.title, x+settings.scaled(settings.BorderSize), y, settings.ForegroundColor)

	for i, element := range w.elements {
		_, area := w.Element(i)
		element.Render(p, settings, area, area.Contains(hoverX, hoverY))
	}
}

// clampf clamps v to [lo, hi]; if hi < lo, lo wins.
func clampf(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

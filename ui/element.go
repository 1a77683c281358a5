package ui

import (
	"image/color"

	"github.com/phanxgames/lantern/layout"
)

// Area is a resolved rectangle in screen pixels.
type Area struct {
	Position layout.Position
	Size     layout.Size
}

// Contains reports whether the point (x, y) lies inside the area.
func (a Area) Contains(x, y float32) bool {
	return a.Size.Contains(a.Position, x, y)
}

// Painter draws interface primitives. Coordinates are screen pixels.
type Painter interface {
	FillRect(x, y, width, height float32, c color.Color)
	DrawText(text string, x, y float32, c color.Color)
}

// Element is one entry in a window.
type Element interface {
	// Constraint declares how the element wants to be sized.
	Constraint() layout.SizeConstraint
	// Render draws the element into its resolved area.
	Render(p Painter, settings *InterfaceSettings, area Area, hovered bool)
}

// Draggable is implemented by elements that react to a held pointer.
type Draggable interface {
	Element
	// Drag applies the pointer at (x, y) to the element resolved at area and
	// returns what has to be redone.
	Drag(area Area, x, y float32) ChangeEvent
}

package ui

import "github.com/phanxgames/lantern/layout"

// HeadlineDefaultSize is the height of a standard headline in pixels.
const HeadlineDefaultSize = 12

// Headline is a single line of label text spanning the window's width.
type Headline struct {
	text string
	size float32
}

// NewHeadline creates a headline of the given height.
func NewHeadline(text string, size float32) *Headline {
	return &Headline{text: text, size: size}
}

// Text returns the label.
func (h *Headline) Text() string {
	return h.text
}

func (h *Headline) Constraint() layout.SizeConstraint {
	return layout.Constraint(layout.Fixed(layout.Percent(100)), layout.Fixed(layout.Pixels(h.size)))
}

func (h *Headline) Render(p Painter, settings *InterfaceSettings, area Area, _ bool) {
	p.DrawText(h.text, area.Position.X, area.Position.Y, settings.ForegroundColor)
}

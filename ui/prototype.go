package ui

import "github.com/phanxgames/lantern/layout"

// PrototypeWindow is implemented by anything that can present itself as a
// window.
type PrototypeWindow interface {
	// WindowClass returns the class of the produced window, if any.
	WindowClass() (string, bool)
	// ToWindow materializes the window for the given space.
	ToWindow(cache *WindowCache, settings *InterfaceSettings, available layout.Size) Window
}

// Unclassed can be embedded by prototypes whose windows have no class.
type Unclassed struct{}

// WindowClass reports no class.
func (Unclassed) WindowClass() (string, bool) {
	return "", false
}

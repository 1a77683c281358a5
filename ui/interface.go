package ui

import "github.com/phanxgames/lantern/layout"

type openWindow struct {
	prototype PrototypeWindow
	window    Window
}

// Interface owns the open windows and routes pointer input to them. Windows
// later in the stack are drawn on top and receive input first.
type Interface struct {
	settings  *InterfaceSettings
	cache     *WindowCache
	sink      EventSink
	available layout.Size
	windows   []openWindow

	pressed  bool
	captured bool
	pressX   float32
	pressY   float32
	hoverX   float32
	hoverY   float32

	// moving is the index of the window being moved by its title bar.
	moving      int
	moveStarted bool
	grab        layout.Position

	dragWindow  int
	dragElement int
}

// NewInterface creates an interface covering available. sink receives every
// change event and may be nil.
func NewInterface(settings *InterfaceSettings, cache *WindowCache, sink EventSink, available layout.Size) *Interface {
	if settings == nil {
		settings = DefaultInterfaceSettings()
	}
	if cache == nil {
		cache = NewWindowCache()
	}
	return &Interface{
		settings:   settings,
		cache:      cache,
		sink:       sink,
		available:  available,
		moving:     -1,
		dragWindow: -1,
	}
}

// Settings returns the settings windows are built with.
func (in *Interface) Settings() *InterfaceSettings {
	return in.settings
}

// Cache returns the window placement cache.
func (in *Interface) Cache() *WindowCache {
	return in.cache
}

// Open materializes prototype and puts it on top. If a window of the same
// class is already open it is brought to the front instead and returned.
func (in *Interface) Open(prototype PrototypeWindow) Window {
	if class, ok := prototype.WindowClass(); ok {
		if idx := in.find(class); idx >= 0 {
			idx = in.raise(idx)
			return in.windows[idx].window
		}
	}
	w := prototype.ToWindow(in.cache, in.settings, in.available)
	in.windows = append(in.windows, openWindow{prototype: prototype, window: w})
	return w
}

// Close closes the window of the given class and remembers its placement.
// It reports whether a window was open.
func (in *Interface) Close(class string) bool {
	idx := in.find(class)
	if idx < 0 {
		return false
	}
	in.closeAt(idx)
	return true
}

// CloseTop closes the window on top of the stack.
func (in *Interface) CloseTop() bool {
	if len(in.windows) == 0 {
		return false
	}
	in.closeAt(len(in.windows) - 1)
	return true
}

func (in *Interface) closeAt(idx int) {
	w := in.windows[idx].window
	if class, ok := w.Class(); ok {
		area := w.Area()
		in.cache.Register(class, WindowState{Position: area.Position, Size: area.Size})
	}
	in.windows = append(in.windows[:idx], in.windows[idx+1:]...)
	in.resetPointer()
}

// Windows returns the open windows, bottom first.
func (in *Interface) Windows() []Window {
	out := make([]Window, len(in.windows))
	for i, ow := range in.windows {
		out[i] = ow.window
	}
	return out
}

// Len returns the number of open windows.
func (in *Interface) Len() int {
	return len(in.windows)
}

// Available returns the space windows are laid out in.
func (in *Interface) Available() layout.Size {
	return in.available
}

// Resize changes the available space and moves every window back inside it.
func (in *Interface) Resize(available layout.Size) {
	in.available = available
	for _, ow := range in.windows {
		ow.window.MoveTo(ow.window.Area().Position, available)
	}
}

// HandlePointer feeds the pointer state for one frame. It reports whether
// the interface consumed the input, in which case the scene behind it should
// ignore it.
func (in *Interface) HandlePointer(x, y float32, pressed bool) bool {
	in.hoverX, in.hoverY = x, y
	switch {
	case pressed && !in.pressed:
		in.pressed = true
		in.captured = in.press(x, y)
		return in.captured
	case pressed:
		if !in.captured {
			return false
		}
		in.hold(x, y)
		return true
	case in.pressed:
		captured := in.captured
		in.resetPointer()
		return captured
	default:
		return in.windowAt(x, y) >= 0
	}
}

func (in *Interface) press(x, y float32) bool {
	idx := in.windowAt(x, y)
	if idx < 0 {
		return false
	}
	idx = in.raise(idx)
	w := in.windows[idx].window

	if w.TitleArea().Contains(x, y) {
		pos := w.Area().Position
		in.moving = idx
		in.moveStarted = false
		in.pressX, in.pressY = x, y
		in.grab = layout.Position{X: x - pos.X, Y: y - pos.Y}
		return true
	}

	if el, ok := w.ElementAt(x, y); ok {
		element, area := w.Element(el)
		if d, ok := element.(Draggable); ok {
			in.dragWindow, in.dragElement = idx, el
			in.apply(idx, d.Drag(area, x, y))
		}
	}
	return true
}

func (in *Interface) hold(x, y float32) {
	switch {
	case in.moving >= 0:
		if !in.moveStarted {
			dx, dy := x-in.pressX, y-in.pressY
			dz := in.settings.DragDeadZone
			if dx*dx+dy*dy < dz*dz {
				return
			}
			in.moveStarted = true
		}
		in.windows[in.moving].window.MoveTo(layout.Position{X: x - in.grab.X, Y: y - in.grab.Y}, in.available)
	case in.dragWindow >= 0:
		element, area := in.windows[in.dragWindow].window.Element(in.dragElement)
		if d, ok := element.(Draggable); ok {
			in.apply(in.dragWindow, d.Drag(area, x, y))
		}
	}
}

// apply performs layout work requested by event and forwards it to the sink.
func (in *Interface) apply(idx int, event ChangeEvent) {
	switch event {
	case ChangeNone:
		return
	case ChangeReresolveWindow:
		in.rebuild(idx)
	case ChangeReresolve:
		for i := range in.windows {
			in.rebuild(i)
		}
	}
	if in.sink != nil {
		in.sink.EmitChange(event)
	}
}

// Reresolve rebuilds every window from its prototype, keeping positions.
func (in *Interface) Reresolve() {
	for i := range in.windows {
		in.rebuild(i)
	}
}

func (in *Interface) rebuild(idx int) {
	ow := &in.windows[idx]
	position := ow.window.Area().Position
	ow.window = ow.prototype.ToWindow(in.cache, in.settings, in.available)
	ow.window.MoveTo(position, in.available)
}

// Render draws every window, bottom first.
func (in *Interface) Render(p Painter) {
	for _, ow := range in.windows {
		ow.window.Render(p, in.settings, in.hoverX, in.hoverY)
	}
}

func (in *Interface) find(class string) int {
	for i, ow := range in.windows {
		if c, ok := ow.window.Class(); ok && c == class {
			return i
		}
	}
	return -1
}

// windowAt returns the topmost window under (x, y), or -1.
func (in *Interface) windowAt(x, y float32) int {
	for i := len(in.windows) - 1; i >= 0; i-- {
		if in.windows[i].window.Area().Contains(x, y) {
			return i
		}
	}
	return -1
}

// raise moves the window at idx to the top and returns its new index.
func (in *Interface) raise(idx int) int {
	last := len(in.windows) - 1
	if idx == last {
		return idx
	}
	ow := in.windows[idx]
	copy(in.windows[idx:], in.windows[idx+1:])
	in.windows[last] = ow
	return last
}

func (in *Interface) resetPointer() {
	in.pressed = false
	in.captured = false
	in.moving = -1
	in.moveStarted = false
	in.dragWindow = -1
	in.dragElement = 0
}

package lantern

// MouseButton selects which button an injected pointer event holds.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// injectedPointer builds the pointer state of a synthetic event.
func injectedPointer(x, y float32, pressed bool, button MouseButton) pointerState {
	p := pointerState{x: x, y: y}
	switch button {
	case MouseButtonLeft:
		p.left = pressed
	case MouseButtonRight:
		p.right = pressed
	}
	return p
}

// InjectPress queues a press of button at the given screen coordinates. The
// event replaces real mouse input on the next Update.
func (v *Viewer) InjectPress(x, y float32, button MouseButton) {
	v.injectQueue = append(v.injectQueue, injectedPointer(x, y, true, button))
}

// InjectMove queues a pointer move with button held down.
func (v *Viewer) InjectMove(x, y float32, button MouseButton) {
	v.injectQueue = append(v.injectQueue, injectedPointer(x, y, true, button))
}

// InjectRelease queues a release at the given screen coordinates.
func (v *Viewer) InjectRelease(x, y float32) {
	v.injectQueue = append(v.injectQueue, pointerState{x: x, y: y})
}

// InjectClick queues a left press followed by a release. Consumes two
// frames.
func (v *Viewer) InjectClick(x, y float32) {
	v.InjectPress(x, y, MouseButtonLeft)
	v.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-1 linearly
// interpolated moves ending at (toX, toY) and a release there. frames is at
// least 2.
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float32, frames int, button MouseButton) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY, button)
	moves := frames - 1
	for i := 1; i <= moves; i++ {
		t := float32(i) / float32(moves)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, button)
	}
	v.InjectRelease(toX, toY)
}

// InjectScroll queues one frame of wheel movement at (x, y).
func (v *Viewer) InjectScroll(x, y, wheelY float32) {
	v.injectQueue = append(v.injectQueue, pointerState{x: x, y: y, wheelY: wheelY})
}

// Pending returns the number of queued synthetic events.
func (v *Viewer) Pending() int {
	return len(v.injectQueue)
}

// processInjectedInput feeds one queued event through handlePointer. It
// reports false if the queue was empty.
func (v *Viewer) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	p := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	v.handlePointer(p)
	return true
}

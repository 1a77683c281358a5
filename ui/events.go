package ui

// ChangeEvent tells the owner of the interface what has to be redone after
// an element changed a value.
type ChangeEvent uint8

const (
	ChangeNone            ChangeEvent = iota // nothing to do
	ChangeRerender                           // redraw the whole interface
	ChangeRerenderWindow                     // redraw the window that changed
	ChangeReresolve                          // rebuild the layout of every window
	ChangeReresolveWindow                    // rebuild the layout of the window that changed
)

func (e ChangeEvent) String() string {
	switch e {
	case ChangeNone:
		return "none"
	case ChangeRerender:
		return "rerender"
	case ChangeRerenderWindow:
		return "rerender window"
	case ChangeReresolve:
		return "reresolve"
	case ChangeReresolveWindow:
		return "reresolve window"
	default:
		return "unknown"
	}
}

// EventSink receives change events produced by user interaction.
type EventSink interface {
	EmitChange(event ChangeEvent)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(ChangeEvent)

// EmitChange calls f.
func (f SinkFunc) EmitChange(event ChangeEvent) {
	f(event)
}

package ui

import (
	"fmt"

	"github.com/phanxgames/lantern/layout"
)

// Number is any built-in numeric type a slider can edit.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Binding connects a slider to a value it does not own. Get reads the live
// value; Set is called with every new value and applies it.
type Binding[T Number] struct {
	Get func() T
	Set func(T)
}

const (
	sliderHeight    = 10
	sliderKnobWidth = 6
)

// Slider edits a bound number between a minimum and a maximum.
type Slider[T Number] struct {
	binding Binding[T]
	minimum T
	maximum T
	change  ChangeEvent
}

// NewSlider creates a slider for the bound value. change is returned from
// every drag so the owner knows what to redo.
func NewSlider[T Number](binding Binding[T], minimum, maximum T, change ChangeEvent) *Slider[T] {
	if binding.Get == nil || binding.Set == nil {
		panic("ui: slider binding needs both Get and Set")
	}
	return &Slider[T]{binding: binding, minimum: minimum, maximum: maximum, change: change}
}

// Value returns the bound value.
func (s *Slider[T]) Value() T {
	return s.binding.Get()
}

// Fraction returns where the value sits between minimum and maximum, in
// [0, 1].
func (s *Slider[T]) Fraction() float32 {
	span := float64(s.maximum) - float64(s.minimum)
	if span == 0 {
		return 0
	}
	f := (float64(s.binding.Get()) - float64(s.minimum)) / span
	return float32(clampFloat(f, 0, 1))
}

func (s *Slider[T]) Constraint() layout.SizeConstraint {
	return layout.Constraint(layout.Fixed(layout.Percent(100)), layout.Fixed(layout.Pixels(sliderHeight)))
}

// Drag maps the pointer's horizontal position inside area to a value and
// writes it through the binding.
func (s *Slider[T]) Drag(area Area, x, _ float32) ChangeEvent {
	var f float64
	if area.Size.Width > 0 {
		f = clampFloat(float64(x-area.Position.X)/float64(area.Size.Width), 0, 1)
	}
	v := float64(s.minimum) + f*(float64(s.maximum)-float64(s.minimum))
	s.binding.Set(T(v))
	return s.change
}

func (s *Slider[T]) Render(p Painter, settings *InterfaceSettings, area Area, hovered bool) {
	x, y := area.Position.X, area.Position.Y
	w, h := area.Size.Width, area.Size.Height

	p.FillRect(x, y+h/3, w, h/3, settings.TrackColor)

	knob := settings.KnobColor
	if hovered {
		knob = settings.HoverColor
	}
	knobWidth := settings.scaled(sliderKnobWidth)
	p.FillRect(x+s.Fraction()*(w-knobWidth), y, knobWidth, h, knob)
}

// String renders the slider's value for debugging.
func (s *Slider[T]) String() string {
	return fmt.Sprintf("slider(%v in [%v, %v])", s.binding.Get(), s.minimum, s.maximum)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

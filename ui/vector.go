package ui

import (
	"fmt"

	"github.com/phanxgames/lantern/layout"
)

// ComponentBindings builds one Binding per component of an n-component value
// from indexed accessors.
func ComponentBindings[T Number](n int, get func(int) T, set func(int, T)) []Binding[T] {
	bindings := make([]Binding[T], n)
	for i := range bindings {
		bindings[i] = Binding[T]{
			Get: func() T { return get(i) },
			Set: func(v T) { set(i, v) },
		}
	}
	return bindings
}

// VectorElements emits a headline and a slider for every component. All
// slices must have the same length.
func VectorElements[T Number](labels []string, bindings []Binding[T], minimum, maximum []T, change ChangeEvent) []Element {
	n := len(bindings)
	if len(labels) != n || len(minimum) != n || len(maximum) != n {
		panic(fmt.Sprintf("ui: vector editor needs %d labels and bounds, got %d labels, %d minimums, %d maximums",
			n, len(labels), len(minimum), len(maximum)))
	}
	elements := make([]Element, 0, 2*n)
	for i, b := range bindings {
		elements = append(elements,
			NewHeadline(labels[i], HeadlineDefaultSize),
			NewSlider(b, minimum[i], maximum[i], change),
		)
	}
	return elements
}

// VectorWindow edits an N-component numeric vector with one slider per
// component.
type VectorWindow[T Number] struct {
	Unclassed

	name     string
	labels   []string
	bindings []Binding[T]
	minimum  []T
	maximum  []T
	change   ChangeEvent
}

// NewVectorWindow creates an editor for arbitrary components.
func NewVectorWindow[T Number](name string, labels []string, bindings []Binding[T], minimum, maximum []T, change ChangeEvent) *VectorWindow[T] {
	return &VectorWindow[T]{
		name:     name,
		labels:   labels,
		bindings: bindings,
		minimum:  minimum,
		maximum:  maximum,
		change:   change,
	}
}

// NewVector2Window creates an editor for a two-component vector. get must
// return the live value and set must store a new one.
func NewVector2Window[T Number](name string, get func() [2]T, set func([2]T), minimum, maximum [2]T, change ChangeEvent) *VectorWindow[T] {
	bindings := ComponentBindings(2,
		func(i int) T { return get()[i] },
		func(i int, v T) {
			current := get()
			current[i] = v
			set(current)
		},
	)
	return NewVectorWindow(name, []string{"x", "y"}, bindings, minimum[:], maximum[:], change)
}

// NewVector3Window creates an editor for a three-component vector.
func NewVector3Window[T Number](name string, get func() [3]T, set func([3]T), minimum, maximum [3]T, change ChangeEvent) *VectorWindow[T] {
	bindings := ComponentBindings(3,
		func(i int) T { return get()[i] },
		func(i int, v T) {
			current := get()
			current[i] = v
			set(current)
		},
	)
	return NewVectorWindow(name, []string{"x", "y", "z"}, bindings, minimum[:], maximum[:], change)
}

func (w *VectorWindow[T]) ToWindow(cache *WindowCache, settings *InterfaceSettings, available layout.Size) Window {
	elements := VectorElements(w.labels, w.bindings, w.minimum, w.maximum, w.change)
	return NewFramedWindow(cache, settings, available, w.name, "", elements, DefaultWindowConstraint)
}

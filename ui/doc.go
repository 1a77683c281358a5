// Package ui builds in-game windows out of layout-resolved elements.
//
// Any value can expose itself as an editor by implementing [PrototypeWindow]:
// it materializes a [Window] of elements such as [Headline] and [Slider]
// given the [WindowCache], the [InterfaceSettings] and the space available.
// Sliders never alias the data they edit. They read and write through a
// [Binding], so the owner decides how a new value is applied; edits still take
// effect immediately and in place.
//
// [Interface] owns the open windows, routes pointer input to them and forwards
// the resulting [ChangeEvent]s to an [EventSink].
package ui

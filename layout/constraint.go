package layout

import "fmt"

// Sizing selects how one axis of a SizeConstraint is resolved.
type Sizing uint8

const (
	SizingFixed     Sizing = iota // Exactly Default
	SizingFlexible                // Default clamped to [Min, Max], shrinks to what is left
	SizingRemaining               // Whatever is left after all other siblings
	SizingAuto                    // Pending until content is measured
)

// AxisConstraint is the declared sizing rule for a single axis.
type AxisConstraint struct {
	Sizing  Sizing
	Default Dimension
	Min     Dimension
	Max     Dimension
}

// Fixed returns an axis that resolves to exactly d.
func Fixed(d Dimension) AxisConstraint {
	return AxisConstraint{Sizing: SizingFixed, Default: d}
}

// Flexible returns an axis that prefers def, bounded by min and max.
func Flexible(min, def, max Dimension) AxisConstraint {
	return AxisConstraint{Sizing: SizingFlexible, Default: def, Min: min, Max: max}
}

// Remaining returns an axis that absorbs leftover space.
func Remaining() AxisConstraint {
	return AxisConstraint{Sizing: SizingRemaining}
}

// Auto returns an axis whose extent comes from content.
func Auto() AxisConstraint {
	return AxisConstraint{Sizing: SizingAuto}
}

// String renders the constraint in the compact "min > default < max" notation.
func (a AxisConstraint) String() string {
	switch a.Sizing {
	case SizingFixed:
		return formatDimension(a.Default)
	case SizingFlexible:
		return fmt.Sprintf("%s > %s < %s", formatDimension(a.Min), formatDimension(a.Default), formatDimension(a.Max))
	case SizingRemaining:
		return "!"
	default:
		return "?"
	}
}

func formatDimension(d Dimension) string {
	if d.IsPercent() {
		return fmt.Sprintf("%g%%", d.Amount)
	}
	return fmt.Sprintf("%g", d.Amount)
}

// resolve computes a concrete extent for every sizing except Remaining and
// Auto, which report 0. container is the parent's full extent on this axis
// and remaining is what is still free; the result never exceeds remaining
// and is never negative.
func (a AxisConstraint) resolve(container, remaining float32) float32 {
	if remaining < 0 {
		remaining = 0
	}
	switch a.Sizing {
	case SizingFixed:
		return clamp(a.Default.Resolve(container), 0, remaining)
	case SizingFlexible:
		lo := a.Min.Resolve(container)
		hi := a.Max.Resolve(container)
		v := clamp(a.Default.Resolve(container), lo, hi)
		return clamp(v, 0, remaining)
	default:
		return 0
	}
}

// SizeConstraint declares how a child wants to be sized on both axes.
type SizeConstraint struct {
	Width  AxisConstraint
	Height AxisConstraint
}

// Constraint is shorthand for SizeConstraint{Width: width, Height: height}.
func Constraint(width, height AxisConstraint) SizeConstraint {
	return SizeConstraint{Width: width, Height: height}
}

// String renders the constraint as "(width, height)".
func (c SizeConstraint) String() string {
	return fmt.Sprintf("(%s, %s)", c.Width, c.Height)
}

// ResolvePartial resolves the constraint against the space available to a
// container that sizes itself. Remaining axes take the whole available extent;
// Auto axes stay pending.
func (c SizeConstraint) ResolvePartial(available Size) PartialSize {
	p := PartialSize{available: available}
	switch c.Width.Sizing {
	case SizingRemaining:
		p.Width = available.Width
	case SizingAuto:
		p.WidthPending = true
	default:
		p.Width = c.Width.resolve(available.Width, available.Width)
	}
	switch c.Height.Sizing {
	case SizingRemaining:
		p.Height = available.Height
	case SizingAuto:
		p.HeightPending = true
	default:
		p.Height = c.Height.resolve(available.Height, available.Height)
	}
	return p
}

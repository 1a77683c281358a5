package layout

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitPixels  Unit = iota // Absolute pixel count
	UnitPercent             // Percentage of the container's extent
)

// Dimension is a length that is either an absolute pixel count or a
// percentage of the container.
type Dimension struct {
	Amount float32
	Unit   Unit
}

// Pixels returns a Dimension of n absolute pixels.
func Pixels(n float32) Dimension {
	return Dimension{Amount: n, Unit: UnitPixels}
}

// Percent returns a Dimension relative to the container.
// The value is on a 0-100 scale (50 = 50%).
func Percent(p float32) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Resolve computes the pixel length given the container's extent on the
// same axis.
func (d Dimension) Resolve(container float32) float32 {
	switch d.Unit {
	case UnitPercent:
		return container * d.Amount / 100
	default:
		return d.Amount
	}
}

// IsPercent reports whether the dimension depends on the container.
func (d Dimension) IsPercent() bool {
	return d.Unit == UnitPercent
}

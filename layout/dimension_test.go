package layout

import "testing"

func TestDimensionResolve(t *testing.T) {
	tests := []struct {
		name      string
		d         Dimension
		container float32
		want      float32
	}{
		{"pixels", Pixels(40), 300, 40},
		{"pixels ignore container", Pixels(40), 0, 40},
		{"percent half", Percent(50), 300, 150},
		{"percent full", Percent(100), 250, 250},
		{"percent zero container", Percent(80), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Resolve(tt.container); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.container, got, tt.want)
			}
		})
	}
}

func TestDimensionIsPercent(t *testing.T) {
	if Pixels(10).IsPercent() {
		t.Error("Pixels(10).IsPercent() = true")
	}
	if !Percent(10).IsPercent() {
		t.Error("Percent(10).IsPercent() = false")
	}
}

func TestAxisConstraintString(t *testing.T) {
	tests := []struct {
		a    AxisConstraint
		want string
	}{
		{Fixed(Pixels(12)), "12"},
		{Fixed(Percent(100)), "100%"},
		{Flexible(Pixels(200), Pixels(250), Pixels(300)), "200 > 250 < 300"},
		{Remaining(), "!"},
		{Auto(), "?"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	c := Constraint(Flexible(Pixels(200), Pixels(250), Pixels(300)), Auto())
	if got := c.String(); got != "(200 > 250 < 300, ?)" {
		t.Errorf("SizeConstraint.String() = %q", got)
	}
}

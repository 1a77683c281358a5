package layout

import "testing"

func assertPlacement(t *testing.T, name string, got Placement, want Placement) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func TestResolveFixedRemainingFixed(t *testing.T) {
	container := Size{Width: 300, Height: 100}
	got := Resolve(container, Horizontal, 0, []SizeConstraint{
		Constraint(Fixed(Pixels(50)), Remaining()),
		Constraint(Remaining(), Remaining()),
		Constraint(Fixed(Pixels(50)), Remaining()),
	})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	assertPlacement(t, "first", got[0], Placement{Size{50, 100}, Position{0, 0}})
	assertPlacement(t, "middle", got[1], Placement{Size{200, 100}, Position{50, 0}})
	assertPlacement(t, "last", got[2], Placement{Size{50, 100}, Position{250, 0}})
}

func TestResolveRemainingSplitEvenly(t *testing.T) {
	got := Resolve(Size{Width: 100, Height: 20}, Horizontal, 0, []SizeConstraint{
		Constraint(Remaining(), Fixed(Pixels(20))),
		Constraint(Remaining(), Fixed(Pixels(20))),
	})
	assertPlacement(t, "left", got[0], Placement{Size{50, 20}, Position{0, 0}})
	assertPlacement(t, "right", got[1], Placement{Size{50, 20}, Position{50, 0}})
}

func TestResolveFlexibleShrinksToRemainder(t *testing.T) {
	got := Resolve(Size{Width: 50, Height: 10}, Horizontal, 0, []SizeConstraint{
		Constraint(Flexible(Pixels(10), Pixels(200), Pixels(300)), Fixed(Pixels(10))),
	})
	if got[0].Size.Width != 50 {
		t.Errorf("width = %v, want 50", got[0].Size.Width)
	}
}

func TestResolveFlexibleClampsDefault(t *testing.T) {
	tests := []struct {
		name string
		a    AxisConstraint
		want float32
	}{
		{"default inside bounds", Flexible(Pixels(10), Pixels(40), Pixels(80)), 40},
		{"default below min", Flexible(Pixels(60), Pixels(40), Pixels(80)), 60},
		{"default above max", Flexible(Pixels(10), Pixels(120), Pixels(80)), 80},
		{"percent bounds", Flexible(Percent(10), Percent(50), Percent(40)), 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(Size{Width: 200, Height: 10}, Horizontal, 0, []SizeConstraint{
				Constraint(tt.a, Fixed(Pixels(10))),
			})
			if got[0].Size.Width != tt.want {
				t.Errorf("width = %v, want %v", got[0].Size.Width, tt.want)
			}
		})
	}
}

func TestResolvePercentOfContainerNotLeftover(t *testing.T) {
	got := Resolve(Size{Width: 200, Height: 10}, Horizontal, 0, []SizeConstraint{
		Constraint(Fixed(Pixels(100)), Fixed(Pixels(10))),
		Constraint(Fixed(Percent(25)), Fixed(Pixels(10))),
	})
	// 25% of the 200px container, not of the 100px left over.
	if got[1].Size.Width != 50 {
		t.Errorf("percent child width = %v, want 50", got[1].Size.Width)
	}
	if got[1].Position.X != 100 {
		t.Errorf("percent child x = %v, want 100", got[1].Position.X)
	}
}

func TestResolveOverflowClampsToZero(t *testing.T) {
	got := Resolve(Size{Width: 100, Height: 10}, Horizontal, 0, []SizeConstraint{
		Constraint(Fixed(Pixels(80)), Fixed(Pixels(10))),
		Constraint(Flexible(Pixels(50), Pixels(60), Pixels(70)), Fixed(Pixels(10))),
		Constraint(Fixed(Pixels(40)), Fixed(Pixels(10))),
		Constraint(Remaining(), Fixed(Pixels(10))),
	})
	want := []float32{80, 20, 0, 0}
	var total float32
	for i, p := range got {
		if p.Size.Width != want[i] {
			t.Errorf("child %d width = %v, want %v", i, p.Size.Width, want[i])
		}
		if p.Size.Width < 0 {
			t.Errorf("child %d has negative width %v", i, p.Size.Width)
		}
		total += p.Size.Width
	}
	if total > 100 {
		t.Errorf("total width = %v exceeds container", total)
	}
}

func TestResolveSpacing(t *testing.T) {
	got := Resolve(Size{Width: 100, Height: 10}, Horizontal, 10, []SizeConstraint{
		Constraint(Fixed(Pixels(20)), Fixed(Pixels(10))),
		Constraint(Remaining(), Fixed(Pixels(10))),
		Constraint(Fixed(Pixels(20)), Fixed(Pixels(10))),
	})
	// 100 - 2*10 spacing - 40 fixed = 40 for the remaining child.
	assertPlacement(t, "first", got[0], Placement{Size{20, 10}, Position{0, 0}})
	assertPlacement(t, "middle", got[1], Placement{Size{40, 10}, Position{30, 0}})
	assertPlacement(t, "last", got[2], Placement{Size{20, 10}, Position{80, 0}})
}

func TestResolveVertical(t *testing.T) {
	got := Resolve(Size{Width: 250, Height: 120}, Vertical, 0, []SizeConstraint{
		Constraint(Fixed(Percent(100)), Fixed(Pixels(12))),
		Constraint(Fixed(Percent(50)), Remaining()),
	})
	assertPlacement(t, "headline", got[0], Placement{Size{250, 12}, Position{0, 0}})
	assertPlacement(t, "body", got[1], Placement{Size{125, 108}, Position{0, 12}})
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(Size{Width: 10, Height: 10}, Horizontal, 4, nil); got != nil {
		t.Errorf("Resolve(nil) = %v, want nil", got)
	}
}

func TestPlacementResolverAllocate(t *testing.T) {
	r := NewPlacementResolver(Size{Width: 200, Height: 100}, Vertical, 4)

	p, pos := r.Allocate(Constraint(Fixed(Percent(100)), Fixed(Pixels(12))))
	if !p.Resolved() || p.Width != 200 || p.Height != 12 {
		t.Errorf("first = %+v, want 200x12", p)
	}
	if pos != (Position{0, 0}) {
		t.Errorf("first position = %+v", pos)
	}

	p, pos = r.Allocate(Constraint(Fixed(Percent(100)), Fixed(Pixels(20))))
	if p.Height != 20 || pos != (Position{0, 16}) {
		t.Errorf("second = %+v at %+v, want height 20 at y=16", p, pos)
	}

	p, pos = r.Allocate(Constraint(Remaining(), Remaining()))
	if p.Height != 60 || p.Width != 200 || pos.Y != 40 {
		t.Errorf("remaining = %+v at %+v, want 200x60 at y=40", p, pos)
	}
	if got := r.Remaining(); got.Height != 0 || got.Width != 200 {
		t.Errorf("Remaining() = %+v, want {200 0}", got)
	}
	if got := r.Cursor(); got.Y != 100 {
		t.Errorf("Cursor().Y = %v, want 100", got.Y)
	}

	// Exhausted: further children clamp to zero instead of failing.
	p, _ = r.Allocate(Constraint(Fixed(Pixels(10)), Fixed(Pixels(30))))
	if p.Height != 0 {
		t.Errorf("overflow height = %v, want 0", p.Height)
	}
}

func TestPlacementResolverAutoPending(t *testing.T) {
	r := NewPlacementResolver(Size{Width: 100, Height: 100}, Horizontal, 0)
	p, _ := r.Allocate(Constraint(Auto(), Fixed(Pixels(10))))
	if !p.WidthPending || p.HeightPending {
		t.Fatalf("pending = (%v,%v), want (true,false)", p.WidthPending, p.HeightPending)
	}
	if r.Remaining().Width != 100 {
		t.Errorf("auto child consumed space: remaining %v", r.Remaining().Width)
	}
	got := p.Finalize(Size{Width: 140, Height: 99})
	if got.Width != 100 || got.Height != 10 {
		t.Errorf("Finalize = %+v, want {100 10}", got)
	}
}

func TestResolvePartial(t *testing.T) {
	available := Size{Width: 800, Height: 600}
	c := Constraint(Flexible(Pixels(200), Pixels(250), Pixels(300)), Auto())
	p := c.ResolvePartial(available)
	if p.Width != 250 || p.WidthPending {
		t.Errorf("width = %v pending=%v, want 250", p.Width, p.WidthPending)
	}
	if !p.HeightPending {
		t.Fatal("height should be pending")
	}
	if got := p.Finalize(Size{Height: 90}); got != (Size{250, 90}) {
		t.Errorf("Finalize = %+v, want {250 90}", got)
	}
	if got := p.Finalize(Size{Height: 9000}); got.Height != 600 {
		t.Errorf("Finalize clamps to available: height %v, want 600", got.Height)
	}

	full := Constraint(Remaining(), Fixed(Percent(50))).ResolvePartial(available)
	if full.Width != 800 || full.Height != 300 {
		t.Errorf("remaining/percent = %+v, want 800x300", full)
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{Width: 10, Height: 5}
	p := Position{X: 2, Y: 3}
	if !s.Contains(p, 2, 3) || !s.Contains(p, 12, 8) {
		t.Error("edges should be inside")
	}
	if s.Contains(p, 13, 4) {
		t.Error("point right of rect reported inside")
	}
}

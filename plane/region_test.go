package plane

import "testing"

func TestRegionAccessors(t *testing.T) {
	r := NewRegion(2, 3, 10, 5)
	if r.Left() != 2 || r.Top() != 3 || r.Width() != 10 || r.Height() != 5 {
		t.Fatalf("unexpected region fields: %+v", r)
	}
	if r.Right() != 11 {
		t.Errorf("Right() = %d, want 11", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, want 7", r.Bottom())
	}
}

func TestRegionZeroSizeSaturates(t *testing.T) {
	r := NewRegion(5, 5, 0, 0)
	if r.Right() != 5 || r.Bottom() != 5 {
		t.Fatalf("zero-size region should collapse Right/Bottom to the origin, got Right=%d Bottom=%d", r.Right(), r.Bottom())
	}
}

func TestRegionClip(t *testing.T) {
	a := NewRegion(0, 0, 10, 10)
	b := NewRegion(5, 5, 10, 10)
	c := a.Clip(b)
	if c.Left() != 5 || c.Top() != 5 || c.Width() != 5 || c.Height() != 5 {
		t.Fatalf("Clip() = %+v, want left=5 top=5 width=5 height=5", c)
	}
}

func TestRegionShiftLeftRightWhenNeeded(t *testing.T) {
	r := NewRegion(0, 0, 10, 10)
	if r.ShiftLeftWhenNeeded(5, 1) {
		t.Error("column well inside the viewport should not trigger a left shift")
	}
	if !r.ShiftRightWhenNeeded(15, 1) {
		t.Error("column past the right edge should trigger a right shift")
	}
	if r.Right() < 15+1 {
		t.Errorf("after ShiftRightWhenNeeded, Right() = %d, want >= %d", r.Right(), 16)
	}

	r2 := NewRegion(5, 0, 10, 10)
	if !r2.ShiftLeftWhenNeeded(2, 1) {
		t.Error("column left of the margin should trigger a left shift")
	}
	if r2.Left() > 1 {
		t.Errorf("after ShiftLeftWhenNeeded, Left() = %d, want <= 1", r2.Left())
	}
}

func TestRegionShiftUpDownWhenNeeded(t *testing.T) {
	r := NewRegion(0, 5, 10, 10)
	if !r.ShiftUpWhenNeeded(2, 1) {
		t.Error("row above the margin should trigger an up shift")
	}
	r2 := NewRegion(0, 0, 10, 10)
	if !r2.ShiftDownWhenNeeded(15, 1) {
		t.Error("row past the bottom margin should trigger a down shift")
	}
}

func TestRegionResize(t *testing.T) {
	r := NewRegion(1, 1, 10, 10)
	r.Resize(20, 30)
	if r.Width() != 20 || r.Height() != 30 {
		t.Fatalf("after Resize, size = (%d, %d), want (20, 30)", r.Width(), r.Height())
	}
	if r.Left() != 1 || r.Top() != 1 {
		t.Fatalf("Resize must not move the origin, got (%d, %d)", r.Left(), r.Top())
	}
}

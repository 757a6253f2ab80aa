package sizestate

import "testing"

func TestNewStartsSmallWhenBelowMinimum(t *testing.T) {
	s := New(10, 5, 30, 10)
	if s.Change() != IntoSmall {
		t.Fatalf("Change() = %v, want IntoSmall", s.Change())
	}
	if !s.TooSmall() {
		t.Fatal("TooSmall() should be true right after a too-small New()")
	}
}

func TestNewStartsNormalWhenAboveMinimum(t *testing.T) {
	s := New(80, 24, 30, 10)
	if s.Change() != IntoNormal {
		t.Fatalf("Change() = %v, want IntoNormal", s.Change())
	}
	if s.TooSmall() {
		t.Fatal("TooSmall() should be false right after a normal-size New()")
	}
}

func TestResizeStateMachineTransitions(t *testing.T) {
	s := New(50, 50, 30, 10)
	if s.Change() != IntoNormal {
		t.Fatalf("initial Change() = %v, want IntoNormal", s.Change())
	}

	s.Resize(50, 50)
	if s.Change() != Normal {
		t.Fatalf("after a second normal Resize, Change() = %v, want Normal", s.Change())
	}
	s.Resize(50, 50)
	if s.Change() != Normal {
		t.Fatalf("Normal should be steady across repeated normal resizes, got %v", s.Change())
	}

	s.Resize(10, 10)
	if s.Change() != IntoSmall {
		t.Fatalf("first too-small Resize should report IntoSmall, got %v", s.Change())
	}
	if !s.TooSmall() {
		t.Fatal("TooSmall() should be true on IntoSmall")
	}

	s.Resize(10, 10)
	if s.Change() != Small {
		t.Fatalf("second consecutive too-small Resize should collapse to Small, got %v", s.Change())
	}
	if !s.TooSmall() {
		t.Fatal("TooSmall() should be true on Small")
	}

	s.Resize(50, 50)
	if s.Change() != IntoNormal {
		t.Fatalf("recovering from Small should report IntoNormal, got %v", s.Change())
	}
	if s.TooSmall() {
		t.Fatal("TooSmall() should be false on IntoNormal")
	}

	s.Resize(50, 50)
	if s.Change() != Normal {
		t.Fatalf("second consecutive normal Resize after recovery should collapse to Normal, got %v", s.Change())
	}
}

func TestResizeWidthAndHeightBothGateSmallness(t *testing.T) {
	s := New(80, 24, 30, 10)
	s.Resize(20, 24) // width alone below minimum
	if !s.TooSmall() {
		t.Fatal("a too-narrow width alone should trigger TooSmall")
	}

	s2 := New(80, 24, 30, 10)
	s2.Resize(80, 5) // height alone below minimum
	if !s2.TooSmall() {
		t.Fatal("a too-short height alone should trigger TooSmall")
	}
}

package plane

import "testing"

func TestGlyphJoinFullJoinMutuallyExclusive(t *testing.T) {
	g := NewGlyph(LightHorizontal)
	g.SetJoin()
	if !g.IsJoin() || g.IsFullJoin() {
		t.Fatalf("after SetJoin: IsJoin=%v IsFullJoin=%v", g.IsJoin(), g.IsFullJoin())
	}
	g.SetFullJoin()
	if g.IsJoin() || !g.IsFullJoin() {
		t.Fatalf("after SetFullJoin: IsJoin=%v IsFullJoin=%v", g.IsJoin(), g.IsFullJoin())
	}
	g.ClearFullJoin()
	if g.IsJoin() || g.IsFullJoin() {
		t.Fatalf("after ClearFullJoin: IsJoin=%v IsFullJoin=%v", g.IsJoin(), g.IsFullJoin())
	}
}

func TestGlyphHorzFill(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want rune
	}{
		{"single crossing left fills single", LightUpAndHorizontal, LightHorizontal},
		{"double crossing left fills double", UpSingleAndHorizontalDouble, DoubleHorizontal},
		{"non-crossing fills space", LightVertical, Space},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGlyph(tc.ch)
			got := g.HorzFill()
			if got.Ch != tc.want {
				t.Errorf("HorzFill(%q) = %q, want %q", tc.ch, got.Ch, tc.want)
			}
		})
	}
}

func TestGlyphIsFrame(t *testing.T) {
	frameChars := []rune{
		LightHorizontal, LightVertical, LightDownAndRight, LightDownAndLeft,
		LightUpAndRight, LightUpAndLeft, LightVerticalAndRight, LightVerticalAndLeft,
		LightDownAndHorizontal, LightUpAndHorizontal, LightVerticalAndHorizontal,
		DoubleHorizontal, DoubleVertical,
		VerticalSingleAndRightDouble, VerticalDoubleAndRightSingle,
		VerticalSingleAndLeftDouble, VerticalDoubleAndLeftSingle,
		DownSingleAndHorizontalDouble, DownDoubleAndHorizontalSingle,
		UpSingleAndHorizontalDouble, UpDoubleAndHorizontalSingle,
		VerticalSingleAndHorizontalDouble, VerticalDoubleAndHorizontalSingle,
		DoubleVerticalAndHorizontal,
	}
	if len(frameChars) != 24 {
		t.Fatalf("test setup: expected 24 frame characters, got %d", len(frameChars))
	}
	for _, ch := range frameChars {
		if !NewGlyph(ch).IsFrame() {
			t.Errorf("IsFrame(%q) = false, want true", ch)
		}
	}
	for _, ch := range []rune{Space, 'a', '0'} {
		if NewGlyph(ch).IsFrame() {
			t.Errorf("IsFrame(%q) = true, want false", ch)
		}
	}
}

func TestGlyphVertLineLeftRight(t *testing.T) {
	if !NewGlyph(LightVertical).IsVertLineLeft() {
		t.Error("plain vertical line should be a legal left-of-caret glyph")
	}
	if !NewGlyph(LightVertical).IsVertLineRight() {
		t.Error("plain vertical line should be a legal right-of-caret glyph")
	}
	if NewGlyph(LightDownAndRight).IsVertLineLeft() {
		t.Error("┌ does not reach its right edge as a vertical stroke")
	}
}

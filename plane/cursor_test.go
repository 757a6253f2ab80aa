package plane

import "testing"

func TestCursorPosAndSet(t *testing.T) {
	c := NewCursor(Caret, 3, 4)
	col, row := c.Pos()
	if col != 3 || row != 4 {
		t.Fatalf("Pos() = (%d, %d), want (3, 4)", col, row)
	}
	c.Set(7, 8)
	col, row = c.Pos()
	if col != 7 || row != 8 {
		t.Fatalf("after Set, Pos() = (%d, %d), want (7, 8)", col, row)
	}
}

func TestCursorDecSaturates(t *testing.T) {
	c := NewCursor(Caret, 1, 1)
	c.DecCol(5)
	if c.Col() != 0 {
		t.Fatalf("DecCol past zero should saturate, got %d", c.Col())
	}
	c.DecRow(5)
	if c.Row() != 0 {
		t.Fatalf("DecRow past zero should saturate, got %d", c.Row())
	}
}

func TestCursorOffsetDoesNotMutate(t *testing.T) {
	c := NewCursor(Caret, 2, 2)
	col, row := c.Offset(-5, -5)
	if col != 0 || row != 0 {
		t.Fatalf("Offset(-5,-5) from (2,2) = (%d, %d), want (0, 0)", col, row)
	}
	if gotCol, gotRow := c.Pos(); gotCol != 2 || gotRow != 2 {
		t.Fatalf("Offset must not mutate the cursor, Pos() = (%d, %d)", gotCol, gotRow)
	}
}

func TestCursorModePredicates(t *testing.T) {
	tests := []struct {
		shape        CursorShape
		insertMode   bool
		overrideMode bool
	}{
		{Caret, true, false},
		{Block, false, true},
		{UnderScore, false, true},
	}
	for _, tc := range tests {
		c := NewCursor(tc.shape, 0, 0)
		if c.InsertMode() != tc.insertMode || c.OverrideMode() != tc.overrideMode {
			t.Errorf("shape %v: InsertMode=%v OverrideMode=%v, want %v/%v",
				tc.shape, c.InsertMode(), c.OverrideMode(), tc.insertMode, tc.overrideMode)
		}
	}
}

func TestCursorToggleCaretBlock(t *testing.T) {
	c := NewCursor(Caret, 0, 0)
	if got := c.ToggleCaretBlock(); got != Block {
		t.Fatalf("Caret -> ToggleCaretBlock = %v, want Block", got)
	}
	if got := c.ToggleCaretBlock(); got != Caret {
		t.Fatalf("Block -> ToggleCaretBlock = %v, want Caret", got)
	}
	c.shape = UnderScore
	if got := c.ToggleCaretBlock(); got != Block {
		t.Fatalf("UnderScore -> ToggleCaretBlock = %v, want Block", got)
	}
}

func TestCursorToggleCaretUnderScore(t *testing.T) {
	c := NewCursor(Caret, 0, 0)
	if got := c.ToggleCaretUnderScore(); got != UnderScore {
		t.Fatalf("Caret -> ToggleCaretUnderScore = %v, want UnderScore", got)
	}
	if got := c.ToggleCaretUnderScore(); got != Caret {
		t.Fatalf("UnderScore -> ToggleCaretUnderScore = %v, want Caret", got)
	}
	c.shape = Block
	if got := c.ToggleCaretUnderScore(); got != UnderScore {
		t.Fatalf("Block -> ToggleCaretUnderScore = %v, want UnderScore", got)
	}
}

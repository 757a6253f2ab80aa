package plane

import "testing"

func simpleCellTable() string {
	return "┌───┐\n│ A │\n└───┘"
}

func TestNewPlaneBasic(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	if len(p.Content()) != 3 {
		t.Fatalf("len(Content()) = %d, want 3", len(p.Content()))
	}
	col, row := p.CursorPos()
	if col != 1 || row != 1 {
		t.Fatalf("initial CursorPos() = (%d, %d), want (1, 1)", col, row)
	}
	if p.Cursor().Shape() != Caret {
		t.Fatalf("initial cursor shape = %v, want Caret", p.Cursor().Shape())
	}
}

func TestNewPlaneDiscardsBlankLines(t *testing.T) {
	p := NewPlane("┌─┐\n\n│A│\n\n└─┘\n", 80, 24)
	if len(p.Content()) != 3 {
		t.Fatalf("len(Content()) = %d, want 3 (blank lines discarded)", len(p.Content()))
	}
}

func TestPlaneCursorMoveRightThenLeft(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)

	if !p.CursorMoveRight() {
		t.Fatal("CursorMoveRight from ( ) onto 'A' should succeed")
	}
	if ch, _ := p.CursorChar(); ch != 'A' {
		t.Fatalf("CursorChar() = %q, want 'A'", ch)
	}
	if !p.CursorMoveRight() {
		t.Fatal("CursorMoveRight from 'A' onto trailing space should succeed")
	}
	if !p.CursorMoveRight() {
		t.Fatal("CursorMoveRight onto the right border (Caret may rest on a vertical line) should succeed")
	}
	if p.CursorMoveRight() {
		t.Fatal("CursorMoveRight past the right border should fail")
	}

	if !p.CursorMoveLeft() {
		t.Fatal("CursorMoveLeft back onto the trailing space should succeed")
	}
	if !p.CursorMoveLeft() {
		t.Fatal("CursorMoveLeft back onto 'A' should succeed")
	}
	if ch, _ := p.CursorChar(); ch != 'A' {
		t.Fatalf("CursorChar() after moving back = %q, want 'A'", ch)
	}
}

func TestPlaneCursorMoveLeftStopsAtLeftBorder(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	if p.CursorMoveLeft() {
		t.Fatal("CursorMoveLeft from column 1 should fail: column 0 is the left border")
	}
}

func TestPlaneInsertCharInPlaceWhenRoomExists(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	if !p.InsertChar('X') {
		t.Fatal("InsertChar should succeed when a vertical line bounds the cell")
	}
	if got := p.Content()[1].Text(); got != "│X A│" {
		t.Fatalf("row 1 = %q, want %q", got, "│X A│")
	}
	col, row := p.CursorPos()
	if col != 2 || row != 1 {
		t.Fatalf("CursorPos() after insert = (%d, %d), want (2, 1)", col, row)
	}
	if len(p.Content()[0]) != 5 {
		t.Fatalf("header row width changed to %d, want unchanged at 5 (no widen expected)", len(p.Content()[0]))
	}
}

func TestPlaneInsertCharWidensFullCell(t *testing.T) {
	p := NewPlane("┌─┐\n│A│\n└─┘", 80, 24)
	if !p.InsertChar('X') {
		t.Fatal("InsertChar should succeed by widening a full cell")
	}
	rows := p.Content()
	if got := rows[0].Text(); got != "┌──┐" {
		t.Fatalf("header row = %q, want %q", got, "┌──┐")
	}
	if got := rows[1].Text(); got != "│XA│" {
		t.Fatalf("content row = %q, want %q", got, "│XA│")
	}
	if got := rows[2].Text(); got != "└──┘" {
		t.Fatalf("footer row = %q, want %q", got, "└──┘")
	}
	col, row := p.CursorPos()
	if col != 2 || row != 1 {
		t.Fatalf("CursorPos() after widening insert = (%d, %d), want (2, 1)", col, row)
	}
}

func TestPlaneOverrideCharNeverWidens(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	widthBefore := len(p.Content()[1])
	if !p.OverrideChar('X') {
		t.Fatal("OverrideChar should succeed on a non-frame glyph")
	}
	if got := p.Content()[1].Text(); got != "│XA │" {
		t.Fatalf("row 1 = %q, want %q", got, "│XA │")
	}
	if len(p.Content()[1]) != widthBefore {
		t.Fatalf("OverrideChar must never widen the row, width changed from %d to %d", widthBefore, len(p.Content()[1]))
	}
	col, row := p.CursorPos()
	if col != 2 || row != 1 {
		t.Fatalf("CursorPos() after override = (%d, %d), want (2, 1)", col, row)
	}
}

func TestPlaneOverrideCharRefusesFrameGlyph(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	p.CursorMoveRight()
	p.CursorMoveRight()
	p.CursorMoveRight() // now resting on the right border glyph
	if p.OverrideChar('X') {
		t.Fatal("OverrideChar must refuse to replace the frame glyph under the cursor")
	}
}

func TestPlaneDeleteCharUnderCursorOnLastCellChar(t *testing.T) {
	p := NewPlane(simpleCellTable(), 80, 24)
	p.CursorMoveRight() // onto 'A'
	if !p.DeleteCharUnderCursor() {
		t.Fatal("DeleteCharUnderCursor on the last content glyph of a cell should succeed")
	}
	if got := p.Content()[1].Text(); got != "│  │" {
		t.Fatalf("row 1 = %q, want %q", got, "│  │")
	}
}

func splitCellTable() string {
	return "┌─────┐\n│ AB  │\n│     │\n└─────┘"
}

func TestPlaneSplitLineReusesBlankRow(t *testing.T) {
	p := NewPlane(splitCellTable(), 80, 24)
	p.CursorMoveRight() // column 2, onto 'A'

	if !p.SplitLine() {
		t.Fatal("SplitLine should succeed when a blank row is available below")
	}
	if len(p.Content()) != 4 {
		t.Fatalf("SplitLine reused the existing blank row, row count changed to %d, want 4", len(p.Content()))
	}
	if got := p.Content()[1].Text(); got != "│ A   │" {
		t.Fatalf("row 1 after split = %q, want %q", got, "│ A   │")
	}
	if got := p.Content()[2].Text(); got != "│B    │" {
		t.Fatalf("row 2 after split = %q, want %q", got, "│B    │")
	}
	col, row := p.CursorPos()
	if col != 1 || row != 2 {
		t.Fatalf("CursorPos() after split = (%d, %d), want (1, 2)", col, row)
	}
}

func TestPlaneSplitLineThenUnsplitRestoresContent(t *testing.T) {
	p := NewPlane(splitCellTable(), 80, 24)
	p.CursorMoveRight() // column 2, onto 'A'

	if !p.SplitLine() {
		t.Fatal("SplitLine should succeed")
	}
	if !p.DeleteCharBeforeCursor() {
		t.Fatal("Backspace at the start of the split cell should unsplit the line")
	}

	if len(p.Content()) != 3 {
		t.Fatalf("unsplit should collapse the spare blank row, row count = %d, want 3", len(p.Content()))
	}
	if got := p.Content()[1].Text(); got != "│ AB  │" {
		t.Fatalf("row 1 after unsplit = %q, want original %q", got, "│ AB  │")
	}
	col, row := p.CursorPos()
	if col != 3 || row != 1 {
		t.Fatalf("CursorPos() after unsplit = (%d, %d), want (3, 1)", col, row)
	}
}

func TestUpdateJoiningRowPromotesOnlyUnderSingleVertLine(t *testing.T) {
	// Row 0's "┐" at column 2 marks the join column; row 2's "┴" there is
	// what joinRowInfo scans for, so the table already reads as joined.
	single := NewPlane("┌─┐\n│ │\n│ ┴", 80, 24)
	if got := single.Content()[2][2].Ch; got != LightUpAndHorizontal {
		t.Fatalf("under a single vertical line, join glyph = %q, want %q (stays promoted)", got, LightUpAndHorizontal)
	}

	double := NewPlane("┌─┐\n│ ║\n│ ┴", 80, 24)
	if got := double.Content()[2][2].Ch; got != LightHorizontal {
		t.Fatalf("under a double vertical line, join glyph = %q, want %q (demoted)", got, LightHorizontal)
	}
}

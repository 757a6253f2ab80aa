package plane

import "testing"

func TestRowFromTextAndText(t *testing.T) {
	r := RowFromText("┌─┐")
	if got := r.Text(); got != "┌─┐" {
		t.Fatalf("Text() = %q, want %q", got, "┌─┐")
	}
	if len(r) != 3 {
		t.Fatalf("len(r) = %d, want 3", len(r))
	}
}

func TestRowSearchVertLine(t *testing.T) {
	r := RowFromText("│ab│")
	if i, ok := r.SearchVertLineRight(1); !ok || i != 3 {
		t.Fatalf("SearchVertLineRight(1) = (%d, %v), want (3, true)", i, ok)
	}
	if i, ok := r.SearchVertLineLeft(3); !ok || i != 0 {
		t.Fatalf("SearchVertLineLeft(3) = (%d, %v), want (0, true)", i, ok)
	}
}

func TestRowCellRangeAndEmptyRange(t *testing.T) {
	r := RowFromText("│  │")
	left, right, ok := r.CellRange(1)
	if !ok || left != 1 || right != 2 {
		t.Fatalf("CellRange(1) = (%d, %d, %v), want (1, 2, true)", left, right, ok)
	}
	if !r.IsEmptyRange(left, right) {
		t.Error("IsEmptyRange over two spaces should be true")
	}
	r[1].SetChar('x')
	if r.IsEmptyRange(left, right) {
		t.Error("IsEmptyRange should be false once a cell holds content")
	}
}

func TestRowInsertFill(t *testing.T) {
	r := RowFromText("│ab│")
	before := len(r)
	r.InsertFill(1)
	if len(r) != before+1 {
		t.Fatalf("len(r) after InsertFill = %d, want %d", len(r), before+1)
	}
	if got := r.Text(); got != "│ab │" {
		t.Fatalf("Text() after InsertFill = %q, want %q", got, "│ab │")
	}
}

func TestRowShiftTextRightAndLeft(t *testing.T) {
	r := RowFromText("│ab│")
	r.ShiftTextRight(1, 2, 'c')
	if got := r.Text(); got != "│ca│" {
		t.Fatalf("Text() after ShiftTextRight = %q, want %q", got, "│ca│")
	}
	r.ShiftTextLeft(1, 2)
	if got := r.Text(); got != "│a │" {
		t.Fatalf("Text() after ShiftTextLeft = %q, want %q", got, "│a │")
	}
}

func TestRowIsDeletableSpaceAndDeleteSpace(t *testing.T) {
	r := RowFromText("│a │")
	if !r.IsDeletableSpace(1) {
		t.Fatal("trailing space before the right border should be deletable")
	}
	r.DeleteSpace(1)
	if got := r.Text(); got != "│a│" {
		t.Fatalf("Text() after DeleteSpace = %q, want %q", got, "│a│")
	}
}

func TestRowIsDeletableSpaceRejectsFrameBeforeLine(t *testing.T) {
	r := RowFromText("┌│")
	if r.IsDeletableSpace(1) {
		t.Fatal("a vertical line directly preceded by a frame glyph must not be deletable")
	}
}

func TestRowJoinFlags(t *testing.T) {
	r := RowFromText("───")
	if r.IsJoin() || r.IsFullJoin() {
		t.Fatal("fresh row must not start as a join row")
	}
	r.SetJoin()
	if !r.IsJoin() {
		t.Fatal("SetJoin should mark the row as a join row")
	}
	r.SetFullJoin()
	if !r.IsFullJoin() || r.IsJoin() {
		t.Fatal("SetFullJoin should supersede Join on every glyph")
	}
}

package plane

// Row is an ordered sequence of Glyphs forming one line of the table. Rows
// are not required to share a length: the information-item header cell may
// be narrower than the body.
type Row []Glyph

// NewRow returns a row of width glyphs, all carrying ch.
func NewRow(width int, ch rune) Row {
	row := make(Row, width)
	for i := range row {
		row[i] = NewGlyph(ch)
	}
	return row
}

// RowFromText converts a line of text into a row of glyphs with attributes
// cleared.
func RowFromText(text string) Row {
	runes := []rune(text)
	row := make(Row, len(runes))
	for i, ch := range runes {
		row[i] = NewGlyph(ch)
	}
	return row
}

// IsJoin reports whether this row is the joining line between the
// information-item header and the decision table's body. Row-level join
// state is carried by the row's first glyph.
func (r Row) IsJoin() bool {
	if len(r) == 0 {
		return false
	}
	return r[0].IsJoin()
}

// SetJoin marks every glyph in the row as a join glyph.
func (r Row) SetJoin() {
	for i := range r {
		r[i].SetJoin()
	}
}

// IsFullJoin reports whether this row is a join row whose header cell is
// already filled to the full width of the table body.
func (r Row) IsFullJoin() bool {
	if len(r) == 0 {
		return false
	}
	return r[0].IsFullJoin()
}

// SetFullJoin marks every glyph in the row as a full-join glyph.
func (r Row) SetFullJoin() {
	for i := range r {
		r[i].SetFullJoin()
	}
}

// SearchVertLineRight returns the smallest index >= col whose glyph is a
// left vertical line, and whether one was found.
func (r Row) SearchVertLineRight(col int) (int, bool) {
	for i := col; i < len(r); i++ {
		if r[i].IsVertLineLeft() {
			return i, true
		}
	}
	return 0, false
}

// SearchVertLineLeft returns the largest index < col whose glyph is a right
// vertical line, and whether one was found.
func (r Row) SearchVertLineLeft(col int) (int, bool) {
	for i := col - 1; i >= 0; i-- {
		if r[i].IsVertLineRight() {
			return i, true
		}
	}
	return 0, false
}

// CellRange returns the writable interior (left, right inclusive) of the
// cell containing col, bounded by the nearest left and right vertical
// lines.
func (r Row) CellRange(col int) (left, right int, ok bool) {
	l, lok := r.SearchVertLineLeft(col)
	rr, rok := r.SearchVertLineRight(col)
	if !lok || !rok {
		return 0, 0, false
	}
	return l + 1, rr - 1, true
}

// IsEmptyRange reports whether every glyph in [left, right] is a space.
func (r Row) IsEmptyRange(left, right int) bool {
	for i := left; i <= right; i++ {
		if !r[i].IsSpace() {
			return false
		}
	}
	return true
}

// InsertFill scans right from col for the first vertical-line-or-crossing
// glyph and inserts, immediately before it, a glyph carrying that
// neighbour's horizontal fill scalar. No-op if no such glyph exists.
func (r *Row) InsertFill(col int) {
	row := *r
	for i := col; i < len(row); i++ {
		if row[i].IsVertLineOrCrossing() {
			fill := row[i].HorzFill()
			row = append(row, Glyph{})
			copy(row[i+1:], row[i:])
			row[i] = fill
			*r = row
			return
		}
	}
}

// IsDeletableSpace reports whether the column at or after col is redundant:
// scanning right, either a crossing that ends a horizontal stroke coming
// from the left (┐, ┤, ┼, ╫, … — see IsVertLineCrossingLeft) is reached
// first (the column is a line row here, trivially collapsible), or the
// nearest left vertical line (IsVertLineLeft) is preceded by a space
// that is not the cell's only interior content (the glyph two positions
// before the line must not itself be a frame glyph).
func (r Row) IsDeletableSpace(col int) bool {
	for i := col; i < len(r); i++ {
		g := r[i]
		if g.IsVertLineCrossingLeft() {
			return true
		}
		if g.IsVertLineLeft() {
			before := i - 1
			if before < 0 || !r[before].IsSpace() {
				return false
			}
			twoBefore := before - 1
			if twoBefore >= 0 && r[twoBefore].IsFrame() {
				return false
			}
			return true
		}
	}
	return false
}

// DeleteSpace removes the single glyph immediately before the nearest
// right-ward vertical-line-or-crossing glyph, starting the scan at col.
func (r *Row) DeleteSpace(col int) {
	row := *r
	for i := col; i < len(row); i++ {
		if row[i].IsVertLineOrCrossing() {
			before := i - 1
			if before < 0 {
				return
			}
			row = append(row[:before], row[before+1:]...)
			*r = row
			return
		}
	}
}

// ShiftTextRight rotates [start, end] one position to the right, then
// stores ch at start. Used by insert.
func (r Row) ShiftTextRight(start, end int, ch rune) {
	seg := r[start : end+1]
	last := seg[len(seg)-1]
	copy(seg[1:], seg[:len(seg)-1])
	seg[0] = last
	r[start].SetChar(ch)
}

// ShiftTextLeft stores a space at start, then rotates [start, end] one
// position to the left. Used by delete.
func (r Row) ShiftTextLeft(start, end int) {
	seg := r[start : end+1]
	first := seg[0]
	first.SetChar(Space)
	copy(seg[:len(seg)-1], seg[1:])
	seg[len(seg)-1] = first
}

// Text renders the row's scalars as a string.
func (r Row) Text() string {
	runes := make([]rune, len(r))
	for i, g := range r {
		runes[i] = g.Ch
	}
	return string(runes)
}

package plane

import "strings"

// Plane is the grid model of a decision table: a ragged slice of Rows plus
// a Cursor, with a lazily-cached content region used to clip viewports.
type Plane struct {
	rows   []Row
	cursor Cursor

	region      Region
	regionValid bool
}

// NewPlane parses text into a Plane. Blank lines are discarded; every
// remaining line is trimmed of trailing whitespace and kept verbatim as one
// row. width and height seed nothing in the model itself — they describe
// the viewport the caller intends to pair with this plane.
func NewPlane(text string, width, height int) *Plane {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		rows = append(rows, RowFromText(trimmed))
	}
	p := &Plane{
		rows:   rows,
		cursor: NewCursor(Caret, 1, 1),
	}
	p.updateJoiningRow()
	p.invalidateContentRegion()
	return p
}

func (p *Plane) empty() bool { return len(p.rows) == 0 }

// Content returns the plane's rows.
func (p *Plane) Content() []Row { return p.rows }

// Cursor returns the current cursor.
func (p *Plane) Cursor() Cursor { return p.cursor }

// CursorPos returns (column, row).
func (p *Plane) CursorPos() (int, int) { return p.cursor.Pos() }

// CursorCol returns the cursor's column.
func (p *Plane) CursorCol() int { return p.cursor.Col() }

// CursorChar returns the scalar at the cursor position, if any.
func (p *Plane) CursorChar() (rune, bool) {
	row, col := p.cursor.Row(), p.cursor.Col()
	if row < 0 || row >= len(p.rows) {
		return 0, false
	}
	r := p.rows[row]
	if col < 0 || col >= len(r) {
		return 0, false
	}
	return r[col].Ch, true
}

// CursorCharAbove returns the scalar directly above the cursor, if any.
func (p *Plane) CursorCharAbove() (rune, bool) {
	row := p.cursor.Row()
	if row <= 0 || row-1 >= len(p.rows) {
		return 0, false
	}
	col := p.cursor.Col()
	r := p.rows[row-1]
	if col < 0 || col >= len(r) {
		return 0, false
	}
	return r[col].Ch, true
}

// ContentRegion returns the bounding rectangle of the current content,
// recomputing it if a width- or height-changing edit invalidated the cache.
func (p *Plane) ContentRegion() Region {
	if !p.regionValid {
		p.region = p.computeContentRegion()
		p.regionValid = true
	}
	return p.region
}

func (p *Plane) computeContentRegion() Region {
	height := len(p.rows)
	width := 0
	for _, r := range p.rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return NewRegion(0, 0, width, height)
}

func (p *Plane) invalidateContentRegion() {
	p.regionValid = false
}

// isAllowedPosition reports whether (col, row) is a legal cursor position
// for the cursor's current shape.
func (p *Plane) isAllowedPosition(col, row int) bool {
	if row <= 0 || row >= len(p.rows)-1 || col <= 0 {
		return false
	}
	r := p.rows[row]
	if p.cursor.IsCaret() {
		if col > len(r)-1 {
			return false
		}
		g := r[col]
		return !g.IsFrame() || g.IsVertLineLeft()
	}
	if col >= len(r)-1 {
		return false
	}
	return !r[col].IsFrame()
}

func (p *Plane) tryMove(colOffset, rowOffset int) bool {
	col, row := p.cursor.Offset(colOffset, rowOffset)
	if !p.isAllowedPosition(col, row) {
		return false
	}
	p.cursor.Set(col, row)
	return true
}

// CursorMoveLeft tries a one-column move, falling back to a two-column
// jump over a single vertical line.
func (p *Plane) CursorMoveLeft() bool { return p.tryMove(-1, 0) || p.tryMove(-2, 0) }

// CursorMoveRight mirrors CursorMoveLeft.
func (p *Plane) CursorMoveRight() bool { return p.tryMove(1, 0) || p.tryMove(2, 0) }

// CursorMoveUp tries a one-row move, falling back to a two-row jump over a
// single horizontal line.
func (p *Plane) CursorMoveUp() bool { return p.tryMove(0, -1) || p.tryMove(0, -2) }

// CursorMoveDown mirrors CursorMoveUp.
func (p *Plane) CursorMoveDown() bool { return p.tryMove(0, 1) || p.tryMove(0, 2) }

// CursorMoveCellStart scans left to one column right of the nearest frame
// glyph.
func (p *Plane) CursorMoveCellStart() bool {
	if p.empty() {
		return false
	}
	r := p.rows[p.cursor.Row()]
	before := p.cursor.Col()
	i := before
	for i > 0 && !r[i-1].IsFrame() {
		i--
	}
	if i == before {
		return false
	}
	p.cursor.SetCol(i)
	return true
}

// CursorMoveCellEnd scans right to the cell's closing frame (Caret lands on
// it; Block/UnderScore land one short of it).
func (p *Plane) CursorMoveCellEnd() bool {
	if p.empty() {
		return false
	}
	r := p.rows[p.cursor.Row()]
	before := p.cursor.Col()
	i := before
	for i < len(r)-1 && !r[i+1].IsFrame() {
		i++
	}
	target := i + 1
	if !p.cursor.IsCaret() {
		target = i
	}
	if target == before || target >= len(r) || target < 0 {
		return false
	}
	p.cursor.SetCol(target)
	return true
}

func scanNonFrame(r Row, start, dir int) (int, bool) {
	i := start
	for i >= 0 && i < len(r) {
		if !r[i].IsFrame() {
			return i, true
		}
		i += dir
	}
	return 0, false
}

// CursorMoveCellNext moves to cell end, then scans past the frame run to
// the first non-frame glyph of the following cell.
func (p *Plane) CursorMoveCellNext() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Col()
	p.CursorMoveCellEnd()
	r := p.rows[p.cursor.Row()]
	idx, ok := scanNonFrame(r, p.cursor.Col()+1, 1)
	if !ok {
		p.cursor.SetCol(before)
		return false
	}
	p.cursor.SetCol(idx)
	return true
}

// CursorMoveCellPrev mirrors CursorMoveCellNext leftward.
func (p *Plane) CursorMoveCellPrev() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Col()
	p.CursorMoveCellStart()
	r := p.rows[p.cursor.Row()]
	idx, ok := scanNonFrame(r, p.cursor.Col()-1, -1)
	if !ok {
		p.cursor.SetCol(before)
		return false
	}
	p.cursor.SetCol(idx)
	return true
}

// CursorMoveRowStart moves to the first content column of the row.
func (p *Plane) CursorMoveRowStart() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Col()
	if before == 1 {
		return false
	}
	p.cursor.SetCol(1)
	return true
}

// CursorMoveRowEnd moves to the last content column of the row, biased per
// cursor shape exactly like CursorMoveCellEnd.
func (p *Plane) CursorMoveRowEnd() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Col()
	r := p.rows[p.cursor.Row()]
	target := len(r) - 1
	if !p.cursor.IsCaret() {
		target = len(r) - 2
	}
	if target == before || target < 0 {
		return false
	}
	p.cursor.SetCol(target)
	return true
}

// CursorMoveColStart moves to the top-most row whose column glyph is legal
// for the current shape.
func (p *Plane) CursorMoveColStart() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Row()
	col := p.cursor.Col()
	for row := 1; row < len(p.rows)-1; row++ {
		if p.isAllowedPosition(col, row) {
			if row == before {
				return false
			}
			p.cursor.SetRow(row)
			return true
		}
	}
	return false
}

// CursorMoveColEnd mirrors CursorMoveColStart from the bottom.
func (p *Plane) CursorMoveColEnd() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Row()
	col := p.cursor.Col()
	for row := len(p.rows) - 2; row >= 1; row-- {
		if p.isAllowedPosition(col, row) {
			if row == before {
				return false
			}
			p.cursor.SetRow(row)
			return true
		}
	}
	return false
}

// CursorMoveCellTop steps up while the glyph directly above is not a
// horizontal line or crossing (a vertical-line-left glyph does not stop
// the climb).
func (p *Plane) CursorMoveCellTop() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Row()
	row := before
	col := p.cursor.Col()
	for row > 1 {
		above := p.rows[row-1]
		if col >= len(above) {
			break
		}
		g := above[col]
		if g.IsHorzLineOrCrossing() && !g.IsVertLineLeft() {
			break
		}
		row--
	}
	if row == before {
		return false
	}
	p.cursor.SetRow(row)
	return true
}

// CursorMoveCellBottom mirrors CursorMoveCellTop downward.
func (p *Plane) CursorMoveCellBottom() bool {
	if p.empty() {
		return false
	}
	before := p.cursor.Row()
	row := before
	col := p.cursor.Col()
	for row < len(p.rows)-2 {
		below := p.rows[row+1]
		if col >= len(below) {
			break
		}
		g := below[col]
		if g.IsHorzLineOrCrossing() && !g.IsVertLineLeft() {
			break
		}
		row++
	}
	if row == before {
		return false
	}
	p.cursor.SetRow(row)
	return true
}

func (p *Plane) avoidFrameAfterToggle() {
	if p.empty() || p.cursor.IsCaret() {
		return
	}
	row := p.rows[p.cursor.Row()]
	col := p.cursor.Col()
	if col < len(row) && row[col].IsFrame() {
		p.cursor.DecCol(1)
	}
}

// CursorToggleCaretBlock toggles Caret<->Block (UnderScore collapses to
// Block), stepping the cursor left if it would otherwise land on a frame.
func (p *Plane) CursorToggleCaretBlock() CursorShape {
	p.cursor.ToggleCaretBlock()
	p.avoidFrameAfterToggle()
	return p.cursor.Shape()
}

// CursorToggleCaretUnderScore toggles Caret<->UnderScore (Block collapses
// to UnderScore), with the same frame-avoidance rule.
func (p *Plane) CursorToggleCaretUnderScore() CursorShape {
	p.cursor.ToggleCaretUnderScore()
	p.avoidFrameAfterToggle()
	return p.cursor.Shape()
}

// InsertChar inserts ch at the cursor in Caret mode, widening the table
// when the current cell is full. Returns false if there is no rightward
// vertical line bounding the cell (insert has no target).
func (p *Plane) InsertChar(ch rune) bool {
	if p.empty() {
		return false
	}
	row := p.cursor.Row()
	col := p.cursor.Col()
	r := p.rows[row]

	v, ok := r.SearchVertLineRight(col)
	if !ok {
		return false
	}
	s := v - 1
	if s >= col && r[s].IsSpace() && r.IsDeletableSpace(col) {
		p.rows[row].ShiftTextRight(col, s, ch)
		p.cursor.IncCol(1)
		p.invalidateContentRegion()
		p.updateJoiningRow()
		return true
	}

	joinRow, isFull, hasJoin := p.joinRowInfo()
	var lo, hi int
	switch {
	case !hasJoin:
		lo, hi = 0, len(p.rows)
	case row < joinRow && isFull:
		lo, hi = 0, len(p.rows)
	case row < joinRow && !isFull:
		lo, hi = 0, joinRow
	default:
		lo, hi = joinRow, len(p.rows)
	}
	for i := lo; i < hi; i++ {
		p.rows[i].InsertFill(v)
	}
	p.rows[row].ShiftTextRight(col, v, ch)
	p.cursor.IncCol(1)
	p.invalidateContentRegion()
	p.updateJoiningRow()
	return true
}

// OverrideChar replaces the glyph under the cursor in Block/UnderScore
// mode. It never widens the table or touches other rows.
func (p *Plane) OverrideChar(ch rune) bool {
	if p.empty() {
		return false
	}
	row := p.cursor.Row()
	col := p.cursor.Col()
	r := p.rows[row]
	v, ok := r.SearchVertLineRight(col)
	if !ok || col >= v {
		return false
	}
	r[col].SetChar(ch)
	if col+1 < v {
		p.cursor.IncCol(1)
	}
	return true
}

// DeleteCharBeforeCursor implements Backspace: shifts the current cell's
// text left when the glyph to the left is content, or unsplits the line
// when the cursor sits at a cell's start.
func (p *Plane) DeleteCharBeforeCursor() bool {
	if p.empty() {
		return false
	}
	row := p.cursor.Row()
	col := p.cursor.Col()
	if col <= 0 {
		return false
	}
	r := p.rows[row]
	left := col - 1
	if left >= len(r) || r[left].IsFrame() {
		return p.unsplitLine()
	}
	_, right, ok := r.CellRange(col)
	if !ok {
		return false
	}
	r.ShiftTextLeft(left, right)
	p.cursor.DecCol(1)
	p.removeVerticalSpaces()
	p.invalidateContentRegion()
	return true
}

// DeleteCharUnderCursor implements Delete: shifts the current cell's text
// left, starting at the cursor.
func (p *Plane) DeleteCharUnderCursor() bool {
	if p.empty() {
		return false
	}
	row := p.cursor.Row()
	col := p.cursor.Col()
	r := p.rows[row]
	if col >= len(r) || r[col].IsFrame() {
		return false
	}
	_, right, ok := r.CellRange(col)
	if !ok {
		return false
	}
	r.ShiftTextLeft(col, right)
	p.removeVerticalSpaces()
	if p.cursor.OverrideMode() {
		r2 := p.rows[p.cursor.Row()]
		c := p.cursor.Col()
		if c < len(r2) && r2[c].IsFrame() {
			p.cursor.DecCol(1)
		}
	}
	p.invalidateContentRegion()
	return true
}

// removeVerticalSpaces collapses a column that has become a single
// deletable space before every vertical line it crosses, respecting the
// join row's split between header and body.
func (p *Plane) removeVerticalSpaces() {
	if p.empty() {
		return
	}
	row := p.cursor.Row()
	col := p.cursor.Col()
	r := p.rows[row]
	v, ok := r.SearchVertLineRight(col)
	if !ok {
		return
	}

	shrink := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if v >= len(p.rows[i]) || !p.rows[i].IsDeletableSpace(v) {
				return
			}
		}
		for i := lo; i < hi; i++ {
			p.rows[i].DeleteSpace(v)
		}
	}

	joinRow, isFull, hasJoin := p.joinRowInfo()
	switch {
	case !hasJoin:
		shrink(0, len(p.rows))
	case row < joinRow:
		shrink(0, joinRow)
		if isFull {
			shrink(joinRow, len(p.rows))
		}
	default:
		shrink(joinRow, len(p.rows))
		if isFull {
			shrink(0, joinRow)
		}
	}
	p.updateJoiningRow()
}

func (p *Plane) searchHorzColDown(col, fromRow int) int {
	for row := fromRow; row < len(p.rows); row++ {
		if col < len(p.rows[row]) && p.rows[row][col].IsHorzLineOrCrossing() {
			return row
		}
	}
	return len(p.rows) - 1
}

// SplitLine breaks the current row at the cursor, growing the table by one
// row when the cell below has no blank line to reuse.
func (p *Plane) SplitLine() bool {
	if p.empty() {
		return false
	}
	r0 := p.cursor.Row()
	c0 := p.cursor.Col()

	rowH := p.searchHorzColDown(c0, r0)
	if rowH <= r0 {
		return false
	}
	left, right, ok := p.rows[r0].CellRange(c0)
	if !ok {
		return false
	}

	hasRoom := rowH-1 != r0 && p.rows[rowH-1].IsEmptyRange(left, right)
	if !hasRoom {
		p.growTableForSplit(rowH)
		rowH = p.searchHorzColDown(c0, r0)
	}

	for row := rowH - 1; row > r0+1; row-- {
		copy(p.rows[row][left:right+1], p.rows[row-1][left:right+1])
	}

	tailStart := c0 + 1
	var tail []Glyph
	if tailStart <= right {
		tail = append([]Glyph(nil), p.rows[r0][tailStart:right+1]...)
	}
	destRow := p.rows[r0+1]
	for i := left; i <= right; i++ {
		idx := i - left
		if idx < len(tail) {
			destRow[i] = tail[idx]
		} else {
			destRow[i] = NewGlyph(Space)
		}
	}
	for i := tailStart; i <= right; i++ {
		p.rows[r0][i].SetChar(Space)
	}

	p.cursor.Set(left, r0+1)
	p.invalidateContentRegion()
	p.updateJoiningRow()
	return true
}

// growTableForSplit inserts one fresh row into the table so that every
// column's nearest horizontal-line-or-crossing row below rowH effectively
// gains a blank line, even though columns reach that line at different
// depths. It appends one physical row at the deepest column's line and
// cascades each shallower column's content down by one step, preserving
// both vertical continuity and horizontal level.
func (p *Plane) growTableForSplit(rowH int) {
	width := len(p.rows[rowH])
	top := make([]int, width)
	b := rowH
	for k := 0; k < width; k++ {
		t := p.searchHorzColDown(k, rowH)
		top[k] = t
		if t > b {
			b = t
		}
	}

	blank := make(Row, width)
	for i := range blank {
		blank[i] = NewGlyph(Space)
	}
	p.rows = append(p.rows, nil)
	copy(p.rows[b+2:], p.rows[b+1:])
	p.rows[b+1] = blank

	for k := 0; k < width; k++ {
		t := top[k]
		for row := b + 1; row > t; row-- {
			if k < len(p.rows[row-1]) {
				p.rows[row][k] = p.rows[row-1][k]
			}
		}
		above := NewGlyph(Space)
		if t-1 >= 0 && k < len(p.rows[t-1]) && p.rows[t-1][k].IsFrame() {
			above = p.rows[t-1][k]
		}
		if k < len(p.rows[t]) {
			p.rows[t][k] = above
		}
	}
}

func lastNonSpace(r Row, left, right int) int {
	for i := right; i >= left; i-- {
		if !r[i].IsSpace() {
			return i
		}
	}
	return left - 1
}

// unsplitLine merges the cursor's row into the row above, the inverse of
// SplitLine, triggered by Backspace at a cell's start.
func (p *Plane) unsplitLine() bool {
	if p.empty() {
		return false
	}
	r0 := p.cursor.Row()
	c0 := p.cursor.Col()
	if r0 <= 1 {
		return false
	}
	above := p.rows[r0-1]
	if c0 >= len(above) || above[c0].IsFrame() {
		return false
	}

	left, right, ok := p.rows[r0].CellRange(c0)
	if !ok {
		return false
	}

	lastAbove := lastNonSpace(above, left, right)
	textLenAbove := lastAbove - left + 1
	cur := p.rows[r0]
	lastBelow := lastNonSpace(cur, left, right)
	textLenBelow := lastBelow - left + 1

	if right-left+1 < textLenAbove+textLenBelow {
		return false
	}

	for i := 0; i < textLenBelow; i++ {
		above[left+textLenAbove+i] = cur[left+i]
	}
	for i := left; i <= right; i++ {
		cur[i] = NewGlyph(Space)
	}

	rowLine := p.searchHorzColDown(c0, r0)
	for row := r0; row < rowLine-1; row++ {
		copy(p.rows[row][left:right+1], p.rows[row+1][left:right+1])
	}
	for i := left; i <= right && rowLine-1 >= 0 && rowLine-1 < len(p.rows); i++ {
		p.rows[rowLine-1][i] = NewGlyph(Space)
	}

	p.removeHorizontalSpaces()

	p.cursor.Set(left+textLenAbove, r0-1)
	p.invalidateContentRegion()
	p.updateJoiningRow()
	return true
}

// removeHorizontalSpaces collapses a horizontal strip that has become
// entirely redundant across every column, the mirror of
// removeVerticalSpaces in the row dimension.
func (p *Plane) removeHorizontalSpaces() {
	if p.empty() {
		return
	}
	r0 := p.cursor.Row()
	width := len(p.rows[r0])

	minT, maxT := -1, -1
	allRedundant := true
	for k := 0; k < width; k++ {
		t := p.searchHorzColDown(k, r0)
		if minT == -1 || t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
		above := t - 1
		if above < 0 || above >= len(p.rows) || k >= len(p.rows[above]) {
			allRedundant = false
			continue
		}
		g := p.rows[above][k]
		if !(g.IsSpace() || g.IsVertLine()) {
			allRedundant = false
		}
	}
	if !allRedundant || minT < 0 {
		return
	}

	joinRow, _, hasJoin := p.joinRowInfo()
	if hasJoin && joinRow == minT && joinRow == maxT {
		p.deleteRow(joinRow - 1)
		p.updateJoiningRow()
		return
	}

	target := minT
	for row := target - 1; row < len(p.rows)-1; row++ {
		p.rows[row] = p.rows[row+1]
	}
	p.rows = p.rows[:len(p.rows)-1]
	p.updateJoiningRow()
}

func (p *Plane) deleteRow(idx int) {
	if idx < 0 || idx >= len(p.rows) {
		return
	}
	p.rows = append(p.rows[:idx], p.rows[idx+1:]...)
}

// joinRowHeaderCol locates the information-item header's closing corner
// ┐ on row 0, returning its column.
func (p *Plane) joinRowHeaderCol() (int, bool) {
	if len(p.rows) == 0 || len(p.rows[0]) == 0 {
		return 0, false
	}
	if p.rows[0][0].Ch != LightDownAndRight {
		return 0, false
	}
	for i, g := range p.rows[0] {
		if g.Ch == LightDownAndLeft {
			return i, true
		}
	}
	return 0, false
}

// joinRowInfo scans down from the header's closing column for the first
// row whose glyph there is ┴, ┼ or ╫, returning its index and whether its
// width already matches the row above (full join).
func (p *Plane) joinRowInfo() (index int, isFull bool, found bool) {
	col, ok := p.joinRowHeaderCol()
	if !ok {
		return 0, false, false
	}
	for i := 1; i < len(p.rows); i++ {
		if col >= len(p.rows[i]) {
			continue
		}
		switch p.rows[i][col].Ch {
		case LightUpAndHorizontal, LightVerticalAndHorizontal, VerticalDoubleAndHorizontalSingle:
			full := len(p.rows[i]) == len(p.rows[i-1])
			return i, full, true
		}
	}
	return 0, false, false
}

// updateJoiningRow re-tags the join row's attributes and promotes or
// demotes each crossing glyph based on the glyph directly above it.
func (p *Plane) updateJoiningRow() {
	joinRow, _, found := p.joinRowInfo()
	if !found {
		return
	}
	above := p.rows[joinRow-1]
	row := p.rows[joinRow]
	if len(row) == len(above) {
		row.SetFullJoin()
	} else {
		row.SetJoin()
	}
	for k := 0; k < len(row) && k < len(above); k++ {
		if above[k].IsSingleVertLine() {
			promoteJoinGlyph(&row[k])
		} else {
			demoteJoinGlyph(&row[k])
		}
	}
}

func promoteJoinGlyph(g *Glyph) {
	switch g.Ch {
	case LightHorizontal:
		g.Ch = LightUpAndHorizontal
	case LightDownAndHorizontal:
		g.Ch = LightVerticalAndHorizontal
	case LightDownAndLeft:
		g.Ch = LightVerticalAndLeft
	case DownDoubleAndHorizontalSingle:
		g.Ch = VerticalDoubleAndHorizontalSingle
	}
}

func demoteJoinGlyph(g *Glyph) {
	switch g.Ch {
	case LightUpAndHorizontal:
		g.Ch = LightHorizontal
	case LightVerticalAndHorizontal:
		g.Ch = LightDownAndHorizontal
	case LightVerticalAndLeft:
		g.Ch = LightDownAndLeft
	case VerticalDoubleAndHorizontalSingle:
		g.Ch = DownDoubleAndHorizontalSingle
	}
}

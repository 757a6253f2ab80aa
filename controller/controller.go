package controller

import "github.com/lixenwraith/dtee/plane"

// Margins set how many columns/rows of padding the viewport keeps around
// the cursor before it scrolls. Defaults mirror the asymmetry a table
// editor wants: a little room behind the cursor, more room ahead of it.
type Margins struct {
	Left, Top, Right, Bottom int
}

// DefaultMargins returns the built-in margin policy (1 left/top, 2
// right/bottom), overridable by the host's configuration.
func DefaultMargins() Margins {
	return Margins{Left: 1, Top: 1, Right: 2, Bottom: 2}
}

// Controller owns a Plane and the viewport clipping it, translating every
// navigation or edit into an Updates value.
type Controller struct {
	plane    *plane.Plane
	viewport plane.Region
	margins  Margins
}

// New returns a Controller over text with a viewport of (width, height)
// and the default margins.
func New(text string, width, height int) *Controller {
	return NewWithMargins(text, width, height, DefaultMargins())
}

// NewWithMargins is New with an explicit margin policy.
func NewWithMargins(text string, width, height int, margins Margins) *Controller {
	return &Controller{
		plane:    plane.NewPlane(text, width, height),
		viewport: plane.NewRegion(0, 0, width, height),
		margins:  margins,
	}
}

// Viewport returns the current viewport rectangle.
func (c *Controller) Viewport() plane.Region { return c.viewport }

// Cursor returns the current cursor.
func (c *Controller) Cursor() plane.Cursor { return c.plane.Cursor() }

// Content returns the underlying rows.
func (c *Controller) Content() []plane.Row { return c.plane.Content() }

// CursorChar returns the scalar under the cursor, if any.
func (c *Controller) CursorChar() (rune, bool) { return c.plane.CursorChar() }

func cursorPosEqual(a, b plane.Cursor) bool {
	ac, ar := a.Pos()
	bc, br := b.Pos()
	return ac == bc && ar == br
}

// followCursor nudges the viewport so the cursor stays within margins,
// reporting whether any shift occurred.
func (c *Controller) followCursor() bool {
	col, row := c.plane.CursorPos()
	moved := false
	if c.viewport.ShiftLeftWhenNeeded(col, c.margins.Left) {
		moved = true
	}
	if c.viewport.ShiftRightWhenNeeded(col, c.margins.Right) {
		moved = true
	}
	if c.viewport.ShiftUpWhenNeeded(row, c.margins.Top) {
		moved = true
	}
	if c.viewport.ShiftDownWhenNeeded(row, c.margins.Bottom) {
		moved = true
	}
	return moved
}

// move snapshots the cursor, runs op, and derives Updates from what
// changed plus any viewport follow induced by the move.
func (c *Controller) move(op func() bool) Updates {
	before := c.plane.Cursor()
	op()
	after := c.plane.Cursor()

	u := Updates{}
	if !cursorPosEqual(before, after) {
		u.CursorPosChanged = true
	}
	if before.Shape() != after.Shape() {
		u.CursorShapeChanged = true
	}
	if c.followCursor() {
		u.ViewportPosChanged = true
	}
	return u
}

// edit is move plus a content-changed flag taken from op's own report of
// whether it actually mutated the plane.
func (c *Controller) edit(op func() bool) Updates {
	before := c.plane.Cursor()
	changed := op()
	after := c.plane.Cursor()

	u := Updates{ContentChanged: changed}
	if !cursorPosEqual(before, after) {
		u.CursorPosChanged = true
	}
	if c.followCursor() {
		u.ViewportPosChanged = true
	}
	return u
}

func (c *Controller) CursorMoveLeft() Updates  { return c.move(c.plane.CursorMoveLeft) }
func (c *Controller) CursorMoveRight() Updates { return c.move(c.plane.CursorMoveRight) }
func (c *Controller) CursorMoveUp() Updates    { return c.move(c.plane.CursorMoveUp) }
func (c *Controller) CursorMoveDown() Updates  { return c.move(c.plane.CursorMoveDown) }

func (c *Controller) CursorMoveCellStart() Updates  { return c.move(c.plane.CursorMoveCellStart) }
func (c *Controller) CursorMoveCellEnd() Updates    { return c.move(c.plane.CursorMoveCellEnd) }
func (c *Controller) CursorMoveCellTop() Updates    { return c.move(c.plane.CursorMoveCellTop) }
func (c *Controller) CursorMoveCellBottom() Updates { return c.move(c.plane.CursorMoveCellBottom) }
func (c *Controller) CursorMoveCellNext() Updates   { return c.move(c.plane.CursorMoveCellNext) }
func (c *Controller) CursorMoveCellPrev() Updates   { return c.move(c.plane.CursorMoveCellPrev) }

func (c *Controller) CursorMoveRowStart() Updates { return c.move(c.plane.CursorMoveRowStart) }
func (c *Controller) CursorMoveRowEnd() Updates   { return c.move(c.plane.CursorMoveRowEnd) }

func (c *Controller) CursorMoveColStart() Updates { return c.move(c.plane.CursorMoveColStart) }
func (c *Controller) CursorMoveColEnd() Updates   { return c.move(c.plane.CursorMoveColEnd) }

// CursorToggleCaretBlock toggles the cursor shape between Caret and Block.
func (c *Controller) CursorToggleCaretBlock() Updates {
	return c.move(func() bool {
		c.plane.CursorToggleCaretBlock()
		return true
	})
}

// CursorToggleCaretUnderScore toggles the cursor shape between Caret and
// UnderScore.
func (c *Controller) CursorToggleCaretUnderScore() Updates {
	return c.move(func() bool {
		c.plane.CursorToggleCaretUnderScore()
		return true
	})
}

// InsertChar inserts ch at the cursor (Caret mode semantics).
func (c *Controller) InsertChar(ch rune) Updates {
	return c.edit(func() bool { return c.plane.InsertChar(ch) })
}

// OverrideChar overwrites the glyph under the cursor (Block/UnderScore
// mode semantics).
func (c *Controller) OverrideChar(ch rune) Updates {
	return c.edit(func() bool { return c.plane.OverrideChar(ch) })
}

// PutChar dispatches to InsertChar or OverrideChar based on the cursor's
// current mode, sparing the host from checking shape itself.
func (c *Controller) PutChar(ch rune) Updates {
	if c.plane.Cursor().InsertMode() {
		return c.InsertChar(ch)
	}
	return c.OverrideChar(ch)
}

// SplitLine breaks the current cell at the cursor onto a new line.
func (c *Controller) SplitLine() Updates {
	return c.edit(c.plane.SplitLine)
}

// DeleteCharBeforeCursor implements Backspace.
func (c *Controller) DeleteCharBeforeCursor() Updates {
	return c.edit(c.plane.DeleteCharBeforeCursor)
}

// DeleteCharUnderCursor implements Delete.
func (c *Controller) DeleteCharUnderCursor() Updates {
	return c.edit(c.plane.DeleteCharUnderCursor)
}

// ScrollRows shifts the viewport vertically by delta rows without moving
// the cursor, for Page Up/Down. A subsequent cursor move re-applies the
// margin policy and may snap the viewport back.
func (c *Controller) ScrollRows(delta int) Updates {
	before := c.viewport
	top := before.Top() + delta
	if top < 0 {
		top = 0
	}
	maxTop := c.plane.ContentRegion().Height() - before.Height()
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	c.viewport = plane.NewRegion(before.Left(), top, before.Width(), before.Height())

	u := Updates{}
	if top != before.Top() {
		u.ViewportPosChanged = true
	}
	return u
}

// Resize changes the viewport size and re-applies the margin policy
// against the (possibly now out-of-view) cursor.
func (c *Controller) Resize(w, h int) Updates {
	before := c.viewport
	c.viewport.Resize(w, h)

	u := Updates{}
	if before.Width() != w || before.Height() != h {
		u.ViewportSizeChanged = true
	}
	if c.followCursor() {
		u.ViewportPosChanged = true
	}
	return u
}

// VisitFunc receives one visible cell's in-viewport coordinates and glyph.
type VisitFunc func(colInView, rowInView int, g plane.Glyph)

// VisitVisibleContent iterates the rows clipped by the viewport, calling f
// for each cell. When fill is non-nil, f is also called with *fill for
// every position between a row's visible length and viewport.Width()+extW,
// and for every row between the visible content height and
// viewport.Height()+extH — letting the host paint background and trailing
// whitespace in the same pass.
func (c *Controller) VisitVisibleContent(f VisitFunc, fill *plane.Glyph, extW, extH int) {
	rows := c.plane.Content()
	left, top := c.viewport.Left(), c.viewport.Top()
	width, height := c.viewport.Width(), c.viewport.Height()

	totalRows := height
	totalCols := width
	if fill != nil {
		totalRows += extH
		totalCols += extW
	}

	for rowInView := 0; rowInView < totalRows; rowInView++ {
		srcRow := top + rowInView
		haveRow := rowInView < height && srcRow >= 0 && srcRow < len(rows)
		var row plane.Row
		if haveRow {
			row = rows[srcRow]
		}
		for colInView := 0; colInView < totalCols; colInView++ {
			srcCol := left + colInView
			if haveRow && colInView < width && srcCol < len(row) {
				f(colInView, rowInView, row[srcCol])
				continue
			}
			if fill != nil {
				f(colInView, rowInView, *fill)
			}
		}
	}
}

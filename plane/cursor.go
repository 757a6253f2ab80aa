package plane

// CursorShape selects how the cursor is rendered, and which legal-position
// rule governs its movement.
type CursorShape int

const (
	// Caret is a vertical bar sitting between two columns (insert mode).
	Caret CursorShape = iota
	// Block sits on top of a glyph (override mode).
	Block
	// UnderScore sits under a glyph (override mode).
	UnderScore
)

// Cursor is the editing position within a Plane: a shape plus a (column,
// row) coordinate.
type Cursor struct {
	shape  CursorShape
	column int
	row    int
}

// NewCursor returns a cursor at (column, row) with the given shape.
func NewCursor(shape CursorShape, column, row int) Cursor {
	return Cursor{shape: shape, column: column, row: row}
}

func (c Cursor) Shape() CursorShape { return c.shape }

// Pos returns the cursor position as (column, row).
func (c Cursor) Pos() (int, int) { return c.column, c.row }

func (c *Cursor) Set(col, row int) {
	c.column = col
	c.row = row
}

func (c *Cursor) SetCol(col int) { c.column = col }
func (c Cursor) Col() int        { return c.column }

func (c *Cursor) IncCol(v int) { c.column += v }
func (c *Cursor) DecCol(v int) { c.column = satSub(c.column, v) }

func (c Cursor) Row() int        { return c.row }
func (c *Cursor) SetRow(row int) { c.row = row }

func (c *Cursor) IncRow(v int) { c.row += v }
func (c *Cursor) DecRow(v int) { c.row = satSub(c.row, v) }

// Offset returns the cursor position after applying columnOffset and
// rowOffset, saturating at zero. It does not mutate the cursor.
func (c Cursor) Offset(columnOffset, rowOffset int) (int, int) {
	col := c.column
	if columnOffset < 0 {
		col = satSub(col, -columnOffset)
	} else {
		col += columnOffset
	}
	row := c.row
	if rowOffset < 0 {
		row = satSub(row, -rowOffset)
	} else {
		row += rowOffset
	}
	return col, row
}

func (c Cursor) IsCaret() bool      { return c.shape == Caret }
func (c Cursor) IsBlock() bool      { return c.shape == Block }
func (c Cursor) IsUnderScore() bool { return c.shape == UnderScore }

// InsertMode reports whether this cursor shape signals insert semantics.
func (c Cursor) InsertMode() bool { return c.shape == Caret }

// OverrideMode reports whether this cursor shape signals override
// semantics.
func (c Cursor) OverrideMode() bool { return c.shape != Caret }

// ToggleCaretBlock flips between Caret and Block, collapsing UnderScore to
// Block. Returns the resulting shape.
func (c *Cursor) ToggleCaretBlock() CursorShape {
	switch c.shape {
	case Caret, UnderScore:
		c.shape = Block
	default:
		c.shape = Caret
	}
	return c.shape
}

// ToggleCaretUnderScore flips between Caret and UnderScore, collapsing
// Block to UnderScore. Returns the resulting shape.
func (c *Cursor) ToggleCaretUnderScore() CursorShape {
	switch c.shape {
	case Caret, Block:
		c.shape = UnderScore
	default:
		c.shape = Caret
	}
	return c.shape
}

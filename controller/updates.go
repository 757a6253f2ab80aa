// Package controller wraps the plane model with a viewport, turning raw
// model edits into Updates the host can use to repaint only what changed.
package controller

// NoUpdates is the zero value: nothing changed.
var NoUpdates = Updates{}

// Updates reports which parts of Controller state changed as the result
// of one call. The host inspects these flags to decide what to repaint
// instead of redrawing the whole screen on every keystroke.
type Updates struct {
	CursorPosChanged    bool
	CursorShapeChanged  bool
	ViewportPosChanged  bool
	ViewportSizeChanged bool
	ContentChanged      bool
}

// WithCursorPos returns a copy of u with CursorPosChanged set.
func (u Updates) WithCursorPos(changed bool) Updates {
	u.CursorPosChanged = changed
	return u
}

// WithCursorShape returns a copy of u with CursorShapeChanged set.
func (u Updates) WithCursorShape(changed bool) Updates {
	u.CursorShapeChanged = changed
	return u
}

// WithViewportPos returns a copy of u with ViewportPosChanged set.
func (u Updates) WithViewportPos(changed bool) Updates {
	u.ViewportPosChanged = changed
	return u
}

// WithViewportSize returns a copy of u with ViewportSizeChanged set.
func (u Updates) WithViewportSize(changed bool) Updates {
	u.ViewportSizeChanged = changed
	return u
}

// WithContentChanged returns a copy of u with ContentChanged set.
func (u Updates) WithContentChanged(changed bool) Updates {
	u.ContentChanged = changed
	return u
}

// Any reports whether any flag is set.
func (u Updates) Any() bool {
	return u.CursorPosChanged || u.CursorShapeChanged || u.ViewportPosChanged ||
		u.ViewportSizeChanged || u.ContentChanged
}

// Merge ORs every flag of other into u and returns the result.
func (u Updates) Merge(other Updates) Updates {
	u.CursorPosChanged = u.CursorPosChanged || other.CursorPosChanged
	u.CursorShapeChanged = u.CursorShapeChanged || other.CursorShapeChanged
	u.ViewportPosChanged = u.ViewportPosChanged || other.ViewportPosChanged
	u.ViewportSizeChanged = u.ViewportSizeChanged || other.ViewportSizeChanged
	u.ContentChanged = u.ContentChanged || other.ContentChanged
	return u
}

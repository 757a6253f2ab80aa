package plane

import "fmt"

// Region is a rectangle expressed as an origin and a size. All coordinates
// are non-negative; arithmetic that would otherwise underflow saturates at
// zero, mirroring the saturating integer ops the model is specified against.
type Region struct {
	left, top     int
	width, height int
}

// NewRegion returns a region with the given origin and size.
func NewRegion(left, top, width, height int) Region {
	return Region{left: left, top: top, width: width, height: height}
}

func (r Region) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.left, r.top, r.width, r.height)
}

func (r Region) Left() int { return r.left }

// Right returns the rightmost occupied column; zero-width regions saturate
// to the left edge.
func (r Region) Right() int {
	return satAdd(r.left, satSub(r.width, 1))
}

func (r Region) Top() int { return r.top }

// Bottom returns the bottommost occupied row; zero-height regions saturate
// to the top edge.
func (r Region) Bottom() int {
	return satAdd(r.top, satSub(r.height, 1))
}

func (r Region) Width() int  { return r.width }
func (r Region) Height() int { return r.height }

func (r Region) Offset() (int, int) { return r.left, r.top }
func (r Region) Size() (int, int)   { return r.width, r.height }
func (r Region) Rect() (int, int, int, int) {
	return r.left, r.top, r.width, r.height
}

// Resize changes width and height in place, leaving the origin untouched.
func (r *Region) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Clip returns the intersection of r and other. Disjoint regions yield a
// zero-width or zero-height region.
func (r Region) Clip(other Region) Region {
	left := r.left
	if other.Left() > left {
		left = other.Left()
	}
	top := r.top
	if other.Top() > top {
		top = other.Top()
	}
	right := r.Right()
	if other.Right() < right {
		right = other.Right()
	}
	bottom := r.Bottom()
	if other.Bottom() < bottom {
		bottom = other.Bottom()
	}
	width, height := 0, 0
	if r.width > 0 && other.width > 0 && right >= left {
		width = right - left + 1
	}
	if r.height > 0 && other.height > 0 && bottom >= top {
		height = bottom - top + 1
	}
	return Region{
		left:   left,
		top:    top,
		width:  width,
		height: height,
	}
}

// ShiftLeftWhenNeeded moves the region left just far enough that column
// stays at least margin columns inside the left edge. Reports whether a
// shift occurred.
func (r *Region) ShiftLeftWhenNeeded(column, margin int) bool {
	columnNeeded := satSub(column, margin)
	if columnNeeded < r.Left() {
		r.left = satSub(r.left, satSub(r.Left(), columnNeeded))
		return true
	}
	return false
}

// ShiftRightWhenNeeded moves the region right just far enough that column
// stays at least margin columns inside the right edge.
func (r *Region) ShiftRightWhenNeeded(column, margin int) bool {
	columnNeeded := satAdd(column, margin)
	if columnNeeded > r.Right() {
		r.left = satAdd(r.left, satSub(columnNeeded, r.Right()))
		return true
	}
	return false
}

// ShiftUpWhenNeeded moves the region up just far enough that row stays at
// least margin rows inside the top edge.
func (r *Region) ShiftUpWhenNeeded(row, margin int) bool {
	rowNeeded := satSub(row, margin)
	if rowNeeded < r.Top() {
		r.top = satSub(r.top, satSub(r.Top(), rowNeeded))
		return true
	}
	return false
}

// ShiftDownWhenNeeded moves the region down just far enough that row stays
// at least margin rows inside the bottom edge.
func (r *Region) ShiftDownWhenNeeded(row, margin int) bool {
	rowNeeded := satAdd(row, margin)
	if rowNeeded > r.Bottom() {
		r.top = satAdd(r.top, satSub(rowNeeded, r.Bottom()))
		return true
	}
	return false
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func satAdd(a, b int) int {
	return a + b
}

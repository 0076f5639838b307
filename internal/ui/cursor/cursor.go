// Package cursor manages a cursor and scroll offset for a scrollable list.
package cursor

// Cursor tracks a position and scroll offset. The list length and viewport
// height are passed to methods rather than stored, since they change as the
// list is edited and the terminal resizes.
type Cursor struct {
	pos    int // current position (0-indexed)
	offset int // first visible item index
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions within a list of given length,
// clamping to valid bounds and scrolling to keep the cursor visible.
// A no-op when the list is empty.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position within a list of given
// length, clamping and scrolling like Move. A no-op when the list is empty.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// ClampToBounds pulls the cursor back into valid bounds for the given
// length. Useful after items are deleted. Returns true if it moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return moved
	}
	if c.pos > listLen-1 {
		c.pos = listLen - 1
		c.offset = min(c.offset, c.pos)
		return true
	}
	return false
}

// ensureVisible adjusts the scroll offset so the cursor is on screen.
func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxValue int) int {
	if v < 0 {
		return 0
	}
	if v > maxValue {
		return maxValue
	}
	return v
}

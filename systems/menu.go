package systems

import "github.com/automoto/koopa/components"

// MoveCursor steps the selection by dx items and dy rows. A move that
// would leave the list is ignored.
func MoveCursor(c *components.CursorData, dx, dy int) {
	cols := max(c.Columns, 1)
	next := c.Selected + dx + dy*cols
	if next < 0 || next >= c.Count {
		return
	}
	c.Selected = next
}

// SelectCursor jumps to item i when it exists.
func SelectCursor(c *components.CursorData, i int) {
	if i >= 0 && i < c.Count {
		c.Selected = i
	}
}

// Blink reports whether blinking text is shown after elapsed seconds at
// rate toggles per second.
func Blink(elapsed, rate float64) bool {
	return int(elapsed*rate)%2 == 0
}

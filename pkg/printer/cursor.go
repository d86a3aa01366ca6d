package printer

import "github.com/ir-printer/engine/pkg/ir"

// frame is one level of the cursor's stack: a materialized item slice plus
// the index of the next item to yield from it.
type frame struct {
	items []ir.Item
	idx   int
}

// cursor is a resumable, forward-only walk over a tree of item sequences.
// Entering a Condition's chosen branch pushes a new frame; exhausting a
// frame pops back to its parent. Because the whole tree is addressed
// through one cursor, a newline-group's fit measurement can continue
// walking forward from exactly where the real evaluation left off, and a
// snapshot/restore pair can replay that same span for real afterward.
type cursor struct {
	stack []frame
}

func newCursor(items []ir.Item) *cursor {
	return &cursor{stack: []frame{{items: items}}}
}

// next returns the next item in forward order, popping exhausted frames as
// it goes. ok is false once every frame on the stack is exhausted.
func (c *cursor) next() (ir.Item, bool) {
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.idx < len(top.items) {
			it := top.items[top.idx]
			top.idx++
			return it, true
		}
		c.stack = c.stack[:len(c.stack)-1]
	}
	return nil, false
}

// push enters a sub-sequence (a condition branch) as a new top frame.
func (c *cursor) push(items []ir.Item) {
	if len(items) == 0 {
		return
	}
	c.stack = append(c.stack, frame{items: items})
}

// cursorSnapshot is an opaque capture of the cursor's stack, cheap to take
// because frames only copy a slice header and an index.
type cursorSnapshot []frame

func (c *cursor) snapshot() cursorSnapshot {
	s := make(cursorSnapshot, len(c.stack))
	copy(s, c.stack)
	return s
}

func (c *cursor) restore(s cursorSnapshot) {
	c.stack = make([]frame, len(s))
	copy(c.stack, s)
}

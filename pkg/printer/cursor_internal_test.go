package printer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ir-printer/engine/pkg/ir"
)

func TestCursorYieldsInOrder(t *testing.T) {
	c := newCursor([]ir.Item{ir.String{Text: "a"}, ir.String{Text: "b"}})

	it, ok := c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "a"}, it)

	it, ok = c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "b"}, it)

	_, ok = c.next()
	require.False(t, ok)
}

func TestCursorPushEntersSubFrame(t *testing.T) {
	c := newCursor([]ir.Item{ir.String{Text: "outer"}})

	it, _ := c.next()
	require.Equal(t, ir.String{Text: "outer"}, it)

	c.push([]ir.Item{ir.String{Text: "inner1"}, ir.String{Text: "inner2"}})

	it, ok := c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "inner1"}, it)

	it, ok = c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "inner2"}, it)

	_, ok = c.next()
	require.False(t, ok)
}

func TestCursorPushEmptyIsNoOp(t *testing.T) {
	c := newCursor([]ir.Item{ir.String{Text: "a"}})
	c.push(nil)
	it, ok := c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "a"}, it)
}

func TestCursorSnapshotRestore(t *testing.T) {
	c := newCursor([]ir.Item{ir.String{Text: "a"}, ir.String{Text: "b"}, ir.String{Text: "c"}})

	_, _ = c.next()
	snap := c.snapshot()

	_, _ = c.next()
	_, _ = c.next()
	_, ok := c.next()
	require.False(t, ok)

	c.restore(snap)

	it, ok := c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "b"}, it)
}

func TestCursorSnapshotAcrossPushedFrames(t *testing.T) {
	c := newCursor([]ir.Item{ir.String{Text: "a"}})
	_, _ = c.next()
	c.push([]ir.Item{ir.String{Text: "nested1"}, ir.String{Text: "nested2"}})

	_, _ = c.next() // nested1
	snap := c.snapshot()
	_, _ = c.next() // nested2

	c.restore(snap)
	it, ok := c.next()
	require.True(t, ok)
	require.Equal(t, ir.String{Text: "nested2"}, it)
}

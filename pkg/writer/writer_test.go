package writer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ir-printer/engine/pkg/writer"
)

func newTestWriter() *writer.Writer {
	return writer.New(writer.Config{IndentWidth: 2, NewLine: "\n"})
}

func TestWriteTracksColumnAndIndent(t *testing.T) {
	w := newTestWriter()
	w.Write("abc")
	require.Equal(t, "abc", w.String())
	require.Equal(t, 3, w.CurrentInfo().Column)
	require.Equal(t, 0, w.CurrentInfo().Line)
}

func TestWriteCountsColumnsByRuneNotByte(t *testing.T) {
	w := newTestWriter()
	w.Write("café")
	require.Equal(t, "café", w.String())
	require.Equal(t, 4, w.CurrentInfo().Column)

	w2 := newTestWriter()
	w2.Write("日本語")
	require.Equal(t, "日本語", w2.String())
	require.Equal(t, 3, w2.CurrentInfo().Column)
}

func TestWriteIndentsAfterNewline(t *testing.T) {
	w := newTestWriter()
	w.IncrementIndent()
	w.Write("a\nb")
	require.Equal(t, "a\n  b", w.String())
	require.Equal(t, 1, w.CurrentInfo().Line)
	require.Equal(t, 3, w.CurrentInfo().Column)
}

func TestWriteRawSkipsIndentOnEmbeddedNewline(t *testing.T) {
	w := newTestWriter()
	w.IncrementIndent()
	w.WriteRaw("a\nb")
	require.Equal(t, "a\nb", w.String())
}

func TestWriteNewLineUsesConfiguredSequence(t *testing.T) {
	w := writer.New(writer.Config{IndentWidth: 4, NewLine: "\r\n"})
	w.Write("a")
	w.WriteNewLine()
	w.Write("b")
	require.Equal(t, "a\r\nb", w.String())
}

func TestJustWroteNewLine(t *testing.T) {
	w := newTestWriter()
	require.False(t, w.JustWroteNewLine())
	w.WriteNewLine()
	require.True(t, w.JustWroteNewLine())
	w.Write("x")
	require.False(t, w.JustWroteNewLine())
}

func TestSingleIndentWritesExactlyOneLevel(t *testing.T) {
	w := newTestWriter()
	w.IncrementIndent()
	w.IncrementIndent()
	w.SingleIndent()
	require.Equal(t, "  ", w.String())
}

func TestUseTabsEmitsTabsNotSpaces(t *testing.T) {
	w := writer.New(writer.Config{UseTabs: true, NewLine: "\n"})
	w.IncrementIndent()
	w.Write("\nx")
	require.Equal(t, "\n\tx", w.String())
}

func TestSnapshotRestoreDiscardsOutput(t *testing.T) {
	w := newTestWriter()
	w.Write("hello")
	snap := w.Snapshot()
	w.Write(" world")
	require.Equal(t, "hello world", w.String())

	w.Restore(snap)
	require.Equal(t, "hello", w.String())
	require.Equal(t, 5, w.CurrentInfo().Column)
}

func TestSnapshotRestoreRevertsIndentAndLine(t *testing.T) {
	w := newTestWriter()
	w.Write("a")
	snap := w.Snapshot()

	w.IncrementIndent()
	w.Write("\nb")
	require.Equal(t, 1, w.CurrentInfo().Line)

	w.Restore(snap)
	require.Equal(t, 0, w.CurrentInfo().Line)
	require.Equal(t, 0, w.IndentLevel())
	require.Equal(t, "a", w.String())
}

func TestIgnoringIndentToggle(t *testing.T) {
	w := newTestWriter()
	w.IncrementIndent()
	w.StartIgnoringIndent()
	w.Write("\na")
	w.StopIgnoringIndent()
	w.Write("\nb")
	require.Equal(t, "\na\n  b", w.String())
}

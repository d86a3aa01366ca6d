package ir

// WriterState is the writer cursor snapshot exposed to condition
// predicates and stored against a resolved marker.
type WriterState struct {
	Line                 int
	Column               int
	IndentLevel          int
	LineStartIndentLevel int
}

// IsHanging reports whether the writer is currently indented deeper than it
// was at the start of the current line.
func (s WriterState) IsHanging() bool {
	return s.IndentLevel > s.LineStartIndentLevel
}

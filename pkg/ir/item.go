// Package ir defines the intermediate representation consumed by the
// printer core: a closed, finite sequence of tagged Items describing how a
// file could be laid out. Language front-ends are the only producers of
// this representation; the printer in pkg/printer is its only consumer.
package ir

// Item is the closed set of IR element variants the printer understands.
// The set is sealed: only types in this package implement it.
type Item interface {
	irItem()
}

// String is emitted verbatim, respecting the current indent on line starts.
type String struct {
	Text string
}

// RawString is emitted verbatim, but line breaks inside it are not
// re-indented. Used for block comments and template literal bodies.
type RawString struct {
	Text string
}

// NewLine forces a line break.
type NewLine struct{}

// SpaceOrNewLine emits a single space if the enclosing newline-group fits on
// the current line, or a line break otherwise.
type SpaceOrNewLine struct{}

// PossibleNewLine behaves like SpaceOrNewLine but emits nothing in the
// single-line case instead of a space.
type PossibleNewLine struct{}

// ExpectNewLine emits a newline unless one was just emitted.
type ExpectNewLine struct{}

// SingleIndent writes one indent prefix unconditionally.
type SingleIndent struct{}

// StartIndent increases the current indent level by one. Must be paired
// with a later FinishIndent.
type StartIndent struct{}

// FinishIndent decreases the current indent level by one.
type FinishIndent struct{}

// StartNewLineGroup opens a newline-group: the region whose projected width
// decides how enclosed SpaceOrNewLine/PossibleNewLine items render. Must be
// paired with a later FinishNewLineGroup.
type StartNewLineGroup struct{}

// FinishNewLineGroup closes the most recently opened newline-group.
type FinishNewLineGroup struct{}

// StartIgnoringIndent suppresses indent injection until the matching
// FinishIgnoringIndent.
type StartIgnoringIndent struct{}

// FinishIgnoringIndent re-enables indent injection.
type FinishIgnoringIndent struct{}

func (String) irItem()               {}
func (RawString) irItem()            {}
func (NewLine) irItem()              {}
func (SpaceOrNewLine) irItem()       {}
func (PossibleNewLine) irItem()      {}
func (ExpectNewLine) irItem()        {}
func (SingleIndent) irItem()         {}
func (StartIndent) irItem()          {}
func (FinishIndent) irItem()         {}
func (StartNewLineGroup) irItem()    {}
func (FinishNewLineGroup) irItem()   {}
func (StartIgnoringIndent) irItem()  {}
func (FinishIgnoringIndent) irItem() {}
func (*Info) irItem()                {}
func (*Condition) irItem()           {}

var (
	_ Item = String{}
	_ Item = RawString{}
	_ Item = NewLine{}
	_ Item = SpaceOrNewLine{}
	_ Item = PossibleNewLine{}
	_ Item = ExpectNewLine{}
	_ Item = SingleIndent{}
	_ Item = StartIndent{}
	_ Item = FinishIndent{}
	_ Item = StartNewLineGroup{}
	_ Item = FinishNewLineGroup{}
	_ Item = StartIgnoringIndent{}
	_ Item = FinishIgnoringIndent{}
	_ Item = (*Info)(nil)
	_ Item = (*Condition)(nil)
)

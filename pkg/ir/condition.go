package ir

import "github.com/google/uuid"

// Resolution is the tri-state result of evaluating a Condition's predicate.
type Resolution int

const (
	// Undefined means the predicate needs more of the stream printed before
	// it can answer; the condition is deferred.
	Undefined Resolution = iota
	// True selects the condition's WhenTrue branch.
	True
	// False selects the condition's WhenFalse branch.
	False
)

func (r Resolution) String() string {
	switch r {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// Context is what a Condition's predicate is allowed to observe: the
// current writer cursor, and read-only lookups of other markers'/
// conditions' resolutions. Predicates must be pure functions of this
// context — they may not observe writer buffer contents.
type Context interface {
	// WriterInfo returns the writer's current cursor state.
	WriterInfo() WriterState

	// ResolvedInfo returns the recorded state for marker m and true if m
	// has been reached by the printer yet, or the zero value and false
	// otherwise.
	ResolvedInfo(m *Info) (WriterState, bool)

	// ResolvedCondition returns the cached resolution of another condition,
	// and true if it has been resolved yet.
	ResolvedCondition(c *Condition) (bool, bool)
}

// Predicate decides which branch of a Condition to take.
type Predicate func(ctx Context) Resolution

// Condition delays a binary choice until its predicate resolves to True or
// False. Identity is reference equality: two conditions with the same Name
// are still distinct.
type Condition struct {
	id   uuid.UUID
	Name string

	Predicate Predicate
	WhenTrue  Sequence
	WhenFalse Sequence

	// ForceReevaluateOn, if set, gates this condition's re-check on a named
	// marker instead of the default "re-ask after every item" policy: the
	// predicate is left untouched until ForceReevaluateOn resolves, at
	// which point re-checking resumes as normal. Optional.
	ForceReevaluateOn *Info
}

// NewCondition creates a new condition. Either branch may be nil, meaning
// that branch contributes no output.
func NewCondition(name string, predicate Predicate, whenTrue, whenFalse Sequence) *Condition {
	return &Condition{
		id:        uuid.New(),
		Name:      name,
		Predicate: predicate,
		WhenTrue:  whenTrue,
		WhenFalse: whenFalse,
	}
}

// DebugID returns the condition's debug identity.
func (c *Condition) DebugID() string {
	if c == nil {
		return "<nil>"
	}
	return c.id.String()
}

func (c *Condition) String() string {
	if c == nil {
		return "<nil condition>"
	}
	if c.Name == "" {
		return "condition:" + c.id.String()
	}
	return c.Name
}

// Package resolve implements the printer's resolution store: the record of
// which position markers have been reached and which conditions have been
// decided, keyed by Go pointer identity rather than by name.
package resolve

import "github.com/ir-printer/engine/pkg/ir"

// Store holds the two identity-keyed maps plus the ordered set of deferred
// conditions awaiting re-check. Map iteration order
// is not relied upon anywhere in this package; the deferred set is kept as
// an explicit slice so re-check order — and therefore the printer's
// output — stays deterministic.
type Store struct {
	infos      map[*ir.Info]ir.WriterState
	conditions map[*ir.Condition]bool

	pendingOrder []*ir.Condition
	pendingSet   map[*ir.Condition]bool
}

// New creates an empty resolution store.
func New() *Store {
	return &Store{
		infos:      make(map[*ir.Info]ir.WriterState),
		conditions: make(map[*ir.Condition]bool),
		pendingSet: make(map[*ir.Condition]bool),
	}
}

// ResolveInfo records the writer state at which marker m was reached. A
// marker is resolved at most once per print; callers are responsible for
// enforcing that (the printer core checks it under isTesting).
func (s *Store) ResolveInfo(m *ir.Info, state ir.WriterState) {
	s.infos[m] = state
}

// Info looks up a marker's resolved state. The second return value is false
// if the printer has not reached m yet.
func (s *Store) Info(m *ir.Info) (ir.WriterState, bool) {
	state, ok := s.infos[m]
	return state, ok
}

// Visited reports whether marker m has already been resolved.
func (s *Store) Visited(m *ir.Info) bool {
	_, ok := s.infos[m]
	return ok
}

// ResolveCondition records condition c's final answer and removes it from
// the deferred set, if present.
func (s *Store) ResolveCondition(c *ir.Condition, value bool) {
	s.conditions[c] = value
	s.undefer(c)
}

// Condition looks up a condition's cached resolution.
func (s *Store) Condition(c *ir.Condition) (bool, bool) {
	value, ok := s.conditions[c]
	return value, ok
}

// Defer marks condition c as having returned Undefined, scheduling it for
// re-check once more of the stream has resolved. Re-adding an already
// deferred condition is a no-op.
func (s *Store) Defer(c *ir.Condition) {
	if s.pendingSet[c] {
		return
	}
	s.pendingSet[c] = true
	s.pendingOrder = append(s.pendingOrder, c)
}

// IsDeferred reports whether c is currently awaiting re-check.
func (s *Store) IsDeferred(c *ir.Condition) bool {
	return s.pendingSet[c]
}

// PendingConditions returns the currently deferred conditions in the order
// they were first deferred.
func (s *Store) PendingConditions() []*ir.Condition {
	out := make([]*ir.Condition, len(s.pendingOrder))
	copy(out, s.pendingOrder)
	return out
}

func (s *Store) undefer(c *ir.Condition) {
	if !s.pendingSet[c] {
		return
	}
	delete(s.pendingSet, c)
	for i, cond := range s.pendingOrder {
		if cond == c {
			s.pendingOrder = append(s.pendingOrder[:i], s.pendingOrder[i+1:]...)
			break
		}
	}
}

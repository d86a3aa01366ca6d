package ir

import "sync"

// Sequence is a finite, possibly-repeatable stream of Items. Condition
// branches are sequences: the printer may need to walk one more than once
// (once to measure whether a newline-group fits, again to actually emit
// it, and possibly again after a rewind), so producers that can only yield
// lazily must be wrapped with MakeRepeatable before being handed to a
// Condition.
type Sequence interface {
	// Each calls yield once per Item in order. If yield returns false, Each
	// stops early.
	Each(yield func(Item) bool)
}

// Items is a Sequence backed by an already-materialized slice.
type Items []Item

// Each implements Sequence.
func (s Items) Each(yield func(Item) bool) {
	for _, it := range s {
		if !yield(it) {
			return
		}
	}
}

// Producer yields the next Item in a lazy stream. It returns ok=false once
// exhausted; the stream must be finite.
type Producer func() (item Item, ok bool)

// repeatable wraps a Producer, materializing its output into an Items slice
// the first time it is walked and replaying that slice on every subsequent
// walk.
type repeatable struct {
	once    sync.Once
	produce Producer
	items   Items
}

// Each implements Sequence.
func (r *repeatable) Each(yield func(Item) bool) {
	r.once.Do(func() {
		for {
			it, ok := r.produce()
			if !ok {
				break
			}
			r.items = append(r.items, it)
		}
		r.produce = nil
	})
	r.items.Each(yield)
}

// MakeRepeatable wraps a lazy Producer into a Sequence that is safe to walk
// more than once. The producer is drained exactly once, on first walk.
func MakeRepeatable(p Producer) Sequence {
	return &repeatable{produce: p}
}

package ir

import "github.com/google/uuid"

// Info is a position marker: when the printer reaches it, it records the
// current writer state keyed by the marker's identity. It does not itself
// emit any text.
//
// Identity is reference equality — two markers with the same Name are
// still distinct markers. The embedded UUID exists only so logs and panic
// messages can name a marker without printing its pointer address; it is
// never used as a lookup key.
type Info struct {
	id   uuid.UUID
	Name string
}

// NewInfo creates a fresh position marker. name is used only for debugging
// and error messages.
func NewInfo(name string) *Info {
	return &Info{id: uuid.New(), Name: name}
}

// DebugID returns the marker's debug identity, useful for log correlation.
func (m *Info) DebugID() string {
	if m == nil {
		return "<nil>"
	}
	return m.id.String()
}

func (m *Info) String() string {
	if m == nil {
		return "<nil info>"
	}
	if m.Name == "" {
		return "info:" + m.id.String()
	}
	return m.Name
}

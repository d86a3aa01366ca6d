package printer

import (
	"github.com/ir-printer/engine/pkg/ir"
	"github.com/ir-printer/engine/pkg/resolve"
	"github.com/ir-printer/engine/pkg/writer"
)

// evalContext implements ir.Context over the evaluator's live writer and
// either the real resolution store (during normal emission) or a private
// overlay (during newline-group measurement). The overlay shadows the real
// store without ever mutating it, which is what lets measurement be
// discarded without leaving a trace.
type evalContext struct {
	w     *writer.Writer
	store *resolve.Store

	measuring   bool
	overlayInfo map[*ir.Info]ir.WriterState
	overlayCond map[*ir.Condition]bool
}

func (c *evalContext) WriterInfo() ir.WriterState {
	return c.w.CurrentInfo()
}

func (c *evalContext) ResolvedInfo(m *ir.Info) (ir.WriterState, bool) {
	if c.measuring {
		if v, ok := c.overlayInfo[m]; ok {
			return v, true
		}
	}
	return c.store.Info(m)
}

func (c *evalContext) ResolvedCondition(cond *ir.Condition) (bool, bool) {
	if c.measuring {
		if v, ok := c.overlayCond[cond]; ok {
			return v, true
		}
	}
	return c.store.Condition(cond)
}

var _ ir.Context = (*evalContext)(nil)

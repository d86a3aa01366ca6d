package printer

import (
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/ir-printer/engine/pkg/ir"
)

// processItem applies a single item's effect to the writer/store, pushing
// condition branches onto the cursor as needed. It is the one dispatcher
// shared by real emission and newline-group measurement — the only
// difference between the two is the value of e.measuring, which redirects
// marker/condition resolution into a private overlay and turns any real
// line break it observes into an immediate "does not fit" signal.
func (e *evaluator) processItem(item ir.Item) error {
	switch it := item.(type) {
	case ir.String:
		e.writeText(it.Text, false)

	case ir.RawString:
		e.writeText(it.Text, true)

	case ir.NewLine:
		e.breakLine()

	case ir.ExpectNewLine:
		if !e.w.JustWroteNewLine() {
			e.breakLine()
		}

	case ir.SpaceOrNewLine:
		return e.renderGroupBreak(true)

	case ir.PossibleNewLine:
		return e.renderGroupBreak(false)

	case ir.SingleIndent:
		e.w.SingleIndent()

	case ir.StartIndent:
		e.w.IncrementIndent()
		e.indentBalance++

	case ir.FinishIndent:
		e.w.DecrementIndent()
		e.indentBalance--
		if e.cfg.IsTesting && e.indentBalance < 0 {
			return errors.Wrap(ErrUnbalancedPair, "FinishIndent without matching StartIndent")
		}

	case ir.StartIgnoringIndent:
		e.w.StartIgnoringIndent()
		e.ignoreBalance++

	case ir.FinishIgnoringIndent:
		e.w.StopIgnoringIndent()
		e.ignoreBalance--
		if e.cfg.IsTesting && e.ignoreBalance < 0 {
			return errors.Wrap(ErrUnbalancedPair, "FinishIgnoringIndent without matching StartIgnoringIndent")
		}

	case ir.StartNewLineGroup:
		e.groupBalance++

	case ir.FinishNewLineGroup:
		e.groupBalance--
		if e.cfg.IsTesting && e.groupBalance < 0 {
			return errors.Wrap(ErrUnbalancedPair, "FinishNewLineGroup without matching StartNewLineGroup")
		}

	case *ir.Info:
		return e.resolveInfo(it)

	case *ir.Condition:
		return e.evalCondition(it)

	default:
		return errors.Errorf("printer: unrecognized item type %T", item)
	}

	return nil
}

func (e *evaluator) writeText(text string, raw bool) {
	if e.measuring && strings.ContainsRune(text, '\n') {
		e.measureHit = true
	}
	if raw {
		e.w.WriteRaw(text)
	} else {
		e.w.Write(text)
	}
}

func (e *evaluator) breakLine() {
	e.w.WriteNewLine()
	if e.measuring {
		e.measureHit = true
	}
}

func (e *evaluator) resolveInfo(m *ir.Info) error {
	state := e.w.CurrentInfo()
	if e.measuring {
		e.overlayInfo[m] = state
		return nil
	}
	if e.cfg.IsTesting && e.store.Visited(m) {
		return errors.Wrapf(ErrMarkerRevisited, "marker %q", m.Name)
	}
	e.store.ResolveInfo(m, state)
	return nil
}

// renderGroupBreak implements SpaceOrNewLine (space=true) and
// PossibleNewLine (space=false): measure whether the rest of the enclosing
// newline-group fits on the current line, then emit a space/nothing or a
// real line break accordingly.
func (e *evaluator) renderGroupBreak(space bool) error {
	info := e.w.CurrentInfo()
	fits := info.Column <= e.cfg.MaxWidth && e.measureNewlineGroup()

	if e.metrics != nil {
		e.metrics.IncMeasurement(fits)
	}

	if fits {
		if space {
			e.w.Write(" ")
		}
		return nil
	}

	level.Debug(e.logger).Log("msg", "newline-group does not fit, breaking", "line", info.Line, "column", info.Column)
	e.breakLine()
	return nil
}

// measureNewlineGroup walks forward from the current cursor position,
// through the remainder of the enclosing newline-group, to decide whether
// it fits on the current line. It writes into the real writer and cursor
// to get faithful column tracking (nested conditions may themselves write
// text or recurse into further measurement), then restores both to exactly
// where they stood before the walk — so no writer-observable state leaks
// out of a discarded speculation.
func (e *evaluator) measureNewlineGroup() bool {
	wSnap := e.w.Snapshot()
	cSnap := e.cur.snapshot()

	prevMeasuring := e.measuring
	prevOverlayInfo, prevOverlayCond := e.overlayInfo, e.overlayCond
	prevIndent, prevIgnore, prevGroup := e.indentBalance, e.ignoreBalance, e.groupBalance
	if !prevMeasuring {
		// Starting a fresh top-level measurement: nested measurement calls
		// (for inner newline-groups encountered along the way) reuse these
		// same maps below, so evidence gathered earlier in this walk is
		// visible to them too.
		e.overlayInfo = make(map[*ir.Info]ir.WriterState)
		e.overlayCond = make(map[*ir.Condition]bool)
		e.measureHit = false
	}
	e.measuring = true

	fits := e.walkGroupRemainder()

	e.measuring = prevMeasuring
	e.overlayInfo = prevOverlayInfo
	e.overlayCond = prevOverlayCond
	e.indentBalance, e.ignoreBalance, e.groupBalance = prevIndent, prevIgnore, prevGroup

	e.w.Restore(wSnap)
	e.cur.restore(cSnap)

	return fits
}

func (e *evaluator) walkGroupRemainder() bool {
	if e.w.CurrentInfo().Column > e.cfg.MaxWidth {
		return false
	}

	depth := 1
	for {
		item, ok := e.cur.next()
		if !ok {
			// Unbalanced IR: nothing left to measure against. There is
			// nothing more this group can overflow on, so call it a fit;
			// cfg.IsTesting will flag the real imbalance separately.
			return true
		}

		if _, isStart := item.(ir.StartNewLineGroup); isStart {
			depth++
		}

		if err := e.processItem(item); err != nil {
			// A malformed predicate during measurement still needs to
			// surface; treat as "does not fit" and let the real pass,
			// which re-walks the same items for real, report the error.
			return false
		}

		if e.measureHit || e.w.CurrentInfo().Column > e.cfg.MaxWidth {
			return false
		}

		if _, isFinish := item.(ir.FinishNewLineGroup); isFinish {
			depth--
			if depth == 0 {
				return true
			}
		}
	}
}

// evalCondition asks a condition's predicate and either commits to a
// branch immediately or defers the decision.
func (e *evaluator) evalCondition(cond *ir.Condition) error {
	res := cond.Predicate(e.context())

	switch res {
	case ir.True:
		if e.measuring {
			e.overlayCond[cond] = true
		} else {
			e.store.ResolveCondition(cond, true)
		}
		e.cur.push(materialize(cond.WhenTrue))
		return nil

	case ir.False:
		if e.measuring {
			e.overlayCond[cond] = false
		} else {
			e.store.ResolveCondition(cond, false)
		}
		e.cur.push(materialize(cond.WhenFalse))
		return nil

	case ir.Undefined:
		return e.deferCondition(cond)

	default:
		return errors.Wrapf(ErrPredicateValue, "condition %q", cond.Name)
	}
}

func (e *evaluator) deferCondition(cond *ir.Condition) error {
	if cond.WhenTrue == nil && cond.WhenFalse == nil {
		// Contributes no output regardless of how it eventually resolves;
		// nothing to speculate and nothing worth tracking.
		return nil
	}

	if e.measuring {
		// Measurement never rewinds; a deferred condition inside a
		// measurement walk is evaluated exactly once, taking the false
		// branch as the provisional answer, same as the real pass would
		// on its first pass through.
		e.overlayCond[cond] = false
		e.cur.push(materialize(cond.WhenFalse))
		return nil
	}

	e.deferred[cond] = deferredRecord{
		writerSnap: e.w.Snapshot(),
		cursorSnap: e.cur.snapshot(),
	}
	e.store.Defer(cond)

	level.Debug(e.logger).Log("msg", "condition deferred, speculating false", "condition", cond.Name)

	e.cur.push(materialize(cond.WhenFalse))
	return nil
}

// recheckPending re-asks every condition still waiting on a definite
// answer. A flip to true rewinds the writer and cursor back to the
// condition's own site and splices in the true branch instead; this is
// what makes the rewind sound: the final output is
// indistinguishable from the condition having resolved true the first
// time it was asked. A flip to (still) false finalizes the speculative
// guess so it stops being re-asked. Undefined leaves it pending.
func (e *evaluator) recheckPending() error {
	for _, cond := range e.store.PendingConditions() {
		if !e.store.IsDeferred(cond) {
			continue
		}
		if cond.ForceReevaluateOn != nil && !e.store.Visited(cond.ForceReevaluateOn) {
			// This condition only gets re-asked once its named marker
			// resolves, instead of on every item like the default policy.
			continue
		}

		res := cond.Predicate(e.context())
		switch res {
		case ir.False:
			e.store.ResolveCondition(cond, false)
			delete(e.deferred, cond)

		case ir.True:
			rec, ok := e.deferred[cond]
			if !ok {
				e.store.ResolveCondition(cond, true)
				continue
			}
			delete(e.deferred, cond)

			level.Debug(e.logger).Log("msg", "rewinding condition to true", "condition", cond.Name)

			e.w.Restore(rec.writerSnap)
			e.cur.restore(rec.cursorSnap)
			e.store.ResolveCondition(cond, true)

			if e.metrics != nil {
				e.metrics.IncRewinds()
			}

			e.cur.push(materialize(cond.WhenTrue))

		case ir.Undefined:
			// Still not enough evidence; stays pending.

		default:
			return errors.Wrapf(ErrPredicateValue, "condition %q", cond.Name)
		}
	}
	return nil
}

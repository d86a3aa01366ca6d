// Package printer implements the IR printer core: the single-pass,
// depth-first evaluator that turns a finite ir.Sequence into formatted
// text, resolving position markers and conditions as it goes and
// speculatively measuring newline-groups to decide where lines break.
package printer

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/ir-printer/engine/pkg/ir"
	"github.com/ir-printer/engine/pkg/newline"
	"github.com/ir-printer/engine/pkg/resolve"
	"github.com/ir-printer/engine/pkg/writer"
)

// Print consumes items and renders them according to cfg, returning the
// formatted string. It fails only on: an invalid predicate resolution
// always, and — when cfg.IsTesting is set — unbalanced Start/Finish pairs,
// a marker visited more than once, or a condition still unresolved at the
// end of the print.
func Print(items ir.Sequence, cfg Config, opts ...Option) (string, error) {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	nl := newline.Resolve(cfg.NewLineKind, o.sourceText)

	w := writer.New(writer.Config{
		IndentWidth: cfg.IndentWidth,
		UseTabs:     cfg.UseTabs,
		NewLine:     nl,
	})

	e := &evaluator{
		cfg:      cfg,
		w:        w,
		store:    resolve.New(),
		logger:   logger,
		metrics:  o.metrics,
		cur:      newCursor(materialize(items)),
		deferred: make(map[*ir.Condition]deferredRecord),
	}

	start := time.Now()
	err := e.run()
	if e.metrics != nil {
		e.metrics.ObservePrintDuration(time.Since(start).Seconds())
		e.metrics.ObserveLines(w.CurrentInfo().Line + 1)
	}
	if err != nil {
		level.Error(logger).Log("msg", "print failed", "err", err)
		return "", err
	}

	return w.String(), nil
}

// deferredRecord is the writer+cursor snapshot taken at a condition's site
// the moment its predicate first returns ir.Undefined. If the condition
// later flips to true, the printer rewinds to exactly this point and
// replays with the true branch, which is what makes the rewind sound: the
// output ends up identical to the condition having resolved true the first
// time it was asked.
type deferredRecord struct {
	writerSnap writer.Snapshot
	cursorSnap cursorSnapshot
}

// evaluator holds all per-print state. Nothing here is shared across
// concurrent Print calls; each call constructs its own evaluator, writer,
// and resolution store.
type evaluator struct {
	cfg     Config
	w       *writer.Writer
	store   *resolve.Store
	logger  log.Logger
	metrics metricsRecorder
	cur     *cursor

	deferred map[*ir.Condition]deferredRecord

	// Integrity counters, meaningful only under cfg.IsTesting.
	indentBalance int
	ignoreBalance int
	groupBalance  int

	// measuring is true for the duration of any (possibly nested)
	// newline-group measurement walk; measureHit latches true the instant
	// a real line break is written while measuring, which is the signal
	// that the group being measured does not fit.
	measuring  bool
	measureHit bool

	overlayInfo map[*ir.Info]ir.WriterState
	overlayCond map[*ir.Condition]bool
}

func materialize(seq ir.Sequence) []ir.Item {
	if seq == nil {
		return nil
	}
	var out []ir.Item
	seq.Each(func(it ir.Item) bool {
		out = append(out, it)
		return true
	})
	return out
}

func (e *evaluator) context() *evalContext {
	return &evalContext{
		w:           e.w,
		store:       e.store,
		measuring:   e.measuring,
		overlayInfo: e.overlayInfo,
		overlayCond: e.overlayCond,
	}
}

// run drives the top-level evaluation loop to completion: pull the next
// item from the cursor, process it, and — since a rewind only ever
// replaces what the cursor yields next rather than unwinding a call stack —
// simply continue. This loop has no local state beyond "keep pulling",
// which is exactly what lets a mid-stream rewind splice in a different
// future without the loop needing to know anything happened.
func (e *evaluator) run() error {
	for {
		item, ok := e.cur.next()
		if !ok {
			break
		}
		if err := e.processItem(item); err != nil {
			return err
		}
		if !e.measuring {
			if err := e.recheckPending(); err != nil {
				return err
			}
		}
	}
	return e.finish()
}

func (e *evaluator) finish() error {
	var integrity []error

	if e.cfg.IsTesting {
		if e.indentBalance != 0 {
			integrity = append(integrity, errors.Wrap(ErrUnbalancedPair, "StartIndent/FinishIndent"))
		}
		if e.ignoreBalance != 0 {
			integrity = append(integrity, errors.Wrap(ErrUnbalancedPair, "StartIgnoringIndent/FinishIgnoringIndent"))
		}
		if e.groupBalance != 0 {
			integrity = append(integrity, errors.Wrap(ErrUnbalancedPair, "StartNewLineGroup/FinishNewLineGroup"))
		}
	}

	for _, cond := range e.store.PendingConditions() {
		e.store.ResolveCondition(cond, false)
		if e.cfg.IsTesting {
			integrity = append(integrity, errors.Wrapf(ErrUnresolvedCondition, "condition %q", cond.Name))
		} else {
			level.Warn(e.logger).Log("msg", "condition left unresolved, finalized false", "condition", cond.Name)
		}
	}

	if len(integrity) > 0 {
		return integrity[0]
	}
	return nil
}

package printer

import "github.com/pkg/errors"

// Sentinel errors a caller can match with errors.Is. Each is wrapped with
// context naming the offending condition, marker or Start/Finish pair before
// being returned from Print; no writer position is included.
var (
	// ErrUnbalancedPair is returned under Config.IsTesting when a
	// StartIndent/FinishIndent, StartIgnoringIndent/FinishIgnoringIndent,
	// or StartNewLineGroup/FinishNewLineGroup pair doesn't balance.
	ErrUnbalancedPair = errors.New("printer: unbalanced start/finish pair")

	// ErrMarkerRevisited is returned under Config.IsTesting when the same
	// position marker is reached more than once in a single print.
	ErrMarkerRevisited = errors.New("printer: position marker visited more than once")

	// ErrPredicateValue is returned when a condition's predicate returns a
	// Resolution outside {True, False, Undefined}. Always fatal,
	// regardless of Config.IsTesting.
	ErrPredicateValue = errors.New("printer: condition predicate returned an invalid resolution")

	// ErrUnresolvedCondition is returned under Config.IsTesting when a
	// condition's predicate never resolved to True or False by the end of
	// the print (it is finalized to False either way).
	ErrUnresolvedCondition = errors.New("printer: condition left unresolved at end of print")
)

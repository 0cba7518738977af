// Package autoerr is the centralized error taxonomy shared by every
// construction and execution path in the automata packages. It follows the Kind-plus-struct shape of a leveled error type
// rather than a grab-bag of ad-hoc sentinel errors, so callers can
// branch on errors.As(err, &autoerr.Error{}).Kind without parsing
// messages.
package autoerr

import "fmt"

// Kind classifies an Error into one of the enumerated failure kinds
// below.
type Kind uint8

const (
	// UnknownLetter: a letter outside the declared alphabet.
	UnknownLetter Kind = iota
	// InvalidStateToRun: simulation referenced an out-of-range state.
	InvalidStateToRun
	// InvalidInitial: declared initial state out of range.
	InvalidInitial
	// InvalidFinal: declared final state out of range.
	InvalidFinal
	// InvalidTransition: transition destination out of range.
	InvalidTransition
	// InvalidEpsilonTrans: ε-row out of bounds or target out of range.
	InvalidEpsilonTrans
	// AlphabetMismatch: binary operation on two languages with
	// different alphabets.
	AlphabetMismatch
	// MultipleActiveInDfa: run_transition called with |active| != 1.
	MultipleActiveInDfa
	// InvalidRip: ripping start/accept, or N <= 2.
	InvalidRip
	// EmptyRange: repeat_range with end < start.
	EmptyRange
	// Other: everything else that must be surfaced rather than
	// silently recovered.
	Other
)

// String names the Kind.
func (k Kind) String() string {
	switch k {
	case UnknownLetter:
		return "UnknownLetter"
	case InvalidStateToRun:
		return "InvalidStateToRun"
	case InvalidInitial:
		return "InvalidInitial"
	case InvalidFinal:
		return "InvalidFinal"
	case InvalidTransition:
		return "InvalidTransition"
	case InvalidEpsilonTrans:
		return "InvalidEpsilonTrans"
	case AlphabetMismatch:
		return "AlphabetMismatch"
	case MultipleActiveInDfa:
		return "MultipleActiveInDfa"
	case InvalidRip:
		return "InvalidRip"
	case EmptyRange:
		return "EmptyRange"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("UnknownKind(%d)", uint8(k))
	}
}

// Error is the one error type every package in this module returns.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("autour: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("autour: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is: two *Error values
// match if they carry the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a plain Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// UnknownLetterErr reports a letter outside the declared alphabet.
func UnknownLetterErr(lRepr string, alphabetRepr string) *Error {
	return New(UnknownLetter, "letter %s is not in alphabet %s", lRepr, alphabetRepr)
}

// InvalidStateToRunErr reports an out-of-range state referenced during
// simulation.
func InvalidStateToRunErr(id, n int) *Error {
	return New(InvalidStateToRun, "state %d is out of range [0,%d)", id, n)
}

// InvalidInitialErr reports an out-of-range declared initial state.
func InvalidInitialErr(id, n int) *Error {
	return New(InvalidInitial, "initial state %d is out of range [0,%d)", id, n)
}

// InvalidFinalErr reports an out-of-range declared final state.
func InvalidFinalErr(id, n int) *Error {
	return New(InvalidFinal, "final state %d is out of range [0,%d)", id, n)
}

// InvalidTransitionErr reports an out-of-range transition target.
func InvalidTransitionErr(src int, lRepr string, dst, n int) *Error {
	return New(InvalidTransition, "transition %d --%s--> %d targets out of range [0,%d)", src, lRepr, dst, n)
}

// InvalidEpsilonTransErr reports an out-of-range ε-row or ε-target.
func InvalidEpsilonTransErr(src int, dst *int, n int) *Error {
	if dst == nil {
		return New(InvalidEpsilonTrans, "epsilon row for state %d is out of range [0,%d)", src, n)
	}
	return New(InvalidEpsilonTrans, "epsilon transition %d --eps--> %d targets out of range [0,%d)", src, *dst, n)
}

// AlphabetMismatchErr reports a binary operation on mismatched
// alphabets.
func AlphabetMismatchErr(aRepr, bRepr string) *Error {
	return New(AlphabetMismatch, "alphabet mismatch: %s vs %s", aRepr, bRepr)
}

// MultipleActiveInDfaErr reports RunTransition called with |active| != 1.
func MultipleActiveInDfaErr(active int) *Error {
	return New(MultipleActiveInDfa, "run_transition requires exactly one active state, got %d", active)
}

// InvalidRipErr reports an attempt to rip the start/accept state, or a
// GNFA with fewer than 3 states.
func InvalidRipErr(reason string) *Error {
	return New(InvalidRip, "%s", reason)
}

// EmptyRangeErr reports repeat_range called with end < start.
func EmptyRangeErr(start int, end int) *Error {
	return New(EmptyRange, "repeat_range end %d is less than start %d", end, start)
}

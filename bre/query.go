package bre

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// GetAlphabet returns the set of letters occurring anywhere in t,
// using an explicit worklist rather than naive recursion so that very
// deep trees never blow a goroutine stack.
func GetAlphabet[L letter.Letter[L]](t Term[L]) map[L]struct{} {
	seen := make(map[L]struct{})
	stack := []Term[L]{t}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		switch cur.kind {
		case KindLiteral:
			seen[cur.literal] = struct{}{}
		case KindUnion, KindConcat:
			stack = append(stack, cur.children...)
		case KindKleene:
			stack = append(stack, *cur.child)
		}
	}
	return seen
}

// IsEmpty reports whether t denotes the empty language (∅), defined
// structurally: Union is empty iff every child is empty; Concat is
// empty iff any child is empty; Kleene is never empty (it always
// contains at least ε).
func IsEmpty[L letter.Letter[L]](t Term[L]) bool {
	switch t.kind {
	case KindEmpty:
		return true
	case KindEpsilon, KindLiteral, KindKleene:
		return false
	case KindUnion:
		for _, c := range t.children {
			if !IsEmpty(c) {
				return false
			}
		}
		return true
	case KindConcat:
		for _, c := range t.children {
			if IsEmpty(c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ExpressesEpsilon reports whether t accepts the empty word, defined
// structurally: Union accepts ε iff any child does; Concat accepts ε
// iff every child does; Kleene always accepts ε.
func ExpressesEpsilon[L letter.Letter[L]](t Term[L]) bool {
	switch t.kind {
	case KindEpsilon, KindKleene:
		return true
	case KindEmpty, KindLiteral:
		return false
	case KindUnion:
		for _, c := range t.children {
			if ExpressesEpsilon(c) {
				return true
			}
		}
		return false
	case KindConcat:
		for _, c := range t.children {
			if !ExpressesEpsilon(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Repeat returns the k-fold concatenation of t: ε when k == 0.
func Repeat[L letter.Letter[L]](t Term[L], k int) Term[L] {
	if k <= 0 {
		return Epsilon[L]()
	}
	copies := make([]Term[L], k)
	for i := range copies {
		copies[i] = t
	}
	return Concat(copies...)
}

// AtMost returns a term accepting between 0 and k copies of t:
// (t|ε).repeat(k).
func AtMost[L letter.Letter[L]](t Term[L], k int) Term[L] {
	return Repeat(Union(t, Epsilon[L]()), k)
}

// AtLeast returns a term accepting k or more copies of t:
// t.repeat(k) . t*.
func AtLeast[L letter.Letter[L]](t Term[L], k int) Term[L] {
	return Concat(Repeat(t, k), Kleene(t))
}

// Range expresses a bounded or unbounded repetition count: [Start,
// End]. A nil End means unbounded.
type Range struct {
	Start int
	End   *int
}

// RepeatRange returns a term accepting between Start and End copies
// of t (or Start-or-more when End is nil). Returns an
// autoerr-wrapped EmptyRange error when End is non-nil and less than
// Start.
func RepeatRange[L letter.Letter[L]](t Term[L], r Range) (Term[L], error) {
	if r.End == nil {
		return AtLeast(t, r.Start), nil
	}
	if *r.End < r.Start {
		return Term[L]{}, autoerr.EmptyRangeErr(r.Start, *r.End)
	}
	return Concat(Repeat(t, r.Start), AtMost(t, *r.End-r.Start)), nil
}

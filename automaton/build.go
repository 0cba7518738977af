package automaton

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// shiftBy returns a copy of n with every state ID increased by delta.
func shiftBy[L letter.Letter[L]](n NFA[L], delta int) NFA[L] {
	initials := make(map[int]struct{}, len(n.initials))
	for s := range n.initials {
		initials[s+delta] = struct{}{}
	}
	finals := make(map[int]struct{}, len(n.finals))
	for s := range n.finals {
		finals[s+delta] = struct{}{}
	}
	transitions := make([]map[L]map[int]struct{}, len(n.transitions))
	for i, row := range n.transitions {
		nr := make(map[L]map[int]struct{}, len(row))
		for l, targets := range row {
			shifted := make(map[int]struct{}, len(targets))
			for t := range targets {
				shifted[t+delta] = struct{}{}
			}
			nr[l] = shifted
		}
		transitions[i] = nr
	}
	return NFA[L]{alphabet: n.alphabet, initials: initials, finals: finals, transitions: transitions}
}

// Unite returns the union of a and b: a's state numbering is kept, b's is
// shifted by |a| and the two transition tables concatenated with no
// merging. Fails with AlphabetMismatch if a and b are
// declared over different alphabets.
func Unite[L letter.Letter[L]](a, b NFA[L]) (NFA[L], error) {
	if !a.alphabet.Equals(b.alphabet) {
		return NFA[L]{}, autoerr.AlphabetMismatchErr(a.alphabet.String(), b.alphabet.String())
	}
	shifted := shiftBy(b, len(a.transitions))
	transitions := append(cloneRows(a.transitions), shifted.transitions...)
	initials := cloneSet(a.initials)
	for s := range shifted.initials {
		initials[s] = struct{}{}
	}
	finals := cloneSet(a.finals)
	for s := range shifted.finals {
		finals[s] = struct{}{}
	}
	return NFA[L]{alphabet: a.alphabet, initials: initials, finals: finals, transitions: transitions}, nil
}

// Concatenate returns a followed by b: b's states are shifted by |a|, then
// every transition out of one of b's (shifted) initials is copied onto
// every one of a's finals. The new finals are b's finals, extended with
// a's original finals only when some final of b is itself one of b's
// initials (so the empty suffix stays reachable from a's finals).
func Concatenate[L letter.Letter[L]](a, b NFA[L]) (NFA[L], error) {
	if !a.alphabet.Equals(b.alphabet) {
		return NFA[L]{}, autoerr.AlphabetMismatchErr(a.alphabet.String(), b.alphabet.String())
	}
	l := len(a.transitions)
	shifted := shiftBy(b, l)
	transitions := cloneRows(a.transitions)
	transitions = append(transitions, shifted.transitions...)

	for initState := range shifted.initials {
		for letterSym, targets := range transitions[initState] {
			for final := range a.finals {
				dst := transitions[final][letterSym]
				if dst == nil {
					dst = map[int]struct{}{}
					transitions[final][letterSym] = dst
				}
				for t := range targets {
					dst[t] = struct{}{}
				}
			}
		}
	}

	finals := map[int]struct{}{}
	bFinalsMeetInitials := false
	for s := range shifted.finals {
		if _, ok := shifted.initials[s]; ok {
			bFinalsMeetInitials = true
			break
		}
	}
	if bFinalsMeetInitials {
		for s := range a.finals {
			finals[s] = struct{}{}
		}
		for s := range shifted.finals {
			finals[s] = struct{}{}
		}
	} else {
		for s := range shifted.finals {
			finals[s] = struct{}{}
		}
	}

	return NFA[L]{alphabet: a.alphabet, initials: cloneSet(a.initials), finals: finals, transitions: transitions}, nil
}

// Kleene returns the Kleene star of n: a fresh state is both the sole
// initial and a final, and every letter-transition out of an old initial
// is copied onto every old final so that looping back re-enters the body.
func Kleene[L letter.Letter[L]](n NFA[L]) NFA[L] {
	l := len(n.transitions)
	outFromInitials := map[L]map[int]struct{}{}
	for initState := range n.initials {
		for letterSym, targets := range n.transitions[initState] {
			dst := outFromInitials[letterSym]
			if dst == nil {
				dst = map[int]struct{}{}
				outFromInitials[letterSym] = dst
			}
			for t := range targets {
				dst[t] = struct{}{}
			}
		}
	}

	transitions := cloneRows(n.transitions)
	for final := range n.finals {
		for letterSym, targets := range outFromInitials {
			dst := transitions[final][letterSym]
			if dst == nil {
				dst = map[int]struct{}{}
				transitions[final][letterSym] = dst
			}
			for t := range targets {
				dst[t] = struct{}{}
			}
		}
	}
	transitions = append(transitions, cloneRow(outFromInitials))

	// The fresh state has no incoming edges, so the old finals must stay
	// final for any nonempty iteration to be accepted.
	return NFA[L]{
		alphabet:    n.alphabet,
		initials:    map[int]struct{}{l: {}},
		finals:      unionSet(n.finals, map[int]struct{}{l: {}}),
		transitions: transitions,
	}
}

func cloneRow[L letter.Letter[L]](row map[L]map[int]struct{}) map[L]map[int]struct{} {
	out := make(map[L]map[int]struct{}, len(row))
	for l, targets := range row {
		out[l] = cloneSet(targets)
	}
	return out
}

// Repeat returns the k-fold concatenation of n: the empty-word acceptor
// when k == 0.
func Repeat[L letter.Letter[L]](n NFA[L], k int) NFA[L] {
	acc := EmptyWord(n.alphabet)
	for i := 0; i < k; i++ {
		acc, _ = Concatenate(acc, n) // same alphabet by construction, never fails
	}
	return acc
}

// AtMost ensures some initial state is also final (adding a fresh
// dual-role state if none is, so the empty word is always reachable),
// then returns Repeat(k) of the result.
func AtMost[L letter.Letter[L]](n NFA[L], k int) NFA[L] {
	hasAcceptingInitial := false
	for s := range n.initials {
		if _, ok := n.finals[s]; ok {
			hasAcceptingInitial = true
			break
		}
	}
	if !hasAcceptingInitial {
		l := len(n.transitions)
		transitions := cloneRows(n.transitions)
		transitions = append(transitions, map[L]map[int]struct{}{})
		n = NFA[L]{
			alphabet:    n.alphabet,
			initials:    unionSet(n.initials, map[int]struct{}{l: {}}),
			finals:      unionSet(n.finals, map[int]struct{}{l: {}}),
			transitions: transitions,
		}
	}
	return Repeat(n, k)
}

func unionSet(a, b map[int]struct{}) map[int]struct{} {
	out := cloneSet(a)
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// AtLeast returns n.Repeat(k) concatenated with Kleene(n).
func AtLeast[L letter.Letter[L]](n NFA[L], k int) NFA[L] {
	result, _ := Concatenate(Repeat(n, k), Kleene(n))
	return result
}

// Range expresses a bounded or unbounded repetition count: [Start, End].
// A nil End means unbounded.
type Range struct {
	Start int
	End   *int
}

// RepeatRange returns an automaton accepting between Start and End copies
// of n (or Start-or-more when End is nil). Returns autoerr.EmptyRange when
// End is non-nil and less than Start.
func RepeatRange[L letter.Letter[L]](n NFA[L], r Range) (NFA[L], error) {
	if r.End == nil {
		return AtLeast(n, r.Start), nil
	}
	if *r.End < r.Start {
		return NFA[L]{}, autoerr.EmptyRangeErr(r.Start, *r.End)
	}
	return Concatenate(Repeat(n, r.Start), AtMost(n, *r.End-r.Start))
}

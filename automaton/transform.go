package automaton

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// IsComplete reports whether every (state, letter) pair has an outgoing
// transition. An automaton with no initial states is never complete.
func (n NFA[L]) IsComplete() bool {
	if len(n.initials) == 0 {
		return false
	}
	for _, row := range n.transitions {
		for _, l := range n.alphabet.Sorted() {
			if len(row[l]) == 0 {
				return false
			}
		}
	}
	return true
}

// Complete adds a single sink state absorbing every missing transition.
// The sink is never final, so the accepted language is unchanged; if n had
// no initial state, the sink becomes the sole initial.
func Complete[L letter.Letter[L]](n NFA[L]) NFA[L] {
	if n.IsComplete() {
		return n
	}
	sink := len(n.transitions)
	transitions := cloneRows(n.transitions)
	transitions = append(transitions, map[L]map[int]struct{}{})
	for i, row := range transitions {
		for _, l := range n.alphabet.Sorted() {
			if len(row[l]) == 0 {
				row[l] = map[int]struct{}{sink: {}}
			}
		}
		transitions[i] = row
	}
	initials := cloneSet(n.initials)
	if len(initials) == 0 {
		initials[sink] = struct{}{}
	}
	return NFA[L]{alphabet: n.alphabet, initials: initials, finals: cloneSet(n.finals), transitions: transitions}
}

// Reverse inverts every transition and swaps the initial and final sets.
func Reverse[L letter.Letter[L]](n NFA[L]) NFA[L] {
	transitions := make([]map[L]map[int]struct{}, len(n.transitions))
	for i := range transitions {
		transitions[i] = map[L]map[int]struct{}{}
	}
	for orig, row := range n.transitions {
		for l, targets := range row {
			for target := range targets {
				dst := transitions[target][l]
				if dst == nil {
					dst = map[int]struct{}{}
					transitions[target][l] = dst
				}
				dst[orig] = struct{}{}
			}
		}
	}
	return NFA[L]{alphabet: n.alphabet, initials: cloneSet(n.finals), finals: cloneSet(n.initials), transitions: transitions}
}

// Negate returns the complement language: complete the determinization,
// flip the final/non-final partition, translate back to an NFA.
func Negate[L letter.Letter[L]](n NFA[L]) NFA[L] {
	d := ToDFA(n)
	return NegateDFA(d).ToNFA()
}

// Intersect returns the language intersection via De Morgan:
// ¬(¬a ∪ ¬b).
func Intersect[L letter.Letter[L]](a, b NFA[L]) NFA[L] {
	u, _ := Unite(Negate(a), Negate(b)) // same alphabet by construction
	return Negate(u)
}

// Interleave returns the shuffle product of a and b: a product
// construction over the cross state space a.states × b.states. From
// (x,y) on letter ℓ, transitions go to (x',y) for every a-edge x─ℓ→x'
// and to (x,y') for every b-edge y─ℓ→y'. Fails with
// AlphabetMismatch if a and b declare different alphabets.
func Interleave[L letter.Letter[L]](a, b NFA[L]) (NFA[L], error) {
	if !a.alphabet.Equals(b.alphabet) {
		return NFA[L]{}, autoerr.AlphabetMismatchErr(a.alphabet.String(), b.alphabet.String())
	}
	na, nb := len(a.transitions), len(b.transitions)
	pairID := func(x, y int) int { return x*nb + y }

	initials := map[int]struct{}{}
	for x := range a.initials {
		for y := range b.initials {
			initials[pairID(x, y)] = struct{}{}
		}
	}
	finals := map[int]struct{}{}
	for x := range a.finals {
		for y := range b.finals {
			finals[pairID(x, y)] = struct{}{}
		}
	}

	transitions := make([]map[L]map[int]struct{}, na*nb)
	for x := 0; x < na; x++ {
		for y := 0; y < nb; y++ {
			row := map[L]map[int]struct{}{}
			for l, targets := range a.transitions[x] {
				for xp := range targets {
					dst := row[l]
					if dst == nil {
						dst = map[int]struct{}{}
						row[l] = dst
					}
					dst[pairID(xp, y)] = struct{}{}
				}
			}
			for l, targets := range b.transitions[y] {
				for yp := range targets {
					dst := row[l]
					if dst == nil {
						dst = map[int]struct{}{}
						row[l] = dst
					}
					dst[pairID(x, yp)] = struct{}{}
				}
			}
			transitions[pairID(x, y)] = row
		}
	}

	return NFA[L]{alphabet: a.alphabet, initials: initials, finals: finals, transitions: transitions}, nil
}

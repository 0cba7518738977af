package automaton

import (
	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// DFA is a deterministic finite acceptor: one transition per (state,
// letter). It may be incomplete — a missing key simply rejects.
type DFA[L letter.Letter[L]] struct {
	alphabet    alphabet.Alphabet[L]
	initial     int
	finals      map[int]struct{}
	transitions []map[L]int
}

// Alphabet returns the automaton's declared alphabet.
func (d DFA[L]) Alphabet() alphabet.Alphabet[L] { return d.alphabet }

// Len returns the number of states, N.
func (d DFA[L]) Len() int { return len(d.transitions) }

// Initial returns the sole initial state.
func (d DFA[L]) Initial() int { return d.initial }

// Finals returns a copy of the set of final state IDs.
func (d DFA[L]) Finals() map[int]struct{} { return cloneSet(d.finals) }

// IsFinal reports whether s is a final state.
func (d DFA[L]) IsFinal(s int) bool { _, ok := d.finals[s]; return ok }

// Target returns the state reached from s on l and whether a transition
// exists.
func (d DFA[L]) Target(s int, l L) (int, bool) {
	if s < 0 || s >= len(d.transitions) {
		return 0, false
	}
	t, ok := d.transitions[s][l]
	return t, ok
}

// DFAFromRaw validates and builds a DFA from raw components.
func DFAFromRaw[L letter.Letter[L]](a alphabet.Alphabet[L], initial int, finals map[int]struct{}, transitions []map[L]int) (DFA[L], error) {
	n := len(transitions)
	if initial < 0 || initial >= n {
		return DFA[L]{}, autoerr.InvalidInitialErr(initial, n)
	}
	for s := range finals {
		if s < 0 || s >= n {
			return DFA[L]{}, autoerr.InvalidFinalErr(s, n)
		}
	}
	rows := make([]map[L]int, n)
	for s, row := range transitions {
		nr := make(map[L]int, len(row))
		for l, t := range row {
			if !a.Contains(l) {
				return DFA[L]{}, autoerr.UnknownLetterErr(stringifyLetter(l), a.String())
			}
			if t < 0 || t >= n {
				return DFA[L]{}, autoerr.InvalidTransitionErr(s, stringifyLetter(l), t, n)
			}
			nr[l] = t
		}
		rows[s] = nr
	}
	return DFA[L]{alphabet: a, initial: initial, finals: cloneSet(finals), transitions: rows}, nil
}

// VoidDFA returns the single-state DFA with no final states.
func VoidDFA[L letter.Letter[L]](a alphabet.Alphabet[L]) DFA[L] {
	return DFA[L]{alphabet: a, initial: 0, finals: map[int]struct{}{}, transitions: []map[L]int{{}}}
}

// RunsTrace is a single-thread simulation: returns true iff it ends in a
// final state; a missing transition rejects rather than erroring.
func (d DFA[L]) RunsTrace(trace []L) bool {
	s := d.initial
	for _, l := range trace {
		t, ok := d.transitions[s][l]
		if !ok {
			return false
		}
		s = t
	}
	return d.IsFinal(s)
}

// RunTransition advances a single active state by one letter. Fails with
// MultipleActiveInDfa unless exactly one state is active.
func (d DFA[L]) RunTransition(active map[int]struct{}, l L) (map[int]struct{}, error) {
	if len(active) != 1 {
		return nil, autoerr.MultipleActiveInDfaErr(len(active))
	}
	var s int
	for k := range active {
		s = k
	}
	if t, ok := d.transitions[s][l]; ok {
		return map[int]struct{}{t: {}}, nil
	}
	return map[int]struct{}{}, nil
}

// IsComplete reports whether every (state, letter) pair has a transition.
func (d DFA[L]) IsComplete() bool {
	for _, row := range d.transitions {
		for _, l := range d.alphabet.Sorted() {
			if _, ok := row[l]; !ok {
				return false
			}
		}
	}
	return true
}

// CompleteDFA adds a single sink state absorbing every missing
// transition; the sink is non-final so the language is preserved.
func CompleteDFA[L letter.Letter[L]](d DFA[L]) DFA[L] {
	if d.IsComplete() {
		return d
	}
	sink := len(d.transitions)
	transitions := make([]map[L]int, len(d.transitions)+1)
	for i, row := range d.transitions {
		nr := make(map[L]int, len(row))
		for l, t := range row {
			nr[l] = t
		}
		transitions[i] = nr
	}
	transitions[sink] = map[L]int{}
	for i, row := range transitions {
		for _, l := range d.alphabet.Sorted() {
			if _, ok := row[l]; !ok {
				row[l] = sink
			}
		}
		transitions[i] = row
	}
	return DFA[L]{alphabet: d.alphabet, initial: d.initial, finals: cloneSet(d.finals), transitions: transitions}
}

// NegateDFA completes d then flips the final/non-final partition,
// yielding the complement language.
func NegateDFA[L letter.Letter[L]](d DFA[L]) DFA[L] {
	d = CompleteDFA(d)
	finals := map[int]struct{}{}
	for s := range d.transitions {
		if !d.IsFinal(s) {
			finals[s] = struct{}{}
		}
	}
	return DFA[L]{alphabet: d.alphabet, initial: d.initial, finals: finals, transitions: d.transitions}
}

// ToNFA lifts d into an NFA: every deterministic target becomes a
// singleton target set.
func (d DFA[L]) ToNFA() NFA[L] {
	transitions := make([]map[L]map[int]struct{}, len(d.transitions))
	for i, row := range d.transitions {
		nr := make(map[L]map[int]struct{}, len(row))
		for l, t := range row {
			nr[l] = map[int]struct{}{t: {}}
		}
		transitions[i] = nr
	}
	n, _ := FromRaw(d.alphabet, map[int]struct{}{d.initial: {}}, cloneSet(d.finals), transitions)
	return n
}

// ReverseDFA reverses d through the NFA representation and re-determinizes.
func ReverseDFA[L letter.Letter[L]](d DFA[L]) DFA[L] {
	return ToDFA(Reverse(d.ToNFA()))
}

// MinimizeDFA is Brzozowski's double-reversal minimization: reversing
// twice through subset construction yields a canonical minimal DFA (up to
// state renaming).
func MinimizeDFA[L letter.Letter[L]](d DFA[L]) DFA[L] {
	return ReverseDFA(ReverseDFA(d))
}

// IntersectDFA computes the DFA intersection via De Morgan:
// ¬(¬a ∪ ¬b).
func IntersectDFA[L letter.Letter[L]](a, b DFA[L]) DFA[L] {
	u, _ := Unite(NegateDFA(a).ToNFA(), NegateDFA(b).ToNFA())
	return NegateDFA(ToDFA(u))
}

// ContainsDFA reports whether every word accepted by b is accepted by a.
func ContainsDFA[L letter.Letter[L]](a, b DFA[L]) bool {
	return Contains(a.ToNFA(), b.ToNFA())
}

// InterleaveDFA computes the shuffle product of a and b through the
// NFA representation, re-determinized. Fails with AlphabetMismatch if
// a and b declare different alphabets.
func InterleaveDFA[L letter.Letter[L]](a, b DFA[L]) (DFA[L], error) {
	n, err := Interleave(a.ToNFA(), b.ToNFA())
	if err != nil {
		return DFA[L]{}, err
	}
	return ToDFA(n), nil
}

// AccessibleStatesDFA returns the states reachable from d's initial.
func AccessibleStatesDFA[L letter.Letter[L]](d DFA[L]) map[int]struct{} {
	return AccessibleStates(d.ToNFA())
}

// CoaccessibleStatesDFA returns the states from which some final of d
// is reachable.
func CoaccessibleStatesDFA[L letter.Letter[L]](d DFA[L]) map[int]struct{} {
	return CoaccessibleStates(d.ToNFA())
}

// TrimDFA trims d through the NFA representation and re-determinizes.
// Removing non-coaccessible states can leave an NFA with no initial
// at all; determinization restores the single-initial shape a DFA
// requires, at the cost of a renumbering.
func TrimDFA[L letter.Letter[L]](d DFA[L]) DFA[L] {
	return ToDFA(Trim(d.ToNFA()))
}

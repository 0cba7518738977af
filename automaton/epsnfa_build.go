package automaton

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// shiftEps returns a copy of e with every state ID increased by delta.
func shiftEps[L letter.Letter[L]](e EpsNFA[L], delta int) EpsNFA[L] {
	epsilons := make([]map[int]struct{}, len(e.epsilons))
	for i, row := range e.epsilons {
		shifted := make(map[int]struct{}, len(row))
		for t := range row {
			shifted[t+delta] = struct{}{}
		}
		epsilons[i] = shifted
	}
	return EpsNFA[L]{nfa: shiftBy(e.nfa, delta), epsilons: epsilons}
}

// UniteEps returns the union of a and b: a disjoint state-number shift
// of b, with the two transition tables and ε-tables concatenated.
// Fails with AlphabetMismatch if a and b are declared over different
// alphabets.
func UniteEps[L letter.Letter[L]](a, b EpsNFA[L]) (EpsNFA[L], error) {
	if !a.nfa.alphabet.Equals(b.nfa.alphabet) {
		return EpsNFA[L]{}, autoerr.AlphabetMismatchErr(a.nfa.alphabet.String(), b.nfa.alphabet.String())
	}
	shifted := shiftEps(b, len(a.nfa.transitions))
	u, _ := Unite(a.nfa, b.nfa) // alphabets already checked
	epsilons := make([]map[int]struct{}, 0, len(a.epsilons)+len(shifted.epsilons))
	for _, row := range a.epsilons {
		epsilons = append(epsilons, cloneSet(row))
	}
	epsilons = append(epsilons, shifted.epsilons...)
	return EpsNFA[L]{nfa: u, epsilons: epsilons}, nil
}

// ConcatenateEps returns a followed by b. Where the ε-free NFA form
// has to copy b's initial transitions onto a's finals, ε-edges let the
// join stay structural: every final of a gets an ε-edge to every
// (shifted) initial of b, and b's finals become the finals. Fails with
// AlphabetMismatch if a and b are declared over different alphabets.
func ConcatenateEps[L letter.Letter[L]](a, b EpsNFA[L]) (EpsNFA[L], error) {
	if !a.nfa.alphabet.Equals(b.nfa.alphabet) {
		return EpsNFA[L]{}, autoerr.AlphabetMismatchErr(a.nfa.alphabet.String(), b.nfa.alphabet.String())
	}
	offset := len(a.nfa.transitions)
	shifted := shiftEps(b, offset)

	transitions := cloneRows(a.nfa.transitions)
	transitions = append(transitions, shifted.nfa.transitions...)
	epsilons := make([]map[int]struct{}, 0, len(transitions))
	for _, row := range a.epsilons {
		epsilons = append(epsilons, cloneSet(row))
	}
	epsilons = append(epsilons, shifted.epsilons...)

	for final := range a.nfa.finals {
		for init := range shifted.nfa.initials {
			epsilons[final][init] = struct{}{}
		}
	}

	return EpsNFA[L]{
		nfa: NFA[L]{
			alphabet:    a.nfa.alphabet,
			initials:    cloneSet(a.nfa.initials),
			finals:      cloneSet(shifted.nfa.finals),
			transitions: transitions,
		},
		epsilons: epsilons,
	}, nil
}

// KleeneEps returns the Kleene star of e: a fresh state, the sole
// initial and a final, with ε-edges to every old initial and from
// every old final back to it.
func KleeneEps[L letter.Letter[L]](e EpsNFA[L]) EpsNFA[L] {
	fresh := len(e.nfa.transitions)
	transitions := cloneRows(e.nfa.transitions)
	transitions = append(transitions, map[L]map[int]struct{}{})

	epsilons := make([]map[int]struct{}, 0, fresh+1)
	for _, row := range e.epsilons {
		epsilons = append(epsilons, cloneSet(row))
	}
	freshRow := map[int]struct{}{}
	for init := range e.nfa.initials {
		freshRow[init] = struct{}{}
	}
	epsilons = append(epsilons, freshRow)
	for final := range e.nfa.finals {
		epsilons[final][fresh] = struct{}{}
	}

	return EpsNFA[L]{
		nfa: NFA[L]{
			alphabet:    e.nfa.alphabet,
			initials:    map[int]struct{}{fresh: {}},
			finals:      map[int]struct{}{fresh: {}},
			transitions: transitions,
		},
		epsilons: epsilons,
	}
}

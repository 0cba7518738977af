package automaton

import (
	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// EpsNFA is an NFA extended with a per-state set of ε-successors.
type EpsNFA[L letter.Letter[L]] struct {
	nfa      NFA[L]
	epsilons []map[int]struct{}
}

// EpsNFAFromRaw validates and builds an ε-NFA: the underlying NFA
// invariants, plus every ε-row index and ε-target in range.
func EpsNFAFromRaw[L letter.Letter[L]](
	a alphabet.Alphabet[L],
	initials, finals map[int]struct{},
	transitions []map[L]map[int]struct{},
	epsilons []map[int]struct{},
) (EpsNFA[L], error) {
	n, err := FromRaw(a, initials, finals, transitions)
	if err != nil {
		return EpsNFA[L]{}, err
	}
	if len(epsilons) > len(n.transitions) {
		return EpsNFA[L]{}, autoerr.InvalidEpsilonTransErr(len(epsilons), nil, len(n.transitions))
	}
	rows := make([]map[int]struct{}, len(n.transitions))
	for i := range rows {
		rows[i] = map[int]struct{}{}
	}
	for i, row := range epsilons {
		for t := range row {
			if t < 0 || t >= len(n.transitions) {
				tt := t
				return EpsNFA[L]{}, autoerr.InvalidEpsilonTransErr(i, &tt, len(n.transitions))
			}
		}
		rows[i] = cloneSet(row)
	}
	return EpsNFA[L]{nfa: n, epsilons: rows}, nil
}

// Alphabet returns the automaton's declared alphabet.
func (e EpsNFA[L]) Alphabet() alphabet.Alphabet[L] { return e.nfa.alphabet }

// Len returns the number of states.
func (e EpsNFA[L]) Len() int { return len(e.nfa.transitions) }

// Initials returns a copy of the set of initial state IDs.
func (e EpsNFA[L]) Initials() map[int]struct{} { return e.nfa.Initials() }

// Finals returns a copy of the set of final state IDs.
func (e EpsNFA[L]) Finals() map[int]struct{} { return e.nfa.Finals() }

// Targets returns the set of states reachable from s on l (nil if
// none); ε-edges are not included, see EpsilonTargets.
func (e EpsNFA[L]) Targets(s int, l L) map[int]struct{} { return e.nfa.Targets(s, l) }

// EpsilonTargets returns the set of states reachable from s via a
// single ε-edge.
func (e EpsNFA[L]) EpsilonTargets(s int) map[int]struct{} { return cloneSet(e.epsilons[s]) }

// EpsilonClosure returns the least superset of states closed under
// ε-successors, via an explicit worklist.
func (e EpsNFA[L]) EpsilonClosure(states map[int]struct{}) map[int]struct{} {
	closure := map[int]struct{}{}
	stack := make([]int, 0, len(states))
	for s := range states {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		top := len(stack) - 1
		s := stack[top]
		stack = stack[:top]
		if _, ok := closure[s]; ok {
			continue
		}
		closure[s] = struct{}{}
		for t := range e.epsilons[s] {
			if _, ok := closure[t]; !ok {
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// RunsTrace starts from the ε-closure of the initials and, on each
// letter, advances to the union of ε-closures of letter-successors.
func (e EpsNFA[L]) RunsTrace(trace []L) bool {
	current := e.EpsilonClosure(e.nfa.initials)
	for _, l := range trace {
		next := map[int]struct{}{}
		for s := range current {
			for t := range e.nfa.transitions[s][l] {
				next[t] = struct{}{}
			}
		}
		current = e.EpsilonClosure(next)
		if len(current) == 0 {
			return false
		}
	}
	for s := range current {
		if _, ok := e.nfa.finals[s]; ok {
			return true
		}
	}
	return false
}

// epsilonTransLooksTrivial reports whether every ε-row is empty or a
// reflexive self-loop, the condition under which ToNFA may drop ε-edges
// directly rather than round-tripping through determinization.
func (e EpsNFA[L]) epsilonTransLooksTrivial() bool {
	for orig, row := range e.epsilons {
		switch len(row) {
		case 0:
		case 1:
			for t := range row {
				if t != orig {
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

// ToNFA drops ε-edges directly when they are all trivial (empty or
// reflexive self-loops); otherwise round-trips through DFA determinization
// (which already computes ε-closures).
func (e EpsNFA[L]) ToNFA() NFA[L] {
	if e.epsilonTransLooksTrivial() {
		return e.nfa
	}
	return e.ToDFA().ToNFA()
}

// ToDFA determinizes e via subset construction over ε-closed subsets;
// DFA state 0 is the ε-closure of the initials.
func (e EpsNFA[L]) ToDFA() DFA[L] {
	stateOf := map[string]int{}
	var queue []map[int]struct{}

	initial := e.EpsilonClosure(e.nfa.initials)
	stateOf[subsetKey(initial)] = 0
	queue = append(queue, initial)

	var transitions []map[L]int
	transitions = append(transitions, map[L]int{})
	finals := map[int]struct{}{}
	if intersects(initial, e.nfa.finals) {
		finals[0] = struct{}{}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := stateOf[subsetKey(cur)]

		for _, l := range e.nfa.alphabet.Sorted() {
			targets := map[int]struct{}{}
			for s := range cur {
				for t := range e.nfa.transitions[s][l] {
					targets[t] = struct{}{}
				}
			}
			if len(targets) == 0 {
				continue
			}
			closed := e.EpsilonClosure(targets)
			tk := subsetKey(closed)
			id, ok := stateOf[tk]
			if !ok {
				id = len(transitions)
				stateOf[tk] = id
				transitions = append(transitions, map[L]int{})
				if intersects(closed, e.nfa.finals) {
					finals[id] = struct{}{}
				}
				queue = append(queue, closed)
			}
			transitions[curID][l] = id
		}
	}

	d, _ := DFAFromRaw(e.nfa.alphabet, 0, finals, transitions)
	return d
}

// ToGNFA delegates to ToGNFAFromEpsNFA.
func (e EpsNFA[L]) ToGNFA() GNFA[L] {
	return ToGNFAFromEpsNFA(e)
}

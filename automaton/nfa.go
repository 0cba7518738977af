// Package automaton implements the four coupled acceptor representations —
// DFA, NFA, ε-NFA, and GNFA — together with the translations and transform
// algebra that connect them. They live in one package rather
// than four because every representation translates to and from every
// other one: a strict package-per-type split would require import cycles
// that Go's compiler rejects. This mirrors how packages with mutually
// recursive node graphs (go/ast's Expr/Stmt/Decl family is the canonical
// example) are conventionally kept together rather than split along type
// boundaries.
package automaton

import (
	"sort"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// NFA is a non-deterministic finite acceptor: a set of initial states, a
// set of final states, and for each state a map from letter to the set of
// states reachable on that letter. A missing key or an empty target set
// both mean "no transition".
type NFA[L letter.Letter[L]] struct {
	alphabet    alphabet.Alphabet[L]
	initials    map[int]struct{}
	finals      map[int]struct{}
	transitions []map[L]map[int]struct{}
}

// Alphabet returns the automaton's declared alphabet.
func (n NFA[L]) Alphabet() alphabet.Alphabet[L] { return n.alphabet }

// Len returns the number of states, N.
func (n NFA[L]) Len() int { return len(n.transitions) }

// Initials returns a copy of the set of initial state IDs.
func (n NFA[L]) Initials() map[int]struct{} { return cloneSet(n.initials) }

// Finals returns a copy of the set of final state IDs.
func (n NFA[L]) Finals() map[int]struct{} { return cloneSet(n.finals) }

// IsInitial reports whether s is an initial state.
func (n NFA[L]) IsInitial(s int) bool { _, ok := n.initials[s]; return ok }

// IsFinal reports whether s is a final state.
func (n NFA[L]) IsFinal(s int) bool { _, ok := n.finals[s]; return ok }

// Targets returns the set of states reachable from s on l (nil if none).
func (n NFA[L]) Targets(s int, l L) map[int]struct{} {
	if s < 0 || s >= len(n.transitions) {
		return nil
	}
	return n.transitions[s][l]
}

// Outgoing returns the full outgoing transition map of state s.
func (n NFA[L]) Outgoing(s int) map[L]map[int]struct{} {
	if s < 0 || s >= len(n.transitions) {
		return nil
	}
	return n.transitions[s]
}

// FromRaw validates and builds an NFA from raw components, checking every
// invariant: initials, finals, and transition targets in range,
// and every transition letter a member of the alphabet.
func FromRaw[L letter.Letter[L]](
	a alphabet.Alphabet[L],
	initials map[int]struct{},
	finals map[int]struct{},
	transitions []map[L]map[int]struct{},
) (NFA[L], error) {
	n := len(transitions)
	for s := range initials {
		if s < 0 || s >= n {
			return NFA[L]{}, autoerr.InvalidInitialErr(s, n)
		}
	}
	for s := range finals {
		if s < 0 || s >= n {
			return NFA[L]{}, autoerr.InvalidFinalErr(s, n)
		}
	}
	for s, row := range transitions {
		for l, targets := range row {
			if !a.Contains(l) {
				return NFA[L]{}, autoerr.UnknownLetterErr(stringifyLetter(l), a.String())
			}
			for t := range targets {
				if t < 0 || t >= n {
					return NFA[L]{}, autoerr.InvalidTransitionErr(s, stringifyLetter(l), t, n)
				}
			}
		}
	}
	return NFA[L]{alphabet: a, initials: cloneSet(initials), finals: cloneSet(finals), transitions: cloneRows(transitions)}, nil
}

// Void returns the automaton with no states and no accepted words — the
// algebra's strict bottom, distinct from AcceptsNothing which has one
// live, non-final state.
func Void[L letter.Letter[L]](a alphabet.Alphabet[L]) NFA[L] {
	return NFA[L]{alphabet: a, initials: map[int]struct{}{}, finals: map[int]struct{}{}}
}

// Universal returns a single self-looping state, both initial and final:
// it accepts every word over the alphabet.
func Universal[L letter.Letter[L]](a alphabet.Alphabet[L]) NFA[L] {
	row := map[L]map[int]struct{}{}
	for _, l := range a.Sorted() {
		row[l] = map[int]struct{}{0: {}}
	}
	return NFA[L]{
		alphabet:    a,
		initials:    map[int]struct{}{0: {}},
		finals:      map[int]struct{}{0: {}},
		transitions: []map[L]map[int]struct{}{row},
	}
}

// OfLength returns the automaton accepting exactly the words of length n:
// a chain of n states ending in a dead-end final state.
func OfLength[L letter.Letter[L]](a alphabet.Alphabet[L], n int) NFA[L] {
	transitions := make([]map[L]map[int]struct{}, n+1)
	for i := 0; i < n; i++ {
		row := map[L]map[int]struct{}{}
		for _, l := range a.Sorted() {
			row[l] = map[int]struct{}{i + 1: {}}
		}
		transitions[i] = row
	}
	transitions[n] = map[L]map[int]struct{}{}
	return NFA[L]{
		alphabet:    a,
		initials:    map[int]struct{}{0: {}},
		finals:      map[int]struct{}{n: {}},
		transitions: transitions,
	}
}

// EmptyWord returns the automaton accepting only the empty word.
func EmptyWord[L letter.Letter[L]](a alphabet.Alphabet[L]) NFA[L] {
	return OfLength(a, 0)
}

// AcceptsNothing returns a one-state automaton, initial but never final,
// distinct from Void in that it has a live (non-accepting) state.
func AcceptsNothing[L letter.Letter[L]](a alphabet.Alphabet[L]) NFA[L] {
	return NFA[L]{
		alphabet:    a,
		initials:    map[int]struct{}{0: {}},
		finals:      map[int]struct{}{},
		transitions: []map[L]map[int]struct{}{{}},
	}
}

// Word returns the automaton accepting exactly the single given word.
func Word[L letter.Letter[L]](a alphabet.Alphabet[L], w []L) NFA[L] {
	n := len(w)
	transitions := make([]map[L]map[int]struct{}, n+1)
	for i := 0; i < n; i++ {
		transitions[i] = map[L]map[int]struct{}{w[i]: {i + 1: {}}}
	}
	transitions[n] = map[L]map[int]struct{}{}
	return NFA[L]{
		alphabet:    a,
		initials:    map[int]struct{}{0: {}},
		finals:      map[int]struct{}{n: {}},
		transitions: transitions,
	}
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func sortedSet(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func cloneRows[L letter.Letter[L]](rows []map[L]map[int]struct{}) []map[L]map[int]struct{} {
	out := make([]map[L]map[int]struct{}, len(rows))
	for i, row := range rows {
		nr := make(map[L]map[int]struct{}, len(row))
		for l, targets := range row {
			nr[l] = cloneSet(targets)
		}
		out[i] = nr
	}
	return out
}

func stringifyLetter[L letter.Letter[L]](l L) string {
	type stringer interface{ String() string }
	if s, ok := any(l).(stringer); ok {
		return s.String()
	}
	return "?"
}

package automaton

import "github.com/coregx/autour/autoerr"

// RunsTrace simulates trace against n as a set of active states, starting
// from the initials and advancing to the union of letter-successors at
// each step; returns true iff some active state is final at the end.
func (n NFA[L]) RunsTrace(trace []L) bool {
	current := n.initials
	for _, l := range trace {
		next := map[int]struct{}{}
		for s := range current {
			for t := range n.transitions[s][l] {
				next[t] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for s := range current {
		if _, ok := n.finals[s]; ok {
			return true
		}
	}
	return false
}

// RunTransition advances the set of active states by one letter, failing
// with InvalidStateToRun if any active state is out of range.
func (n NFA[L]) RunTransition(active map[int]struct{}, l L) (map[int]struct{}, error) {
	next := map[int]struct{}{}
	for s := range active {
		if s < 0 || s >= len(n.transitions) {
			return nil, autoerr.InvalidStateToRunErr(s, len(n.transitions))
		}
		for t := range n.transitions[s][l] {
			next[t] = struct{}{}
		}
	}
	return next, nil
}

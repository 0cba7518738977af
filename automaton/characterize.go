package automaton

import "github.com/coregx/autour/letter"

// IsEmpty reports whether n accepts no word: true unless some final
// state is reachable from the initials (an initial that is itself
// final counts), via plain DFS over the transition graph.
func IsEmpty[L letter.Letter[L]](n NFA[L]) bool {
	visited := map[int]struct{}{}
	stack := sortedSet(n.initials)
	for len(stack) > 0 {
		top := len(stack) - 1
		s := stack[top]
		stack = stack[:top]
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		if _, ok := n.finals[s]; ok {
			return false
		}
		for _, targets := range n.transitions[s] {
			for t := range targets {
				if _, ok := visited[t]; !ok {
					stack = append(stack, t)
				}
			}
		}
	}
	return true
}

// IsUniversal reports whether n accepts every word over its alphabet:
// equivalent to its negation accepting nothing.
func IsUniversal[L letter.Letter[L]](n NFA[L]) bool {
	return IsEmpty(Negate(n))
}

// Contains reports whether every word accepted by b is also accepted
// by a: equivalent to (¬a ∩ b) being empty.
func Contains[L letter.Letter[L]](a, b NFA[L]) bool {
	return IsEmpty(Intersect(Negate(a), b))
}

// Equals reports whether a and b accept exactly the same language:
// mutual containment.
func Equals[L letter.Letter[L]](a, b NFA[L]) bool {
	return Contains(a, b) && Contains(b, a)
}

// IsEmptyDFA reports whether d accepts no word.
func IsEmptyDFA[L letter.Letter[L]](d DFA[L]) bool {
	return IsEmpty(d.ToNFA())
}

// IsUniversalDFA reports whether d accepts every word over its
// alphabet.
func IsUniversalDFA[L letter.Letter[L]](d DFA[L]) bool {
	return IsUniversal(d.ToNFA())
}

// EqualsDFA reports whether a and b accept exactly the same language.
func EqualsDFA[L letter.Letter[L]](a, b DFA[L]) bool {
	return Equals(a.ToNFA(), b.ToNFA())
}

package automaton

import "github.com/coregx/autour/letter"

// AccessibleStates returns every state reachable from some initial state,
// via an explicit stack-based depth-first search.
func AccessibleStates[L letter.Letter[L]](n NFA[L]) map[int]struct{} {
	seen := map[int]struct{}{}
	var stack []int
	for s := range n.initials {
		seen[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		top := len(stack) - 1
		s := stack[top]
		stack = stack[:top]
		for _, targets := range n.transitions[s] {
			for t := range targets {
				if _, ok := seen[t]; !ok {
					seen[t] = struct{}{}
					stack = append(stack, t)
				}
			}
		}
	}
	return seen
}

// IsAccessible reports whether every state is reachable from an initial.
func IsAccessible[L letter.Letter[L]](n NFA[L]) bool {
	return len(AccessibleStates(n)) == len(n.transitions)
}

// CoaccessibleStates returns every state that can reach some final state,
// via reverse reachability from the final set.
func CoaccessibleStates[L letter.Letter[L]](n NFA[L]) map[int]struct{} {
	seen := map[int]struct{}{}
	var stack []int
	for s := range n.finals {
		seen[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		top := len(stack) - 1
		target := stack[top]
		stack = stack[:top]
		for orig, row := range n.transitions {
			if _, already := seen[orig]; already {
				continue
			}
			for _, targets := range row {
				if _, ok := targets[target]; ok {
					seen[orig] = struct{}{}
					stack = append(stack, orig)
					break
				}
			}
		}
	}
	return seen
}

// IsCoaccessible reports whether every state can reach some final state.
func IsCoaccessible[L letter.Letter[L]](n NFA[L]) bool {
	return len(CoaccessibleStates(n)) == len(n.transitions)
}

// MakeAccessible compacts the state numbering to the accessible subset,
// preserving relative order and substituting every transition target
// consistently.
func MakeAccessible[L letter.Letter[L]](n NFA[L]) NFA[L] {
	accessible := AccessibleStates(n)
	sub := make(map[int]int, len(accessible))
	order := make([]int, 0, len(accessible))
	for i := 0; i < len(n.transitions); i++ {
		if _, ok := accessible[i]; ok {
			sub[i] = len(order)
			order = append(order, i)
		}
	}

	transitions := make([]map[L]map[int]struct{}, len(order))
	for newID, oldID := range order {
		row := map[L]map[int]struct{}{}
		for l, targets := range n.transitions[oldID] {
			nt := map[int]struct{}{}
			for t := range targets {
				if newT, ok := sub[t]; ok {
					nt[newT] = struct{}{}
				}
			}
			if len(nt) > 0 {
				row[l] = nt
			}
		}
		transitions[newID] = row
	}

	initials := map[int]struct{}{}
	for s := range n.initials {
		if newS, ok := sub[s]; ok {
			initials[newS] = struct{}{}
		}
	}
	finals := map[int]struct{}{}
	for s := range n.finals {
		if newS, ok := sub[s]; ok {
			finals[newS] = struct{}{}
		}
	}
	return NFA[L]{alphabet: n.alphabet, initials: initials, finals: finals, transitions: transitions}
}

// MakeCoaccessible trims every state that cannot reach a final: reverse,
// make accessible, reverse back.
func MakeCoaccessible[L letter.Letter[L]](n NFA[L]) NFA[L] {
	return Reverse(MakeAccessible(Reverse(n)))
}

// IsTrimmed reports whether n is both accessible and coaccessible.
func IsTrimmed[L letter.Letter[L]](n NFA[L]) bool {
	return IsAccessible(n) && IsCoaccessible(n)
}

// Trim returns n with every non-accessible and non-coaccessible state
// removed, preserving the accepted language.
func Trim[L letter.Letter[L]](n NFA[L]) NFA[L] {
	return MakeCoaccessible(MakeAccessible(n))
}

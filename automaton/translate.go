package automaton

import (
	"strconv"
	"strings"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/bre"
	"github.com/coregx/autour/letter"
)

// subsetKey renders a sorted set of state IDs as a comparable map key,
// so two subsets compare equal exactly when they hold the same states.
func subsetKey(states map[int]struct{}) string {
	ids := sortedSet(states)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// ToDFA determinizes n via subset construction: DFA state 0 is n's
// initial set, and the worklist explores successor subsets in the order
// they're first discovered.
func ToDFA[L letter.Letter[L]](n NFA[L]) DFA[L] {
	d, _ := DeterminizeWithPreimage(n)
	return d
}

// DeterminizeWithPreimage determinizes n and additionally returns, for
// each DFA state, the set of NFA states it stands for — the preimage map
// the Kameda-Weiner engine's state matrix is built from.
func DeterminizeWithPreimage[L letter.Letter[L]](n NFA[L]) (DFA[L], map[int]map[int]struct{}) {
	stateOf := map[string]int{}
	preimage := map[int]map[int]struct{}{}
	var subsets []map[int]struct{}
	var queue []map[int]struct{}

	initial := n.Initials()
	key := subsetKey(initial)
	stateOf[key] = 0
	preimage[0] = initial
	subsets = append(subsets, initial)
	queue = append(queue, initial)

	var transitions []map[L]int
	transitions = append(transitions, map[L]int{})
	finals := map[int]struct{}{}
	if intersects(initial, n.finals) {
		finals[0] = struct{}{}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := stateOf[subsetKey(cur)]

		for _, l := range n.alphabet.Sorted() {
			targets := map[int]struct{}{}
			for s := range cur {
				for t := range n.transitions[s][l] {
					targets[t] = struct{}{}
				}
			}
			if len(targets) == 0 {
				continue
			}
			tk := subsetKey(targets)
			id, ok := stateOf[tk]
			if !ok {
				id = len(subsets)
				stateOf[tk] = id
				preimage[id] = targets
				subsets = append(subsets, targets)
				transitions = append(transitions, map[L]int{})
				if intersects(targets, n.finals) {
					finals[id] = struct{}{}
				}
				queue = append(queue, targets)
			}
			transitions[curID][l] = id
		}
	}

	d, _ := DFAFromRaw(n.alphabet, 0, finals, transitions) // constructed invariants hold by construction
	return d, preimage
}

func intersects(a, b map[int]struct{}) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for k := range small {
		if _, ok := big[k]; ok {
			return true
		}
	}
	return false
}

// ToEpsNFA lifts n into an ε-NFA with every ε-row empty.
func ToEpsNFA[L letter.Letter[L]](n NFA[L]) EpsNFA[L] {
	epsilons := make([]map[int]struct{}, len(n.transitions))
	for i := range epsilons {
		epsilons[i] = map[int]struct{}{}
	}
	e, _ := EpsNFAFromRaw(n.alphabet, n.Initials(), n.Finals(), n.transitions, epsilons)
	return e
}

// ToGNFA introduces fresh start/accept states, seeds ε-edges from start to
// every initial and from every final to accept, and folds every (i,ℓ,j)
// transition into the Union-accumulated edge term between i and j.
func ToGNFA[L letter.Letter[L]](n NFA[L]) GNFA[L] {
	return ToGNFAFromEpsNFA(ToEpsNFA(n))
}

// ToBRE extracts a regular expression from n by state-ripping its GNFA
// form.
func ToBRE[L letter.Letter[L]](n NFA[L]) bre.Expr[L] {
	return GNFAToBRE(ToGNFA(n))
}

// FromBRE builds an NFA from a BRE expression via Thompson-style
// structural recursion: Union left-folds with
// AcceptsNothing via Unite, Concat left-folds with EmptyWord via
// Concatenate, Kleene recurses then wraps.
func FromBRE[L letter.Letter[L]](expr bre.Expr[L]) NFA[L] {
	return termToNFA(expr.Term, expr.Alphabet)
}

func termToNFA[L letter.Letter[L]](t bre.Term[L], a alphabet.Alphabet[L]) NFA[L] {
	switch t.Kind() {
	case bre.KindEmpty:
		return AcceptsNothing(a)
	case bre.KindEpsilon:
		return EmptyWord(a)
	case bre.KindLiteral:
		l, _ := t.Literal()
		return Word(a, []L{l})
	case bre.KindUnion:
		acc := AcceptsNothing(a)
		for _, c := range t.Children() {
			acc, _ = Unite(acc, termToNFA(c, a))
		}
		return acc
	case bre.KindConcat:
		acc := EmptyWord(a)
		for _, c := range t.Children() {
			acc, _ = Concatenate(acc, termToNFA(c, a))
		}
		return acc
	case bre.KindKleene:
		child, _ := t.Child()
		return Kleene(termToNFA(child, a))
	default:
		return AcceptsNothing(a)
	}
}

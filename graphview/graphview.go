// Package graphview declares the graph-drawing collaborator contract
// consumed by an external rendering layer: everything a
// renderer needs to draw an automaton, and nothing about how to draw
// it. No Graphviz or image output ships here — rendering is explicitly
// out of the core’s scope.
package graphview

import (
	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
)

// Accessibility classifies a state by its reachability, the
// information a renderer needs to style trimmed vs.
// dead states differently.
type Accessibility uint8

const (
	// Trimmed: both accessible from an initial and coaccessible to a
	// final.
	Trimmed Accessibility = iota
	// AccessibleOnly: reachable from an initial but cannot reach a
	// final.
	AccessibleOnly
	// CoaccessibleOnly: can reach a final but is not reachable from an
	// initial.
	CoaccessibleOnly
	// Other: neither accessible nor coaccessible.
	Other
)

// Transition is one (source, letter, target) edge to surface to a
// renderer.
type Transition[L letter.Letter[L]] struct {
	From, To int
	Letter   L
}

// EpsilonTransition is one (source, target) ε-edge.
type EpsilonTransition struct {
	From, To int
}

// GraphView is the flattened, render-ready view of an automaton:
// state set, initial/final sets, transition list, ε-transition list,
// per-state accessibility classification, and a caller-supplied
// active-state highlight set (e.g. the current frontier of a live
// simulation) — exactly the surface a renderer consumes, no more.
type GraphView[L letter.Letter[L]] struct {
	States         []int
	Initials       map[int]struct{}
	Finals         map[int]struct{}
	Transitions    []Transition[L]
	EpsilonEdges   []EpsilonTransition
	Classification map[int]Accessibility
	Active         map[int]struct{}
}

func classify[L letter.Letter[L]](n automaton.NFA[L]) map[int]Accessibility {
	acc := automaton.AccessibleStates(n)
	coacc := automaton.CoaccessibleStates(n)
	out := make(map[int]Accessibility, n.Len())
	for s := 0; s < n.Len(); s++ {
		_, isAcc := acc[s]
		_, isCoacc := coacc[s]
		switch {
		case isAcc && isCoacc:
			out[s] = Trimmed
		case isAcc:
			out[s] = AccessibleOnly
		case isCoacc:
			out[s] = CoaccessibleOnly
		default:
			out[s] = Other
		}
	}
	return out
}

// FromNFA builds a GraphView of n, highlighting active as the
// caller-chosen set of currently-active states (pass nil/empty for a
// static view).
func FromNFA[L letter.Letter[L]](n automaton.NFA[L], active map[int]struct{}) GraphView[L] {
	states := make([]int, n.Len())
	var transitions []Transition[L]
	for s := 0; s < n.Len(); s++ {
		states[s] = s
		for _, l := range n.Alphabet().Sorted() {
			for t := range n.Targets(s, l) {
				transitions = append(transitions, Transition[L]{From: s, To: t, Letter: l})
			}
		}
	}
	activeCopy := map[int]struct{}{}
	for s := range active {
		activeCopy[s] = struct{}{}
	}
	return GraphView[L]{
		States:         states,
		Initials:       n.Initials(),
		Finals:         n.Finals(),
		Transitions:    transitions,
		Classification: classify(n),
		Active:         activeCopy,
	}
}

// FromDFA builds a GraphView of d's NFA lift.
func FromDFA[L letter.Letter[L]](d automaton.DFA[L], active map[int]struct{}) GraphView[L] {
	return FromNFA(d.ToNFA(), active)
}

// FromEpsNFA builds a GraphView of e directly over e's own state
// numbering (not its DFA/NFA translation, which may renumber states),
// populating EpsilonEdges from e's ε-transitions alongside the
// ordinary letter transitions. Accessibility classification is not
// computed for ε-NFAs here — it is defined over the letter-transition
// graph in automaton's NFA accessibility functions, which ε-edges
// would need folding into first — so every state reports Trimmed.
func FromEpsNFA[L letter.Letter[L]](e automaton.EpsNFA[L], active map[int]struct{}) GraphView[L] {
	states := make([]int, e.Len())
	classification := make(map[int]Accessibility, e.Len())
	var transitions []Transition[L]
	var epsEdges []EpsilonTransition
	for s := 0; s < e.Len(); s++ {
		states[s] = s
		classification[s] = Trimmed
		for _, l := range e.Alphabet().Sorted() {
			for t := range e.Targets(s, l) {
				transitions = append(transitions, Transition[L]{From: s, To: t, Letter: l})
			}
		}
		for t := range e.EpsilonTargets(s) {
			epsEdges = append(epsEdges, EpsilonTransition{From: s, To: t})
		}
	}
	activeCopy := map[int]struct{}{}
	for s := range active {
		activeCopy[s] = struct{}{}
	}
	return GraphView[L]{
		States:         states,
		Initials:       e.Initials(),
		Finals:         e.Finals(),
		Transitions:    transitions,
		EpsilonEdges:   epsEdges,
		Classification: classification,
		Active:         activeCopy,
	}
}

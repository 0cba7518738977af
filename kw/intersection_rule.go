package kw

import (
	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
)

// subsetAssignment maps each DFA state (by its row's title) to the
// union of the cover-grid-index sets appearing in that row — the
// function f of the intersection rule.
func subsetAssignment(m StatesMap) map[int]map[int]struct{} {
	f := map[int]map[int]struct{}{}
	for row := 0; row < m.Rows(); row++ {
		all := map[int]struct{}{}
		for col := 0; col < m.Cols(); col++ {
			for gid := range m.matrix[row][col] {
				all[gid] = struct{}{}
			}
		}
		for dfaState := range m.rows[row] {
			f[dfaState] = all
		}
	}
	return f
}

// reverseAssignment returns every DFA state whose f-image contains
// the given new-NFA state id.
func reverseAssignment(f map[int]map[int]struct{}, id int) map[int]struct{} {
	out := map[int]struct{}{}
	for dfaState, ids := range f {
		if _, ok := ids[id]; ok {
			out[dfaState] = struct{}{}
		}
	}
	return out
}

// ConvertStatesMapToNFA reconstructs a candidate NFA of the given
// target state count from a cover-indexed states map and the DFA it
// was built from: each candidate state id is assigned the DFA states
// whose f-image contains it, final iff it is assigned at least one DFA
// state and every one of those DFA states is final, and an edge on letter l to another candidate state iff
// every one of the origin's DFA states transitions on l into the
// target candidate state's DFA-state set.
func ConvertStatesMapToNFA[L letter.Letter[L]](m StatesMap, d automaton.DFA[L], targetStates int) automaton.NFA[L] {
	f := subsetAssignment(m)

	initials := map[int]struct{}{}
	for id := range f[d.Initial()] {
		initials[id] = struct{}{}
	}

	finals := map[int]struct{}{}
	transitions := make([]map[L]map[int]struct{}, targetStates)
	for id := 0; id < targetStates; id++ {
		revF := reverseAssignment(f, id)
		allFinal := true
		for dfaState := range revF {
			if !d.IsFinal(dfaState) {
				allFinal = false
				break
			}
		}
		if allFinal && len(revF) > 0 {
			finals[id] = struct{}{}
		}

		outgoing := map[L]map[int]struct{}{}
		for targID := 0; targID < targetStates; targID++ {
			targRevF := reverseAssignment(f, targID)
			for _, l := range d.Alphabet().Sorted() {
				allTransition := true
				for dfaOrig := range revF {
					targ, ok := d.Target(dfaOrig, l)
					if !ok {
						allTransition = false
						break
					}
					if _, inTarg := targRevF[targ]; !inTarg {
						allTransition = false
						break
					}
				}
				if allTransition {
					dst := outgoing[l]
					if dst == nil {
						dst = map[int]struct{}{}
						outgoing[l] = dst
					}
					dst[targID] = struct{}{}
				}
			}
		}
		transitions[id] = outgoing
	}

	n, _ := automaton.FromRaw(d.Alphabet(), initials, finals, transitions)
	return n
}

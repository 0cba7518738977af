package graphview

import (
	"testing"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
)

type r = letter.Rune

func abAlphabet() alphabet.Alphabet[r] {
	return alphabet.New(r('a'), r('b'))
}

func TestFromNFA_StateNumberingMatchesOriginal(t *testing.T) {
	n := automaton.Word(abAlphabet(), []r{'a', 'b'})
	gv := FromNFA(n, nil)
	if len(gv.States) != n.Len() {
		t.Fatalf("want %d states, got %d", n.Len(), len(gv.States))
	}
	for i, s := range gv.States {
		if s != i {
			t.Errorf("want state numbering to match the NFA's own state IDs, got States[%d] = %d", i, s)
		}
	}
	for _, tr := range gv.Transitions {
		if tr.From < 0 || tr.From >= n.Len() || tr.To < 0 || tr.To >= n.Len() {
			t.Errorf("transition %+v references a state outside the NFA's numbering", tr)
		}
	}
}

func TestFromNFA_ClassifiesTrimmedAndDeadStates(t *testing.T) {
	n := automaton.Word(abAlphabet(), []r{'a'})
	dead, _ := automaton.Unite(n, automaton.AcceptsNothing(abAlphabet()))
	gv := FromNFA(dead, nil)
	sawDead := false
	for _, class := range gv.Classification {
		if class != Trimmed {
			sawDead = true
		}
	}
	if !sawDead {
		t.Error("want at least one non-Trimmed state from the dead AcceptsNothing branch")
	}
}

func TestFromNFA_ActiveSetIsCopiedNotAliased(t *testing.T) {
	active := map[int]struct{}{0: {}}
	n := automaton.Word(abAlphabet(), []r{'a'})
	gv := FromNFA(n, active)
	active[1] = struct{}{}
	if _, ok := gv.Active[1]; ok {
		t.Error("want GraphView.Active to be a defensive copy, not an alias of the caller's map")
	}
}

func TestFromDFA_MatchesItsNFALift(t *testing.T) {
	n := automaton.Word(abAlphabet(), []r{'a', 'b'})
	d := automaton.ToDFA(n)
	gv := FromDFA(d, nil)
	if len(gv.States) != d.ToNFA().Len() {
		t.Errorf("want FromDFA's state count to match its NFA lift, got %d vs %d", len(gv.States), d.ToNFA().Len())
	}
}

func TestFromEpsNFA_PreservesOwnStateNumberingAndEpsilonEdges(t *testing.T) {
	a := abAlphabet()
	transitions := []map[r]map[int]struct{}{
		{r('a'): {1: {}}},
		{},
		{},
	}
	epsilons := []map[int]struct{}{
		{},
		{2: {}},
		{},
	}
	e, err := automaton.EpsNFAFromRaw(a, map[int]struct{}{0: {}}, map[int]struct{}{2: {}}, transitions, epsilons)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gv := FromEpsNFA(e, nil)
	if len(gv.States) != e.Len() {
		t.Fatalf("want %d states matching the epsNFA's own numbering, got %d", e.Len(), len(gv.States))
	}
	if len(gv.EpsilonEdges) != 1 || gv.EpsilonEdges[0] != (EpsilonTransition{From: 1, To: 2}) {
		t.Errorf("want exactly one epsilon edge 1->2, got %v", gv.EpsilonEdges)
	}
	for _, class := range gv.Classification {
		if class != Trimmed {
			t.Error("want every state to report Trimmed for an epsNFA view, per the documented simplification")
		}
	}
}

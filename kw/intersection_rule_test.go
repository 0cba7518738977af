package kw

import (
	"testing"

	"github.com/coregx/autour/automaton"
)

func TestConvertStatesMapToNFA_ReconstructsEquivalentLanguage(t *testing.T) {
	n := endsInA(t)
	sm, d := FromNFA(n)
	rsm := sm.ReduceMatrix()
	grids := SearchMaximalPrimeGrids(rsm)
	if !IsSetOfGridsCoveringMatrix(rsm, grids) {
		t.Fatal("want every maximal prime grid together to cover the reduced matrix")
	}
	cover := ReplaceStatesMapContentWithCover(rsm, grids)
	rebuilt := ConvertStatesMapToNFA(cover, d, len(grids))
	if !automaton.Equals(n, rebuilt) {
		t.Error("want the intersection-rule reconstruction to accept the same language as the original NFA")
	}
}

package kw

import (
	"testing"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
)

type r = letter.Rune

func abAlphabetKW() alphabet.Alphabet[r] {
	return alphabet.New(r('a'), r('b'))
}

// endsInA is the classic two-state NFA accepting words over {a,b}
// ending in 'a': a good fixture because its forward and reverse
// determinizations stay small while still exercising genuine
// nondeterminism (state 0 has two a-successors).
func endsInA(t *testing.T) automaton.NFA[r] {
	t.Helper()
	a := abAlphabetKW()
	transitions := []map[r]map[int]struct{}{
		{r('a'): {0: {}, 1: {}}, r('b'): {0: {}}},
		{},
	}
	n, err := automaton.FromRaw(a, map[int]struct{}{0: {}}, map[int]struct{}{1: {}}, transitions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}

func TestFromNFA_BuildsConsistentCells(t *testing.T) {
	n := endsInA(t)
	sm, d := FromNFA(n)
	if sm.Rows() != d.Len() {
		t.Errorf("want %d rows (one per DFA state), got %d", d.Len(), sm.Rows())
	}
	if sm.Rows() == 0 || sm.Cols() == 0 {
		t.Fatal("want a nonempty states map for a nonempty NFA")
	}
	for i := 0; i < sm.Rows(); i++ {
		for j := 0; j < sm.Cols(); j++ {
			cell := sm.Cell(i, j)
			for s := range cell {
				if s < 0 || s >= n.Len() {
					t.Errorf("cell (%d,%d) contains out-of-range NFA state %d", i, j, s)
				}
			}
		}
	}
}

func TestReduceMatrix_MergesIdenticalRowSignatures(t *testing.T) {
	// Two rows with the exact same zero/non-zero pattern across both
	// columns should collapse into one.
	m := StatesMap{
		rows: []map[int]struct{}{{0: {}}, {1: {}}, {2: {}}},
		cols: []map[int]struct{}{{0: {}}, {1: {}}},
		matrix: [][]map[int]struct{}{
			{{0: {}}, nil},
			{{0: {}}, nil}, // identical pattern to row 0
			{nil, {1: {}}},
		},
	}
	reduced := m.ReduceMatrix()
	if reduced.Rows() != 2 {
		t.Fatalf("want 2 rows after merging the identical pair, got %d", reduced.Rows())
	}
}

func TestReduceMatrix_NoOpWhenAllSignaturesDistinct(t *testing.T) {
	m := StatesMap{
		rows: []map[int]struct{}{{0: {}}, {1: {}}},
		cols: []map[int]struct{}{{0: {}}, {1: {}}},
		matrix: [][]map[int]struct{}{
			{{0: {}}, nil},
			{nil, {1: {}}},
		},
	}
	reduced := m.ReduceMatrix()
	if reduced.Rows() != 2 || reduced.Cols() != 2 {
		t.Errorf("want no merging when every row/col signature is unique, got %dx%d", reduced.Rows(), reduced.Cols())
	}
}

package automaton

import (
	"testing"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/letter"
)

type r = letter.Rune

func abAlphabet() alphabet.Alphabet[r] {
	return alphabet.New(r('a'), r('b'))
}

func TestFromRaw_RejectsOutOfRangeInitial(t *testing.T) {
	_, err := FromRaw[r](abAlphabet(), map[int]struct{}{5: {}}, map[int]struct{}{}, []map[r]map[int]struct{}{{}})
	if err == nil {
		t.Fatal("want error for out-of-range initial, got nil")
	}
}

func TestFromRaw_RejectsUnknownLetter(t *testing.T) {
	row := map[r]map[int]struct{}{r('z'): {0: {}}}
	_, err := FromRaw[r](abAlphabet(), map[int]struct{}{0: {}}, map[int]struct{}{}, []map[r]map[int]struct{}{row})
	if err == nil {
		t.Fatal("want error for a letter outside the alphabet, got nil")
	}
}

func TestWord_AcceptsExactlyThatWord(t *testing.T) {
	w := []r{'a', 'b'}
	n := Word(abAlphabet(), w)
	if !n.RunsTrace(w) {
		t.Error("want Word(w) to accept w")
	}
	if n.RunsTrace([]r{'a'}) {
		t.Error("want Word(ab) to reject the prefix a")
	}
	if n.RunsTrace([]r{'a', 'b', 'a'}) {
		t.Error("want Word(ab) to reject a longer word")
	}
}

func TestOfLength(t *testing.T) {
	n := OfLength(abAlphabet(), 2)
	tests := []struct {
		word []r
		want bool
	}{
		{nil, false},
		{[]r{'a'}, false},
		{[]r{'a', 'b'}, true},
		{[]r{'b', 'b'}, true},
		{[]r{'a', 'b', 'a'}, false},
	}
	for _, tt := range tests {
		if got := n.RunsTrace(tt.word); got != tt.want {
			t.Errorf("RunsTrace(%v) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestEmptyWord(t *testing.T) {
	n := EmptyWord(abAlphabet())
	if !n.RunsTrace(nil) {
		t.Error("want EmptyWord to accept the empty word")
	}
	if n.RunsTrace([]r{'a'}) {
		t.Error("want EmptyWord to reject any non-empty word")
	}
}

func TestUniversal_AcceptsEveryWord(t *testing.T) {
	n := Universal(abAlphabet())
	for _, w := range [][]r{nil, {'a'}, {'b'}, {'a', 'b', 'a', 'a', 'b'}} {
		if !n.RunsTrace(w) {
			t.Errorf("want Universal to accept %v", w)
		}
	}
}

func TestVoid_AcceptsNothing(t *testing.T) {
	n := Void(abAlphabet())
	if n.RunsTrace(nil) {
		t.Error("want Void to reject the empty word")
	}
}

func TestAcceptsNothing_RejectsEverything(t *testing.T) {
	n := AcceptsNothing(abAlphabet())
	for _, w := range [][]r{nil, {'a'}, {'a', 'b'}} {
		if n.RunsTrace(w) {
			t.Errorf("want AcceptsNothing to reject %v", w)
		}
	}
}

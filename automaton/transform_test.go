package automaton

import (
	"testing"

	"github.com/coregx/autour/alphabet"
)

func TestUnite_Language(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(abAlphabet(), []r{'b'})
	u, err := Unite(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.RunsTrace([]r{'a'}) || !u.RunsTrace([]r{'b'}) {
		t.Error("want union to accept both words")
	}
	if u.RunsTrace([]r{'a', 'b'}) {
		t.Error("want union to reject a word accepted by neither operand")
	}
}

func TestUnite_AlphabetMismatch(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(alphabet.New(r(0x63)), []r{'c'})
	_, err := Unite(a, b)
	if err == nil {
		t.Fatal("want AlphabetMismatch error, got nil")
	}
}

func TestConcatenate_Language(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(abAlphabet(), []r{'b'})
	c, err := Concatenate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.RunsTrace([]r{'a', 'b'}) {
		t.Error("want concatenation to accept ab")
	}
	if c.RunsTrace([]r{'a'}) || c.RunsTrace([]r{'b'}) {
		t.Error("want concatenation to reject either half alone")
	}
}

func TestKleene_ContainsEpsilonAndSelfConcat(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	star := Kleene(a)
	if !star.RunsTrace(nil) {
		t.Error("want Kleene(a) to accept the empty word")
	}
	if !star.RunsTrace([]r{'a', 'a', 'a'}) {
		t.Error("want Kleene(a) to accept aaa")
	}
	if star.RunsTrace([]r{'a', 'b'}) {
		t.Error("want Kleene(a) to reject ab")
	}
}

func TestReverse_Involution(t *testing.T) {
	n := Word(abAlphabet(), []r{'a', 'b'})
	rr := Reverse(Reverse(n))
	if !Equals(n, rr) {
		t.Error("want Reverse(Reverse(n)) to accept the same language as n")
	}
}

func TestReverse_ReversesWords(t *testing.T) {
	n := Word(abAlphabet(), []r{'a', 'b'})
	rev := Reverse(n)
	if !rev.RunsTrace([]r{'b', 'a'}) {
		t.Error("want Reverse(word(ab)) to accept ba")
	}
	if rev.RunsTrace([]r{'a', 'b'}) {
		t.Error("want Reverse(word(ab)) to reject ab")
	}
}

func TestNegate_ComplementsLanguage(t *testing.T) {
	n := Word(abAlphabet(), []r{'a'})
	neg := Negate(n)
	if neg.RunsTrace([]r{'a'}) {
		t.Error("want Negate(word(a)) to reject a")
	}
	if !neg.RunsTrace(nil) {
		t.Error("want Negate(word(a)) to accept the empty word")
	}
	if !neg.RunsTrace([]r{'b'}) {
		t.Error("want Negate(word(a)) to accept any other word")
	}
}

func TestNegate_DoubleNegationIsIdentity(t *testing.T) {
	n := Word(abAlphabet(), []r{'a', 'b'})
	nn := Negate(Negate(n))
	if !Equals(n, nn) {
		t.Error("want Negate(Negate(n)) to accept the same language as n")
	}
}

func TestIntersect_DeMorgan(t *testing.T) {
	a, _ := Unite(Word(abAlphabet(), []r{'a'}), Word(abAlphabet(), []r{'a', 'b'}))
	b, _ := Unite(Word(abAlphabet(), []r{'b'}), Word(abAlphabet(), []r{'a', 'b'}))
	inter := Intersect(a, b)
	if !inter.RunsTrace([]r{'a', 'b'}) {
		t.Error("want intersection to accept ab (common to both)")
	}
	if inter.RunsTrace([]r{'a'}) || inter.RunsTrace([]r{'b'}) {
		t.Error("want intersection to reject words accepted by only one operand")
	}
}

func TestInterleave_Shuffle(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(abAlphabet(), []r{'b'})
	sh, err := Interleave(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sh.RunsTrace([]r{'a', 'b'}) {
		t.Error("want shuffle(a,b) to accept ab")
	}
	if !sh.RunsTrace([]r{'b', 'a'}) {
		t.Error("want shuffle(a,b) to accept ba")
	}
	if sh.RunsTrace([]r{'a'}) || sh.RunsTrace([]r{'a', 'a'}) {
		t.Error("want shuffle(a,b) to reject words that aren't an interleaving of exactly one a and one b")
	}
}

func TestInterleave_AlphabetMismatch(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(alphabet.New(r(0x63)), []r{'c'})
	_, err := Interleave(a, b)
	if err == nil {
		t.Fatal("want AlphabetMismatch error, got nil")
	}
}

func TestComplete_AddsNoNewAcceptedWords(t *testing.T) {
	n := Word(abAlphabet(), []r{'a'})
	c := Complete(n)
	if !c.IsComplete() {
		t.Fatal("want Complete(n) to be complete")
	}
	if !Equals(n, c) {
		t.Error("want Complete(n) to accept exactly n's language")
	}
}

func TestTrim_PreservesLanguage(t *testing.T) {
	// Unite with AcceptsNothing adds a state that's accessible (it's an
	// initial) but never coaccessible (never final) — exactly what Trim
	// should strip without changing the accepted language.
	n := Word(abAlphabet(), []r{'a', 'b'})
	dead, _ := Unite(n, AcceptsNothing(abAlphabet()))
	trimmed := Trim(dead)
	if !Equals(dead, trimmed) {
		t.Error("want Trim to preserve the accepted language")
	}
	if !IsTrimmed(trimmed) {
		t.Error("want Trim's result to be trimmed")
	}
}

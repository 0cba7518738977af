package automaton

import (
	"testing"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/bre"
)

func TestToDFA_PreservesLanguage(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(abAlphabet(), []r{'a', 'b'})
	n, _ := Unite(a, b)
	d := ToDFA(n)
	if !d.RunsTrace([]r{'a'}) || !d.RunsTrace([]r{'a', 'b'}) {
		t.Error("want the DFA to accept both original words")
	}
	if d.RunsTrace([]r{'b'}) {
		t.Error("want the DFA to reject a word outside the language")
	}
	if !Equals(n, d.ToNFA()) {
		t.Error("want ToDFA to preserve the accepted language")
	}
}

func TestMinimizeDFA_PreservesLanguage(t *testing.T) {
	a := Word(abAlphabet(), []r{'a'})
	b := Word(abAlphabet(), []r{'a', 'b'})
	n, _ := Unite(a, b)
	d := ToDFA(n)
	min := MinimizeDFA(d)
	if !min.RunsTrace([]r{'a'}) || !min.RunsTrace([]r{'a', 'b'}) || min.RunsTrace([]r{'b'}) {
		t.Error("want minimized DFA to accept the same language as the original")
	}
}

func TestCompleteDFA_IsComplete(t *testing.T) {
	d := ToDFA(Word(abAlphabet(), []r{'a'}))
	c := CompleteDFA(d)
	if !c.IsComplete() {
		t.Fatal("want CompleteDFA's result to be complete")
	}
	if !ContainsDFA(c, d) || !ContainsDFA(d, c) {
		t.Error("want CompleteDFA to preserve the language exactly")
	}
}

func TestBRERoundTrip_NFAToBREToNFA(t *testing.T) {
	a := abAlphabet()
	term := bre.Concat(bre.Literal(r('a')), bre.Kleene(bre.Literal(r('b'))))
	expr, err := bre.NewExpr(a, term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := FromBRE(expr)

	words := [][]r{{'a'}, {'a', 'b'}, {'a', 'b', 'b', 'b'}, {'b'}, {'a', 'a'}}
	for _, w := range words {
		want := n.RunsTrace(w)

		roundTripExpr := ToBRE(n)
		back := FromBRE(roundTripExpr)
		if got := back.RunsTrace(w); got != want {
			t.Errorf("word %v: NFA->BRE->NFA RunsTrace = %v, want %v", w, got, want)
		}
	}
}

func TestBRERoundTrip_EmptyLanguageStaysEmpty(t *testing.T) {
	a := abAlphabet()
	void := Void(a)

	roundTripExpr := ToBRE(void)
	if !bre.IsEmpty(roundTripExpr.Term) {
		t.Fatalf("want ToBRE(Void) to produce a term expressing the empty language, got %v", roundTripExpr.Term)
	}

	back := FromBRE(roundTripExpr)
	if !IsEmpty(back) {
		t.Error("want FromBRE(ToBRE(Void)) to still accept no word")
	}
	for _, w := range [][]r{nil, {'a'}, {'b'}, {'a', 'b'}} {
		if back.RunsTrace(w) {
			t.Errorf("want the round-tripped empty language to reject %v", w)
		}
	}
}

func TestToGNFA_ToNFA_PreservesLanguage(t *testing.T) {
	n := FromBRE(exprOf(t, bre.Union(bre.Literal(r('a')), bre.Concat(bre.Literal(r('a')), bre.Literal(r('b'))))))
	g := ToGNFA(n)
	back := g.ToNFA()
	if !Equals(n, back) {
		t.Error("want NFA->GNFA->NFA to preserve the accepted language")
	}
}

func TestCharacterize_IsEmpty(t *testing.T) {
	if !IsEmpty(Void(abAlphabet())) {
		t.Error("want Void to be empty")
	}
	if IsEmpty(EmptyWord(abAlphabet())) {
		t.Error("want EmptyWord to not be empty")
	}
}

func TestCharacterize_IsUniversal(t *testing.T) {
	if !IsUniversal(Universal(abAlphabet())) {
		t.Error("want Universal to be universal")
	}
	if IsUniversal(Word(abAlphabet(), []r{'a'})) {
		t.Error("want a single word's acceptor to not be universal")
	}
}

func TestCharacterize_Contains(t *testing.T) {
	sub := Word(abAlphabet(), []r{'a'})
	sup, _ := Unite(sub, Word(abAlphabet(), []r{'b'}))
	if !Contains(sup, sub) {
		t.Error("want the union to contain one of its operands")
	}
	if Contains(sub, sup) {
		t.Error("want a single word's acceptor to not contain a strictly larger language")
	}
}

func TestCharacterize_Equals(t *testing.T) {
	a := Word(abAlphabet(), []r{'a', 'b'})
	b := ToDFA(a).ToNFA()
	if !Equals(a, b) {
		t.Error("want an NFA and its determinized-then-lifted form to be language equal")
	}
}

func exprOf(t *testing.T, term bre.Term[r]) bre.Expr[r] {
	t.Helper()
	expr, err := bre.NewExpr(abAlphabet(), term)
	if err != nil {
		t.Fatalf("unexpected error building expr: %v", err)
	}
	return expr
}

func TestMinimizeDFA_MergesEquivalentStates(t *testing.T) {
	// States 1 and 2 are distinct but language-equivalent (both reach
	// the final state on a), so minimization must merge them.
	transitions := []map[r]int{
		{r('a'): 1, r('b'): 2},
		{r('a'): 3},
		{r('a'): 3},
		{},
	}
	d, err := DFAFromRaw(abAlphabet(), 0, map[int]struct{}{3: {}}, transitions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	min := MinimizeDFA(d)
	if min.Len() >= d.Len() {
		t.Errorf("want minimization to reduce the state count, got %d >= %d", min.Len(), d.Len())
	}
	if !EqualsDFA(min, d) {
		t.Error("want minimization to preserve the language")
	}
}

func TestToBRE_ExtractsSingleWordLanguage(t *testing.T) {
	abc := alphabet.New(r('a'), r('b'), r('c'))
	n := Word(abc, []r{'a', 'b', 'c'})
	expr := ToBRE(n)
	back := FromBRE(expr)
	if !back.RunsTrace([]r{'a', 'b', 'c'}) {
		t.Error("want the extracted regex to accept abc")
	}
	for _, w := range [][]r{nil, {'a'}, {'a', 'b'}, {'a', 'c'}, {'a', 'b', 'c', 'a'}} {
		if back.RunsTrace(w) {
			t.Errorf("want the extracted regex to reject %v", w)
		}
	}
	if !Equals(n, back) {
		t.Error("want the regex round trip to preserve the language exactly")
	}
}

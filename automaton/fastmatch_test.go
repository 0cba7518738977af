package automaton

import (
	"fmt"
	"testing"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/bre"
	"github.com/coregx/autour/letter"
)

// byteAlphabetOf builds the alphabet of letter.Byte values occurring
// in t, enough to satisfy bre.NewExpr's validation for these tests.
func byteAlphabetOf(t bre.Term[letter.Byte]) alphabet.Alphabet[letter.Byte] {
	letters := bre.GetAlphabet(t)
	ls := make([]letter.Byte, 0, len(letters))
	for l := range letters {
		ls = append(ls, l)
	}
	return alphabet.New(ls...)
}

func byteLiteral(b byte) bre.Term[letter.Byte] { return bre.Literal(letter.Byte(b)) }

func byteWord(s string) bre.Term[letter.Byte] {
	lits := make([]bre.Term[letter.Byte], len(s))
	for i := 0; i < len(s); i++ {
		lits[i] = byteLiteral(s[i])
	}
	return bre.Concat(lits...)
}

func TestTryByteWordMatcher_RejectsSmallAlternation(t *testing.T) {
	term := bre.Union(byteWord("foo"), byteWord("bar"))
	if _, ok := TryByteWordMatcher(term); ok {
		t.Error("want an alternation at or below the threshold to decline the Aho-Corasick fast path")
	}
}

func TestTryByteWordMatcher_RejectsNonWordAlternationShape(t *testing.T) {
	// A Kleene star isn't a flat word alternation, regardless of size.
	term := bre.Kleene(byteLiteral('a'))
	if _, ok := TryByteWordMatcher(term); ok {
		t.Error("want a non-alternation shape to decline the fast path")
	}
}

// manyWordsTerm builds a Union of n distinct three-byte words, enough
// to cross wordAlternationThreshold and trigger the Aho-Corasick path.
func manyWordsTerm(n int) bre.Term[letter.Byte] {
	words := make([]bre.Term[letter.Byte], n)
	for i := 0; i < n; i++ {
		words[i] = byteWord(fmt.Sprintf("w%02d", i))
	}
	return bre.Union(words...)
}

func TestTryByteWordMatcher_BuildsAutomatonAboveThreshold(t *testing.T) {
	term := manyWordsTerm(wordAlternationThreshold + 1)
	m, ok := TryByteWordMatcher(term)
	if !ok {
		t.Fatal("want an alternation above the threshold to build an Aho-Corasick matcher")
	}
	if !m.IsMatch([]byte("xxxxw05yyyy")) {
		t.Error("want the matcher to find one of its words embedded in a haystack")
	}
	if m.IsMatch([]byte("no match in here")) {
		t.Error("want the matcher to report no match when none of its words occur")
	}
}

func TestFastIsMatch_UsesAhoCorasickFastPathAboveThreshold(t *testing.T) {
	term := manyWordsTerm(wordAlternationThreshold + 1)
	expr, err := bre.NewExpr(byteAlphabetOf(term), term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !FastIsMatch(expr, []byte("___w10___")) {
		t.Error("want FastIsMatch to find an embedded alternation word via the Aho-Corasick path")
	}
	if FastIsMatch(expr, []byte("nothing relevant here")) {
		t.Error("want FastIsMatch to reject a haystack containing none of the words")
	}
}

func TestFastIsMatch_FallsBackToNFASimulationBelowThreshold(t *testing.T) {
	term := bre.Concat(byteLiteral('a'), bre.Kleene(byteLiteral('b')))
	expr, err := bre.NewExpr(byteAlphabetOf(term), term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !FastIsMatch(expr, []byte("xxxabbby")) {
		t.Error("want the NFA-simulation fallback to find a match embedded in the haystack")
	}
	if FastIsMatch(expr, []byte("xxxxxxxx")) {
		t.Error("want the NFA-simulation fallback to reject a haystack with no match")
	}
}

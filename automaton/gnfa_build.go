package automaton

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/bre"
	"github.com/coregx/autour/letter"
)

// The GNFA transform algebra routes through the NFA representation:
// translate, operate, translate back. A direct edge-term algebra would
// have to re-derive the start/accept discipline (no incoming edges on
// start, no outgoing on accept) for every operation; the NFA round
// trip gets all of it from the existing, already-tested operations at
// the cost of a renumbering the public contract permits.

// UniteGNFA returns the union of a and b. Fails with AlphabetMismatch
// if a and b are declared over different alphabets.
func UniteGNFA[L letter.Letter[L]](a, b GNFA[L]) (GNFA[L], error) {
	u, err := Unite(a.ToNFA(), b.ToNFA())
	if err != nil {
		return GNFA[L]{}, err
	}
	return ToGNFA(u), nil
}

// ConcatenateGNFA returns a followed by b. Fails with AlphabetMismatch
// if a and b are declared over different alphabets.
func ConcatenateGNFA[L letter.Letter[L]](a, b GNFA[L]) (GNFA[L], error) {
	c, err := Concatenate(a.ToNFA(), b.ToNFA())
	if err != nil {
		return GNFA[L]{}, err
	}
	return ToGNFA(c), nil
}

// KleeneGNFA returns the Kleene star of g.
func KleeneGNFA[L letter.Letter[L]](g GNFA[L]) GNFA[L] {
	return ToGNFA(Kleene(g.ToNFA()))
}

// RepeatGNFA returns the k-fold concatenation of g.
func RepeatGNFA[L letter.Letter[L]](g GNFA[L], k int) GNFA[L] {
	return ToGNFA(Repeat(g.ToNFA(), k))
}

// AtMostGNFA returns the language of at most k copies of g.
func AtMostGNFA[L letter.Letter[L]](g GNFA[L], k int) GNFA[L] {
	return ToGNFA(AtMost(g.ToNFA(), k))
}

// AtLeastGNFA returns the language of at least k copies of g.
func AtLeastGNFA[L letter.Letter[L]](g GNFA[L], k int) GNFA[L] {
	return ToGNFA(AtLeast(g.ToNFA(), k))
}

// RepeatRangeGNFA returns the language of between r.Start and r.End
// copies of g (r.Start or more when r.End is nil). Returns
// autoerr.EmptyRange when r.End is non-nil and less than r.Start.
func RepeatRangeGNFA[L letter.Letter[L]](g GNFA[L], r Range) (GNFA[L], error) {
	n, err := RepeatRange(g.ToNFA(), r)
	if err != nil {
		return GNFA[L]{}, err
	}
	return ToGNFA(n), nil
}

// SubstituteLettersGNFA renames g's alphabet through subst (identity
// for any letter absent from the map), rewriting every edge term in
// place — the edges carry the substitution, so the state structure is
// untouched.
func SubstituteLettersGNFA[L letter.Letter[L]](g GNFA[L], subst map[L]L) (GNFA[L], error) {
	newAlphabet := getNewAlphabetFromSubstitution(g.alphabet, subst)
	edges := make(map[edgeKey]bre.Term[L], len(g.edges))
	for k, t := range g.edges {
		edges[k] = bre.SubstituteLetters(t, subst)
	}
	return GNFA[L]{
		alphabet: newAlphabet,
		n:        g.n,
		start:    g.start,
		accept:   g.accept,
		edges:    edges,
	}, nil
}

// HideLettersGNFA removes every hidden letter from g's alphabet,
// substituting ℓ ↦ ε inside every edge term: the rewritten GNFA
// accepts every word of the original with the hidden letters deleted.
// Fails with UnknownLetter if a hidden letter is outside the alphabet.
func HideLettersGNFA[L letter.Letter[L]](g GNFA[L], hidden map[L]struct{}) (GNFA[L], error) {
	for l := range hidden {
		if !g.alphabet.Contains(l) {
			return GNFA[L]{}, autoerr.UnknownLetterErr(stringifyLetter(l), g.alphabet.String())
		}
	}
	newAlphabet := getNewAlphabetFromHiding(g.alphabet, hidden)
	edges := make(map[edgeKey]bre.Term[L], len(g.edges))
	for k, t := range g.edges {
		edges[k] = bre.HideLetters(t, hidden)
	}
	return GNFA[L]{
		alphabet: newAlphabet,
		n:        g.n,
		start:    g.start,
		accept:   g.accept,
		edges:    edges,
	}, nil
}

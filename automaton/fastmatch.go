package automaton

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/autour/bre"
	"github.com/coregx/autour/letter"
)

// wordAlternationThreshold is the cutoff above which a literal
// alternation is routed onto Aho-Corasick instead of an
// NFA-simulation fast path; below it the per-word overhead of
// building the trie outweighs the scan savings.
const wordAlternationThreshold = 32

// wordAlternationWords reports whether t is a Union whose every child
// is either a Literal or a Concat of Literals — i.e. a flat
// alternation of fixed words — returning the words in t's canonical
// child order. A lone Literal also matches, as a one-word alternation.
// Any other shape fails the match.
func wordAlternationWords[L letter.Letter[L]](t bre.Term[L]) ([][]L, bool) {
	if t.Kind() == bre.KindLiteral {
		l, _ := t.Literal()
		return [][]L{{l}}, true
	}
	if t.Kind() != bre.KindUnion {
		return nil, false
	}
	words := make([][]L, 0, len(t.Children()))
	for _, c := range t.Children() {
		switch c.Kind() {
		case bre.KindLiteral:
			l, _ := c.Literal()
			words = append(words, []L{l})
		case bre.KindConcat:
			word := make([]L, 0, len(c.Children()))
			for _, lc := range c.Children() {
				if lc.Kind() != bre.KindLiteral {
					return nil, false
				}
				l, _ := lc.Literal()
				word = append(word, l)
			}
			words = append(words, word)
		default:
			return nil, false
		}
	}
	return words, true
}

// ByteWordMatcher wraps an Aho-Corasick automaton over a fixed set of
// byte words, giving O(haystack) membership testing for a word
// alternation without building or simulating an NFA at all.
type ByteWordMatcher struct {
	auto *ahocorasick.Automaton
}

// IsMatch reports whether any of the matcher's words occurs in
// haystack.
func (m *ByteWordMatcher) IsMatch(haystack []byte) bool {
	return m.auto.IsMatch(haystack)
}

// TryByteWordMatcher builds a ByteWordMatcher for t when t is a word
// alternation over letter.Byte with more than wordAlternationThreshold
// words. Returns ok=false for any other shape or any smaller
// alternation, so callers can fall back to the general FromBRE
// construction.
func TryByteWordMatcher(t bre.Term[letter.Byte]) (*ByteWordMatcher, bool) {
	words, ok := wordAlternationWords(t)
	if !ok || len(words) <= wordAlternationThreshold {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		bs := make([]byte, len(w))
		for i, l := range w {
			bs[i] = byte(l)
		}
		builder.AddPattern(bs)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &ByteWordMatcher{auto: auto}, true
}

// FastIsMatch reports whether haystack contains a match for expr's
// language, preferring TryByteWordMatcher's Aho-Corasick fast path for
// large byte-word alternations and falling back to building the NFA
// and scanning every window otherwise.
func FastIsMatch(expr bre.Expr[letter.Byte], haystack []byte) bool {
	if m, ok := TryByteWordMatcher(expr.Term); ok {
		return m.IsMatch(haystack)
	}
	n := FromBRE(expr)
	for start := 0; start <= len(haystack); start++ {
		word := make([]letter.Byte, len(haystack)-start)
		for i, b := range haystack[start:] {
			word[i] = letter.Byte(b)
		}
		for end := 0; end <= len(word); end++ {
			if n.RunsTrace(word[:end]) {
				return true
			}
		}
	}
	return false
}

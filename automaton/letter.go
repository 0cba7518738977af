package automaton

import (
	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// getNewAlphabetFromSubstitution computes the image alphabet: every
// letter of a's alphabet maps through subst (identity if absent).
func getNewAlphabetFromSubstitution[L letter.Letter[L]](a alphabet.Alphabet[L], subst map[L]L) alphabet.Alphabet[L] {
	out := alphabet.Empty[L]()
	for _, l := range a.Sorted() {
		if r, ok := subst[l]; ok {
			out = out.With(r)
		} else {
			out = out.With(l)
		}
	}
	return out
}

// SubstituteLetters renames n's alphabet through subst (identity for
// any letter absent from the map), merging transition target sets
// whenever two distinct letters map onto the same new letter.
func SubstituteLetters[L letter.Letter[L]](n NFA[L], subst map[L]L) (NFA[L], error) {
	newAlphabet := getNewAlphabetFromSubstitution(n.alphabet, subst)
	transitions := make([]map[L]map[int]struct{}, len(n.transitions))
	for i, row := range n.transitions {
		nr := map[L]map[int]struct{}{}
		for l, targets := range row {
			nl := l
			if r, ok := subst[l]; ok {
				nl = r
			}
			dst := nr[nl]
			if dst == nil {
				dst = map[int]struct{}{}
				nr[nl] = dst
			}
			for t := range targets {
				dst[t] = struct{}{}
			}
		}
		transitions[i] = nr
	}
	return FromRaw(newAlphabet, n.Initials(), n.Finals(), transitions)
}

// getNewAlphabetFromHiding computes the alphabet with every hidden
// letter removed.
func getNewAlphabetFromHiding[L letter.Letter[L]](a alphabet.Alphabet[L], hidden map[L]struct{}) alphabet.Alphabet[L] {
	out := alphabet.Empty[L]()
	for _, l := range a.Sorted() {
		if _, ok := hidden[l]; !ok {
			out = out.With(l)
		}
	}
	return out
}

// HideLetters removes every hidden letter from n's alphabet, folding
// its transitions into ε-edges instead: the resulting automaton
// accepts the same language with every hidden letter erased from its
// words.
func HideLetters[L letter.Letter[L]](n NFA[L], hidden map[L]struct{}) (EpsNFA[L], error) {
	for l := range hidden {
		if !n.alphabet.Contains(l) {
			return EpsNFA[L]{}, autoerr.UnknownLetterErr(stringifyLetter(l), n.alphabet.String())
		}
	}
	newAlphabet := getNewAlphabetFromHiding(n.alphabet, hidden)
	transitions := make([]map[L]map[int]struct{}, len(n.transitions))
	epsilons := make([]map[int]struct{}, len(n.transitions))
	for i, row := range n.transitions {
		nr := map[L]map[int]struct{}{}
		eps := map[int]struct{}{}
		for l, targets := range row {
			if _, ok := hidden[l]; ok {
				for t := range targets {
					eps[t] = struct{}{}
				}
			} else {
				nr[l] = cloneSet(targets)
			}
		}
		transitions[i] = nr
		epsilons[i] = eps
	}
	return EpsNFAFromRaw(newAlphabet, n.Initials(), n.Finals(), transitions, epsilons)
}

// HideLettersEps is HideLetters for an ε-NFA: hidden-letter
// transitions fold into the existing ε-edge set alongside whatever
// ε-edges e already carries.
func HideLettersEps[L letter.Letter[L]](e EpsNFA[L], hidden map[L]struct{}) (EpsNFA[L], error) {
	for l := range hidden {
		if !e.Alphabet().Contains(l) {
			return EpsNFA[L]{}, autoerr.UnknownLetterErr(stringifyLetter(l), e.Alphabet().String())
		}
	}
	newAlphabet := getNewAlphabetFromHiding(e.Alphabet(), hidden)
	transitions := make([]map[L]map[int]struct{}, len(e.nfa.transitions))
	epsilons := make([]map[int]struct{}, len(e.nfa.transitions))
	for i, row := range e.nfa.transitions {
		nr := map[L]map[int]struct{}{}
		eps := cloneSet(e.epsilons[i])
		for l, targets := range row {
			if _, ok := hidden[l]; ok {
				for t := range targets {
					eps[t] = struct{}{}
				}
			} else {
				nr[l] = cloneSet(targets)
			}
		}
		transitions[i] = nr
		epsilons[i] = eps
	}
	return EpsNFAFromRaw(newAlphabet, e.nfa.Initials(), e.nfa.Finals(), transitions, epsilons)
}

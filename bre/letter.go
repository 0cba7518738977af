package bre

import "github.com/coregx/autour/letter"

// SubstituteLetters renames every literal in t through subst, leaving
// any letter absent from the map unchanged. The smart constructors
// re-normalize on the way back up, so a substitution that makes two
// Union children structurally equal collapses them.
func SubstituteLetters[L letter.Letter[L]](t Term[L], subst map[L]L) Term[L] {
	switch t.kind {
	case KindEmpty, KindEpsilon:
		return t
	case KindLiteral:
		if r, ok := subst[t.literal]; ok {
			return Literal(r)
		}
		return t
	case KindUnion:
		children := make([]Term[L], 0, len(t.children))
		for _, c := range t.children {
			children = append(children, SubstituteLetters(c, subst))
		}
		return Union(children...)
	case KindConcat:
		children := make([]Term[L], 0, len(t.children))
		for _, c := range t.children {
			children = append(children, SubstituteLetters(c, subst))
		}
		return Concat(children...)
	case KindKleene:
		return Kleene(SubstituteLetters(*t.child, subst))
	default:
		return t
	}
}

// HideLetters erases every hidden letter from t by folding its
// literals to ε: a word of the rewritten language is a word of the
// original with every hidden letter deleted. Re-normalization applies
// as for SubstituteLetters, so e.g. hiding b in a*b yields a*.
func HideLetters[L letter.Letter[L]](t Term[L], hidden map[L]struct{}) Term[L] {
	switch t.kind {
	case KindEmpty, KindEpsilon:
		return t
	case KindLiteral:
		if _, ok := hidden[t.literal]; ok {
			return Epsilon[L]()
		}
		return t
	case KindUnion:
		children := make([]Term[L], 0, len(t.children))
		for _, c := range t.children {
			children = append(children, HideLetters(c, hidden))
		}
		return Union(children...)
	case KindConcat:
		children := make([]Term[L], 0, len(t.children))
		for _, c := range t.children {
			children = append(children, HideLetters(c, hidden))
		}
		return Concat(children...)
	case KindKleene:
		return Kleene(HideLetters(*t.child, hidden))
	default:
		return t
	}
}

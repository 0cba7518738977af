package ere

import (
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// SubstituteLetters renames every literal in t through subst (identity
// for any letter absent from the map). removeFromAlphabet controls
// Wildcard: when true Wildcard is returned unchanged (the alphabet
// shrinks around it); when false there is no coherent meaning for a
// wildcard over a substituted-but-retained alphabet, so this returns
// an autoerr.Error of kind Other naming the case.
func SubstituteLetters[L letter.Letter[L]](t Term[L], removeFromAlphabet bool, subst map[L]L) (Term[L], error) {
	switch t.kind {
	case KindEmpty, KindEpsilon:
		return t, nil
	case KindLiteral:
		if r, ok := subst[t.literal]; ok {
			return Literal(r), nil
		}
		return t, nil
	case KindUnion:
		return mapChildrenSubst(t, KindUnion, removeFromAlphabet, subst, Union[L])
	case KindConcat:
		return mapChildrenSubst(t, KindConcat, removeFromAlphabet, subst, Concat[L])
	case KindIntersection:
		return mapChildrenSubst(t, KindIntersection, removeFromAlphabet, subst, Intersection[L])
	case KindKleene:
		sub, err := SubstituteLetters(*t.child, removeFromAlphabet, subst)
		if err != nil {
			return Term[L]{}, err
		}
		return Kleene(sub), nil
	case KindRepeat:
		sub, err := SubstituteLetters(*t.child, removeFromAlphabet, subst)
		if err != nil {
			return Term[L]{}, err
		}
		return Repeat(sub, t.min, t.max), nil
	case KindNegation:
		sub, err := SubstituteLetters(*t.child, removeFromAlphabet, subst)
		if err != nil {
			return Term[L]{}, err
		}
		return Negation(sub), nil
	case KindWildcard:
		if removeFromAlphabet {
			return t, nil
		}
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: SubstituteLetters is not defined on Wildcard when the alphabet is retained")
	default:
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: SubstituteLetters on unknown kind %s", t.kind)
	}
}

func mapChildrenSubst[L letter.Letter[L]](
	t Term[L],
	kind Kind,
	removeFromAlphabet bool,
	subst map[L]L,
	build func(...Term[L]) Term[L],
) (Term[L], error) {
	out := make([]Term[L], 0, len(t.children))
	for _, c := range t.children {
		sc, err := SubstituteLetters(c, removeFromAlphabet, subst)
		if err != nil {
			return Term[L]{}, err
		}
		out = append(out, sc)
	}
	return build(out...), nil
}

// HideLetters erases every letter matched by shouldHide from t,
// folding it to ε. Union folds via repeated union starting from Empty
// and Concat via repeated concatenation starting from Epsilon.
//
// Hiding under Repeat, Intersection, and Negation has no agreed
// semantics (erasing letters inside a negation or an intersection
// changes the language non-compositionally), so those cases return an
// autoerr.Error of kind Other naming the case. Wildcard follows the
// same removeFromAlphabet split as SubstituteLetters.
func HideLetters[L letter.Letter[L]](t Term[L], removeFromAlphabet bool, shouldHide func(L) bool) (Term[L], error) {
	switch t.kind {
	case KindEmpty, KindEpsilon:
		return t, nil
	case KindLiteral:
		if shouldHide(t.literal) {
			return Epsilon[L](), nil
		}
		return t, nil
	case KindUnion:
		acc := Empty[L]()
		for _, c := range t.children {
			hc, err := HideLetters(c, removeFromAlphabet, shouldHide)
			if err != nil {
				return Term[L]{}, err
			}
			acc = uniteFold(acc, hc)
		}
		return acc, nil
	case KindConcat:
		acc := Epsilon[L]()
		for _, c := range t.children {
			hc, err := HideLetters(c, removeFromAlphabet, shouldHide)
			if err != nil {
				return Term[L]{}, err
			}
			acc = concatFold(acc, hc)
		}
		return acc, nil
	case KindKleene:
		hc, err := HideLetters(*t.child, removeFromAlphabet, shouldHide)
		if err != nil {
			return Term[L]{}, err
		}
		return Kleene(hc), nil
	case KindRepeat:
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: HideLetters is not defined on Repeat")
	case KindIntersection:
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: HideLetters is not defined on Intersection")
	case KindNegation:
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: HideLetters is not defined on Negation")
	case KindWildcard:
		if removeFromAlphabet {
			return t, nil
		}
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: HideLetters is not defined on Wildcard when the alphabet is retained")
	default:
		return Term[L]{}, autoerr.New(autoerr.Other, "ere: HideLetters on unknown kind %s", t.kind)
	}
}

// uniteFold folds a onto b the way the Union smart constructor
// would: ∅ is the identity and a flat union absorbs b's children.
func uniteFold[L letter.Letter[L]](a, b Term[L]) Term[L] {
	if a.kind == KindEmpty {
		return b
	}
	if b.kind == KindEmpty {
		return a
	}
	children := flattenUnion(a)
	children = append(children, flattenUnion(b)...)
	return Union(children...)
}

func flattenUnion[L letter.Letter[L]](t Term[L]) []Term[L] {
	if t.kind == KindUnion {
		return append([]Term[L]{}, t.children...)
	}
	return []Term[L]{t}
}

// concatFold folds a onto b the way the Concat smart constructor
// would: ε is the identity and a flat concat absorbs b's children.
func concatFold[L letter.Letter[L]](a, b Term[L]) Term[L] {
	if a.kind == KindEpsilon {
		return b
	}
	if b.kind == KindEpsilon {
		return a
	}
	children := flattenConcat(a)
	children = append(children, flattenConcat(b)...)
	return Concat(children...)
}

func flattenConcat[L letter.Letter[L]](t Term[L]) []Term[L] {
	if t.kind == KindConcat {
		return append([]Term[L]{}, t.children...)
	}
	return []Term[L]{t}
}

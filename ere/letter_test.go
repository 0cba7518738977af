package ere

import (
	"errors"
	"testing"

	"github.com/coregx/autour/autoerr"
)

func kindOf(t *testing.T, err error) autoerr.Kind {
	t.Helper()
	var ae *autoerr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("want an *autoerr.Error, got %T: %v", err, err)
	}
	return ae.Kind
}

func TestSubstituteLetters_RenamesMatchedLiterals(t *testing.T) {
	term := Union(Literal(r('a')), Literal(r('b')))
	got, err := SubstituteLetters(term, true, map[r]r{r('a'): r('x')})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alphabet := GetAlphabet(got)
	if _, ok := alphabet[r('x')]; !ok {
		t.Error("want the substituted letter 'x' to appear")
	}
	if _, ok := alphabet[r('a')]; ok {
		t.Error("want the original letter 'a' to be gone after substitution")
	}
	if _, ok := alphabet[r('b')]; !ok {
		t.Error("want an untouched letter 'b' to survive unchanged")
	}
}

func TestSubstituteLetters_WildcardRemoveTrueIsIdentity(t *testing.T) {
	got, err := SubstituteLetters(Wildcard[r](), true, map[r]r{r('a'): r('x')})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != KindWildcard {
		t.Errorf("want Wildcard unchanged, got %s", got.Kind())
	}
}

func TestSubstituteLetters_WildcardRemoveFalseIsUnimplemented(t *testing.T) {
	_, err := SubstituteLetters(Wildcard[r](), false, nil)
	if err == nil {
		t.Fatal("want an error for Wildcard with removeFromAlphabet=false, got nil")
	}
	if got := kindOf(t, err); got != autoerr.Other {
		t.Errorf("want autoerr.Other, got %s", got)
	}
}

func TestSubstituteLetters_RecursesThroughUnaryAndNaryKinds(t *testing.T) {
	subst := map[r]r{r('a'): r('z')}
	tests := []Term[r]{
		Kleene(Literal(r('a'))),
		Repeat(Literal(r('a')), 1, nil),
		Negation(Literal(r('a'))),
		Concat(Literal(r('a')), Literal(r('b'))),
		Intersection(Literal(r('a')), Literal(r('b'))),
	}
	for _, term := range tests {
		got, err := SubstituteLetters(term, true, subst)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", term.Kind(), err)
		}
		if _, ok := GetAlphabet(got)[r('a')]; ok {
			t.Errorf("%s: want substituted letter 'a' to be gone", term.Kind())
		}
	}
}

func TestHideLetters_FoldsMatchedLiteralsToEpsilon(t *testing.T) {
	term := Concat(Literal(r('a')), Literal(r('b')))
	hideA := func(l r) bool { return l == r('a') }
	got, err := HideLetters(term, true, hideA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := GetAlphabet(got)[r('a')]; ok {
		t.Error("want the hidden letter 'a' to be gone")
	}
	if _, ok := GetAlphabet(got)[r('b')]; !ok {
		t.Error("want the untouched letter 'b' to survive")
	}
}

func TestHideLetters_UnionFoldsThroughEmptyIdentity(t *testing.T) {
	hideAll := func(r) bool { return true }
	got, err := HideLetters(Union(Literal(r('a')), Literal(r('b'))), true, hideAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(GetAlphabet(got)) != 0 {
		t.Errorf("want every letter folded away after hiding both union operands, got %v", GetAlphabet(got))
	}
}

func TestHideLetters_RepeatIsUnimplemented(t *testing.T) {
	_, err := HideLetters(Repeat(Literal(r('a')), 1, nil), true, func(r) bool { return true })
	if got := kindOf(t, err); got != autoerr.Other {
		t.Errorf("want autoerr.Other for Repeat, got %s", got)
	}
}

func TestHideLetters_IntersectionIsUnimplemented(t *testing.T) {
	_, err := HideLetters(Intersection(Literal(r('a')), Literal(r('b'))), true, func(r) bool { return true })
	if got := kindOf(t, err); got != autoerr.Other {
		t.Errorf("want autoerr.Other for Intersection, got %s", got)
	}
}

func TestHideLetters_NegationIsUnimplemented(t *testing.T) {
	_, err := HideLetters(Negation(Literal(r('a'))), true, func(r) bool { return true })
	if got := kindOf(t, err); got != autoerr.Other {
		t.Errorf("want autoerr.Other for Negation, got %s", got)
	}
}

func TestHideLetters_WildcardRemoveFalseIsUnimplemented(t *testing.T) {
	_, err := HideLetters(Wildcard[r](), false, func(r) bool { return true })
	if got := kindOf(t, err); got != autoerr.Other {
		t.Errorf("want autoerr.Other for Wildcard with removeFromAlphabet=false, got %s", got)
	}
}

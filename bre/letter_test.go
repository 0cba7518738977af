package bre

import "testing"

func TestSubstituteLetters_RenamesLiterals(t *testing.T) {
	term := Concat(Kleene(Literal(r('a'))), Literal(r('b')))
	got := SubstituteLetters(term, map[r]r{'b': 'c'})
	want := Concat(Kleene(Literal(r('a'))), Literal(r('c')))
	if !Equal(got, want) {
		t.Errorf("want a*c, got %v-kinded term", got.Kind())
	}
}

func TestSubstituteLetters_IdentityForUnmappedLetters(t *testing.T) {
	term := Union(Literal(r('a')), Literal(r('b')))
	got := SubstituteLetters(term, map[r]r{'z': 'q'})
	if !Equal(got, term) {
		t.Error("want a substitution that touches no literal to be the identity")
	}
}

func TestSubstituteLetters_CollapsesMergedUnionChildren(t *testing.T) {
	term := Union(Literal(r('a')), Literal(r('b')))
	got := SubstituteLetters(term, map[r]r{'b': 'a'})
	if got.Kind() != KindLiteral {
		t.Errorf("want a|b under b->a to collapse to the single literal a, got %s", got.Kind())
	}
}

func TestHideLetters_FoldsLiteralToEpsilon(t *testing.T) {
	hidden := map[r]struct{}{'b': {}}

	got := HideLetters(Literal(r('b')), hidden)
	if got.Kind() != KindEpsilon {
		t.Errorf("want a hidden literal to become Epsilon, got %s", got.Kind())
	}
}

func TestHideLetters_RenormalizesAroundEpsilon(t *testing.T) {
	hidden := map[r]struct{}{'b': {}}

	// a*b with b hidden collapses to a*.
	got := HideLetters(Concat(Kleene(Literal(r('a'))), Literal(r('b'))), hidden)
	if !Equal(got, Kleene(Literal(r('a')))) {
		t.Errorf("want a*b under hiding b to become a*, got %s", got.Kind())
	}

	// bc with b hidden leaves just c.
	got = HideLetters(Concat(Literal(r('b')), Literal(r('c'))), hidden)
	if !Equal(got, Literal(r('c'))) {
		t.Errorf("want bc under hiding b to become c, got %s", got.Kind())
	}
}

func TestHideLetters_UntouchedTermIsIdentity(t *testing.T) {
	term := Concat(Literal(r('a')), Kleene(Literal(r('c'))))
	got := HideLetters(term, map[r]struct{}{'b': {}})
	if !Equal(got, term) {
		t.Error("want hiding a letter the term never uses to be the identity")
	}
}

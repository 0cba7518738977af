package bre

import (
	"fmt"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/letter"
)

// Expr pairs an alphabet with a term, enforcing the invariant that
// every literal occurring in Term is a member of Alphabet.
type Expr[L letter.Letter[L]] struct {
	Alphabet alphabet.Alphabet[L]
	Term     Term[L]
}

// NewExpr validates and builds an Expr, returning an
// autoerr.UnknownLetter error if any literal in t is absent from a.
func NewExpr[L letter.Letter[L]](a alphabet.Alphabet[L], t Term[L]) (Expr[L], error) {
	for l := range GetAlphabet(t) {
		if !a.Contains(l) {
			return Expr[L]{}, autoerr.UnknownLetterErr(fmt.Sprintf("%v", l), a.String())
		}
	}
	return Expr[L]{Alphabet: a, Term: t}, nil
}

// Unite returns the normalized union of x and y's terms over their
// shared alphabet, failing with autoerr.AlphabetMismatch if the two
// expressions have different alphabets.
func Unite[L letter.Letter[L]](x, y Expr[L]) (Expr[L], error) {
	if !x.Alphabet.Equals(y.Alphabet) {
		return Expr[L]{}, autoerr.AlphabetMismatchErr(x.Alphabet.String(), y.Alphabet.String())
	}
	return Expr[L]{Alphabet: x.Alphabet, Term: Union(x.Term, y.Term)}, nil
}

// Concatenate returns the normalized concatenation of x and y's terms
// over their shared alphabet, failing with autoerr.AlphabetMismatch if
// the two expressions have different alphabets.
func Concatenate[L letter.Letter[L]](x, y Expr[L]) (Expr[L], error) {
	if !x.Alphabet.Equals(y.Alphabet) {
		return Expr[L]{}, autoerr.AlphabetMismatchErr(x.Alphabet.String(), y.Alphabet.String())
	}
	return Expr[L]{Alphabet: x.Alphabet, Term: Concat(x.Term, y.Term)}, nil
}

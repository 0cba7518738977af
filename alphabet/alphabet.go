// Package alphabet provides the finite set-of-letters type shared by
// every automaton and term representation.
package alphabet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/autour/letter"
)

// Alphabet is a finite, immutable set of letters of type L.
//
// Value semantics: every method returns a new Alphabet (or a read-only
// view); there is no in-place mutation, matching the deep-value
// ownership model of the rest of this module.
type Alphabet[L letter.Letter[L]] struct {
	letters map[L]struct{}
}

// New builds an Alphabet from the given letters, deduplicating.
func New[L letter.Letter[L]](ls ...L) Alphabet[L] {
	m := make(map[L]struct{}, len(ls))
	for _, l := range ls {
		m[l] = struct{}{}
	}
	return Alphabet[L]{letters: m}
}

// Empty returns the empty alphabet.
func Empty[L letter.Letter[L]]() Alphabet[L] {
	return Alphabet[L]{letters: map[L]struct{}{}}
}

// Contains reports whether l is a member of the alphabet.
func (a Alphabet[L]) Contains(l L) bool {
	_, ok := a.letters[l]
	return ok
}

// Len returns the number of distinct letters.
func (a Alphabet[L]) Len() int {
	return len(a.letters)
}

// Sorted returns the letters in ascending order (via Letter.Less),
// the deterministic iteration order required wherever state numbering
// or canonical term form depends on alphabet order.
func (a Alphabet[L]) Sorted() []L {
	out := make([]L, 0, len(a.letters))
	for l := range a.letters {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Union returns the set union of a and b.
func (a Alphabet[L]) Union(b Alphabet[L]) Alphabet[L] {
	m := make(map[L]struct{}, len(a.letters)+len(b.letters))
	for l := range a.letters {
		m[l] = struct{}{}
	}
	for l := range b.letters {
		m[l] = struct{}{}
	}
	return Alphabet[L]{letters: m}
}

// With returns a copy of a with l added.
func (a Alphabet[L]) With(l L) Alphabet[L] {
	m := make(map[L]struct{}, len(a.letters)+1)
	for k := range a.letters {
		m[k] = struct{}{}
	}
	m[l] = struct{}{}
	return Alphabet[L]{letters: m}
}

// Equals reports whether a and b contain exactly the same letters.
func (a Alphabet[L]) Equals(b Alphabet[L]) bool {
	if len(a.letters) != len(b.letters) {
		return false
	}
	for l := range a.letters {
		if _, ok := b.letters[l]; !ok {
			return false
		}
	}
	return true
}

// String renders the alphabet as "{a, b, c}" in sorted order, mainly
// useful for error messages (see autoerr.AlphabetMismatch).
func (a Alphabet[L]) String() string {
	sorted := a.Sorted()
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = stringify(l)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func stringify[L letter.Letter[L]](l L) string {
	type stringer interface{ String() string }
	if s, ok := any(l).(stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", l)
}

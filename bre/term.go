// Package bre implements the basic regular expression (BRE) algebra:
// a closed algebraic term sum (Empty, Epsilon, Literal, Union, Concat,
// Kleene), smart constructors that keep terms in a canonical
// normalized form, and the structural queries and translations that
// sit on top of it.
package bre

import (
	"fmt"
	"sort"

	"github.com/coregx/autour/letter"
)

// Kind tags the six term variants: the three leaves (Empty, Epsilon,
// Literal) and the three composites (Union, Concat, Kleene).
type Kind uint8

const (
	// KindEmpty is ∅: accepts nothing.
	KindEmpty Kind = iota
	// KindEpsilon is ε: accepts only the empty word.
	KindEpsilon
	// KindLiteral is a single letter.
	KindLiteral
	// KindUnion is a deduplicated set of alternatives.
	KindUnion
	// KindConcat is an ordered sequence.
	KindConcat
	// KindKleene is the Kleene star of a single child.
	KindKleene
)

// String names the Kind for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindEpsilon:
		return "Epsilon"
	case KindLiteral:
		return "Literal"
	case KindUnion:
		return "Union"
	case KindConcat:
		return "Concat"
	case KindKleene:
		return "Kleene"
	default:
		return fmt.Sprintf("UnknownKind(%d)", uint8(k))
	}
}

// Term is a BRE term: a closed algebraic sum dispatched on Kind, never
// a class hierarchy. Terms are immutable value objects; every
// constructor and transform below returns a new Term rather than
// mutating one in place.
type Term[L letter.Letter[L]] struct {
	kind     Kind
	literal  L         // valid iff kind == KindLiteral
	children []Term[L] // valid iff kind == KindUnion (set, sorted canonical) or KindConcat (sequence)
	child    *Term[L]  // valid iff kind == KindKleene
}

// Kind returns the term's tag.
func (t Term[L]) Kind() Kind { return t.kind }

// Literal returns the literal carried by a KindLiteral term. The
// second return is false for any other kind.
func (t Term[L]) Literal() (L, bool) {
	if t.kind == KindLiteral {
		return t.literal, true
	}
	var zero L
	return zero, false
}

// Children returns the child terms of a KindUnion or KindConcat term.
// Returns nil for any other kind.
func (t Term[L]) Children() []Term[L] {
	if t.kind == KindUnion || t.kind == KindConcat {
		return t.children
	}
	return nil
}

// Child returns the single child of a KindKleene term. The second
// return is false for any other kind.
func (t Term[L]) Child() (Term[L], bool) {
	if t.kind == KindKleene && t.child != nil {
		return *t.child, true
	}
	return Term[L]{}, false
}

// Empty returns ∅, the term that accepts nothing.
func Empty[L letter.Letter[L]]() Term[L] {
	return Term[L]{kind: KindEmpty}
}

// Epsilon returns ε, the term that accepts only the empty word.
func Epsilon[L letter.Letter[L]]() Term[L] {
	return Term[L]{kind: KindEpsilon}
}

// Literal returns the term matching exactly the single letter l.
func Literal[L letter.Letter[L]](l L) Term[L] {
	return Term[L]{kind: KindLiteral, literal: l}
}

// Union builds the smart-constructed union of the given terms:
// same-kind Union children are flattened, ∅ is absorbed (identity for
// union), duplicates are removed, and the result is put in a
// canonical sorted order so that structurally equal unions compare
// Equal regardless of build order.
func Union[L letter.Letter[L]](terms ...Term[L]) Term[L] {
	flat := make([]Term[L], 0, len(terms))
	flattenInto(&flat, terms, KindUnion)

	kept := make([]Term[L], 0, len(flat))
	for _, c := range flat {
		if c.kind == KindEmpty {
			continue // identity for Union
		}
		kept = append(kept, c)
	}
	kept = dedup(kept)

	switch len(kept) {
	case 0:
		return Empty[L]()
	case 1:
		return kept[0]
	default:
		sort.Slice(kept, func(i, j int) bool { return compare(kept[i], kept[j]) < 0 })
		return Term[L]{kind: KindUnion, children: kept}
	}
}

// Concat builds the smart-constructed concatenation of the given
// terms: same-kind Concat children are flattened, ε is absorbed
// (identity for concat), and the whole expression short-circuits to ∅
// as soon as any child is ∅.
func Concat[L letter.Letter[L]](terms ...Term[L]) Term[L] {
	flat := make([]Term[L], 0, len(terms))
	flattenInto(&flat, terms, KindConcat)

	kept := make([]Term[L], 0, len(flat))
	for _, c := range flat {
		if c.kind == KindEmpty {
			return Empty[L]() // short-circuit
		}
		if c.kind == KindEpsilon {
			continue // identity for concat
		}
		kept = append(kept, c)
	}

	switch len(kept) {
	case 0:
		return Epsilon[L]()
	case 1:
		return kept[0]
	default:
		return Term[L]{kind: KindConcat, children: kept}
	}
}

// Kleene builds the Kleene star of t. Kleene is
// the identity on ∅, on ε, and on an already-starred term (Kleene of
// Kleene is idempotent); any other term is wrapped.
func Kleene[L letter.Letter[L]](t Term[L]) Term[L] {
	switch t.kind {
	case KindEmpty, KindEpsilon, KindKleene:
		return t // identity / idempotent
	default:
		child := t
		return Term[L]{kind: KindKleene, child: &child}
	}
}

// flattenInto appends terms into dst, flattening any child whose kind
// matches flattenKind (Union flattens nested Unions, Concat flattens
// nested Concats) so repeated smart-constructor calls never build
// deeper-than-necessary trees.
func flattenInto[L letter.Letter[L]](dst *[]Term[L], terms []Term[L], flattenKind Kind) {
	for _, t := range terms {
		if t.kind == flattenKind {
			flattenInto(dst, t.children, flattenKind)
		} else {
			*dst = append(*dst, t)
		}
	}
}

// dedup removes structurally-equal duplicates from a Union's child
// list, preserving the first occurrence of each distinct term.
func dedup[L letter.Letter[L]](terms []Term[L]) []Term[L] {
	out := make([]Term[L], 0, len(terms))
	for _, t := range terms {
		found := false
		for _, u := range out {
			if Equal(t, u) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, t)
		}
	}
	return out
}

// Equal reports whether a and b are structurally identical terms.
func Equal[L letter.Letter[L]](a, b Term[L]) bool {
	return compare(a, b) == 0
}

// compare imposes the total order used to canonicalize Union's child
// list: first by Kind, then by the kind-specific payload.
func compare[L letter.Letter[L]](a, b Term[L]) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindEmpty, KindEpsilon:
		return 0
	case KindLiteral:
		switch {
		case a.literal == b.literal:
			return 0
		case a.literal.Less(b.literal):
			return -1
		default:
			return 1
		}
	case KindKleene:
		return compare(*a.child, *b.child)
	case KindUnion, KindConcat:
		if len(a.children) != len(b.children) {
			if len(a.children) < len(b.children) {
				return -1
			}
			return 1
		}
		for i := range a.children {
			if c := compare(a.children[i], b.children[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

// Package letter defines the abstract alphabet symbol used throughout
// the automata packages: any equatable, hashable, totally ordered,
// copyable value.
package letter

import "cmp"

// Letter is the constraint every automaton, term, and transform in
// this module is generic over. L must be comparable (equatable and
// usable as a map key, giving hashing for free) and must supply a
// total order via Less so that state numbering, alphabet iteration,
// and Union/Concat canonicalization are deterministic.
//
// The self-referential shape (L appears in its own constraint) is the
// same curiously-recurring pattern used by ordered-container
// libraries in the wider Go ecosystem; it lets every package below
// write "L Letter[L]" once and never ask callers for a separate
// comparator value.
type Letter[L any] interface {
	comparable
	// Less reports whether this letter sorts strictly before other.
	Less(other L) bool
}

// Ordered adapts any of Go's built-in ordered types (runes, bytes,
// strings, integers, ...) into a Letter by defining Less via the
// language's native <.
//
// Example:
//
//	type Rune = Ordered[rune]
//	a := Rune('a')
type Ordered[T cmp.Ordered] T

// Less implements Letter for Ordered.
func (o Ordered[T]) Less(other Ordered[T]) bool {
	return T(o) < T(other)
}

// Rune is the conventional letter type for automata over runes.
type Rune = Ordered[rune]

// Byte is the conventional letter type for automata over bytes.
type Byte = Ordered[byte]

// Sort sorts a slice of letters in place using Less, giving the
// deterministic order the ordering contract (state numbering,
// canonical Union/Concat form) depends on.
func Sort[L Letter[L]](ls []L) {
	// insertion sort: alphabets are small in practice and this keeps
	// the dependency surface to the stdlib sort package only where
	// it's actually needed (see alphabet.Alphabet.Sorted, which uses
	// sort.Slice for larger sets).
	for i := 1; i < len(ls); i++ {
		for j := i; j > 0 && ls[j].Less(ls[j-1]); j-- {
			ls[j], ls[j-1] = ls[j-1], ls[j]
		}
	}
}

// Equal reports whether a and b are the same letter.
func Equal[L Letter[L]](a, b L) bool {
	return a == b
}

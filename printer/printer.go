// Package printer declares the pretty-printing collaborator contract
// consumed by an external rendering layer. The core
// exposes the hook; it does not implement a renderer.
package printer

import (
	"strconv"

	"github.com/coregx/autour/letter"
)

// LetterPrinter is the external collaborator a regex pretty-printer
// implements to turn a BRE term (or automaton edge label) into syntax.
// No concrete implementation ships here — string pretty-printing is
// out of scope here — but the contract is part of this
// module's surface so callers can write one against it.
type LetterPrinter[L letter.Letter[L]] interface {
	// IsLetterAtomic reports whether l is atomic, i.e. can stand next
	// to an operator without parenthesizing (e.g. a bare letter, as
	// opposed to a multi-symbol rendering).
	IsLetterAtomic(l L) bool

	// RenderLetter renders l as it should appear in regex text.
	RenderLetter(l L) string

	// ConcatSep returns the separator placed between concatenated
	// terms, possibly empty. html selects an HTML-safe rendering.
	ConcatSep(html bool) string

	// AltSep returns the separator placed between union alternatives.
	AltSep(html bool) string

	// InterSep returns the separator placed between intersection
	// operands.
	InterSep(html bool) string

	// WildcardSym renders the wildcard symbol.
	WildcardSym(html bool) string

	// NegateSym renders the negation symbol.
	NegateSym(html bool) string

	// EmptySym renders ∅, the empty-language symbol.
	EmptySym(html bool) string

	// EpsilonSym renders ε, the empty-word symbol.
	EpsilonSym(html bool) string
}

// Symbols is the plain data backing a default LetterPrinter: the fixed
// conventional set of syntactic symbols, independent of how
// individual letters are rendered.
type Symbols struct {
	Concat   string
	Alt      string
	Inter    string
	Wildcard string
	Negate   string
	Empty    string
	Epsilon  string
}

// DefaultSymbols is the recommended default symbol table:
// ∅, ε, ., |, ∩, ¬. The repetition operators are not Symbols fields:
// *, +, ? are the KleeneSym, PlusSym and OptionalSym constants below,
// and {m,n}, which carries numeric parameters, is rendered by
// BoundedRepeatSym.
var DefaultSymbols = Symbols{
	Concat:   "",
	Alt:      "|",
	Inter:    "∩",
	Wildcard: ".",
	Negate:   "¬",
	Empty:    "∅",
	Epsilon:  "ε",
}

// Kleene, Plus, Optional, and bounded-repetition symbols are fixed
// strings rather than Symbols fields because they never vary by
// printer the way separators and the wildcard/negation/empty/epsilon
// symbols do.
const (
	KleeneSym   = "*"
	PlusSym     = "+"
	OptionalSym = "?"
)

// BoundedRepeatSym renders the {m,n} bounded-repetition syntax; end<0
// means unbounded ({m,}).
func BoundedRepeatSym(start, end int) string {
	if end < 0 {
		return "{" + strconv.Itoa(start) + ",}"
	}
	if start == end {
		return "{" + strconv.Itoa(start) + "}"
	}
	return "{" + strconv.Itoa(start) + "," + strconv.Itoa(end) + "}"
}

package ere

import (
	"strconv"
	"strings"

	"github.com/coregx/autour/letter"
	"github.com/coregx/autour/printer"
)

// isStringReprAtomic reports whether t is atomic, i.e. can appear as an
// operand of a surrounding operator without parenthesizing.
func isStringReprAtomic[L letter.Letter[L]](t Term[L], p printer.LetterPrinter[L]) bool {
	switch t.kind {
	case KindEmpty, KindEpsilon, KindWildcard:
		return true
	case KindLiteral:
		return p.IsLetterAtomic(t.literal)
	case KindUnion, KindConcat, KindIntersection:
		switch len(t.children) {
		case 0:
			return true
		case 1:
			return isStringReprAtomic(t.children[0], p)
		default:
			return false
		}
	case KindNegation, KindRepeat:
		return false
	default:
		return false
	}
}

// String renders t using p's symbol table.
func String[L letter.Letter[L]](t Term[L], html bool, p printer.LetterPrinter[L]) string {
	switch t.kind {
	case KindEmpty:
		return p.EmptySym(html)
	case KindEpsilon:
		return p.EpsilonSym(html)
	case KindLiteral:
		return p.RenderLetter(t.literal)
	case KindWildcard:
		return p.WildcardSym(html)
	case KindKleene:
		sub := *t.child
		return wrapAtomic(String(sub, html, p), isStringReprAtomic(sub, p), printer.KleeneSym)
	case KindNegation:
		sub := *t.child
		rendered := String(sub, html, p)
		if isStringReprAtomic(sub, p) {
			return p.NegateSym(html) + rendered
		}
		return p.NegateSym(html) + "(" + rendered + ")"
	case KindConcat:
		return foldOperands(t.children, html, p, p.ConcatSep(html))
	case KindUnion:
		return foldOperands(t.children, html, p, p.AltSep(html))
	case KindIntersection:
		return foldOperands(t.children, html, p, p.InterSep(html))
	case KindRepeat:
		return repeatToString(t, html, p)
	default:
		return ""
	}
}

// foldOperands renders a Concat/Union/Intersection's children joined
// by sep, parenthesizing any non-atomic child.
func foldOperands[L letter.Letter[L]](children []Term[L], html bool, p printer.LetterPrinter[L], sep string) string {
	var b strings.Builder
	for i, c := range children {
		rendered := String(c, html, p)
		if i > 0 {
			b.WriteString(sep)
		}
		if isStringReprAtomic(c, p) {
			b.WriteString(rendered)
		} else {
			b.WriteString("(")
			b.WriteString(rendered)
			b.WriteString(")")
		}
	}
	return b.String()
}

// repeatToString renders a KindRepeat term: unbounded ({m,}),
// optional (?), plain Kleene/plus (*/+), and bounded ({m,n} / {m})
// forms each print differently.
func repeatToString[L letter.Letter[L]](t Term[L], html bool, p printer.LetterPrinter[L]) string {
	sub := *t.child
	subStr := String(sub, html, p)
	atomic := isStringReprAtomic(sub, p)
	parenthesized := subStr
	if !atomic {
		parenthesized = "(" + subStr + ")"
	}

	if t.max == nil {
		switch t.min {
		case 0:
			return wrapAtomic(subStr, atomic, printer.KleeneSym)
		case 1:
			return wrapAtomic(subStr, atomic, printer.PlusSym)
		default:
			return wrapAtomic(subStr, atomic, printer.BoundedRepeatSym(t.min, -1))
		}
	}
	if t.min == 0 && *t.max == 1 {
		return wrapAtomic(subStr, atomic, printer.OptionalSym)
	}
	if t.min == *t.max {
		return parenthesized + printer.BoundedRepeatSym(t.min, t.min)
	}
	if t.min == 0 {
		return parenthesized + boundedRepeatFromZero(*t.max)
	}
	return parenthesized + printer.BoundedRepeatSym(t.min, *t.max)
}

// wrapAtomic appends suffix to subStr, parenthesizing subStr first
// when it is not atomic.
func wrapAtomic(subStr string, atomic bool, suffix string) string {
	if atomic {
		return subStr + suffix
	}
	return "(" + subStr + ")" + suffix
}

// boundedRepeatFromZero renders the {,n} form for a min-0,
// bounded-max repeat (distinct from BoundedRepeatSym's {m,n} and {m,}
// forms).
func boundedRepeatFromZero(max int) string {
	return "{," + strconv.Itoa(max) + "}"
}

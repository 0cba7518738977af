package kw

import (
	"strings"

	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
	"github.com/projectdiscovery/gologger"
)

// Candidate is a minimization result: the grids selected to cover the
// reduced states map, the cover-indexed states map built from them,
// and the reconstructed NFA.
type Candidate[L letter.Letter[L]] struct {
	Grids []Grid
	Cover StatesMap
	NFA   automaton.NFA[L]
}

// Options tunes the Kameda-Weiner search: MaxCoverSize caps how many
// grids a candidate cover may combine (0 means no cap beyond the
// algorithm's own stateCriterion pruning), and Logger overrides the
// package-level gologger.DefaultLogger that a nil value falls back
// to.
type Options struct {
	MaxCoverSize int
	Logger       *gologger.Logger
}

func (o Options) logger() *gologger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return gologger.DefaultLogger
}

// gridSetKey canonicalizes a set of grid indices for the seen/queued
// membership tests in Minimize's cover search.
func gridSetKey(ids map[int]struct{}) string {
	return joinInts(sortedInts(ids))
}

// Minimize runs the Kameda-Weiner algorithm on n: build the states
// map and its row/column-reduced form, enumerate maximal prime grids,
// then search for the smallest set of grids that (a) covers every
// non-zero cell and (b) reconstructs, via the intersection rule, an
// NFA that is language-equivalent to n. The search starts at
// combinations of size ⌈log2(rows)⌉ (a provable lower bound on the
// minimal NFA's state count) and then explores single-grid extensions
// of non-covering candidates in a best-first (by candidate size)
// order, pruned at min(|n|, |rows|, |cols|)+1 states — a cover that
// size or larger can never improve on just keeping n. A found candidate's
// NFA is trimmed before the equivalence check: a grid no DFA state's
// reverse-assignment ever selects surfaces as an unreachable or
// dead state in the intersection-rule reconstruction, so it is
// trimmed rather than kept (see automaton.Trim). opts takes at most
// one Options value in variadic form so existing call sites with no
// tuning needs read as Minimize(n).
func Minimize[L letter.Letter[L]](n automaton.NFA[L], opts ...Options) (automaton.DFA[L], StatesMap, StatesMap, *Candidate[L]) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	log := o.logger()

	sm, d := FromNFA(n)
	log.Debug().Msgf("kameda-weiner: states map built with %d rows, %d cols", sm.Rows(), sm.Cols())

	stateCriterion := n.Len()
	if sm.Rows() < stateCriterion {
		stateCriterion = sm.Rows()
	}
	if sm.Cols() < stateCriterion {
		stateCriterion = sm.Cols()
	}
	stateCriterion++
	if o.MaxCoverSize > 0 && o.MaxCoverSize+1 < stateCriterion {
		stateCriterion = o.MaxCoverSize + 1
	}

	rsm := sm.ReduceMatrix()
	primeGrids := SearchMaximalPrimeGrids(rsm)
	log.Debug().Msgf("kameda-weiner: %d maximal prime grids found", len(primeGrids))

	var candidate *Candidate[L]
	seen := map[string]struct{}{}
	var queue []map[int]struct{}

	seedSize := ilog2(sm.Rows())
	if 1<<seedSize < sm.Rows() {
		seedSize++ // round up to ⌈log2(rows)⌉
	}
	for _, combo := range combinations(len(primeGrids), seedSize) {
		asSet := map[int]struct{}{}
		for _, c := range combo {
			asSet[c] = struct{}{}
		}
		queue = append(queue, asSet)
	}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		key := gridSetKey(next)
		if _, already := seen[key]; already {
			continue
		}
		seen[key] = struct{}{}

		if len(next) >= stateCriterion {
			continue
		}

		selected := make([]Grid, 0, len(next))
		ids := sortedInts(next)
		for _, id := range ids {
			selected = append(selected, primeGrids[id])
		}

		if IsSetOfGridsCoveringMatrix(rsm, selected) {
			cover := ReplaceStatesMapContentWithCover(rsm, selected)
			rcmAsNFA := automaton.Trim(ConvertStatesMapToNFA(cover, d, len(selected)))
			if automaton.Equals(n, rcmAsNFA) {
				stateCriterion = rcmAsNFA.Len()
				candidate = &Candidate[L]{Grids: selected, Cover: cover, NFA: rcmAsNFA}
				log.Debug().Msgf("kameda-weiner: found candidate with %d states", rcmAsNFA.Len())
			}
		} else {
			for gid := 0; gid < len(primeGrids); gid++ {
				if _, in := next[gid]; in {
					continue
				}
				extended := cloneIntSet(next)
				extended[gid] = struct{}{}
				ek := gridSetKey(extended)
				if _, already := seen[ek]; already {
					continue
				}
				if containsSet(queue, extended) {
					continue
				}
				queue = append(queue, extended)
			}
		}
	}

	return d, sm, rsm, candidate
}

// MinimizeNFA runs Minimize and returns a language-equivalent NFA with
// no more states than n: the best verified candidate found, or n
// itself unchanged when the search never improves on it — the thin
// wrapper callers reach for when they don't need the intermediate
// states maps.
func MinimizeNFA[L letter.Letter[L]](n automaton.NFA[L], opts ...Options) automaton.NFA[L] {
	_, _, _, candidate := Minimize(n, opts...)
	if candidate == nil {
		return n
	}
	return candidate.NFA
}

func containsSet(queue []map[int]struct{}, s map[int]struct{}) bool {
	k := gridSetKey(s)
	for _, q := range queue {
		if gridSetKey(q) == k {
			return true
		}
	}
	return false
}

// ilog2 returns floor(log2(n)) for n >= 1, 0 for n <= 1.
func ilog2(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}

// combinations returns every k-element subset of {0,...,n-1}, each as
// an ascending slice, in lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		copy(combo, idx)
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// DescribeGrids renders a set of grids in "(rows x cols)" form, mainly
// useful for debug logging.
func DescribeGrids(grids []Grid) string {
	var b strings.Builder
	for _, g := range grids {
		b.WriteString("(")
		b.WriteString(joinInts(sortedInts(g.Rows)))
		b.WriteString(" x ")
		b.WriteString(joinInts(sortedInts(g.Cols)))
		b.WriteString(")\n")
	}
	return b.String()
}

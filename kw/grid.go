package kw

import (
	"sort"
	"strings"
)

// Grid is a rectangular all-ones block of a StatesMap's matrix: every
// cell (i,j) with i in Rows and j in Cols is non-zero.
type Grid struct {
	Rows map[int]struct{}
	Cols map[int]struct{}
}

// key renders a grid as a canonical string for set membership
// (sorted row list, then sorted col list).
func (g Grid) key() string {
	var b strings.Builder
	b.WriteString(joinInts(sortedInts(g.Rows)))
	b.WriteString("|")
	b.WriteString(joinInts(sortedInts(g.Cols)))
	return b.String()
}

func sortedInts(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func cloneIntSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func isPrime(m StatesMap, g Grid) bool {
	for row := range g.Rows {
		for col := range g.Cols {
			if m.matrix[row][col] == nil {
				return false
			}
		}
	}
	return true
}

func isCoveredBy(small, big Grid) bool {
	return isSubset(small.Rows, big.Rows) && isSubset(small.Cols, big.Cols)
}

func isSubset(a, b map[int]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func isCoveredByAny(small Grid, grids map[string]Grid) bool {
	for _, big := range grids {
		if isCoveredBy(small, big) {
			return true
		}
	}
	return false
}

// rowsWithZeroes (and colsWithZeroes for columns) classifies, within
// the given grid, which rows contain at least one zero cell, and which
// contain nothing but zero cells.
func rowsWithZeroes(m StatesMap, g Grid) (some, only map[int]struct{}) {
	some, only = map[int]struct{}{}, map[int]struct{}{}
	for row := range g.Rows {
		hasZero, hasOne := false, false
		for col := range g.Cols {
			if m.matrix[row][col] == nil {
				hasZero = true
			} else {
				hasOne = true
			}
		}
		if hasZero {
			some[row] = struct{}{}
			if !hasOne {
				only[row] = struct{}{}
			}
		}
	}
	return
}

func colsWithZeroes(m StatesMap, g Grid) (some, only map[int]struct{}) {
	some, only = map[int]struct{}{}, map[int]struct{}{}
	for col := range g.Cols {
		hasZero, hasOne := false, false
		for row := range g.Rows {
			if m.matrix[row][col] == nil {
				hasZero = true
			} else {
				hasOne = true
			}
		}
		if hasZero {
			some[col] = struct{}{}
			if !hasOne {
				only[col] = struct{}{}
			}
		}
	}
	return
}

func removeAll(s map[int]struct{}, remove map[int]struct{}) map[int]struct{} {
	out := cloneIntSet(s)
	for k := range remove {
		delete(out, k)
	}
	return out
}

// SearchMaximalPrimeGrids finds every maximal prime (all-ones)
// sub-rectangle of m's matrix: starting from the full row×col grid, a
// non-prime candidate sheds whichever rows (or, failing that, columns)
// contain nothing but zeroes, or else branches over every way to drop
// one row or one column with at least one zero; a prime candidate not
// already covered by a previously found grid is kept, discarding any
// earlier grid it strictly covers.
func SearchMaximalPrimeGrids(m StatesMap) []Grid {
	grids := map[string]Grid{}
	seen := map[string]struct{}{}
	queued := map[string]struct{}{}

	initRows, initCols := map[int]struct{}{}, map[int]struct{}{}
	for i := 0; i < m.Rows(); i++ {
		initRows[i] = struct{}{}
	}
	for j := 0; j < m.Cols(); j++ {
		initCols[j] = struct{}{}
	}
	stack := []Grid{{Rows: initRows, Cols: initCols}}
	queued[stack[0].key()] = struct{}{}

	for len(stack) > 0 {
		top := len(stack) - 1
		cand := stack[top]
		stack = stack[:top]
		candKey := cand.key()
		seen[candKey] = struct{}{}

		if isPrime(m, cand) {
			if isCoveredByAny(cand, grids) {
				continue
			}
			for k, old := range grids {
				if isCoveredBy(old, cand) {
					delete(grids, k)
				}
			}
			grids[candKey] = cand
			continue
		}

		var next []Grid
		rowsSome, rowsOnly := rowsWithZeroes(m, cand)
		if len(rowsOnly) > 0 {
			if len(cand.Rows) > len(rowsOnly) {
				next = append(next, Grid{Rows: removeAll(cand.Rows, rowsOnly), Cols: cand.Cols})
			}
		} else {
			colsSome, colsOnly := colsWithZeroes(m, cand)
			if len(colsOnly) > 0 {
				if len(cand.Cols) > len(colsOnly) {
					next = append(next, Grid{Rows: cand.Rows, Cols: removeAll(cand.Cols, colsOnly)})
				}
			} else {
				if len(cand.Rows) > 1 {
					for r := range rowsSome {
						next = append(next, Grid{Rows: removeAll(cand.Rows, map[int]struct{}{r: {}}), Cols: cand.Cols})
					}
				}
				if len(cand.Cols) > 1 {
					for c := range colsSome {
						next = append(next, Grid{Rows: cand.Rows, Cols: removeAll(cand.Cols, map[int]struct{}{c: {}})})
					}
				}
			}
		}

		for _, n := range next {
			k := n.key()
			if _, already := seen[k]; already {
				continue
			}
			if _, already := queued[k]; already {
				continue
			}
			queued[k] = struct{}{}
			stack = append(stack, n)
		}
	}

	out := make([]Grid, 0, len(grids))
	for _, g := range grids {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

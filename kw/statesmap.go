// Package kw implements Kameda-Weiner minimization: the search for a
// minimal-state NFA language-equivalent to a given one, via the
// states-map / prime-grid-cover construction.
package kw

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/autour/automaton"
	"github.com/coregx/autour/letter"
)

// StatesMap is the rows-by-columns table relating an NFA's
// determinization to the determinization of its reverse: row i stands
// for DFA state i of n's forward determinization, column j for DFA
// state j of its dual (reverse) determinization, and cell (i,j) holds
// the set of original NFA states that belong both to row i's subset
// and column j's subset — empty iff the cell is "zero". Each row is
// labelled by the set of forward-DFA states it stands for ({i}
// initially, unions of those after reduction merges rows); columns
// carry dual-DFA state labels the same way.
type StatesMap struct {
	rows   []map[int]struct{}   // row i -> labels: forward-DFA states merged into this row
	cols   []map[int]struct{}   // col j -> labels: dual-DFA states merged into this column
	matrix [][]map[int]struct{} // matrix[i][j] == nil means a zero cell
}

// Rows returns the number of rows.
func (m StatesMap) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m StatesMap) Cols() int { return len(m.cols) }

// Cell returns the NFA-state set at (row, col), or nil for a zero
// cell.
func (m StatesMap) Cell(row, col int) map[int]struct{} { return m.matrix[row][col] }

// FromNFA builds the initial states map for n by determinizing both n
// and its reverse (via automaton.DeterminizeWithPreimage, which
// already tracks the DFA-state → NFA-subset preimage each cell's
// intersection is computed from). Row i starts out labelled {i} and
// column j labelled {j}; the preimages themselves only matter here,
// at cell-construction time.
func FromNFA[L letter.Letter[L]](n automaton.NFA[L]) (StatesMap, automaton.DFA[L]) {
	det, detPreimage := automaton.DeterminizeWithPreimage(n)
	_, dualPreimage := automaton.DeterminizeWithPreimage(automaton.Reverse(n))

	rows := make([]map[int]struct{}, det.Len())
	for i := range rows {
		rows[i] = map[int]struct{}{i: {}}
	}
	cols := make([]map[int]struct{}, len(dualPreimage))
	for j := range cols {
		cols[j] = map[int]struct{}{j: {}}
	}

	matrix := make([][]map[int]struct{}, len(rows))
	for i := range rows {
		row := make([]map[int]struct{}, len(cols))
		for j := range cols {
			inter := intersect(detPreimage[i], dualPreimage[j])
			if len(inter) > 0 {
				row[j] = inter
			}
		}
		matrix[i] = row
	}
	return StatesMap{rows: rows, cols: cols, matrix: matrix}, det
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	out := map[int]struct{}{}
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// rowSignature returns the col-by-col zero/non-zero pattern of a row,
// used to find mergeable rows.
func (m StatesMap) rowSignature(row int) string {
	bits := make([]byte, len(m.cols))
	for j, cell := range m.matrix[row] {
		if cell != nil {
			bits[j] = '1'
		} else {
			bits[j] = '0'
		}
	}
	return string(bits)
}

func (m StatesMap) colSignature(col int) string {
	bits := make([]byte, len(m.rows))
	for i := range m.rows {
		if m.matrix[i][col] != nil {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits)
}

// groupRowsBySignature returns the first group of 2+ rows sharing a
// zero/non-zero pattern, or nil if every row's pattern is unique.
func (m StatesMap) groupRowsBySignature() []int {
	groups := map[string][]int{}
	var order []string
	for i := range m.rows {
		sig := m.rowSignature(i)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], i)
	}
	for _, sig := range order {
		if len(groups[sig]) > 1 {
			return groups[sig]
		}
	}
	return nil
}

func (m StatesMap) groupColsBySignature() []int {
	groups := map[string][]int{}
	var order []string
	for j := range m.cols {
		sig := m.colSignature(j)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], j)
	}
	for _, sig := range order {
		if len(groups[sig]) > 1 {
			return groups[sig]
		}
	}
	return nil
}

// mergeRows collapses the given rows (sorted ascending) into a single
// row at the position of the first, unioning their DFA-state sets and
// their matrix cells column by column.
func (m StatesMap) mergeRows(toMerge []int) StatesMap {
	sort.Ints(toMerge)
	mergeSet := map[int]struct{}{}
	for _, r := range toMerge {
		mergeSet[r] = struct{}{}
	}

	mergedStates := map[int]struct{}{}
	mergedRow := make([]map[int]struct{}, len(m.cols))
	for _, r := range toMerge {
		for s := range m.rows[r] {
			mergedStates[s] = struct{}{}
		}
		for j, cell := range m.matrix[r] {
			if cell == nil {
				continue
			}
			if mergedRow[j] == nil {
				mergedRow[j] = map[int]struct{}{}
			}
			for s := range cell {
				mergedRow[j][s] = struct{}{}
			}
		}
	}

	var newRows []map[int]struct{}
	var newMatrix [][]map[int]struct{}
	for i := range m.rows {
		if _, merged := mergeSet[i]; merged {
			if i == toMerge[0] {
				newRows = append(newRows, mergedStates)
				newMatrix = append(newMatrix, mergedRow)
			}
			continue
		}
		newRows = append(newRows, m.rows[i])
		newMatrix = append(newMatrix, m.matrix[i])
	}
	return StatesMap{rows: newRows, cols: m.cols, matrix: newMatrix}
}

func (m StatesMap) mergeCols(toMerge []int) StatesMap {
	sort.Ints(toMerge)
	mergeSet := map[int]struct{}{}
	for _, c := range toMerge {
		mergeSet[c] = struct{}{}
	}

	mergedStates := map[int]struct{}{}
	for _, c := range toMerge {
		for s := range m.cols[c] {
			mergedStates[s] = struct{}{}
		}
	}

	var newCols []map[int]struct{}
	keepCol := func(j int) bool {
		_, merged := mergeSet[j]
		return !merged || j == toMerge[0]
	}
	for j := range m.cols {
		if _, merged := mergeSet[j]; merged {
			if j == toMerge[0] {
				newCols = append(newCols, mergedStates)
			}
			continue
		}
		newCols = append(newCols, m.cols[j])
	}

	newMatrix := make([][]map[int]struct{}, len(m.rows))
	for i, row := range m.matrix {
		var newRow []map[int]struct{}
		var mergedCell map[int]struct{}
		for j, cell := range row {
			if _, merged := mergeSet[j]; merged {
				if cell != nil {
					if mergedCell == nil {
						mergedCell = map[int]struct{}{}
					}
					for s := range cell {
						mergedCell[s] = struct{}{}
					}
				}
				continue
			}
			if keepCol(j) {
				newRow = append(newRow, cell)
			}
		}
		// splice the merged cell in at the position of the first merged column
		pos := 0
		for j := 0; j < toMerge[0]; j++ {
			if _, merged := mergeSet[j]; !merged {
				pos++
			}
		}
		out := make([]map[int]struct{}, 0, len(newCols))
		out = append(out, newRow[:pos]...)
		out = append(out, mergedCell)
		out = append(out, newRow[pos:]...)
		newMatrix[i] = out
	}
	return StatesMap{rows: m.rows, cols: newCols, matrix: newMatrix}
}

// ReduceMatrix repeatedly merges any set of rows (then, failing that,
// columns) that share an identical zero/non-zero pattern, until no
// such set remains.
func (m StatesMap) ReduceMatrix() StatesMap {
	for {
		if rows := m.groupRowsBySignature(); rows != nil {
			m = m.mergeRows(rows)
			continue
		}
		if cols := m.groupColsBySignature(); cols != nil {
			m = m.mergeCols(cols)
			continue
		}
		return m
	}
}

// String renders the matrix as an ASCII table for debugging.
func (m StatesMap) String() string {
	var b strings.Builder
	for i := range m.rows {
		for j := range m.cols {
			if m.matrix[i][j] != nil {
				b.WriteString("1")
			} else {
				b.WriteString("0")
			}
			if j != len(m.cols)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

package kw

// IsSetOfGridsCoveringMatrix reports whether every non-zero cell of m
// falls inside at least one of the given grids.
func IsSetOfGridsCoveringMatrix(m StatesMap, grids []Grid) bool {
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if m.matrix[row][col] == nil {
				continue
			}
			covered := false
			for _, g := range grids {
				if _, ok := g.Rows[row]; !ok {
					continue
				}
				if _, ok := g.Cols[col]; ok {
					covered = true
					break
				}
			}
			if !covered {
				return false
			}
		}
	}
	return true
}

// ReplaceStatesMapContentWithCover rebuilds m's matrix so that cell
// (i,j) holds the set of grid indices (into the given slice) covering
// that cell, instead of NFA states — the representation the
// intersection-rule reconstruction consumes next.
func ReplaceStatesMapContentWithCover(m StatesMap, grids []Grid) StatesMap {
	matrix := make([][]map[int]struct{}, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row := make([]map[int]struct{}, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			var cell map[int]struct{}
			for gid, g := range grids {
				if _, ok := g.Rows[i]; !ok {
					continue
				}
				if _, ok := g.Cols[j]; !ok {
					continue
				}
				if cell == nil {
					cell = map[int]struct{}{}
				}
				cell[gid] = struct{}{}
			}
			row[j] = cell
		}
		matrix[i] = row
	}
	return StatesMap{rows: m.rows, cols: m.cols, matrix: matrix}
}

package dlx

import "github.com/jw013/dlx/internal/domain"

// cover removes column h from the live header list, then removes every
// row node that shares a row with one of h's nodes from its own column
// (spec.md §4.5.3). The procedure is identical regardless of which row
// will eventually be used to cover h.
func (m *Matrix) cover(h int32) {
	m.unlinkLR(h)
	for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.unlinkUD(j)
			m.cols[m.nodes[j].col].nodeCount--
		}
	}
}

// uncover is cover's exact inverse. All loops traverse in the opposite
// order from cover, which is required for the matrix to be restored
// correctly (invariant I2).
func (m *Matrix) uncover(h int32) {
	for i := m.nodes[h].up; i != h; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.cols[m.nodes[j].col].nodeCount++
			m.relinkUD(j)
		}
	}
	m.relinkLR(h)
}

// coverOtherColumns covers every column of a node in row i's circular
// list except i's own column.
func (m *Matrix) coverOtherColumns(i int32) {
	for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
		m.cover(headerIndex(m.nodes[j].col))
	}
}

// uncoverOtherColumns is coverOtherColumns's exact inverse; it must be
// called in reverse order to restore the matrix correctly.
func (m *Matrix) uncoverOtherColumns(i int32) {
	for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
		m.uncover(headerIndex(m.nodes[j].col))
	}
}

// chooseColumn implements the S-heuristic (spec.md §4.5.5 step 2): the
// live column with the smallest node_count, ties broken leftmost. It
// returns noIndex if the header list is empty.
func (m *Matrix) chooseColumn() int32 {
	best := noIndex
	for h := m.nodes[rootIndex].right; h != rootIndex; h = m.nodes[h].right {
		if best == noIndex || m.cols[colOf(h)].nodeCount < m.cols[colOf(best)].nodeCount {
			best = h
		}
	}
	return best
}

// colOf maps a header node's arena index back to its column slice index.
func colOf(h int32) int32 { return h - 1 }

// CoveredColumns returns the number of columns currently removed from the
// live header list (by cover, ForceRow, or a partially-completed search).
func (m *Matrix) CoveredColumns() int {
	live := 0
	for h := m.nodes[rootIndex].right; h != rootIndex; h = m.nodes[h].right {
		live++
	}
	return m.nCol - live
}

// PeekBranchColumn reports the column chooseColumn would select next,
// without covering it. ok is false if there are no live columns left.
func (m *Matrix) PeekBranchColumn() (col int, choices int, ok bool) {
	h := m.chooseColumn()
	if h == noIndex {
		return 0, 0, false
	}
	c := colOf(h)
	return int(c), m.cols[c].nodeCount, true
}

// ForceRow preselects row r as part of the solution (spec.md §4.5.4): it
// covers r's column and every other column r's nodes touch. Fails with
// domain.ErrAlreadyRemoved if r has already been removed from the matrix
// (e.g. by a previous ForceRow on an intersecting row).
func (m *Matrix) ForceRow(r int32) error {
	if m.rowRemoved(r) {
		return domain.ErrAlreadyRemoved
	}
	m.cover(headerIndex(m.nodes[r].col))
	m.coverOtherColumns(r)
	return nil
}

// UnselectRow is ForceRow's inverse. It must be called in exact LIFO
// order against prior ForceRow calls, or the invariants break (spec.md
// §9 Open Question 2 — this is documented as unsupported, not handled).
func (m *Matrix) UnselectRow(r int32) error {
	if !m.rowRemoved(r) {
		return domain.ErrStillInMatrix
	}
	m.uncoverOtherColumns(r)
	m.uncover(headerIndex(m.nodes[r].col))
	return nil
}

// rowRemoved reports whether row node r is no longer live: either r has
// been excised from its column, or r's column has itself been covered
// (cover leaves the nodes of the covered column linked vertically).
func (m *Matrix) rowRemoved(r int32) bool {
	h := headerIndex(m.nodes[r].col)
	return m.isExcisedUD(r) || m.nodes[m.nodes[h].left].right != h
}

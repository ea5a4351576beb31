package dlx

// Matrix is the DLX matrix handle of spec.md §3.1: it owns the root, the
// column headers, the data nodes, and the row_off array, all as one
// contiguous arena (Design Note §9's "flatten the cyclic, mutable pointer
// graph to indices into an arena"). Nodes are never individually
// allocated or freed after construction — only their neighbour fields
// change, during cover/uncover.
type Matrix struct {
	nodes  []node
	cols   []column
	rowOff []int // len nRow+1; rowOff[nRow] == len(data nodes)
	nCol   int
	nRow   int
}

// NumCols returns the column count C.
func (m *Matrix) NumCols() int { return m.nCol }

// NumRows returns the row count R.
func (m *Matrix) NumRows() int { return m.nRow }

// dataBase is the arena index of the first data node.
func (m *Matrix) dataBase() int32 { return int32(1 + m.nCol) }

// RowOf returns the row index of a data node, as stored on the node at
// build time. Returns -1 for the root, a column header, or an index
// outside the arena.
func (m *Matrix) RowOf(idx int32) int {
	if idx < 0 || int(idx) >= len(m.nodes) {
		return -1
	}
	return int(m.nodes[idx].row)
}

// ColumnID returns the caller-assigned id of column i, or i itself if no
// ids were supplied at build time (spec.md §6.4).
func (m *Matrix) ColumnID(i int) any {
	if m.cols[i].id != nil {
		return m.cols[i].id
	}
	return i
}

// ColumnNodeCount returns column i's live node count (invariant I4 /
// property P3's right-hand side should always equal this by construction).
func (m *Matrix) ColumnNodeCount(i int) int { return m.cols[i].nodeCount }

// firstRowNode returns the arena index of the first data node belonging
// to row i.
func (m *Matrix) firstRowNode(i int) int32 {
	return m.dataBase() + int32(m.rowOff[i])
}

// RowNode returns a representative arena node of row i, suitable for
// passing to ForceRow/UnselectRow. A row with zero columns has no nodes
// to represent it and RowNode returns noIndex.
func (m *Matrix) RowNode(i int) int32 {
	if m.rowOff[i] == m.rowOff[i+1] {
		return noIndex
	}
	return m.firstRowNode(i)
}

// CheckInvariants walks the live structure and verifies spec.md §8.1's
// P2 (list symmetry) and P3 (column count consistency). It is intended
// for tests, not the hot path.
func (m *Matrix) CheckInvariants() error {
	for i := int32(0); i < int32(len(m.nodes)); i++ {
		n := m.nodes[i]
		if m.nodes[n.left].right != i {
			return errInvariant("left.right", i)
		}
		if m.nodes[n.right].left != i {
			return errInvariant("right.left", i)
		}
		if m.nodes[n.up].down != i {
			return errInvariant("up.down", i)
		}
		if m.nodes[n.down].up != i {
			return errInvariant("down.up", i)
		}
	}
	for c := 0; c < m.nCol; c++ {
		h := headerIndex(int32(c))
		n := 0
		for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
			n++
		}
		if n != m.cols[c].nodeCount {
			return errCountMismatch(c, n, m.cols[c].nodeCount)
		}
	}
	return nil
}

package dlx

// Low-level link primitives (spec.md §4.5.2). Each pair is an exact
// inverse of the other when called in reverse order, which is the
// cornerstone of backtracking (invariant I2).

func (m *Matrix) unlinkLR(x int32) {
	n := &m.nodes[x]
	m.nodes[n.left].right = n.right
	m.nodes[n.right].left = n.left
}

func (m *Matrix) relinkLR(x int32) {
	n := &m.nodes[x]
	m.nodes[n.left].right = x
	m.nodes[n.right].left = x
}

func (m *Matrix) unlinkUD(x int32) {
	n := &m.nodes[x]
	m.nodes[n.up].down = n.down
	m.nodes[n.down].up = n.up
}

func (m *Matrix) relinkUD(x int32) {
	n := &m.nodes[x]
	m.nodes[n.up].down = x
	m.nodes[n.down].up = x
}

// isExcisedUD reports whether x has been removed from its up-down list
// (invariant I3). It is not possible for a node to be half in the list
// unless the structure is corrupted, so checking one side suffices.
func (m *Matrix) isExcisedUD(x int32) bool {
	return m.nodes[m.nodes[x].up].down != x
}

// appendToColumn inserts data node x at the bottom of column c and bumps
// its live count. Used only by the builder (x must not already be part
// of the column, or the matrix breaks silently).
func (m *Matrix) appendToColumn(x int32, c int32) {
	h := headerIndex(c)
	n := &m.nodes[x]
	n.col = c
	n.up = m.nodes[h].up
	n.down = h
	m.relinkUD(x)
	m.cols[c].nodeCount++
}

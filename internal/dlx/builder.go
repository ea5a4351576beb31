package dlx

import "github.com/jw013/dlx/internal/domain"

// Build allocates and links a DLX matrix from a CSR matrix and a column
// count (spec.md §4.4). ids, if non-nil, must have length nCols and
// supplies each column header's caller-assigned id; the engine never
// reads these ids except to copy them into SolutionRow.PrimaryID.
func Build(csr domain.CSR, nCols int, ids []any) *Matrix {
	nRow := csr.NumRows()
	nnz := csr.NNZ()

	m := &Matrix{
		nodes:  make([]node, 1+nCols+nnz),
		cols:   make([]column, nCols),
		rowOff: make([]int, nRow+1),
		nCol:   nCols,
		nRow:   nRow,
	}
	if ids != nil {
		for i := 0; i < nCols && i < len(ids); i++ {
			m.cols[i].id = ids[i]
		}
	}
	m.makeHeaderRow()

	base := m.dataBase()
	for i := 0; i < nRow; i++ {
		m.rowOff[i] = int(csr.RowPtr[i])
		start, end := csr.RowPtr[i], csr.RowPtr[i+1]
		m.makeRow(base+int32(start), int(end-start), i)
		for j := start; j < end; j++ {
			idx := base + int32(j)
			m.appendToColumn(idx, int32(csr.ColInd[j]))
		}
	}
	m.rowOff[nRow] = nnz
	return m
}

// makeHeaderRow sets up the root and column headers as one circular
// left-right list (spec.md §4.5.1). Up/down of each header point to
// itself (empty column) until rows are appended.
func (m *Matrix) makeHeaderRow() {
	n := m.nCol
	root := &m.nodes[rootIndex]
	if n == 0 {
		root.left, root.right = rootIndex, rootIndex
		root.col, root.row = noIndex, noIndex
		return
	}
	root.left = headerIndex(int32(n - 1))
	root.right = headerIndex(0)
	root.col, root.row = noIndex, noIndex

	for i := 0; i < n; i++ {
		h := headerIndex(int32(i))
		hn := &m.nodes[h]
		hn.col, hn.row = noIndex, noIndex
		hn.up, hn.down = h, h
		switch {
		case n == 1:
			hn.left, hn.right = rootIndex, rootIndex
		case i == 0:
			hn.left, hn.right = rootIndex, headerIndex(1)
		case i == n-1:
			hn.left, hn.right = headerIndex(int32(i-1)), rootIndex
		default:
			hn.left, hn.right = headerIndex(int32(i-1)), headerIndex(int32(i+1))
		}
	}
}

// makeRow links n freshly-allocated data nodes, starting at arena index
// first, into a circular left-right list and tags each with row index
// rowIdx (spec.md §4.4 step 3b).
func (m *Matrix) makeRow(first int32, n int, rowIdx int) {
	if n < 1 {
		return
	}
	for k := 0; k < n; k++ {
		x := first + int32(k)
		nd := &m.nodes[x]
		nd.row = int32(rowIdx)
		switch {
		case n == 1:
			nd.left, nd.right = x, x
		case k == 0:
			nd.left, nd.right = first+int32(n-1), first+1
		case k == n-1:
			nd.left, nd.right = first+int32(n-2), first
		default:
			nd.left, nd.right = x-1, x+1
		}
	}
}

package dlx

// node is a single slot in the matrix arena. It plays the role of
// spec.md §3.1's "Node" for data nodes and column headers alike, and of
// the root for index 0 — one uniform layout so the unlink/relink
// primitives never need to branch on what kind of node they're touching
// (Design Note §9, option (a)'s property, achieved here via option (c):
// a flat arena plus a parallel column table rather than a tagged union).
//
// Arena layout: index 0 is the root. Indices 1..nCol are column headers,
// one per column, in column order. Indices nCol+1..nCol+N are data
// nodes, N being the total non-zero count.
type node struct {
	left, right, up, down int32
	col                    int32 // column index (0..nCol-1) for data nodes; -1 for root/headers
	row                    int32 // row index for data nodes; -1 for root/headers
}

// noIndex marks "not applicable" for col/row on root and header nodes.
const noIndex int32 = -1

// column carries the header-only metadata of spec.md §3.1's "Column
// header": live node count and caller-assigned opaque id.
type column struct {
	nodeCount int
	id        any
}

// headerIndex returns the arena index of column header i.
func headerIndex(i int32) int32 { return 1 + i }

// rootIndex is always 0.
const rootIndex int32 = 0

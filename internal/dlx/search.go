package dlx

import (
	"context"

	"github.com/jw013/dlx/internal/domain"
)

// Searcher runs the recursive exact-cover search (spec.md §4.5.5) against
// a Matrix it owns for the duration of the call. Its solution buffer is
// sized to the matrix's column count, since recursion depth is at most C
// (spec.md §5): each level covers at least one column.
type Searcher struct {
	m   *Matrix
	sol []solRow
}

// solRow is the in-progress, arena-index form of domain.SolutionRow; it
// is decoded to the caller-facing type only once a search completes.
type solRow struct {
	rowNode  int32
	columnID any
	nChoices int
}

// NewSearcher allocates a Searcher for m. m must not be searched
// concurrently by more than one Searcher (spec.md §5: exclusive
// ownership for the duration of a call).
func NewSearcher(m *Matrix) *Searcher {
	return &Searcher{m: m, sol: make([]solRow, m.nCol+1)}
}

// ExactCover is the direct translation of spec.md §4.5.5's
// dlx_exact_cover(solution[], root, k, pnsol): nsol is decremented at
// every leaf success and the search stops once it reaches 0 or the tree
// is exhausted. When *nsol reaches 0 it returns the size of the nsol-th
// solution (0 for the empty matrix, so callers must inspect m.NumCols()
// themselves). When the tree is exhausted first, *nsol stays positive and
// the return value is whatever the last-explored branch returned, which
// is not necessarily 0; only *nsol tells the two cases apart.
//
// ctx is checked once per recursive call, before any mutation at that
// depth, so a cancellation unwinds exactly like an exhausted branch:
// every cover is still paired with an uncover on the way back up
// (spec.md §5's cooperative extension point).
func (s *Searcher) ExactCover(ctx context.Context, nsol *int) int {
	return s.search(ctx, 0, nsol)
}

func (s *Searcher) search(ctx context.Context, k int, nsol *int) int {
	if ctx.Err() != nil {
		return 0
	}
	m := s.m

	if m.nodes[rootIndex].right == rootIndex {
		*nsol--
		return k
	}

	col := m.chooseColumn()
	if col == noIndex || m.cols[colOf(col)].nodeCount == 0 {
		return 0
	}

	m.cover(col)
	s.sol[k].columnID = m.ColumnID(int(colOf(col)))
	s.sol[k].nChoices = m.cols[colOf(col)].nodeCount

	n := 0
	for i := m.nodes[col].down; i != col; i = m.nodes[i].down {
		m.coverOtherColumns(i)
		n = s.search(ctx, k+1, nsol)
		m.uncoverOtherColumns(i)
		if n > 0 {
			s.sol[k].rowNode = i
		}
		if *nsol == 0 {
			break
		}
	}

	m.uncover(col)
	return n
}

// Solution decodes the first n in-progress solution rows recorded by the
// most recent ExactCover call into caller-facing domain.SolutionRow and
// domain.Result values.
func (s *Searcher) Solution(n int) domain.Result {
	res := domain.Result{
		Rows:   make([]int, n),
		Detail: make([]domain.SolutionRow, n),
	}
	for k := 0; k < n; k++ {
		row := s.m.RowOf(s.sol[k].rowNode)
		res.Rows[k] = row
		res.Detail[k] = domain.SolutionRow{
			Row:       row,
			PrimaryID: s.sol[k].columnID,
			NChoices:  s.sol[k].nChoices,
		}
	}
	return res
}

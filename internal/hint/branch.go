// Package hint implements ports.Explainer: it reports which column the
// S-heuristic would branch on next, the way the teacher's Singles Hinter
// reports the next naked-single cell without running a full solve.
package hint

import (
	"context"

	"github.com/jw013/dlx/internal/dlx"
	"github.com/jw013/dlx/internal/domain"
)

type BranchExplainer struct{}

func New() *BranchExplainer { return &BranchExplainer{} }

// NextBranch builds inst (with forced rows preselected) and reports the
// column the exact-cover search would choose next: the live column with
// the fewest candidate rows, ties broken leftmost (spec.md §4.5.5 step 2).
// It returns ok=false if the matrix is already fully covered (no live
// columns remain) or has a dead column (a live column with zero
// candidates, meaning the instance as forced is already unsolvable).
func (h *BranchExplainer) NextBranch(ctx context.Context, inst domain.Instance, forced []int) (domain.BranchHint, bool, error) {
	m := dlx.Build(inst.CSR, inst.NumCols, inst.ColumnIDs)
	for _, r := range forced {
		if r < 0 || r >= m.NumRows() {
			continue
		}
		rn := m.RowNode(r)
		if rn < 0 {
			continue
		}
		if err := m.ForceRow(rn); err != nil {
			return domain.BranchHint{}, false, err
		}
	}

	liveCols := m.NumCols() - m.CoveredColumns()
	col, choices, ok := m.PeekBranchColumn()
	if !ok || choices == 0 {
		return domain.BranchHint{}, false, nil
	}
	return domain.BranchHint{
		ColumnID:       m.ColumnID(col),
		NumChoices:     choices,
		NumLiveColumns: liveCols,
	}, true, nil
}

// Package validator performs structural sanity checks on a CSR instance
// before it is handed to internal/dlx.Build, the way the teacher's
// FastValidator checks a board before it reaches the solver.
package validator

import (
	"context"
	"fmt"

	"github.com/jw013/dlx/internal/domain"
)

type StructuralValidator struct{}

func New() *StructuralValidator { return &StructuralValidator{} }

// Validate checks that inst's CSR is well formed: RowPtr is non-decreasing
// and starts at 0, every ColInd entry is within [0, NumCols), and RowPtr's
// final entry matches len(ColInd). These are the preconditions
// internal/dlx.Build silently assumes; anything that fails here would
// otherwise corrupt the arena or panic during Build.
func (v *StructuralValidator) Validate(ctx context.Context, inst domain.Instance) (bool, []string, error) {
	var problems []string

	rp := inst.CSR.RowPtr
	ci := inst.CSR.ColInd

	if len(rp) == 0 {
		problems = append(problems, "row_ptr must have at least one entry")
		return false, problems, nil
	}
	if rp[0] != 0 {
		problems = append(problems, fmt.Sprintf("row_ptr[0] = %d, want 0", rp[0]))
	}
	for i := 1; i < len(rp); i++ {
		if rp[i] < rp[i-1] {
			problems = append(problems, fmt.Sprintf("row_ptr[%d] = %d is less than row_ptr[%d] = %d", i, rp[i], i-1, rp[i-1]))
		}
	}
	if last := rp[len(rp)-1]; int(last) != len(ci) {
		problems = append(problems, fmt.Sprintf("row_ptr[%d] = %d, want len(col_ind) = %d", len(rp)-1, last, len(ci)))
	}

	for i, c := range ci {
		if int(c) >= inst.NumCols {
			problems = append(problems, fmt.Sprintf("col_ind[%d] = %d is out of range for %d columns", i, c, inst.NumCols))
		}
	}

	if inst.ColumnIDs != nil && len(inst.ColumnIDs) != inst.NumCols {
		problems = append(problems, fmt.Sprintf("len(column_ids) = %d, want %d", len(inst.ColumnIDs), inst.NumCols))
	}

	return len(problems) == 0, problems, nil
}

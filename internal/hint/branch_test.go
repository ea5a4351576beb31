package hint

import (
	"context"
	"testing"

	"github.com/jw013/dlx/internal/domain"
)

func knuthInstance() domain.Instance {
	rows := [][]uint{
		{2, 4, 5},
		{0, 3, 6},
		{1, 2, 5},
		{0, 3},
		{1, 6},
		{3, 4, 6},
	}
	csr := domain.CSR{RowPtr: make([]uint, len(rows)+1)}
	off := uint(0)
	for i, r := range rows {
		csr.ColInd = append(csr.ColInd, r...)
		off += uint(len(r))
		csr.RowPtr[i+1] = off
	}
	return domain.Instance{CSR: csr, NumCols: 7}
}

func TestNextBranchPicksMinimumCountColumn(t *testing.T) {
	inst := knuthInstance()
	// column 0 has 2 candidate rows (1,3); columns 1,2,4,5 have 2; column
	// 3 has 3; column 6 has 3. Minimum is 2, leftmost column achieving it
	// is column 0.
	hb, ok, err := New().NextBranch(context.Background(), inst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a branch hint")
	}
	if hb.NumChoices != 2 {
		t.Fatalf("got NumChoices=%d, want 2", hb.NumChoices)
	}
	if hb.NumLiveColumns != 7 {
		t.Fatalf("got NumLiveColumns=%d, want 7", hb.NumLiveColumns)
	}
}

func TestNextBranchAfterForcingRow(t *testing.T) {
	inst := knuthInstance()
	hb, ok, err := New().NextBranch(context.Background(), inst, []int{3})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a branch hint with row 3 forced")
	}
	if hb.NumLiveColumns != 5 {
		t.Fatalf("got NumLiveColumns=%d, want 5 (forcing row 3 covers columns 0,3)", hb.NumLiveColumns)
	}
}

func TestNextBranchEmptyMatrixHasNoBranch(t *testing.T) {
	inst := domain.Instance{CSR: domain.CSR{RowPtr: []uint{0}}, NumCols: 0}
	_, ok, err := New().NextBranch(context.Background(), inst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no branch hint for an already-covered (empty) matrix")
	}
}

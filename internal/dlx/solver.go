package dlx

import (
	"context"
	"time"

	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/ports"
)

// Solver adapts the Build/Searcher core to ports.Solver, building a fresh
// Matrix on every call the way the teacher's DLXSolver builds a fresh
// dlx struct inside every Solve/Unique call.
type Solver struct{}

// NewSolver returns a ports.Solver backed by this package's DLX engine.
func NewSolver() *Solver { return &Solver{} }

func (s *Solver) build(inst domain.Instance, forced []int) (*Matrix, error) {
	m := Build(inst.CSR, inst.NumCols, inst.ColumnIDs)
	for _, r := range forced {
		if r < 0 || r >= m.NumRows() {
			continue
		}
		rn := m.RowNode(r)
		if rn == noIndex {
			continue
		}
		if err := m.ForceRow(rn); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (s *Solver) ExactCover(ctx context.Context, inst domain.Instance, n int, forced []int) (domain.Result, bool, ports.Stats, error) {
	start := time.Now()
	m, err := s.build(inst, forced)
	if err != nil {
		return domain.Result{}, false, ports.Stats{}, err
	}
	if n <= 0 {
		n = 1
	}
	remaining := n
	searcher := NewSearcher(m)
	size := searcher.ExactCover(ctx, &remaining)
	stats := ports.Stats{Duration: time.Since(start)}
	// remaining > 0 means fewer than n solutions exist. The returned size
	// itself is unreliable in that case: when the whole tree is exhausted
	// without remaining ever reaching 0, the search's final return value
	// is whatever the last-explored branch happened to yield, which can
	// be a nonzero leftover from an earlier, unrelated success deep in
	// the tree. Only remaining == 0 certifies that size names the n-th
	// solution actually found.
	if remaining > 0 {
		return domain.Result{}, false, stats, nil
	}
	return searcher.Solution(size), true, stats, nil
}

func (s *Solver) Unique(ctx context.Context, inst domain.Instance, forced []int) (bool, ports.Stats, error) {
	start := time.Now()
	m, err := s.build(inst, forced)
	if err != nil {
		return false, ports.Stats{}, err
	}
	remaining := 2
	searcher := NewSearcher(m)
	searcher.ExactCover(ctx, &remaining)
	stats := ports.Stats{Duration: time.Since(start)}
	// remaining == 1 means exactly one of the two requested solutions
	// was found: unique. remaining == 2 means none; remaining == 0 means
	// two or more.
	return remaining == 1, stats, nil
}

package ports

import (
	"context"
	"time"

	"github.com/jw013/dlx/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds exact-cover solutions and tests uniqueness. forced, when
// non-nil, lists row indices to preselect (spec.md §4.5.4's force_row)
// before searching.
type Solver interface {
	// ExactCover returns the n-th solution (1-indexed) to inst, or
	// ok=false if fewer than n solutions exist.
	ExactCover(ctx context.Context, inst domain.Instance, n int, forced []int) (result domain.Result, ok bool, stats Stats, err error)
	// Unique reports whether inst has exactly one solution.
	Unique(ctx context.Context, inst domain.Instance, forced []int) (unique bool, stats Stats, err error)
}

// Generator creates new random exact-cover instances with a unique
// solution, at the requested size.
type Generator interface {
	Generate(ctx context.Context, seed int64, rows, cols int) (*domain.Problem, Stats, error)
}

// Validator performs structural sanity checks on an instance before it is
// built into a matrix.
type Validator interface {
	Validate(ctx context.Context, inst domain.Instance) (ok bool, problems []string, err error)
}

// Explainer reports the column the S-heuristic would branch on next,
// without performing a full search.
type Explainer interface {
	NextBranch(ctx context.Context, inst domain.Instance, forced []int) (domain.BranchHint, bool, error)
}

// Storage persists and retrieves problems as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Problem) error
	Load(ctx context.Context, id string) (*domain.Problem, error)
	List(ctx context.Context) ([]domain.ProblemMeta, error)
}

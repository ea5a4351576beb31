package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/ports"
)

func TestServiceReturnsErrNotConfiguredForNilPorts(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()
	inst := domain.Instance{}

	if _, _, _, err := svc.ExactCover(ctx, inst, 1, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("ExactCover: got %v, want errNotConfigured", err)
	}
	if _, _, err := svc.Unique(ctx, inst, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("Unique: got %v, want errNotConfigured", err)
	}
	if _, _, err := svc.Generate(ctx, 1, 1, 1); !errors.Is(err, errNotConfigured) {
		t.Errorf("Generate: got %v, want errNotConfigured", err)
	}
	if _, _, err := svc.Validate(ctx, inst); !errors.Is(err, errNotConfigured) {
		t.Errorf("Validate: got %v, want errNotConfigured", err)
	}
	if _, _, err := svc.NextBranch(ctx, inst, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("NextBranch: got %v, want errNotConfigured", err)
	}
	if err := svc.Save(ctx, &domain.Problem{}); !errors.Is(err, errNotConfigured) {
		t.Errorf("Save: got %v, want errNotConfigured", err)
	}
	if _, err := svc.Load(ctx, "x"); !errors.Is(err, errNotConfigured) {
		t.Errorf("Load: got %v, want errNotConfigured", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, errNotConfigured) {
		t.Errorf("List: got %v, want errNotConfigured", err)
	}
}

type stubSolver struct{}

func (stubSolver) ExactCover(ctx context.Context, inst domain.Instance, n int, forced []int) (domain.Result, bool, ports.Stats, error) {
	return domain.Result{Rows: []int{0}}, true, ports.Stats{}, nil
}
func (stubSolver) Unique(ctx context.Context, inst domain.Instance, forced []int) (bool, ports.Stats, error) {
	return true, ports.Stats{}, nil
}

func TestServiceDelegatesToConfiguredSolver(t *testing.T) {
	svc := NewService(stubSolver{}, nil, nil, nil, nil)
	res, ok, _, err := svc.ExactCover(context.Background(), domain.Instance{}, 1, nil)
	if err != nil || !ok || len(res.Rows) != 1 {
		t.Fatalf("got res=%v ok=%v err=%v", res, ok, err)
	}
}

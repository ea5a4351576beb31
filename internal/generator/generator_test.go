package generator

import (
	"context"
	"testing"

	"github.com/jw013/dlx/internal/dlx"
)

func TestGenerateProducesUniqueSolution(t *testing.T) {
	solver := dlx.NewSolver()
	g := New(solver)
	problem, _, err := g.Generate(context.Background(), 42, 8, 6)
	if err != nil {
		t.Fatal(err)
	}
	if problem.Instance.NumCols != 6 {
		t.Fatalf("got %d columns, want 6", problem.Instance.NumCols)
	}
	unique, _, err := solver.Unique(context.Background(), problem.Instance, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("generated instance is not uniquely solvable")
	}
}

func TestGenerateZeroColumnsIsEmptyMatrix(t *testing.T) {
	g := New(dlx.NewSolver())
	problem, _, err := g.Generate(context.Background(), 1, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if problem.Instance.NumCols != 0 || problem.Instance.CSR.NumRows() != 0 {
		t.Fatalf("expected empty matrix, got %+v", problem.Instance)
	}
}

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	g := New(dlx.NewSolver())
	p1, _, err1 := g.Generate(context.Background(), 7, 10, 5)
	p2, _, err2 := g.Generate(context.Background(), 7, 10, 5)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if p1.Instance.CSR.NNZ() != p2.Instance.CSR.NNZ() {
		t.Fatalf("same seed produced different instance sizes: %d vs %d", p1.Instance.CSR.NNZ(), p2.Instance.CSR.NNZ())
	}
}

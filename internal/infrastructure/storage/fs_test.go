package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jw013/dlx/internal/domain"
)

func TestFSSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	p := &domain.Problem{
		ID:   "abc123",
		Name: "knuth-classic",
		Instance: domain.Instance{
			CSR:     domain.CSR{ColInd: []uint{0, 1}, RowPtr: []uint{0, 2}},
			NumCols: 2,
		},
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != p.Name || got.Instance.NumCols != p.Instance.NumCols {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestFSSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Problem{}); err == nil {
		t.Fatal("expected error for missing ID")
	}
}

func TestFSLoadMissingReturnsNotExist(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want a wrapped os.ErrNotExist", err)
	}
}

func TestFSListReturnsSavedMeta(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		p := &domain.Problem{ID: id, Instance: domain.Instance{NumCols: 4}}
		if err := s.Save(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 3 {
		t.Fatalf("got %d entries, want 3", len(metas))
	}
}


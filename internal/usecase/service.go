// Package usecase wires the ports together into the one entry point the
// CLI and HTTP adapters both call through, mirroring the teacher's
// usecase.Service.
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Explainer ports.Explainer
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, e ports.Explainer, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Explainer: e, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) ExactCover(ctx context.Context, inst domain.Instance, n int, forced []int) (domain.Result, bool, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Result{}, false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.ExactCover(ctx, inst, n, forced)
}

func (u *Service) Unique(ctx context.Context, inst domain.Instance, forced []int) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, inst, forced)
}

func (u *Service) Generate(ctx context.Context, seed int64, rows, cols int) (*domain.Problem, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, stats, err := u.Generator.Generate(ctx, seed, rows, cols)
	if err == nil && p != nil && p.ID == "" {
		p.ID = newID()
	}
	return p, stats, err
}

func (u *Service) Validate(ctx context.Context, inst domain.Instance) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, inst)
}

func (u *Service) NextBranch(ctx context.Context, inst domain.Instance, forced []int) (domain.BranchHint, bool, error) {
	if u.Explainer == nil {
		return domain.BranchHint{}, false, errNotConfigured
	}
	return u.Explainer.NextBranch(ctx, inst, forced)
}

func (u *Service) Save(ctx context.Context, p *domain.Problem) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = newID()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Problem, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.ProblemMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Package storage implements ports.Storage, adapted from the teacher's
// FS adapter: one JSON file per problem under a directory, plus a
// second, KV-backed adapter (Badger) for callers that want transactional
// writes instead of a bare filesystem.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jw013/dlx/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Problem) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid problem: missing ID")
	}
	target := s.pathFor(p.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Problem, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage: problem %q: %w", id, os.ErrNotExist)
		}
		return nil, err
	}
	var p domain.Problem
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FS) List(ctx context.Context) ([]domain.ProblemMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.ProblemMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.Problem
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		out = append(out, metaOf(&p))
	}
	return out, nil
}

func metaOf(p *domain.Problem) domain.ProblemMeta {
	return domain.ProblemMeta{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		NumRows:   p.Instance.CSR.NumRows(),
		NumCols:   p.Instance.NumCols,
	}
}

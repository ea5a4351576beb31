package storage

import (
	"context"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/jw013/dlx/internal/domain"
)

// problemKeyPrefix namespaces problem records in the KV store so List can
// scan with a single prefix iterator.
const problemKeyPrefix = "problem:"

// Badger is an embedded-KV-backed ports.Storage, an alternative to FS for
// callers that want transactional writes and prefix scans instead of a
// bare directory of JSON files.
type Badger struct{ db *badger.DB }

// OpenBadger opens (creating if necessary) a Badger database at dir.
// Callers must call Close when done.
func OpenBadger(dir string) (*Badger, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("storage: open badger at %q: %w", dir, err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Close() error { return b.db.Close() }

func (b *Badger) Save(ctx context.Context, p *domain.Problem) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("storage: invalid problem: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(problemKeyPrefix+p.ID), data)
	})
}

func (b *Badger) Load(ctx context.Context, id string) (*domain.Problem, error) {
	var p domain.Problem
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(problemKeyPrefix + id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("storage: problem %q not found", id)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *Badger) List(ctx context.Context) ([]domain.ProblemMeta, error) {
	var out []domain.ProblemMeta
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(problemKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var p domain.Problem
				if err := json.Unmarshal(val, &p); err != nil || p.ID == "" {
					return nil
				}
				out = append(out, metaOf(&p))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

// Package generator builds random exact-cover instances with a unique
// solution, the way the teacher's UniqueGenerator builds Sudoku puzzles:
// start from a full, guaranteed-valid solution, then add as much extra
// structure as possible while a Solver confirms uniqueness still holds.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/ports"
)

// UniqueGenerator creates exact-cover instances with exactly one solution,
// using a Solver to check uniqueness as candidate rows are added.
type UniqueGenerator struct {
	Solver ports.Solver
}

// New wires a generator that uses s for uniqueness checks.
func New(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

const carveDeadline = 900 * time.Millisecond

// Generate builds a cols-column instance whose solution set includes a
// randomly partitioned "basis" covering every column exactly once, then
// tries to add up to rows-len(basis) further random decoy rows — each
// kept only if the Solver still reports the instance as having a unique
// solution. If cols is 0 the only possible instance is the empty matrix,
// regardless of rows.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, rows, cols int) (*domain.Problem, ports.Stats, error) {
	start := time.Now()
	if cols <= 0 {
		return &domain.Problem{
			CreatedAt: 0,
			Instance:  domain.Instance{CSR: domain.CSR{RowPtr: []uint{0}}, NumCols: 0},
		}, ports.Stats{Duration: time.Since(start)}, nil
	}
	if rows <= 0 {
		rows = 1
	}

	rng := rand.New(rand.NewSource(seed))
	basis := randomPartition(rng, cols, rows)
	rowSet := make([][]uint, len(basis))
	copy(rowSet, basis)

	nodes := 0
	deadline := start.Add(carveDeadline)
	for len(rowSet) < rows && time.Now().Before(deadline) {
		if ctx.Err() != nil {
			break
		}
		candidate := randomRow(rng, cols)
		trial := append(append([][]uint{}, rowSet...), candidate)
		inst := domain.Instance{CSR: csrFromRows(trial), NumCols: cols}
		unique, st, err := g.Solver.Unique(ctx, inst, nil)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{}, fmt.Errorf("generator: uniqueness check: %w", err)
		}
		if unique {
			rowSet = trial
		}
	}

	rng.Shuffle(len(rowSet), func(i, j int) { rowSet[i], rowSet[j] = rowSet[j], rowSet[i] })

	problem := &domain.Problem{
		Instance: domain.Instance{CSR: csrFromRows(rowSet), NumCols: cols},
	}
	return problem, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// randomPartition splits [0,cols) into at most maxGroups disjoint,
// nonempty, randomly-sized groups that together cover every column
// exactly once: a trivial, guaranteed exact cover to build on.
func randomPartition(rng *rand.Rand, cols, maxGroups int) [][]uint {
	order := make([]uint, cols)
	for i := range order {
		order[i] = uint(i)
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	groups := maxGroups
	if groups > cols {
		groups = cols
	}
	rows := make([][]uint, groups)
	for i, c := range order {
		rows[i%groups] = append(rows[i%groups], c)
	}
	return rows
}

// randomRow returns a random nonempty subset of [0,cols).
func randomRow(rng *rand.Rand, cols int) []uint {
	row := make([]uint, 0, cols)
	for {
		for c := 0; c < cols; c++ {
			if rng.Intn(2) == 0 {
				row = append(row, uint(c))
			}
		}
		if len(row) > 0 {
			return row
		}
	}
}

func csrFromRows(rows [][]uint) domain.CSR {
	csr := domain.CSR{RowPtr: make([]uint, len(rows)+1)}
	off := uint(0)
	for i, r := range rows {
		csr.ColInd = append(csr.ColInd, r...)
		off += uint(len(r))
		csr.RowPtr[i+1] = off
	}
	return csr
}

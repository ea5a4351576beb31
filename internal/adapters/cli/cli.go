// Package cli implements the spec §6.3 reference test driver: read a
// text-stream binary matrix from stdin, print its dimensions, then the
// first solution's row indices, exiting non-zero on any failure.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jw013/dlx/internal/dlx"
	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/reader"
	"github.com/jw013/dlx/internal/usecase"
)

// Driver runs the reference CLI behavior against a usecase.Service. UC is
// exported so cmd/dlxsolve can wire storage, a particular solver, etc.
type Driver struct {
	UC *usecase.Service
}

// New returns a Driver backed by a bare DLX solver and no other ports,
// sufficient to run the spec §6.3 contract on its own.
func New() *Driver {
	return &Driver{UC: usecase.NewService(dlx.NewSolver(), nil, nil, nil, nil)}
}

// Options are the CLI extensions beyond the reference driver's default
// behavior. N <= 0 means "first solution" (matching the reference driver).
type Options struct {
	N      int
	Forced []int
	SaveID string
}

// Run reads a matrix from r, solves it, and writes the reference driver's
// two-line report to w: "Dimensions: [R, C]" followed by the comma-
// separated 0-indexed row indices of the solution. It returns the
// domain.ExitCode-compatible error the caller should report and exit
// non-zero for, or nil on success.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	csr, numCols, err := reader.ReadCSR(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Dimensions: [%d, %d]\n", csr.NumRows(), numCols)

	n := opts.N
	if n <= 0 {
		n = 1
	}
	inst := domain.Instance{CSR: csr, NumCols: numCols}
	result, ok, _, err := d.UC.ExactCover(ctx, inst, n, opts.Forced)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no solution")
	}

	fmt.Fprintln(w, joinInts(result.Rows))

	if opts.SaveID != "" {
		p := &domain.Problem{ID: opts.SaveID, Instance: inst}
		if err := d.UC.Save(ctx, p); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

func joinInts(rows []int) string {
	parts := make([]string, len(rows))
	for i, v := range rows {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ParseForced parses a comma-separated list of row indices, as accepted
// by the -force flag.
func ParseForced(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("force: %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

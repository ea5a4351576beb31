// Package reader turns the text-stream sparse matrix format of spec §6.1
// into a domain.CSR, the same job dlx_read.c's read_bcsr does for the C
// original.
package reader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jw013/dlx/internal/domain"
)

const (
	initialColCap = 512
	initialRowCap = 256
)

// ReadCSR reads a text-stream binary matrix (characters '0', '1', '\n'
// only) from r and returns its CSR form along with the width of the
// widest row encountered. It is a direct translation of read_bcsr: a
// single pass over the stream, appending column indices for every '1'
// and a row boundary for every newline, tolerant of a missing trailing
// newline on the final row and of otherwise-empty input.
//
// Errors are domain.ErrMalformedInput for any byte outside {'0','1','\n'},
// domain.ErrIOError for a read failure distinct from end-of-stream, and
// domain.ErrMemoryExhausted if the input is large enough to overflow an
// internal buffer's index space.
func ReadCSR(r io.Reader) (domain.CSR, int, error) {
	br := bufio.NewReader(r)

	colInd := newGrowBuffer(initialColCap)
	rowPtr := newGrowBuffer(initialRowCap)

	var maxCols, col uint
	lastWasNewline := true

	// the first row always starts at index 0 of col_ind.
	if err := rowPtr.append(0); err != nil {
		return domain.CSR{}, 0, err
	}

	pos := 0
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.CSR{}, 0, fmt.Errorf("reader: read at byte %d: %w", pos, domain.ErrIOError)
		}
		pos++

		switch c {
		case '1':
			if err := colInd.append(col); err != nil {
				return domain.CSR{}, 0, err
			}
			col++
			lastWasNewline = false
		case '0':
			col++
			lastWasNewline = false
		case '\n':
			if err := rowPtr.append(uint(colInd.size())); err != nil {
				return domain.CSR{}, 0, err
			}
			if col > maxCols {
				maxCols = col
			}
			col = 0
			lastWasNewline = true
		default:
			return domain.CSR{}, 0, fmt.Errorf("reader: unexpected byte %q at position %d: %w", c, pos-1, domain.ErrMalformedInput)
		}
	}

	// EOF without a trailing newline still completes the last row, as
	// long as it held at least one character; a bare trailing newline
	// (or wholly empty input) must not produce a phantom extra row.
	if !lastWasNewline {
		if err := rowPtr.append(uint(colInd.size())); err != nil {
			return domain.CSR{}, 0, err
		}
		if col > maxCols {
			maxCols = col
		}
	}

	return domain.CSR{ColInd: colInd.data, RowPtr: rowPtr.data}, int(maxCols), nil
}

// WriteCSR renders csr back to the text format ReadCSR accepts, padding
// every row out to nCols with zeros. It exists to support the CSR
// round-trip property (spec §8.1 P4): WriteCSR followed by ReadCSR
// recovers the same CSR, given the same nCols.
func WriteCSR(w io.Writer, csr domain.CSR, nCols int) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, nCols)
	for i := 0; i < csr.NumRows(); i++ {
		for j := range row {
			row[j] = '0'
		}
		for _, c := range csr.Row(i) {
			if int(c) < nCols {
				row[c] = '1'
			}
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("reader: write row %d: %w", i, domain.ErrIOError)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("reader: write row %d: %w", i, domain.ErrIOError)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("reader: flush: %w", domain.ErrIOError)
	}
	return nil
}

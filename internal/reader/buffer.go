package reader

import (
	"math"

	"github.com/jw013/dlx/internal/domain"
)

// growBuffer is the Go counterpart of dlx_read.c's size_t_darray: an
// append-only buffer that grows by roughly 1.5x. Go's append already does
// this for us, so the only behaviour worth keeping is the one failure mode
// that is both real and recoverable in Go: a request that would overflow
// the largest slice length the runtime can represent. Anything else (actual
// OOM) is a runtime panic in Go, not a value callers can react to, so there
// is no analogue to size_t_darray_grow's malloc-failure path here.
type growBuffer struct {
	data []uint
}

func newGrowBuffer(initial int) *growBuffer {
	return &growBuffer{data: make([]uint, 0, initial)}
}

func (b *growBuffer) append(v uint) error {
	if len(b.data) == math.MaxInt {
		return domain.ErrMemoryExhausted
	}
	b.data = append(b.data, v)
	return nil
}

func (b *growBuffer) size() int { return len(b.data) }

package sink

import (
	"context"
	"io"

	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/internal/resourcex"
	"github.com/egdaemon/wordenum/powerset"
)

// Writer buffers the region in memory and copies it to an io.Writer on commit.
type Writer struct {
	dst io.Writer
	options
}

func NewWriter(ctx context.Context, dst io.Writer, opts ...Option) Writer {
	return Writer{
		dst:     dst,
		options: newoptions(ctx, opts...),
	}
}

func (t Writer) Allocate(size uint64) (_ powerset.Region, err error) {
	available := func() (uint64, error) {
		return resourcex.MemoryAvailable(t.ctx), nil
	}

	if err = preflight(size, t.limit, available); err != nil {
		return nil, err
	}

	return &buffered{dst: t.dst, buf: make([]byte, size)}, nil
}

type buffered struct {
	dst io.Writer
	buf []byte
}

func (t *buffered) Bytes() []byte {
	return t.buf
}

func (t *buffered) Commit() (err error) {
	if t.buf == nil {
		return errorsx.New("output region already released")
	}

	_, err = t.dst.Write(t.buf)
	t.buf = nil

	return errorsx.Wrap(err, "unable to write output")
}

func (t *buffered) Abort() error {
	t.buf = nil
	return nil
}

// Package powerset renders every subset of a list of elements ordered by
// subset size and then by element index, sizing the output exactly up front.
package powerset

import (
	"errors"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
)

// ErrSizeMismatch indicates the rendered output disagreed with the estimate.
var ErrSizeMismatch = errorsx.New("rendered size does not match estimate")

// Region is a destination of exactly the requested size. Nothing written to it
// is visible until Commit succeeds; Abort discards it.
type Region interface {
	Bytes() []byte
	Commit() error
	Abort() error
}

// Sink allocates destination regions.
type Sink interface {
	Allocate(size uint64) (Region, error)
}

// AllocationError is returned when a sink cannot provide a region of the
// requested size.
type AllocationError struct {
	Size  uint64
	Cause error
}

func (t AllocationError) Error() string {
	return fmt.Sprintf("unable to allocate %s (%d bytes) for output: %v", humanize.IBytes(t.Size), t.Size, t.Cause)
}

func (t AllocationError) Unwrap() error {
	return t.Cause
}

func (t AllocationError) UserFriendly() {}

// Generate renders every subset of the elements into a region acquired from
// the sink and commits it. The region is aborted on any failure so a partial
// result is never committed.
func Generate(src []byte, spans []Span, sink Sink) (written uint64, err error) {
	var (
		table  *Table
		size   uint64
		region Region
	)

	if table, err = NewTable(len(spans)); err != nil {
		return 0, errorsx.Wrap(err, "unable to build binomial table")
	}

	if size, err = Estimate(table, spans); err != nil {
		return 0, errorsx.Wrap(err, "unable to estimate output size")
	}

	debugx.Println("estimated output", len(spans), "elements", humanize.IBytes(size))

	if region, err = sink.Allocate(size); err != nil {
		if aerr := (AllocationError{}); errors.As(err, &aerr) {
			return 0, err
		}
		return 0, AllocationError{Size: size, Cause: err}
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		errorsx.MaybeLog(errorsx.Wrap(region.Abort(), "unable to discard output"))
	}()

	dst := region.Bytes()
	if uint64(len(dst)) != size {
		return 0, AllocationError{Size: size, Cause: errorsx.Errorf("sink returned %d bytes", len(dst))}
	}

	w := NewWriter(dst, src, spans)
	for combination := range All(len(spans)) {
		w.Emit(combination)
	}

	if uint64(w.Offset()) != size {
		return 0, errorsx.Wrapf(ErrSizeMismatch, "wrote %d bytes, estimated %d", w.Offset(), size)
	}

	if err = region.Commit(); err != nil {
		return 0, errorsx.Wrap(err, "unable to commit output")
	}
	committed = true

	log.Println("generated", humanize.Comma(int64(w.Offset())), "bytes from", len(spans), "elements")

	return size, nil
}

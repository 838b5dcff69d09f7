// Package sink provides destinations for generated output. Every region is
// sized exactly and nothing becomes visible until it is committed.
package sink

import (
	"context"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/internal/bytesx"
	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/powerset"
)

type options struct {
	ctx   context.Context
	limit bytesx.Unit
	perm  os.FileMode
}

type Option func(*options)

// OptionLimit refuses allocations larger than the limit. zero disables the limit.
func OptionLimit(u bytesx.Unit) Option {
	return func(o *options) {
		o.limit = u
	}
}

// OptionPerm sets the permissions of the committed file.
func OptionPerm(m os.FileMode) Option {
	return func(o *options) {
		o.perm = m
	}
}

func newoptions(ctx context.Context, opts ...Option) options {
	o := options{
		ctx:  ctx,
		perm: 0644,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// preflight rejects sizes the machine is unable to provide before any
// resources are acquired.
func preflight(size uint64, limit bytesx.Unit, available func() (uint64, error)) error {
	if limit > 0 && size > uint64(limit) {
		return powerset.AllocationError{Size: size, Cause: errorsx.Errorf("exceeds the configured limit of %s", humanize.IBytes(uint64(limit)))}
	}

	if size > math.MaxInt {
		return powerset.AllocationError{Size: size, Cause: errorsx.New("exceeds the addressable memory of the process")}
	}

	free, err := available()
	if err != nil {
		return powerset.AllocationError{Size: size, Cause: err}
	}

	debugx.Println("allocating", humanize.IBytes(size), "available", humanize.IBytes(free))

	if size > free {
		return powerset.AllocationError{Size: size, Cause: errorsx.Errorf("only %s available", humanize.IBytes(free))}
	}

	return nil
}

package main

import (
	"context"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/egdaemon/wordenum/cmd/cmdopts"
	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/powerset"
	"github.com/egdaemon/wordenum/sink"
	"github.com/egdaemon/wordenum/wordlist"
)

// replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

type generate struct {
	cmdopts.Input
	cmdopts.Output
}

func (t generate) Run(gctx *cmdopts.Global) (err error) {
	_, err = enumerate(gctx, t.Input, t.Output)
	return err
}

func load(gctx *cmdopts.Global, in cmdopts.Input) (l wordlist.List, err error) {
	var (
		raw []byte
	)

	if in.IsStdin() {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(in.Path)
	}

	if err != nil {
		return l, errorsx.Wrapf(err, "unable to read input: %s", in.Path)
	}

	if l, err = wordlist.Parse(raw, wordlist.OptionStrict(in.Strict)); err != nil {
		return l, errorsx.Wrapf(err, "unable to parse input: %s", in.Path)
	}

	debugx.Println("parsed", l.Len(), "elements from", in.Path)
	if gctx.Verbosity > 2 {
		debugx.Println(spew.Sdump(l.Spans))
	}

	return l, nil
}

func destination(ctx context.Context, out cmdopts.Output) powerset.Sink {
	if out.IsStdout() {
		return sink.NewWriter(ctx, stdout, sink.OptionLimit(out.MaxSize))
	}

	return sink.NewFile(ctx, out.Path, sink.OptionLimit(out.MaxSize))
}

func enumerate(gctx *cmdopts.Global, in cmdopts.Input, out cmdopts.Output) (written uint64, err error) {
	var (
		l wordlist.List
	)

	if l, err = load(gctx, in); err != nil {
		return 0, err
	}

	if written, err = powerset.Generate(l.Data, l.Spans, destination(gctx.Context, out)); err != nil {
		return 0, errorsx.Wrapf(err, "unable to generate output: %s", out.Path)
	}

	return written, nil
}

package main

import (
	"fmt"
	"math/big"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/cmd/cmdopts"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/powerset"
	"github.com/egdaemon/wordenum/wordlist"
)

type estimate struct {
	cmdopts.Input
}

func (t estimate) Run(gctx *cmdopts.Global) (err error) {
	var (
		l       wordlist.List
		table   *powerset.Table
		subsets uint64
		size    uint64
	)

	if l, err = load(gctx, t.Input); err != nil {
		return err
	}

	if table, err = powerset.NewTable(l.Len()); err != nil {
		return errorsx.Wrap(err, "unable to build binomial table")
	}

	if subsets, err = powerset.Subsets(table); err != nil {
		return err
	}

	if size, err = powerset.Estimate(table, l.Spans); err != nil {
		return errorsx.Wrap(err, "unable to estimate output size")
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "elements:\t%s\n", commas(uint64(l.Len())))
	fmt.Fprintf(tw, "subsets:\t%s\n", commas(subsets))
	fmt.Fprintf(tw, "size:\t%s (%d bytes)\n", humanize.IBytes(size), size)

	return tw.Flush()
}

func commas(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

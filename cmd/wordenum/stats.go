package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/cmd/cmdopts"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/powerset"
	"github.com/egdaemon/wordenum/wordlist"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
)

type stats struct {
	cmdopts.Input
	JSON bool `name:"json" help:"display the report as json"`
}

func (t stats) Run(gctx *cmdopts.Global) (err error) {
	var (
		l wordlist.List
		r report
	)

	if l, err = load(gctx, t.Input); err != nil {
		return err
	}

	if r, err = newreport(l); err != nil {
		return err
	}

	if t.JSON {
		encoded, err := easyjson.Marshal(r)
		if err != nil {
			return errorsx.Wrap(err, "unable to encode report")
		}

		_, err = fmt.Fprintln(stdout, string(encoded))
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tsubsets\tbytes\t")
	for _, p := range r.Phases {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", p.K, commas(p.Subsets), commas(p.Bytes))
	}
	fmt.Fprintf(tw, "total\t%s\t%s\t\n", commas(r.Subsets), commas(r.Bytes))
	if err = tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%d elements, %s of element text, %s of output\n", r.Elements, humanize.IBytes(r.Length), humanize.IBytes(r.Bytes))
	return err
}

type phase struct {
	K       int
	Subsets uint64
	Bytes   uint64
}

func (t phase) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"k":`)
	w.Int(t.K)
	w.RawString(`,"subsets":`)
	w.Uint64(t.Subsets)
	w.RawString(`,"bytes":`)
	w.Uint64(t.Bytes)
	w.RawByte('}')
}

type report struct {
	Elements int
	Length   uint64
	Subsets  uint64
	Bytes    uint64
	Phases   []phase
}

func (t report) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"elements":`)
	w.Int(t.Elements)
	w.RawString(`,"length":`)
	w.Uint64(t.Length)
	w.RawString(`,"subsets":`)
	w.Uint64(t.Subsets)
	w.RawString(`,"bytes":`)
	w.Uint64(t.Bytes)
	w.RawString(`,"phases":[`)
	for i, p := range t.Phases {
		if i > 0 {
			w.RawByte(',')
		}
		p.MarshalEasyJSON(w)
	}
	w.RawString(`]}`)
}

func newreport(l wordlist.List) (r report, err error) {
	var (
		table *powerset.Table
	)

	if table, err = powerset.NewTable(l.Len()); err != nil {
		return r, errorsx.Wrap(err, "unable to build binomial table")
	}

	r = report{
		Elements: l.Len(),
		Length:   powerset.TotalLength(l.Spans),
		Phases:   make([]phase, 0, l.Len()+1),
	}

	if r.Subsets, err = powerset.Subsets(table); err != nil {
		return r, err
	}

	if r.Bytes, err = powerset.Estimate(table, l.Spans); err != nil {
		return r, errorsx.Wrap(err, "unable to estimate output size")
	}

	for k := 0; k <= l.Len(); k++ {
		p := phase{K: k}
		if p.Subsets, p.Bytes, err = powerset.Phase(table, k, r.Length); err != nil {
			return r, err
		}
		r.Phases = append(r.Phases, p)
	}

	return r, nil
}

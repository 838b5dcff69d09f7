package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/cmd/cmderrors"
	"github.com/egdaemon/wordenum/cmd/cmdopts"
	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/internal/fsx"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

const defaultDebounce = 250 * time.Millisecond

type watch struct {
	cmdopts.Input
	cmdopts.Output
	Debounce time.Duration `name:"debounce" help:"minimum interval between regenerations" default:"${vars_watch_debounce}"`
}

func (t watch) Run(gctx *cmdopts.Global) (err error) {
	var (
		w      *fsnotify.Watcher
		target string
	)

	if t.IsStdin() {
		return errorsx.UserFriendly(errorsx.New("watch requires an input file"))
	}

	if target, err = filepath.Abs(t.Input.Path); err != nil {
		return errorsx.Wrapf(err, "unable to resolve input: %s", t.Input.Path)
	}

	if !fsx.FileExists(target) {
		return errorsx.UserFriendly(errorsx.Errorf("input does not exist: %s", t.Input.Path))
	}

	if w, err = fsnotify.NewWatcher(); err != nil {
		return errorsx.Wrap(err, "unable to watch input")
	}
	defer func() { errorsx.MaybeLog(errorsx.Wrap(w.Close(), "failed to close fs watch")) }()

	// editors commonly replace files instead of writing in place, watch the directory.
	if err = w.Add(filepath.Dir(target)); err != nil {
		return errorsx.Wrapf(err, "unable to watch input directory: %s", filepath.Dir(target))
	}

	limiter := rate.NewLimiter(rate.Every(t.Debounce), 1)
	regenerate := func() {
		if written, err := enumerate(gctx, t.Input, t.Output); cmderrors.LogCause(err) == nil {
			log.Println("regenerated", t.Output.Path, humanize.IBytes(written))
		}
	}

	regenerate()

	for {
		select {
		case <-gctx.Context.Done():
			return nil
		case err := <-w.Errors:
			log.Println("watch error", err)
		case evt := <-w.Events:
			if filepath.Clean(evt.Name) != target || !(evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create)) {
				continue
			}

			debugx.Println("input changed", evt)

			if err = limiter.Wait(gctx.Context); err != nil {
				return nil
			}

			drain(w.Events)
			regenerate()
		}
	}
}

// drain discards queued events, they are covered by the pending regeneration.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

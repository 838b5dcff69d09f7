package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"syscall"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/alecthomas/kong"
	"github.com/egdaemon/wordenum"
	"github.com/egdaemon/wordenum/cmd/cmderrors"
	"github.com/egdaemon/wordenum/cmd/cmdopts"
	"github.com/egdaemon/wordenum/cmd/cmdplete"
	"github.com/egdaemon/wordenum/internal/bytesx"
	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/envx"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	var shellcli struct {
		cmdopts.Global
		Generate           generate                     `cmd:"" default:"withargs" help:"enumerate every subset of the input into the output"`
		Estimate           estimate                     `cmd:"" help:"display the exact size of the output without generating it"`
		Stats              stats                        `cmd:"" help:"display the number of subsets and bytes for each subset size"`
		Watch              watch                        `cmd:"" help:"regenerate the output whenever the input changes"`
		Version            cmdopts.Version              `cmd:"" help:"display versioning information"`
		InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
	}

	var (
		err error
		ctx *kong.Context
	)

	shellcli.Cleanup = &sync.WaitGroup{}
	cctx, shutdown := context.WithCancelCause(context.Background())
	shellcli.Context = cctx
	shellcli.Shutdown = func() { shutdown(nil) }
	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	go cmdopts.Cleanup(shellcli.Context, shutdown, shellcli.Cleanup, func() {
		debugx.Println("waiting for systems to shutdown")
	}, os.Interrupt, syscall.SIGTERM)

	parser := kong.Must(
		&shellcli,
		kong.Name("wordenum"),
		kong.Description("enumerate every subset of a word list"),
		kong.Vars{
			"vars_input":          envx.String(wordenum.DefaultInput, wordenum.EnvInput),
			"vars_output":         envx.String(wordenum.DefaultOutput, wordenum.EnvOutput),
			"vars_strict":         strconv.FormatBool(envx.Boolean(false, wordenum.EnvStrict)),
			"vars_max_size":       strconv.FormatUint(envx.Uint64(0, wordenum.EnvMaxSize), 10),
			"vars_watch_debounce": envx.Duration(defaultDebounce, wordenum.EnvWatchDebounce).String(),
		},
		kong.UsageOnError(),
		kong.Bind(
			&shellcli.Global,
		),
	)

	kongplete.Complete(
		parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
		kongplete.WithPredictor("wordlist", cmdplete.WordLists{}),
	)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(cmderrors.Sprint(err))
		os.Exit(1)
	}

	debugx.SetEnabled(shellcli.Verbosity > 0 || envx.Boolean(false, wordenum.EnvLogsDebug))

	if shellcli.Verbosity > 1 {
		envx.Debug(os.Environ()...)
	}

	if _, err = maxprocs.Set(maxprocs.Logger(debugx.Printf)); err != nil {
		log.Println("unable to set GOMAXPROCS", err)
	}

	if limit, err := memlimit.SetGoMemLimitWithOpts(memlimit.WithProvider(memlimit.FromCgroup)); err == nil {
		debugx.Println("ram available", bytesx.Unit(limit))
	} else {
		debugx.Println("memory limit unavailable", err)
	}

	if err = ctx.Run(); err != nil {
		log.Println(cmderrors.Sprint(err))
		os.Exit(1)
	}

	debugx.Println("shutting down")
	shutdown(nil)
	shellcli.Cleanup.Wait()
}

package cmdopts

import (
	"context"
	"sync"

	"github.com/egdaemon/wordenum"
	"github.com/egdaemon/wordenum/internal/bytesx"
)

type Global struct {
	Verbosity int                `help:"increase verbosity of logging" short:"v" type:"counter" default:"0"`
	Context   context.Context    `kong:"-"`
	Shutdown  context.CancelFunc `kong:"-"`
	Cleanup   *sync.WaitGroup    `kong:"-"`
}

// Input locates and validates the word list.
type Input struct {
	Path   string `name:"input" short:"i" help:"word list to enumerate, '-' reads stdin" default:"${vars_input}" predictor:"wordlist"`
	Strict bool   `name:"strict" help:"reject input missing the final line feed or containing non-printable bytes" default:"${vars_strict}"`
}

// IsStdin reports if the input should be read from stdin.
func (t Input) IsStdin() bool {
	return t.Path == wordenum.Stdio
}

// Output configures the destination of the generated subsets.
type Output struct {
	Path    string      `name:"output" short:"o" help:"destination of the generated subsets, '-' writes stdout" default:"${vars_output}" predictor:"file"`
	MaxSize bytesx.Unit `name:"max-size" help:"refuse to generate output larger than this size, e.g. 512MiB. 0 disables the limit" default:"${vars_max_size}"`
}

// IsStdout reports if the output should be written to stdout.
func (t Output) IsStdout() bool {
	return t.Path == wordenum.Stdio
}

package testx

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/mattn/go-isatty"
)

// Logging enable logging if stdout terminal is a tty.
// generally this means run the ginkgo without the -p (parallel) option.
func Logging() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.LUTC)
	log.SetOutput(os.Stderr)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		debugx.SetEnabled(true)
		return
	}

	log.SetOutput(io.Discard)
}

// Context returns a context cancelled when the test completes.
func Context(t testing.TB) (context.Context, context.CancelFunc) {
	return context.WithCancel(t.Context())
}

// ReadString reads the file at path, panicking on failure.
func ReadString(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	return string(raw)
}

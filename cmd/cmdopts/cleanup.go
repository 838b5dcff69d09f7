package cmdopts

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
)

// Cleanup waits for one of the provided signals or for the context to be done.
// A received signal cancels the context with the signal as the cause. cleanup
// runs once either happens and the function blocks until the wait group drains.
func Cleanup(ctx context.Context, cancel context.CancelCauseFunc, wg *sync.WaitGroup, cleanup func(), sigs ...os.Signal) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sigs...)
	defer signal.Stop(signals)

	select {
	case <-ctx.Done():
	case s := <-signals:
		debugx.Println("signal received", s.String())
		cancel(errorsx.Notification(errorsx.Errorf("signal received: %s", s.String())))
	}

	cleanup()
	wg.Wait()
}

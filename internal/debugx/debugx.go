// Package debugx provides logging that is only emitted when debugging is enabled.
package debugx

import (
	"fmt"
	"log"
	"sync/atomic"
)

var enabled atomic.Bool

// SetEnabled toggles debug logging for the process.
func SetEnabled(b bool) {
	enabled.Store(b)
}

func Println(args ...any) {
	if !enabled.Load() {
		return
	}

	_ = log.Output(2, fmt.Sprintln(args...))
}

func Printf(format string, args ...any) {
	if !enabled.Load() {
		return
	}

	_ = log.Output(2, fmt.Sprintf(format, args...))
}

//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext derives the run context: Ctrl-C cancels it, which aborts a
// Chrome render in progress. SIGTERM does not exist on Windows.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

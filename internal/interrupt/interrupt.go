// Package interrupt provides a cooperative cancellation flag for the
// execution engine. The flag is set asynchronously by a signal handler and
// polled synchronously by the engine before dispatching work; it is advisory,
// not preemptive.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Flag is a process-wide style cancellation flag. The engine only reads it;
// clearing is the owner's responsibility (typically between prompt cycles).
type Flag struct {
	set atomic.Bool
}

// NewFlag returns a new, unset Flag.
func NewFlag() *Flag {
	return &Flag{}
}

// Set marks the flag as interrupted. Safe to call from a signal handler
// goroutine.
func (f *Flag) Set() {
	f.set.Store(true)
}

// Clear resets the flag.
func (f *Flag) Clear() {
	f.set.Store(false)
}

// Interrupted reports whether an interrupt has been requested.
func (f *Flag) Interrupted() bool {
	return f.set.Load()
}

// Notify wires SIGINT and SIGTERM to the flag and returns a stop function
// that unregisters the handler. The flag is set, never cleared, by delivery
// of a signal.
func Notify(f *Flag) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				f.Set()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

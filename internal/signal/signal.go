// Package signal implements the handling of signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Handle encapsulates a channel for masked signals.
type Handle struct {
	channel chan os.Signal
}

// Signals contains the signals that stop the updater.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Setup masks signals in [Signals] and return the handle.
func Setup() Handle {
	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	return Handle{channel: chanSignal}
}

// NotifyContext gives a copy of the context that will be canceled by signals in [Signals].
// Each reconciliation cycle runs under such a context so that in-flight API calls are aborted.
func NotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, Signals...)
}

// TearDown undoes what Setup does. This is only for testing.
func (h Handle) TearDown() {
	signal.Stop(h.channel)
}

// SleepUntil waits until the target time. It returns false if it is interrupted by signals in [Signals].
func (h Handle) SleepUntil(ppfmt pp.PP, target time.Time) bool {
	timer := time.NewTimer(time.Until(target))
	defer timer.Stop()

	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
		return false
	case <-timer.C:
		return true
	}
}

// Caught checks whether a signal has already arrived without blocking.
func (h Handle) Caught(ppfmt pp.PP) bool {
	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
		return true
	default:
		return false
	}
}

// Package monitor implements dead man's switches.
package monitor

import (
	"context"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_monitor.go -package=mocks . Monitor

const maxReadLength int64 = 102400

// Monitor is a dead man's switch, meaning that the monitor will report an error if
// it has not received a success ping for a period of time.
type Monitor interface {
	// Describe a monitor in a human-readable format by calling callback with service names and params.
	Describe(callback func(service, params string))

	// Ping reports a success or a failure depending on msg.OK.
	Ping(ctx context.Context, ppfmt pp.PP, msg message.MonitorMessage) bool

	// Start signals the monitor that a reconciliation cycle is starting.
	Start(ctx context.Context, ppfmt pp.PP, msg string) bool

	// ExitStatus tells the monitor that the updater stopped with the exit code.
	ExitStatus(ctx context.Context, ppfmt pp.PP, code int, msg string) bool
}

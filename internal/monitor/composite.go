package monitor

import (
	"context"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Composed is a group of monitors acting as one. Every member is called even if an earlier one fails.
type Composed []Monitor

var _ Monitor = Composed{}

// NewComposed creates a new composed monitor, flattening nested groups and skipping nil.
func NewComposed(mons ...Monitor) Composed {
	ms := make(Composed, 0, len(mons))
	for _, m := range mons {
		switch m := m.(type) {
		case nil:
		case Composed:
			ms = append(ms, m...)
		default:
			ms = append(ms, m)
		}
	}
	return ms
}

// Describe calls [Monitor.Describe] for each monitor in the group with the callback.
func (ms Composed) Describe(callback func(service, params string)) {
	for _, m := range ms {
		m.Describe(callback)
	}
}

// Ping calls [Monitor.Ping] for each monitor in the group.
func (ms Composed) Ping(ctx context.Context, ppfmt pp.PP, msg message.MonitorMessage) bool {
	ok := true
	for _, m := range ms {
		if !m.Ping(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}

// Start calls [Monitor.Start] for each monitor in the group.
func (ms Composed) Start(ctx context.Context, ppfmt pp.PP, msg string) bool {
	ok := true
	for _, m := range ms {
		if !m.Start(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}

// ExitStatus calls [Monitor.ExitStatus] for each monitor in the group.
func (ms Composed) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, msg string) bool {
	ok := true
	for _, m := range ms {
		if !m.ExitStatus(ctx, ppfmt, code, msg) {
			ok = false
		}
	}
	return ok
}

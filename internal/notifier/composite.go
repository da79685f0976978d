package notifier

import (
	"context"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Composed is a group of notifiers acting as one.
type Composed []Notifier

var _ Notifier = Composed{}

// NewComposed creates a new composed notifier, flattening nested groups and skipping nil.
func NewComposed(ns ...Notifier) Composed {
	list := make(Composed, 0, len(ns))
	for _, n := range ns {
		switch n := n.(type) {
		case nil:
		case Composed:
			list = append(list, n...)
		default:
			list = append(list, n)
		}
	}
	return list
}

// Describe calls [Notifier.Describe] for each notifier in the group with the callback.
func (ns Composed) Describe(callback func(service, params string)) {
	for _, n := range ns {
		n.Describe(callback)
	}
}

// Send calls [Notifier.Send] for each notifier in the group.
func (ns Composed) Send(ctx context.Context, ppfmt pp.PP, msg message.NotifierMessage) bool {
	ok := true
	for _, n := range ns {
		if !n.Send(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}

package notifier

import (
	"context"
	"time"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Shoutrrr wraps a shoutrrr router sending to all configured services.
type Shoutrrr struct {
	// The router
	Router *router.ServiceRouter

	// The services
	ServiceNames []string
}

var _ Notifier = Shoutrrr{} //nolint:exhaustruct

const (
	// ShoutrrrDefaultTimeout is the default timeout for a shoutrrr message.
	ShoutrrrDefaultTimeout = 10 * time.Second
)

// NewShoutrrr creates a new shoutrrr notifier.
func NewShoutrrr(ppfmt pp.PP, rawURLs []string) (Shoutrrr, bool) {
	r, err := shoutrrr.CreateSender(rawURLs...)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Could not create shoutrrr client: %v", err)
		return Shoutrrr{}, false //nolint:exhaustruct
	}

	r.Timeout = ShoutrrrDefaultTimeout

	serviceNames := make([]string, 0, len(rawURLs))
	for _, u := range rawURLs {
		s, _, err := r.ExtractServiceName(u)
		if err != nil {
			s = "unknown"
		}
		serviceNames = append(serviceNames, s)
	}

	return Shoutrrr{Router: r, ServiceNames: serviceNames}, true
}

// Describe calls the callback with each service name.
func (s Shoutrrr) Describe(callback func(service, params string)) {
	for _, n := range s.ServiceNames {
		callback(n, "(URL redacted)")
	}
}

// Send sends the message to all services.
func (s Shoutrrr) Send(_ context.Context, ppfmt pp.PP, msg message.NotifierMessage) bool {
	if msg.IsEmpty() {
		return true
	}

	errs := s.Router.Send(msg.Format(), &types.Params{})
	allOk := true
	for _, err := range errs {
		if err != nil {
			ppfmt.Warningf(pp.EmojiError, "Failed to send some shoutrrr message: %v", err)
			allOk = false
		}
	}
	if allOk {
		ppfmt.Infof(pp.EmojiNotification, "Sent shoutrrr message")
	}
	return allOk
}

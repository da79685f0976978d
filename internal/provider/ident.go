package provider

import (
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/provider/protocol"
)

// DefaultURLs returns the default discovery endpoints, in the order of priority.
func DefaultURLs() map[ipnet.Type][]string {
	return map[ipnet.Type][]string{
		ipnet.IP4: {"https://v4.ident.me", "https://v4.tnedi.me"},
		ipnet.IP6: {"https://v6.ident.me", "https://v6.tnedi.me"},
	}
}

// NewIdentMe creates a specialized HTTP provider that uses the ident.me service
// and its mirror tnedi.me.
func NewIdentMe() Provider {
	return &protocol.HTTP{
		ProviderName: "ident.me",
		URLs:         DefaultURLs(),
	}
}

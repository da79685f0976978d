// Package provider implements protocols to detect public IP addresses.
package provider

import (
	"context"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider/protocol"
)

//go:generate mockgen -destination=../mocks/mock_provider.go -package=mocks . Provider

// Provider is the abstraction of a protocol to detect public IP addresses.
type Provider interface {
	// Name gives the name of the protocol.
	Name() string

	// GetIP gets the address of the IP network.
	GetIP(ctx context.Context, ppfmt pp.PP, ipNet ipnet.Type) (netip.Addr, bool)
}

// Name gets the protocol name. It returns "none" for nil.
func Name(p Provider) string {
	if p == nil {
		return "none"
	}

	return p.Name()
}

// CloseIdleConnections releases the connections kept open for the discovery endpoints.
func CloseIdleConnections() {
	protocol.CloseIdleConnections()
}

// Package setter implements the logic to push the detected addresses to
// a cloud firewall and to DNS records.
package setter

import (
	"context"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_setter.go -package=mocks . Setter

// Setter uses [api.DNSHandle] and [api.FirewallHandle] to apply the detected addresses.
type Setter interface {
	// SetFirewall replaces all rules of the firewall with the rule templates,
	// each allowing exactly the given addresses.
	SetFirewall(
		ctx context.Context,
		ppfmt pp.PP,
		firewall api.Firewall,
		templates []api.FirewallRule,
		ips map[ipnet.Type]netip.Addr,
	) ResponseCode

	// UpsertRecord creates the record of a particular IP network if the ID is empty
	// and updates the record with the ID otherwise. It returns the ID now known
	// together with the HTTP status code of the last API call.
	UpsertRecord(
		ctx context.Context,
		ppfmt pp.PP,
		zone api.Zone,
		id api.ID,
		ipNet ipnet.Type,
		name string,
		ip netip.Addr,
	) (api.ID, int)
}

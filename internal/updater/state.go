package updater

import (
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
)

// State is everything the updater remembers between two cycles. It is owned by
// the main loop and lives as long as the process; nothing is persisted.
type State struct {
	// Addresses are the last addresses applied to both the firewall and the DNS records.
	Addresses map[ipnet.Type]netip.Addr

	Zone         api.Zone
	ZoneResolved bool

	Firewall         api.Firewall
	FirewallResolved bool

	// RecordIDs is empty for a family until the record is found or created.
	RecordIDs map[ipnet.Type]api.ID
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		Addresses:        map[ipnet.Type]netip.Addr{},
		Zone:             api.Zone{ID: "", Name: ""},
		ZoneResolved:     false,
		Firewall:         api.Firewall{ID: 0, Name: ""},
		FirewallResolved: false,
		RecordIDs:        map[ipnet.Type]api.ID{},
	}
}

// hasNoRecordIDs checks whether no record ID is known for any family.
func (s *State) hasNoRecordIDs() bool {
	for _, ipNet := range ipnet.All {
		if s.RecordIDs[ipNet] != "" {
			return false
		}
	}
	return true
}

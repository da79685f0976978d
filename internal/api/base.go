// Package api implements protocols to talk to DNS providers and cloud firewalls.
package api

import (
	"context"
	"net/netip"
	"time"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . DNSHandle,FirewallHandle

// ID is a new type representing identifiers used by DNS providers.
type ID string

// String returns the string representation of the ID.
func (id ID) String() string { return string(id) }

// A Zone is a DNS zone.
type Zone struct {
	ID   ID
	Name string
}

// A Record represents a DNS record. The name is relative to its zone, with "@" being the zone apex.
type Record struct {
	ID    ID
	Type  string
	Name  string
	Value string
	TTL   int
}

// A DNSHandle represents a generic DNS provider.
type DNSHandle interface {
	// ListZones lists all zones visible to the token.
	ListZones(ctx context.Context, ppfmt pp.PP) ([]Zone, bool)

	// ListRecords lists all records in a zone.
	ListRecords(ctx context.Context, ppfmt pp.PP, zone Zone) ([]Record, bool)

	// CreateRecord creates a record and returns its ID (empty if the creation failed)
	// along with the HTTP status code. The status code is 0 when no response was received.
	CreateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) (ID, int)

	// UpdateRecord replaces the record identified by r.ID and returns the HTTP status code.
	UpdateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) int
}

// A DNSAuth is the credential of a DNS provider.
type DNSAuth interface {
	// New uses the credential to create a DNSHandle whose listings are cached for cacheExpiration.
	New(ppfmt pp.PP, cacheExpiration time.Duration) (DNSHandle, bool)
}

// A Firewall identifies a cloud firewall.
type Firewall struct {
	ID   int64
	Name string
}

// Direction is the direction of the traffic a firewall rule applies to.
type Direction string

// Directions of firewall rules.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Protocol is the protocol a firewall rule applies to.
type Protocol string

// Protocols of firewall rules.
const (
	ProtocolTCP  Protocol = "tcp"
	ProtocolUDP  Protocol = "udp"
	ProtocolICMP Protocol = "icmp"
	ProtocolESP  Protocol = "esp"
	ProtocolGRE  Protocol = "gre"
)

// HasPort checks whether rules of the protocol need a port.
func (p Protocol) HasPort() bool {
	return p == ProtocolTCP || p == ProtocolUDP
}

// A FirewallRule is one rule of a cloud firewall. SourceIPs is the allow-list of remote addresses;
// for outgoing rules they are sent as the destination IPs.
type FirewallRule struct {
	Direction   Direction
	Protocol    Protocol
	Port        string // a single port or a range such as "80-85"; empty for icmp, esp, and gre
	Description string
	SourceIPs   []netip.Prefix
}

// A FirewallHandle represents a generic cloud firewall API.
type FirewallHandle interface {
	// GetFirewall looks up the firewall by its name. The first boolean tells whether it exists
	// and the second one whether the lookup succeeded.
	GetFirewall(ctx context.Context, ppfmt pp.PP, name string) (Firewall, bool, bool)

	// CreateFirewall creates an empty firewall.
	CreateFirewall(ctx context.Context, ppfmt pp.PP, name string) bool

	// SetFirewallRules replaces all rules of the firewall.
	SetFirewallRules(ctx context.Context, ppfmt pp.PP, fw Firewall, rules []FirewallRule) bool
}

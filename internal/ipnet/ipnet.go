// Package ipnet contains utility functions for IPv4 and IPv6 networks.
package ipnet

import (
	"fmt"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Type is the type of IP networks.
type Type int

const (
	// IP4 is IP version 4.
	IP4 Type = 4

	// IP6 is IP version 6.
	IP6 Type = 6
)

// All lists the IP networks in the order they are processed.
//
//nolint:gochecknoglobals
var All = [...]Type{IP4, IP6}

// Int returns the version of the IP networks. It is either 4 or 6.
func (t Type) Int() int {
	switch t {
	case IP4, IP6:
		return int(t)
	default:
		return 0
	}
}

// Describe returns a human-readable description of the IP network.
func (t Type) Describe() string {
	switch t {
	case IP4, IP6:
		return fmt.Sprintf("IPv%d", t)
	default:
		return "<unrecognized IP network>"
	}
}

// RecordType prints out the type of DNS records for the IP network. For IPv4, it is A; for IPv6, it is AAAA.
func (t Type) RecordType() string {
	switch t {
	case IP4:
		return "A"
	case IP6:
		return "AAAA"
	default:
		return ""
	}
}

// NormalizeDetectedIP checks that the IP belongs to the network and is usable as a public address.
func (t Type) NormalizeDetectedIP(ppfmt pp.PP, ip netip.Addr) (netip.Addr, bool) {
	if !ip.IsValid() {
		ppfmt.Warningf(pp.EmojiImpossible,
			`Detected IP address is not valid; this should not happen and please report it at %s`,
			pp.IssueReportingURL,
		)
		return netip.Addr{}, false
	}

	switch t {
	case IP4:
		if !ip.Is4() && !ip.Is4In6() {
			ppfmt.Warningf(pp.EmojiError, "%q is not a valid IPv4 address", ip.String())
			return netip.Addr{}, false
		}
		// Turns an IPv4-mapped IPv6 address back to an IPv4 address
		ip = ip.Unmap()

	case IP6:
		if !ip.Is6() || ip.Is4In6() {
			ppfmt.Warningf(pp.EmojiError, "%q is not a valid IPv6 address", ip.String())
			return netip.Addr{}, false
		}

	default:
		ppfmt.Warningf(pp.EmojiImpossible, "Unrecognized IP network %d; please report this at %s",
			int(t), pp.IssueReportingURL)
		return netip.Addr{}, false
	}

	switch {
	case ip.IsUnspecified():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is an unspecified address", t.Describe(), ip.String())
		return netip.Addr{}, false
	case ip.IsLoopback():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a loopback address", t.Describe(), ip.String())
		return netip.Addr{}, false
	case ip.IsMulticast():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a multicast address", t.Describe(), ip.String())
		return netip.Addr{}, false
	case ip.IsLinkLocalUnicast():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a link-local address", t.Describe(), ip.String())
		return netip.Addr{}, false
	}

	return ip.WithZone(""), true
}

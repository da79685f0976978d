package setter

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// RecordTTL is the TTL (in seconds) of the records this package creates or updates.
const RecordTTL = 120

type setter struct {
	DNS      api.DNSHandle
	Firewall api.FirewallHandle
}

// New creates a new Setter.
func New(_ppfmt pp.PP, dns api.DNSHandle, firewall api.FirewallHandle) (Setter, bool) {
	return setter{
		DNS:      dns,
		Firewall: firewall,
	}, true
}

// SourceIPs turns the addresses into single-address prefixes, IPv4 first.
func SourceIPs(ips map[ipnet.Type]netip.Addr) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(ipnet.All))
	for _, ipNet := range ipnet.All {
		if ip, ok := ips[ipNet]; ok && ip.IsValid() {
			prefixes = append(prefixes, ipnet.HostPrefix(ip))
		}
	}
	return prefixes
}

// SetFirewall pushes the complete rule set with fresh source IPs in one call.
func (s setter) SetFirewall(ctx context.Context, ppfmt pp.PP,
	firewall api.Firewall, templates []api.FirewallRule, ips map[ipnet.Type]netip.Addr,
) ResponseCode {
	sourceIPs := SourceIPs(ips)
	if len(sourceIPs) == 0 {
		ppfmt.Infof(pp.EmojiAlreadyDone, "No addresses to allow in the firewall %q", firewall.Name)
		return ResponseNoop
	}

	rules := make([]api.FirewallRule, 0, len(templates))
	for _, t := range templates {
		t.SourceIPs = sourceIPs
		rules = append(rules, t)
	}

	if !s.Firewall.SetFirewallRules(ctx, ppfmt, firewall, rules) {
		ppfmt.Errorf(pp.EmojiError, "Failed to update the firewall %q", firewall.Name)
		return ResponseFailed
	}

	ppfmt.Noticef(pp.EmojiFirewall, "Updated the firewall %q to allow %s",
		firewall.Name, pp.EnglishJoinMap(ipnet.DescribePrefixOrIP, sourceIPs))
	return ResponseUpdated
}

// UpsertRecord creates or updates one record. An update answered with 404 means the record
// was deleted behind our back, and a new record is created instead.
func (s setter) UpsertRecord(ctx context.Context, ppfmt pp.PP,
	zone api.Zone, id api.ID, ipNet ipnet.Type, name string, ip netip.Addr,
) (api.ID, int) {
	r := api.Record{
		ID:    id,
		Type:  ipNet.RecordType(),
		Name:  name,
		Value: ip.String(),
		TTL:   RecordTTL,
	}

	if id != "" {
		code := s.DNS.UpdateRecord(ctx, ppfmt, zone, r)
		if code != http.StatusNotFound {
			if code >= 200 && code <= 299 {
				ppfmt.Noticef(pp.EmojiUpdateRecord, "Updated the %s record %s (ID: %s) to %s",
					r.Type, name, id, r.Value)
			}
			return id, code
		}

		ppfmt.Noticef(pp.EmojiWarning, "The %s record %s (ID: %s) no longer exists; creating a new one",
			r.Type, name, id)
		ppfmt.Hintf(pp.HintStaleRecordID,
			"A record managed by this updater was deleted by someone else; it will be recreated")
		r.ID = ""
	}

	newID, code := s.DNS.CreateRecord(ctx, ppfmt, zone, r)
	if newID != "" {
		ppfmt.Noticef(pp.EmojiCreateRecord, "Added a new %s record %s (ID: %s) for %s", r.Type, name, newID, r.Value)
	}
	return newID, code
}

package updater

import (
	"context"
	"net/netip"
	"strings"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/config"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func resolveFirewall(ctx context.Context, ppfmt pp.PP, c *config.Config, fw api.FirewallHandle, s *State) bool {
	ctx, cancel := withTimeout(ctx, c.UpdateTimeout)
	defer cancel()

	firewall, found, ok := fw.GetFirewall(ctx, ppfmt, c.FirewallName)
	if !ok {
		return false
	}

	if !found {
		ppfmt.Warningf(pp.EmojiWarning, "Couldn't find firewall, creating new empty firewall.")
		if !fw.CreateFirewall(ctx, ppfmt, c.FirewallName) {
			return false
		}

		firewall, found, ok = fw.GetFirewall(ctx, ppfmt, c.FirewallName)
		if !ok {
			return false
		}
		if !found {
			ppfmt.Errorf(pp.EmojiImpossible,
				"The firewall %q still does not exist after being created; please report this at %s",
				c.FirewallName, pp.IssueReportingURL)
			return false
		}
	}

	ppfmt.Infof(pp.EmojiLookup, "Found the firewall %q (ID: %d)", firewall.Name, firewall.ID)
	s.Firewall = firewall
	s.FirewallResolved = true
	return true
}

func sameZoneName(a, b string) bool {
	return strings.EqualFold(strings.TrimSuffix(a, "."), strings.TrimSuffix(b, "."))
}

func resolveZone(ctx context.Context, ppfmt pp.PP, c *config.Config, dns api.DNSHandle, s *State) bool {
	ctx, cancel := withTimeout(ctx, c.UpdateTimeout)
	defer cancel()

	zones, ok := dns.ListZones(ctx, ppfmt)
	if !ok {
		return false
	}

	for _, zone := range zones {
		if sameZoneName(zone.Name, c.ZoneName) {
			ppfmt.Infof(pp.EmojiLookup, "Found the zone %s (ID: %s)", c.ZoneName, zone.ID)
			s.Zone = zone
			s.ZoneResolved = true
			return true
		}
	}

	ppfmt.Errorf(pp.EmojiUserError, "Could not find the zone %s among %d zone(s)", c.ZoneName, len(zones))
	return false
}

// ResolveIdentifiers looks up the firewall (creating an empty one if it is missing)
// and then the zone. Each lookup succeeds at most once per [State].
func ResolveIdentifiers(ctx context.Context, ppfmt pp.PP, c *config.Config,
	dns api.DNSHandle, fw api.FirewallHandle, s *State,
) bool {
	if !s.FirewallResolved && !resolveFirewall(ctx, ppfmt, c, fw, s) {
		return false
	}

	if !s.ZoneResolved && !resolveZone(ctx, ppfmt, c, dns, s) {
		return false
	}

	return true
}

// resolveRecordIDs looks up the IDs of the records of the families with an address.
func resolveRecordIDs(ctx context.Context, ppfmt pp.PP, c *config.Config,
	dns api.DNSHandle, s *State, ips map[ipnet.Type]netip.Addr,
) bool {
	ctx, cancel := withTimeout(ctx, c.UpdateTimeout)
	defer cancel()

	records, ok := dns.ListRecords(ctx, ppfmt, s.Zone)
	if !ok {
		return false
	}

	for _, ipNet := range ipnet.All {
		if !ips[ipNet].IsValid() {
			continue
		}

		for _, r := range records {
			if strings.EqualFold(r.Name, c.RecordName) && r.Type == ipNet.RecordType() {
				ppfmt.Infof(pp.EmojiLookup, "Found the %s record %s (ID: %s)", r.Type, c.RecordName, r.ID)
				s.RecordIDs[ipNet] = r.ID
				break
			}
		}
	}

	return true
}

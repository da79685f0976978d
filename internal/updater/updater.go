// Package updater implements the reconciliation cycle: detect the addresses,
// compare them with the last applied ones, and push them to the firewall and DNS.
package updater

import (
	"context"
	"net/netip"
	"time"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/config"
	"github.com/favonia/hetzner-ddns/internal/domain"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/setter"
)

// Result is the outcome of one cycle.
type Result int

const (
	// ResultNoChange means the detected addresses were already applied.
	ResultNoChange Result = iota

	// ResultUpdated means the firewall and the DNS records were updated.
	ResultUpdated

	// ResultFailed means the cycle did not finish; the next cycle will try again.
	ResultFailed

	// ResultFatal means the updater should exit.
	ResultFatal
)

// withTimeout is [context.WithTimeout] except that a non-positive duration means no timeout.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func copyAddrs(ips map[ipnet.Type]netip.Addr) map[ipnet.Type]netip.Addr {
	copied := make(map[ipnet.Type]netip.Addr, len(ips))
	for ipNet, ip := range ips {
		copied[ipNet] = ip
	}
	return copied
}

// UpdateIPs runs one cycle. The addresses in s are replaced only after the firewall
// has accepted the new rules and the DNS records have been pushed.
func UpdateIPs(ctx context.Context, ppfmt pp.PP, c *config.Config, s *State,
	dns api.DNSHandle, fw api.FirewallHandle, st setter.Setter,
) (Result, message.Message) {
	detected, failedNet, ok := detectIPs(ctx, ppfmt, c)
	if !ok {
		return ResultFatal, generateDetectMessage(failedNet)
	}

	if !Changed(c.IPMode, s.Addresses, detected) {
		ppfmt.Infof(pp.EmojiAlreadyDone, "No ip change detected.")
		return ResultNoChange, message.New()
	}

	ppfmt.Noticef(pp.EmojiNow, "new IPs: %s, %s",
		describeAddr(detected[ipnet.IP4]), describeAddr(detected[ipnet.IP6]))

	if !ResolveIdentifiers(ctx, ppfmt, c, dns, fw, s) {
		return ResultFatal, generateResolveMessage()
	}

	{
		ctx, cancel := withTimeout(ctx, c.UpdateTimeout)
		code := st.SetFirewall(ctx, ppfmt, s.Firewall, c.FirewallRules, detected)
		cancel()
		if code == setter.ResponseFailed {
			return ResultFatal, generateFirewallFailureMessage(c.FirewallName)
		}
	}

	fqdn := domain.Describe(domain.FQDN(c.RecordName, c.ZoneName))

	if s.hasNoRecordIDs() && !resolveRecordIDs(ctx, ppfmt, c, dns, s, detected) {
		ppfmt.Errorf(pp.EmojiError, "Failed to look up the DNS records of %s; will try again", fqdn)
		return ResultFailed, generateRecordLookupFailureMessage(fqdn)
	}

	codes := map[ipnet.Type]int{}
	for _, ipNet := range ipnet.All {
		ip, ok := detected[ipNet]
		if !ok || !ip.IsValid() {
			continue
		}

		ctx, cancel := withTimeout(ctx, c.UpdateTimeout)
		id, code := st.UpsertRecord(ctx, ppfmt, s.Zone, s.RecordIDs[ipNet], ipNet, c.RecordName, ip)
		cancel()

		s.RecordIDs[ipNet] = id
		codes[ipNet] = code
		ppfmt.Infof(pp.EmojiUpdateRecord, "%s create/update status code: %d", ipNet.Describe(), code)
	}

	s.Addresses = copyAddrs(detected)
	return ResultUpdated, generateUpdateMessage(c.FirewallName, fqdn, detected, codes)
}

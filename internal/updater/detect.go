package updater

import (
	"context"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/config"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider"
)

// Changed checks whether any family tracked by the mode has a new address.
// Families outside the mode never count as changes.
func Changed(mode config.IPMode, previous, detected map[ipnet.Type]netip.Addr) bool {
	for _, ipNet := range mode.Families() {
		if previous[ipNet] != detected[ipNet] {
			return true
		}
	}
	return false
}

func hintDetectionFailure(ppfmt pp.PP, ipNet ipnet.Type) {
	switch ipNet {
	case ipnet.IP4:
		ppfmt.Hintf(pp.HintIP4DetectionFails,
			"If your network does not support IPv4, you can set ip_version to v6")
	case ipnet.IP6:
		ppfmt.Hintf(pp.HintIP6DetectionFails,
			"If your network does not support IPv6, you can set ip_version to v4; "+
				"IPv6 in Docker or Kubernetes often needs additional setup")
	}
}

// detectIPs detects the address of every family of the mode. It stops at the first family
// without a usable address.
func detectIPs(ctx context.Context, ppfmt pp.PP, c *config.Config) (map[ipnet.Type]netip.Addr, ipnet.Type, bool) {
	defer provider.CloseIdleConnections()

	detected := map[ipnet.Type]netip.Addr{}

	for _, ipNet := range c.IPMode.Families() {
		ctx, cancel := withTimeout(ctx, c.DetectionTimeout)
		ip, ok := c.Provider.GetIP(ctx, ppfmt, ipNet)
		cancel()

		if !ok {
			ppfmt.Errorf(pp.EmojiError, "Failed to detect the %s address", ipNet.Describe())
			hintDetectionFailure(ppfmt, ipNet)
			return nil, ipNet, false
		}

		ppfmt.Infof(pp.EmojiInternet, "Detected the %s address: %v", ipNet.Describe(), ip)
		detected[ipNet] = ip
	}

	return detected, 0, true
}

func describeAddr(ip netip.Addr) string {
	if !ip.IsValid() {
		return "none"
	}
	return ip.String()
}

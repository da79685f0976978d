package config

import (
	"fmt"
	"strings"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/cron"
	"github.com/favonia/hetzner-ddns/internal/domain"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider"
	"github.com/favonia/hetzner-ddns/internal/setter"
)

const itemTitleWidth = 24

func describeToken(token string) string {
	if token == "" {
		return "(none)"
	}
	return "(redacted)"
}

func describeRule(r api.FirewallRule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", r.Direction, r.Protocol)
	if r.Port != "" {
		fmt.Fprintf(&b, " %s", r.Port)
	}
	if r.Description != "" {
		fmt.Fprintf(&b, " (%s)", r.Description)
	}
	return b.String()
}

// Print prints the Config on the screen. Tokens are redacted.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("IP detection:")
	item("IP version:", "%s", c.IPMode)
	item("Provider:", "%s", provider.Name(c.Provider))
	item("Timeout:", "%v", c.DetectionTimeout)

	section("Scheduling:")
	item("Check frequency:", "%s", cron.DescribeSchedule(c.UpdateCron))
	item("Cache expiration:", "%v", c.CacheExpiration)

	section("Firewall (Hetzner Cloud):")
	item("Token:", "%s", describeToken(c.HCloudToken))
	item("Firewall:", "%s", c.FirewallName)
	if len(c.FirewallRules) == 0 {
		item("Rules:", "(none)")
	}
	for i, r := range c.FirewallRules {
		item(fmt.Sprintf("Rule #%d:", i+1), "%s", describeRule(r))
	}

	section("DNS:")
	item("Provider:", "%s", c.DNSProvider)
	item("Token:", "%s", describeToken(c.DNSToken))
	item("Zone:", "%s", domain.Describe(c.ZoneName))
	item("Record:", "%s", domain.Describe(c.RecordName))
	item("TTL:", "%d", setter.RecordTTL)
	item("Timeout:", "%v", c.UpdateTimeout)

	if c.Monitor != nil {
		first := true
		c.Monitor.Describe(func(service, params string) {
			if first {
				section("Monitors:")
				first = false
			}
			item(service+":", "%s", params)
		})
	}

	if c.Notifier != nil {
		first := true
		c.Notifier.Describe(func(service, params string) {
			if first {
				section("Notifiers (via shoutrrr):")
				first = false
			}
			item(service+":", "%s", params)
		})
	}
}

package config

import (
	"github.com/favonia/hetzner-ddns/internal/cron"
	"github.com/favonia/hetzner-ddns/internal/domain"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/monitor"
	"github.com/favonia/hetzner-ddns/internal/notifier"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider"
)

func (c *Config) normalizeNames(ppfmt pp.PP) bool {
	zone, err := domain.NormalizeZone(c.ZoneName)
	if err != nil {
		if c.ZoneName == "" {
			ppfmt.Errorf(pp.EmojiUserError, "hdns.zone_name is empty")
		} else {
			ppfmt.Errorf(pp.EmojiUserError, "hdns.zone_name (%q) is not a valid zone name: %v", c.ZoneName, err)
		}
		return false
	}

	if c.RecordName == "" {
		ppfmt.Errorf(pp.EmojiUserError, "hdns.record_name is empty; use %q for the zone apex", domain.Apex)
		return false
	}
	name, err := domain.NormalizeRecordName(c.RecordName)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "hdns.record_name (%q) is not a valid record name: %v", c.RecordName, err)
		return false
	}

	c.ZoneName, c.RecordName = zone, name
	return true
}

func (c *Config) buildProvider(ppfmt pp.PP) bool {
	if c.DiscoveryURLs == nil {
		c.Provider = provider.NewIdentMe()
		return true
	}

	for _, ipNet := range ipnet.All {
		if len(c.DiscoveryURLs[ipNet]) > 0 && !c.IPMode.Has(ipNet) {
			ppfmt.Warningf(pp.EmojiUserWarning,
				"The %s discovery endpoints are ignored because ip_version is %s", ipNet.Describe(), c.IPMode)
		}
	}

	p, ok := provider.NewCustom(ppfmt, c.DiscoveryURLs)
	if !ok {
		return false
	}
	c.Provider = p
	return true
}

func (c *Config) buildMonitorsAndNotifiers(ppfmt pp.PP) bool {
	var mons []monitor.Monitor
	if c.HealthchecksURL != "" {
		m, ok := monitor.NewHealthChecks(ppfmt, c.HealthchecksURL)
		if !ok {
			return false
		}
		mons = append(mons, m)
	}
	if c.UptimeKumaURL != "" {
		m, ok := monitor.NewUptimeKuma(ppfmt, c.UptimeKumaURL)
		if !ok {
			return false
		}
		mons = append(mons, m)
	}
	c.Monitor = monitor.NewComposed(mons...)

	var ns []notifier.Notifier
	if len(c.ShoutrrrURLs) > 0 {
		n, ok := notifier.NewShoutrrr(ppfmt, c.ShoutrrrURLs)
		if !ok {
			return false
		}
		ns = append(ns, n)
	}
	c.Notifier = notifier.NewComposed(ns...)

	return true
}

// Normalize checks the configuration and builds the derived fields.
func (c *Config) Normalize(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Checking settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if len(c.IPMode.Families()) == 0 {
		ppfmt.Errorf(pp.EmojiImpossible, "Unrecognized IP mode %d; please report this at %s", c.IPMode, pp.IssueReportingURL)
		return false
	}

	if c.HCloudToken == "" {
		ppfmt.Errorf(pp.EmojiUserError, "The Hetzner Cloud API token is missing; set hcloud.token or %s", HCloudTokenKey)
		return false
	}
	if c.DNSToken == "" {
		ppfmt.Errorf(pp.EmojiUserError, "The DNS API token is missing; set hdns.token or %s", DNSTokenKey)
		return false
	}
	if c.FirewallName == "" {
		ppfmt.Errorf(pp.EmojiUserError, "hcloud.firewall_name is empty")
		return false
	}
	if len(c.FirewallRules) == 0 {
		ppfmt.Warningf(pp.EmojiUserWarning,
			"hcloud.firewall_rules is empty; the firewall %q will have no rules", c.FirewallName)
	}

	if !c.normalizeNames(ppfmt) {
		return false
	}

	schedule, err := cron.Every(c.WaitTime)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "wait_time (%v) should be positive", c.WaitTime)
		return false
	}
	c.UpdateCron = schedule

	return c.buildProvider(ppfmt) && c.buildMonitorsAndNotifiers(ppfmt)
}

// Read reads the configuration file and the environment variables, and then normalizes the result.
func Read(ppfmt pp.PP, path string) (*Config, bool) {
	c := Default()
	if !c.ReadFile(ppfmt, path) || !c.ReadEnv(ppfmt) || !c.Normalize(ppfmt) {
		return nil, false
	}
	return c, true
}

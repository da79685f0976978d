// Package config reads and parses configurations.
package config

import (
	"strings"
	"time"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/cron"
	"github.com/favonia/hetzner-ddns/internal/droproot"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/monitor"
	"github.com/favonia/hetzner-ddns/internal/notifier"
	"github.com/favonia/hetzner-ddns/internal/provider"
)

// IPMode tells which IP networks are tracked.
type IPMode int

// All the IP modes.
const (
	IPModeV4 IPMode = iota
	IPModeV6
	IPModeDualstack
)

// ParseIPMode parses "v4", "v6", or "dualstack" case-insensitively.
func ParseIPMode(s string) (IPMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v4":
		return IPModeV4, true
	case "v6":
		return IPModeV6, true
	case "dualstack":
		return IPModeDualstack, true
	default:
		return 0, false
	}
}

// String gives the configuration value of the mode.
func (m IPMode) String() string {
	switch m {
	case IPModeV4:
		return "v4"
	case IPModeV6:
		return "v6"
	case IPModeDualstack:
		return "dualstack"
	default:
		return "<unrecognized IP mode>"
	}
}

// Families lists the IP networks of the mode, IPv4 first.
func (m IPMode) Families() []ipnet.Type {
	switch m {
	case IPModeV4:
		return []ipnet.Type{ipnet.IP4}
	case IPModeV6:
		return []ipnet.Type{ipnet.IP6}
	case IPModeDualstack:
		return []ipnet.Type{ipnet.IP4, ipnet.IP6}
	default:
		return nil
	}
}

// Has checks whether the mode tracks the IP network.
func (m IPMode) Has(ipNet ipnet.Type) bool {
	for _, t := range m.Families() {
		if t == ipNet {
			return true
		}
	}
	return false
}

// DNSProvider names the DNS service holding the zone.
type DNSProvider string

// All the DNS providers.
const (
	DNSProviderHetzner    DNSProvider = "hetzner"
	DNSProviderCloudflare DNSProvider = "cloudflare"
)

// Config holds the configuration of the updater.
type Config struct {
	IPMode           IPMode
	DiscoveryURLs    map[ipnet.Type][]string
	Provider         provider.Provider
	WaitTime         time.Duration
	UpdateCron       cron.Schedule
	DetectionTimeout time.Duration
	UpdateTimeout    time.Duration
	CacheExpiration  time.Duration
	HCloudToken      string
	HCloudEndpoint   string
	FirewallName     string
	FirewallRules    []api.FirewallRule
	DNSProvider      DNSProvider
	DNSToken         string
	DNSEndpoint      string
	ZoneName         string
	RecordName       string
	HealthchecksURL  string
	UptimeKumaURL    string
	ShoutrrrURLs     []string
	Monitor          monitor.Monitor
	Notifier         notifier.Notifier
	UID              int
	GID              int
}

// DefaultConfigFile is the configuration file read when CONFIG_FILE is not set.
const DefaultConfigFile = "config.yml"

// DefaultWaitTime is the interval between two checks.
const DefaultWaitTime = 600 * time.Second

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		IPMode:           IPModeDualstack,
		DiscoveryURLs:    nil,
		Provider:         provider.NewIdentMe(),
		WaitTime:         DefaultWaitTime,
		UpdateCron:       cron.MustNew("@every 10m0s"),
		DetectionTimeout: 0,
		UpdateTimeout:    0,
		CacheExpiration:  time.Hour * 6, //nolint:mnd
		HCloudToken:      "",
		HCloudEndpoint:   "",
		FirewallName:     "",
		FirewallRules:    nil,
		DNSProvider:      DNSProviderHetzner,
		DNSToken:         "",
		DNSEndpoint:      "",
		ZoneName:         "",
		RecordName:       "",
		HealthchecksURL:  "",
		UptimeKumaURL:    "",
		ShoutrrrURLs:     nil,
		Monitor:          monitor.NewComposed(),
		Notifier:         notifier.NewComposed(),
		UID:              droproot.DefaultUserID(),
		GID:              droproot.DefaultGroupID(),
	}
}

// FirewallAuth gives the credential of the cloud firewall API.
func (c *Config) FirewallAuth() api.HCloudAuth {
	return api.HCloudAuth{Token: c.HCloudToken, Endpoint: c.HCloudEndpoint}
}

// DNSAuth gives the credential of the DNS provider.
func (c *Config) DNSAuth() api.DNSAuth {
	switch c.DNSProvider {
	case DNSProviderCloudflare:
		return api.CloudflareAuth{Token: c.DNSToken, BaseURL: c.DNSEndpoint}
	default:
		return api.HetznerDNSAuth{Token: c.DNSToken, BaseURL: c.DNSEndpoint}
	}
}

// Secrets lists the configured values that should never appear in the output.
func (c *Config) Secrets() []string {
	secrets := []string{c.HCloudToken, c.DNSToken, c.HealthchecksURL, c.UptimeKumaURL}
	return append(secrets, c.ShoutrrrURLs...)
}

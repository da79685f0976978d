package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/file"
	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// scalar accepts any YAML scalar as a string, so that "port: 22" and "port: 80-85" both work.
type scalar string

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", value.Line)
	}
	*s = scalar(value.Value)
	return nil
}

type fileRule struct {
	Direction   string `yaml:"direction"`
	Protocol    string `yaml:"protocol"`
	Port        scalar `yaml:"port"`
	Description string `yaml:"description"`
}

type fileConfig struct {
	IPVersion        string `yaml:"ip_version"`
	WaitTime         *int   `yaml:"wait_time"`
	DetectionTimeout *int   `yaml:"detection_timeout"`
	UpdateTimeout    *int   `yaml:"update_timeout"`
	CacheExpiration  *int   `yaml:"cache_expiration"`
	IPDiscovery      struct {
		IPv4 []string `yaml:"ipv4"`
		IPv6 []string `yaml:"ipv6"`
	} `yaml:"ip_discovery"`
	HCloud struct {
		Token         string     `yaml:"token"`
		Endpoint      string     `yaml:"endpoint"`
		FirewallName  string     `yaml:"firewall_name"`
		FirewallRules []fileRule `yaml:"firewall_rules"`
	} `yaml:"hcloud"`
	HDNS struct {
		Provider   string `yaml:"provider"`
		Token      string `yaml:"token"`
		Endpoint   string `yaml:"endpoint"`
		ZoneName   string `yaml:"zone_name"`
		RecordName string `yaml:"record_name"`
	} `yaml:"hdns"`
	Healthchecks string   `yaml:"healthchecks"`
	UptimeKuma   string   `yaml:"uptimekuma"`
	Shoutrrr     []string `yaml:"shoutrrr"`
}

func readSeconds(ppfmt pp.PP, key string, val *int, field *time.Duration) bool {
	if val == nil {
		return true
	}
	if *val < 0 {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) is negative", key, *val)
		return false
	}
	*field = time.Duration(*val) * time.Second
	return true
}

func parseRules(ppfmt pp.PP, raw []fileRule) ([]api.FirewallRule, bool) {
	rules := make([]api.FirewallRule, 0, len(raw))
	for i, r := range raw {
		rule := api.FirewallRule{
			Direction:   api.Direction(r.Direction),
			Protocol:    api.Protocol(r.Protocol),
			Port:        string(r.Port),
			Description: r.Description,
			SourceIPs:   nil,
		}

		switch rule.Direction {
		case api.DirectionIn, api.DirectionOut:
		default:
			ppfmt.Errorf(pp.EmojiUserError,
				"hcloud.firewall_rules[%d].direction (%q) should be %q or %q", i, r.Direction, api.DirectionIn, api.DirectionOut)
			return nil, false
		}

		switch rule.Protocol {
		case api.ProtocolTCP, api.ProtocolUDP, api.ProtocolICMP, api.ProtocolESP, api.ProtocolGRE:
		default:
			ppfmt.Errorf(pp.EmojiUserError,
				"hcloud.firewall_rules[%d].protocol (%q) should be one of tcp, udp, icmp, esp, and gre", i, r.Protocol)
			return nil, false
		}

		switch {
		case rule.Protocol.HasPort() && rule.Port == "":
			ppfmt.Errorf(pp.EmojiUserError, "hcloud.firewall_rules[%d].port is required for %s", i, rule.Protocol)
			return nil, false
		case !rule.Protocol.HasPort() && rule.Port != "":
			ppfmt.Warningf(pp.EmojiUserWarning,
				"hcloud.firewall_rules[%d].port (%q) is ignored for %s", i, rule.Port, rule.Protocol)
			rule.Port = ""
		}

		rules = append(rules, rule)
	}
	return rules, true
}

// ReadFile reads the YAML configuration file. Unknown keys are rejected.
func (c *Config) ReadFile(ppfmt pp.PP, path string) bool {
	body, ok := file.ReadBytes(ppfmt, path)
	if !ok {
		return false
	}

	var raw fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(body))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse %q: %v", path, err)
		return false
	}

	if raw.IPVersion != "" {
		mode, ok := ParseIPMode(raw.IPVersion)
		if !ok {
			ppfmt.Errorf(pp.EmojiUserError, "ip_version (%q) should be v4, v6, or dualstack", raw.IPVersion)
			return false
		}
		c.IPMode = mode
	}

	if raw.WaitTime != nil {
		if *raw.WaitTime <= 0 {
			ppfmt.Errorf(pp.EmojiUserError, "wait_time (%d) should be positive", *raw.WaitTime)
			return false
		}
		c.WaitTime = time.Duration(*raw.WaitTime) * time.Second
	}

	if !readSeconds(ppfmt, "detection_timeout", raw.DetectionTimeout, &c.DetectionTimeout) ||
		!readSeconds(ppfmt, "update_timeout", raw.UpdateTimeout, &c.UpdateTimeout) ||
		!readSeconds(ppfmt, "cache_expiration", raw.CacheExpiration, &c.CacheExpiration) {
		return false
	}

	if len(raw.IPDiscovery.IPv4) > 0 || len(raw.IPDiscovery.IPv6) > 0 {
		c.DiscoveryURLs = map[ipnet.Type][]string{
			ipnet.IP4: raw.IPDiscovery.IPv4,
			ipnet.IP6: raw.IPDiscovery.IPv6,
		}
	}

	c.HCloudToken = raw.HCloud.Token
	c.HCloudEndpoint = raw.HCloud.Endpoint
	c.FirewallName = raw.HCloud.FirewallName
	if c.FirewallRules, ok = parseRules(ppfmt, raw.HCloud.FirewallRules); !ok {
		return false
	}

	switch DNSProvider(raw.HDNS.Provider) {
	case "":
	case DNSProviderHetzner, DNSProviderCloudflare:
		c.DNSProvider = DNSProvider(raw.HDNS.Provider)
	default:
		ppfmt.Errorf(pp.EmojiUserError,
			"hdns.provider (%q) should be %q or %q", raw.HDNS.Provider, DNSProviderHetzner, DNSProviderCloudflare)
		return false
	}
	c.DNSToken = raw.HDNS.Token
	c.DNSEndpoint = raw.HDNS.Endpoint
	c.ZoneName = raw.HDNS.ZoneName
	c.RecordName = raw.HDNS.RecordName

	c.HealthchecksURL = raw.Healthchecks
	c.UptimeKumaURL = raw.UptimeKuma
	c.ShoutrrrURLs = raw.Shoutrrr

	return true
}

package api

import (
	"context"
	"net"
	"net/netip"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// An HCloudAuth holds the authentication data to create an [HCloudHandle].
type HCloudAuth struct {
	Token    string
	Endpoint string
}

// An HCloudHandle implements the [FirewallHandle] interface with the Hetzner Cloud API.
type HCloudHandle struct {
	client *hcloud.Client
}

// New creates an [HCloudHandle] from the authentication data.
func (a HCloudAuth) New(ppfmt pp.PP, version string) (FirewallHandle, bool) {
	if a.Token == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The Hetzner Cloud API token is empty")
		return nil, false
	}

	opts := []hcloud.ClientOption{
		hcloud.WithToken(a.Token),
		hcloud.WithApplication("hetzner-ddns", version),
	}
	// set the endpoint (mostly for testing)
	if a.Endpoint != "" {
		opts = append(opts, hcloud.WithEndpoint(a.Endpoint))
	}

	return HCloudHandle{client: hcloud.NewClient(opts...)}, true
}

func hintFirewallPermission(ppfmt pp.PP, err error) {
	if hcloud.IsError(err, hcloud.ErrorCodeUnauthorized) || hcloud.IsError(err, hcloud.ErrorCodeForbidden) {
		ppfmt.Hintf(pp.HintFirewallPermissions,
			"Double check your Hetzner Cloud API token. "+
				`Make sure it belongs to the right project and has the "Read & Write" permission`)
	}
}

// GetFirewall calls hcloud.FirewallClient.GetByName.
func (h HCloudHandle) GetFirewall(ctx context.Context, ppfmt pp.PP, name string) (Firewall, bool, bool) {
	fw, _, err := h.client.Firewall.GetByName(ctx, name)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to look up the firewall %q: %v", name, err)
		hintFirewallPermission(ppfmt, err)
		return Firewall{}, false, false
	}

	if fw == nil {
		return Firewall{}, false, true
	}

	return Firewall{ID: fw.ID, Name: fw.Name}, true, true
}

// CreateFirewall calls hcloud.FirewallClient.Create with only the name.
func (h HCloudHandle) CreateFirewall(ctx context.Context, ppfmt pp.PP, name string) bool {
	//nolint:exhaustruct // Other fields are intentionally omitted
	if _, _, err := h.client.Firewall.Create(ctx, hcloud.FirewallCreateOpts{Name: name}); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to create the firewall %q: %v", name, err)
		hintFirewallPermission(ppfmt, err)
		return false
	}

	return true
}

func toIPNets(prefixes []netip.Prefix) []net.IPNet {
	nets := make([]net.IPNet, 0, len(prefixes))
	for _, p := range prefixes {
		nets = append(nets, net.IPNet{
			IP:   net.IP(p.Addr().AsSlice()),
			Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
		})
	}
	return nets
}

func toHCloudRule(r FirewallRule) hcloud.FirewallRule {
	//nolint:exhaustruct // The IPs are filled in below
	rule := hcloud.FirewallRule{
		Direction: hcloud.FirewallRuleDirection(r.Direction),
		Protocol:  hcloud.FirewallRuleProtocol(r.Protocol),
	}
	if r.Port != "" {
		rule.Port = hcloud.Ptr(r.Port)
	}
	if r.Description != "" {
		rule.Description = hcloud.Ptr(r.Description)
	}

	switch r.Direction {
	case DirectionOut:
		rule.DestinationIPs = toIPNets(r.SourceIPs)
		rule.SourceIPs = []net.IPNet{}
	default:
		rule.SourceIPs = toIPNets(r.SourceIPs)
		rule.DestinationIPs = []net.IPNet{}
	}

	return rule
}

// SetFirewallRules calls hcloud.FirewallClient.SetRules to replace all rules.
func (h HCloudHandle) SetFirewallRules(ctx context.Context, ppfmt pp.PP, fw Firewall, rules []FirewallRule) bool {
	hrules := make([]hcloud.FirewallRule, 0, len(rules))
	for _, r := range rules {
		hrules = append(hrules, toHCloudRule(r))
	}

	//nolint:exhaustruct // Other fields are intentionally omitted
	target := &hcloud.Firewall{ID: fw.ID, Name: fw.Name}
	if _, _, err := h.client.Firewall.SetRules(ctx, target, hcloud.FirewallSetRulesOpts{Rules: hrules}); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to set the rules of the firewall %q: %v", fw.Name, err)
		hintFirewallPermission(ppfmt, err)
		return false
	}

	return true
}

package updater

import (
	"fmt"
	"net/netip"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func generateDetectMessage(ipNet ipnet.Type) message.Message {
	return message.Message{
		MonitorMessage:  message.NewMonitorMessagef(false, "Failed to detect %s address", ipNet.Describe()),
		NotifierMessage: message.NewNotifierMessagef("Failed to detect the %s address.", ipNet.Describe()),
	}
}

func generateResolveMessage() message.Message {
	return message.Message{
		MonitorMessage:  message.NewMonitorMessagef(false, "Failed to look up the firewall or the zone"),
		NotifierMessage: message.NewNotifierMessagef("Failed to look up the firewall or the DNS zone."),
	}
}

func generateFirewallFailureMessage(firewall string) message.Message {
	return message.Message{
		MonitorMessage:  message.NewMonitorMessagef(false, "Failed to update firewall %s", firewall),
		NotifierMessage: message.NewNotifierMessagef("Failed to update the firewall %q.", firewall),
	}
}

func generateRecordLookupFailureMessage(fqdn string) message.Message {
	return message.Message{
		MonitorMessage:  message.NewMonitorMessagef(false, "Failed to look up the records of %s", fqdn),
		NotifierMessage: message.NewNotifierMessagef("Failed to look up the DNS records of %s.", fqdn),
	}
}

func describeAddrs(ips map[ipnet.Type]netip.Addr) []string {
	descriptions := make([]string, 0, len(ipnet.All))
	for _, ipNet := range ipnet.All {
		if ip, ok := ips[ipNet]; ok && ip.IsValid() {
			descriptions = append(descriptions, ip.String())
		}
	}
	return descriptions
}

func generateUpdateMessage(firewall, fqdn string, ips map[ipnet.Type]netip.Addr, codes map[ipnet.Type]int) message.Message {
	var monitorLines []string
	var rejected []string
	for _, ipNet := range ipnet.All {
		code, ok := codes[ipNet]
		if !ok {
			continue
		}
		monitorLines = append(monitorLines,
			fmt.Sprintf("Set %s (%s): %d", ipNet.RecordType(), ips[ipNet].String(), code))
		if code < 200 || code > 299 {
			rejected = append(rejected, ipNet.RecordType())
		}
	}

	notifierMessage := message.NewNotifierMessagef("Updated the firewall %q and the DNS records of %s to %s.",
		firewall, fqdn, pp.EnglishJoin(describeAddrs(ips)))
	if len(rejected) > 0 {
		notifierMessage = append(notifierMessage,
			fmt.Sprintf("The DNS provider did not accept the %s record(s).", pp.EnglishJoin(rejected)))
	}

	return message.Message{
		MonitorMessage:  message.MonitorMessage{OK: true, Lines: monitorLines},
		NotifierMessage: notifierMessage,
	}
}

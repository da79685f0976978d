package protocol

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
)

// A discovery endpoint such as v4.ident.me may have both A and AAAA records, and the answer
// depends on which family the connection used. The clients here refuse to dial the other family.

// dialOnly gives a [net.Dialer] control function that rejects networks outside ipNet.
// Go names the networks "tcp4", "udp6", and so on once the address is resolved.
func dialOnly(ipNet ipnet.Type) func(context.Context, string, string, syscall.RawConn) error {
	suffix := fmt.Sprint(ipNet.Int())
	return func(_ context.Context, network, address string, _ syscall.RawConn) error {
		if !strings.HasSuffix(network, suffix) {
			return fmt.Errorf("refusing to dial %s over %s: only %s is allowed", address, network, ipNet.Describe())
		}
		return nil
	}
}

func newFamilyClient(ipNet ipnet.Type) *http.Client {
	dialer := &net.Dialer{ //nolint:exhaustruct
		Timeout:        30 * time.Second, //nolint:mnd
		KeepAlive:      30 * time.Second, //nolint:mnd
		ControlContext: dialOnly(ipNet),
	}

	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.DialContext = dialer.DialContext

	return &http.Client{Transport: transport} //nolint:exhaustruct
}

//nolint:gochecknoglobals
var familyClients = map[ipnet.Type]*http.Client{
	ipnet.IP4: newFamilyClient(ipnet.IP4),
	ipnet.IP6: newFamilyClient(ipnet.IP6),
}

// SharedSplitClient returns the shared [http.Client] that only dials addresses of the IP network.
func SharedSplitClient(ipNet ipnet.Type) *http.Client {
	return familyClients[ipNet]
}

// SharedSplitRetryableClient wraps [SharedSplitClient] in a [retryablehttp.Client].
// Retries are disabled: a failing endpoint is skipped in favor of the next one.
func SharedSplitRetryableClient(ipNet ipnet.Type) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.HTTPClient = SharedSplitClient(ipNet)
	c.RetryMax = 0
	c.Logger = nil
	return c
}

// CloseIdleConnections closes the idle connections of the shared clients.
// Detection happens once per cycle, so keeping them open until the next cycle is pointless.
func CloseIdleConnections() {
	for _, client := range familyClients {
		client.CloseIdleConnections()
	}
}

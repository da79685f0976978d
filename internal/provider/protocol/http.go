package protocol

import (
	"context"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func getIPFromHTTP(ctx context.Context, ppfmt pp.PP, ipNet ipnet.Type, url string) (netip.Addr, bool) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %q: %v", url, err)
		return netip.Addr{}, false
	}

	resp, err := SharedSplitRetryableClient(ipNet).Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to %q: %v", url, err)
		return netip.Addr{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ppfmt.Warningf(pp.EmojiError, "Unexpected HTTP status code %d from %q", resp.StatusCode, url)
		return netip.Addr{}, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to read HTTP(S) response from %q: %v", url, err)
		return netip.Addr{}, false
	}

	ipString := strings.TrimSpace(string(body))
	if ipString == "" {
		ppfmt.Warningf(pp.EmojiError, "The response of %q is empty", url)
		return netip.Addr{}, false
	}

	ip, err := netip.ParseAddr(ipString)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, `Failed to parse the IP address in the response of %q: %s`, url, ipString)
		return netip.Addr{}, false
	}

	return ipNet.NormalizeDetectedIP(ppfmt, ip)
}

// HTTP represents a detection protocol that reads the IP address from the body of an HTTP response.
// The endpoints of each IP network are tried in order until one of them gives a usable address.
type HTTP struct {
	ProviderName string                  // name of the protocol
	URLs         map[ipnet.Type][]string // detection pages, in the order of priority
}

// Name of the detection protocol.
func (p *HTTP) Name() string {
	return p.ProviderName
}

// GetIP detects the IP address by trying the endpoints one by one.
func (p *HTTP) GetIP(ctx context.Context, ppfmt pp.PP, ipNet ipnet.Type) (netip.Addr, bool) {
	urls := p.URLs[ipNet]
	if len(urls) == 0 {
		ppfmt.Warningf(pp.EmojiImpossible, "Unhandled IP network: %s", ipNet.Describe())
		return netip.Addr{}, false
	}

	for _, url := range urls {
		if ip, ok := getIPFromHTTP(ctx, ppfmt, ipNet, url); ok {
			return ip, true
		}
		if ctx.Err() != nil {
			break
		}
	}

	ppfmt.Warningf(pp.EmojiError, "Failed to detect the %s address using any of the %d endpoint(s)",
		ipNet.Describe(), len(urls))
	return netip.Addr{}, false
}

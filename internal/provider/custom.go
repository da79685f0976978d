package provider

import (
	"net/url"
	"strings"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider/protocol"
)

func checkURL(ppfmt pp.PP, ipNet ipnet.Type, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the %s discovery endpoint %q: %v", ipNet.Describe(), rawURL, err)
		return false
	}

	if !u.IsAbs() || u.Opaque != "" || u.Host == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The %s discovery endpoint %q does not look like a valid URL",
			ipNet.Describe(), rawURL)
		return false
	}

	switch u.Scheme {
	case "http":
		ppfmt.Noticef(pp.EmojiUserWarning, "The %s discovery endpoint %q uses HTTP; consider using HTTPS instead",
			ipNet.Describe(), rawURL)

	case "https":
		// HTTPS is good!

	default:
		ppfmt.Noticef(pp.EmojiUserError, "The %s discovery endpoint %q must use HTTP or HTTPS", ipNet.Describe(), rawURL)
		return false
	}

	return true
}

// NewCustom creates a HTTP provider with the given endpoints.
// A network without endpoints falls back to the default ones.
func NewCustom(ppfmt pp.PP, urls map[ipnet.Type][]string) (Provider, bool) {
	all := DefaultURLs()
	for _, ipNet := range ipnet.All {
		if len(urls[ipNet]) == 0 {
			continue
		}
		for _, rawURL := range urls[ipNet] {
			if !checkURL(ppfmt, ipNet, rawURL) {
				return nil, false
			}
		}
		all[ipNet] = urls[ipNet]
	}

	return &protocol.HTTP{
		ProviderName: "custom",
		URLs:         all,
	}, true
}

// MustNewCustom creates a HTTP provider and panics if it fails.
func MustNewCustom(urls map[ipnet.Type][]string) Provider {
	var buf strings.Builder
	p, ok := NewCustom(pp.New(&buf), urls)
	if !ok {
		panic(buf.String())
	}
	return p
}

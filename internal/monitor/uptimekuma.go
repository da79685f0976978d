package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// UptimeKuma provides basic support of Uptime Kuma push monitors.
//
//   - Start is a no-op.
//   - Ping is translated to status=up/down.
//   - ExitStatus with a non-zero code is translated to status=down.
type UptimeKuma struct {
	// The endpoint
	BaseURL *url.URL

	// Timeout for each ping
	Timeout time.Duration
}

var _ Monitor = UptimeKuma{} //nolint:exhaustruct

const (
	// UptimeKumaDefaultTimeout is the default timeout for a UptimeKuma ping.
	UptimeKumaDefaultTimeout = 10 * time.Second
)

// NewUptimeKuma creates a new UptimeKuma monitor.
func NewUptimeKuma(ppfmt pp.PP, rawURL string) (UptimeKuma, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the Uptime Kuma URL (redacted)")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "") {
		ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The Uptime Kuma URL (redacted) uses HTTP; please consider using HTTPS")

	case "https":

	default:
		ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	// The URL copied from Uptime Kuma looks like this:
	//
	//     https://some.host.name/api/push/GFWB6vsHMg?status=up&msg=OK&ping=
	if u.RawQuery != "" {
		q, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
			return UptimeKuma{}, false //nolint:exhaustruct
		}

		for k, vs := range q {
			switch {
			case k == "status" && slices.Equal(vs, []string{"up"}):
			case k == "msg" && slices.Equal(vs, []string{"OK"}):
			case k == "ping" && slices.Equal(vs, []string{""}):
			default:
				ppfmt.Warningf(pp.EmojiUserWarning,
					"The Uptime Kuma URL (redacted) contains an unexpected query %s=... and it will be ignored", k)
			}
		}

		u.RawQuery = ""
	}

	return UptimeKuma{
		BaseURL: u,
		Timeout: UptimeKumaDefaultTimeout,
	}, true
}

// Describe calls the callback with the service name "Uptime Kuma".
func (h UptimeKuma) Describe(callback func(service, params string)) {
	callback("Uptime Kuma", "(URL redacted)")
}

type uptimeKumaResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

type uptimeKumaRequest struct {
	Status string `url:"status"`
	Msg    string `url:"msg"`
	Ping   string `url:"ping"`
}

func (h UptimeKuma) ping(ctx context.Context, ppfmt pp.PP, param uptimeKumaRequest) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	u := *h.BaseURL
	v, _ := query.Values(param)
	u.RawQuery = v.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = 0

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to Uptime Kuma")
		return false
	}
	defer resp.Body.Close()

	var parsed uptimeKumaResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReadLength)).Decode(&parsed); err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to parse the response from Uptime Kuma: %v", err)
		return false
	}
	if !parsed.OK {
		ppfmt.Warningf(pp.EmojiError, "Failed to ping Uptime Kuma: %s", parsed.Msg)
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged Uptime Kuma")
	return true
}

// Ping pings the server with status=up/down depending on msg.OK.
func (h UptimeKuma) Ping(ctx context.Context, ppfmt pp.PP, msg message.MonitorMessage) bool {
	if msg.OK {
		// Uptime Kuma only keeps the first success message, so a fixed "OK" avoids stale text.
		return h.ping(ctx, ppfmt, uptimeKumaRequest{Status: "up", Msg: "OK", Ping: ""})
	}

	formatted := msg.Format()
	if formatted == "" {
		formatted = "Failing"
	}
	return h.ping(ctx, ppfmt, uptimeKumaRequest{Status: "down", Msg: formatted, Ping: ""})
}

// Start does nothing.
func (h UptimeKuma) Start(context.Context, pp.PP, string) bool {
	return true
}

// ExitStatus reports status=down for non-zero exit codes and does nothing otherwise.
func (h UptimeKuma) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, msg string) bool {
	if code == 0 {
		return true
	}
	if msg == "" {
		msg = "Exited"
	}
	return h.ping(ctx, ppfmt, uptimeKumaRequest{Status: "down", Msg: msg, Ping: ""})
}

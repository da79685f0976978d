package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// HealthChecks provides basic support of Healthchecks.io.
type HealthChecks struct {
	// The endpoint, with the UUID or the ping key
	BaseURL *url.URL

	// Timeout for each ping
	Timeout time.Duration

	// Retries after the first attempt
	MaxRetries int

	// Longest wait between two retries
	RetryWaitMax time.Duration
}

var _ Monitor = HealthChecks{} //nolint:exhaustruct

const (
	// HealthChecksDefaultTimeout is the default timeout for a Healthchecks ping.
	HealthChecksDefaultTimeout = 10 * time.Second

	// HealthChecksDefaultMaxRetries is the default number of retries of a Healthchecks ping.
	HealthChecksDefaultMaxRetries = 5

	// HealthChecksDefaultRetryWaitMax is the default longest wait between two retries.
	HealthChecksDefaultRetryWaitMax = 30 * time.Second
)

// NewHealthChecks creates a new HealthChecks monitor.
func NewHealthChecks(ppfmt pp.PP, rawURL string) (HealthChecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the Healthchecks URL (redacted)")
		return HealthChecks{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.RawQuery == "" && !u.ForceQuery && u.Fragment == "") {
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL (redacted) does not look like a valid URL")
		ppfmt.Errorf(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return HealthChecks{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The Healthchecks URL (redacted) uses HTTP; please consider using HTTPS")

	case "https":

	default:
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL (redacted) does not look like a valid URL")
		return HealthChecks{}, false //nolint:exhaustruct
	}

	return HealthChecks{
		BaseURL:      u,
		Timeout:      HealthChecksDefaultTimeout,
		MaxRetries:   HealthChecksDefaultMaxRetries,
		RetryWaitMax: HealthChecksDefaultRetryWaitMax,
	}, true
}

// Describe calls the callback with the service name "Healthchecks".
func (h HealthChecks) Describe(callback func(service, params string)) {
	callback("Healthchecks", "(URL redacted)")
}

func (h HealthChecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string, msg string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	u := h.BaseURL
	if endpoint != "" {
		u = u.JoinPath(endpoint)
	}

	describe := endpoint
	if describe == "" {
		describe = "default"
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(msg))
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to the %s endpoint of Healthchecks: %v",
			describe, err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = h.MaxRetries
	c.RetryWaitMin = min(c.RetryWaitMin, h.RetryWaitMax)
	c.RetryWaitMax = h.RetryWaitMax
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	resp, err := c.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to the %s endpoint of Healthchecks: %v",
			describe, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxReadLength))
		ppfmt.Warningf(pp.EmojiError, "Failed to ping the %s endpoint of Healthchecks; got response code: %d %s",
			describe, resp.StatusCode, strings.TrimSpace(string(body)))
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged the %s endpoint of Healthchecks", describe)
	return true
}

// Ping pings the default endpoint on success and the /fail endpoint on failure.
func (h HealthChecks) Ping(ctx context.Context, ppfmt pp.PP, msg message.MonitorMessage) bool {
	if msg.OK {
		return h.ping(ctx, ppfmt, "", msg.Format())
	}
	return h.ping(ctx, ppfmt, "fail", msg.Format())
}

// Start pings the /start endpoint.
func (h HealthChecks) Start(ctx context.Context, ppfmt pp.PP, msg string) bool {
	return h.ping(ctx, ppfmt, "start", msg)
}

// ExitStatus pings the /{code} endpoint.
func (h HealthChecks) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, msg string) bool {
	if code < 0 || code > 255 {
		ppfmt.Warningf(pp.EmojiImpossible, "Exit code (%d) not within the range 0-255", code)
		return false
	}

	return h.ping(ctx, ppfmt, fmt.Sprintf("%d", code), msg)
}

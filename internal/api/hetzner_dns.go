package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/jellydator/ttlcache/v3"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// HetznerDNSBaseURL is the endpoint of the Hetzner DNS API.
const HetznerDNSBaseURL = "https://dns.hetzner.com/api/v1"

const hetznerDNSPageSize = 100

// A HetznerDNSAuth holds the authentication data to create a [HetznerDNSHandle].
type HetznerDNSAuth struct {
	Token   string
	BaseURL string
}

var _ DNSAuth = HetznerDNSAuth{} //nolint:exhaustruct

// A HetznerDNSHandle implements the [DNSHandle] interface with the Hetzner DNS API.
type HetznerDNSHandle struct {
	token   string
	baseURL string
	client  *retryablehttp.Client
	cache   dnsCache
}

// New creates a [HetznerDNSHandle] from the authentication data.
func (a HetznerDNSAuth) New(ppfmt pp.PP, cacheExpiration time.Duration) (DNSHandle, bool) {
	if a.Token == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The Hetzner DNS API token is empty")
		return nil, false
	}

	baseURL := a.BaseURL
	if baseURL == "" {
		baseURL = HetznerDNSBaseURL
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return HetznerDNSHandle{
		token:   a.Token,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		cache:   newDNSCache(cacheExpiration),
	}, true
}

// HetznerDNSError is a non-2xx answer of the Hetzner DNS API.
type HetznerDNSError struct {
	StatusCode int
	Message    string
}

func (e *HetznerDNSError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP status %d: %s", e.StatusCode, e.Message)
}

type hetznerDNSErrorBody struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func parseHetznerDNSError(statusCode int, body []byte) *HetznerDNSError {
	var parsed hetznerDNSErrorBody
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Error.Message != "":
			message = parsed.Error.Message
		case parsed.Message != "":
			message = parsed.Message
		}
	}
	return &HetznerDNSError{StatusCode: statusCode, Message: message}
}

func hintHetznerDNSPermission(ppfmt pp.PP, statusCode int) {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		ppfmt.Hintf(pp.HintRecordPermissions,
			"Double check your Hetzner DNS API token; it can be created at https://dns.hetzner.com/settings/api-token")
	}
}

// do sends a request and decodes the JSON answer into out. The status code is 0
// if no response was received.
func (h HetznerDNSHandle) do(ctx context.Context, method, path string, opts, in, out any) (int, error) {
	url := h.baseURL + path
	if opts != nil {
		v, err := query.Values(opts)
		if err != nil {
			return 0, fmt.Errorf("failed to encode the query: %w", err)
		}
		if encoded := v.Encode(); encoded != "" {
			url += "?" + encoded
		}
	}

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to encode the request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare the request: %w", err)
	}
	req.Header.Set("Auth-API-Token", h.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return 0, err //nolint:wrapcheck
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read the response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, parseHetznerDNSError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse the response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

type hetznerDNSListOptions struct {
	ZoneID  string `url:"zone_id,omitempty"`
	Page    int    `url:"page"`
	PerPage int    `url:"per_page"`
}

type hetznerDNSMeta struct {
	Pagination struct {
		Page         int `json:"page"`
		PerPage      int `json:"per_page"`
		LastPage     int `json:"last_page"`
		TotalEntries int `json:"total_entries"`
	} `json:"pagination"`
}

type hetznerDNSZone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type hetznerDNSRecord struct {
	ID     string `json:"id,omitempty"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	TTL    int    `json:"ttl,omitempty"`
	ZoneID string `json:"zone_id"`
}

// ListZones lists all zones, following the pagination.
func (h HetznerDNSHandle) ListZones(ctx context.Context, ppfmt pp.PP) ([]Zone, bool) {
	if zones := h.cache.listZones.Get(struct{}{}); zones != nil {
		return zones.Value(), true
	}

	zones := []Zone{}
	for page := 1; ; page++ {
		var res struct {
			Zones []hetznerDNSZone `json:"zones"`
			Meta  hetznerDNSMeta   `json:"meta"`
		}
		opts := hetznerDNSListOptions{ZoneID: "", Page: page, PerPage: hetznerDNSPageSize}
		if code, err := h.do(ctx, http.MethodGet, "/zones", opts, nil, &res); err != nil {
			ppfmt.Warningf(pp.EmojiError, "Failed to list zones: %v", err)
			hintHetznerDNSPermission(ppfmt, code)
			return nil, false
		}

		for _, z := range res.Zones {
			zones = append(zones, Zone{ID: ID(z.ID), Name: z.Name})
		}

		if page >= res.Meta.Pagination.LastPage {
			break
		}
	}

	h.cache.listZones.DeleteExpired()
	h.cache.listZones.Set(struct{}{}, zones, ttlcache.DefaultTTL)

	return zones, true
}

// ListRecords lists all records of a zone, following the pagination.
func (h HetznerDNSHandle) ListRecords(ctx context.Context, ppfmt pp.PP, zone Zone) ([]Record, bool) {
	if rs, ok := h.cache.getRecords(zone.ID); ok {
		return rs, true
	}

	rs := []Record{}
	for page := 1; ; page++ {
		var res struct {
			Records []hetznerDNSRecord `json:"records"`
			Meta    hetznerDNSMeta     `json:"meta"`
		}
		opts := hetznerDNSListOptions{ZoneID: string(zone.ID), Page: page, PerPage: hetznerDNSPageSize}
		if code, err := h.do(ctx, http.MethodGet, "/records", opts, nil, &res); err != nil {
			ppfmt.Warningf(pp.EmojiError, "Failed to list records of the zone %s: %v", zone.Name, err)
			hintHetznerDNSPermission(ppfmt, code)
			return nil, false
		}

		for _, r := range res.Records {
			rs = append(rs, Record{ID: ID(r.ID), Type: r.Type, Name: r.Name, Value: r.Value, TTL: r.TTL})
		}

		if page >= res.Meta.Pagination.LastPage {
			break
		}
	}

	h.cache.setRecords(zone.ID, rs)

	return slices.Clone(rs), true
}

func toHetznerDNSRecord(zone Zone, r Record) hetznerDNSRecord {
	return hetznerDNSRecord{
		ID:     "",
		Type:   r.Type,
		Name:   r.Name,
		Value:  r.Value,
		TTL:    r.TTL,
		ZoneID: string(zone.ID),
	}
}

// CreateRecord creates a new record.
func (h HetznerDNSHandle) CreateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) (ID, int) {
	var res struct {
		Record hetznerDNSRecord `json:"record"`
	}

	code, err := h.do(ctx, http.MethodPost, "/records", nil, toHetznerDNSRecord(zone, r), &res)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to add a new %s record %s: %v", r.Type, r.Name, err)
		hintHetznerDNSPermission(ppfmt, code)
		h.cache.writeFailed(zone.ID, "", code)
		return "", code
	}

	r.ID = ID(res.Record.ID)
	h.cache.recordCreated(zone.ID, r)

	return r.ID, code
}

// UpdateRecord updates the record with the ID r.ID.
func (h HetznerDNSHandle) UpdateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) int {
	code, err := h.do(ctx, http.MethodPut, "/records/"+string(r.ID), nil, toHetznerDNSRecord(zone, r), nil)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to update the %s record %s (ID: %s): %v", r.Type, r.Name, r.ID, err)
		hintHetznerDNSPermission(ppfmt, code)
		h.cache.writeFailed(zone.ID, r.ID, code)
		return code
	}

	h.cache.recordUpdated(zone.ID, r)

	return code
}

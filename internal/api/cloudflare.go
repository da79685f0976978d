package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/jellydator/ttlcache/v3"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// A CloudflareAuth holds the authentication data to create a [CloudflareHandle].
type CloudflareAuth struct {
	Token   string
	BaseURL string
}

var _ DNSAuth = CloudflareAuth{} //nolint:exhaustruct

// A CloudflareHandle implements the [DNSHandle] interface with the Cloudflare API.
// Record names are relative to the zone on the [DNSHandle] side and fully qualified
// on the Cloudflare side.
type CloudflareHandle struct {
	cf    *cloudflare.API
	cache dnsCache
}

// New creates a [CloudflareHandle] from the authentication data.
func (t CloudflareAuth) New(ppfmt pp.PP, cacheExpiration time.Duration) (DNSHandle, bool) {
	handle, err := cloudflare.NewWithAPIToken(t.Token, cloudflare.UsingRetryPolicy(0, 0, 0))
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to prepare the Cloudflare authentication: %v", err)
		return nil, false
	}

	// set the base URL (mostly for testing)
	if t.BaseURL != "" {
		handle.BaseURL = t.BaseURL
	}

	return CloudflareHandle{
		cf:    handle,
		cache: newDNSCache(cacheExpiration),
	}, true
}

func hintCloudflarePermission(ppfmt pp.PP, err error) {
	var authentication *cloudflare.AuthenticationError
	var authorization *cloudflare.AuthorizationError
	if errors.As(err, &authentication) || errors.As(err, &authorization) {
		ppfmt.Hintf(pp.HintRecordPermissions,
			"Double check your Cloudflare API token. "+
				`Make sure you granted the "Edit" permission of "Zone - DNS"`)
	}
}

// cloudflareStatusCode recovers the HTTP status code from an error of the Cloudflare library.
func cloudflareStatusCode(err error) int {
	var (
		request        *cloudflare.RequestError
		authentication *cloudflare.AuthenticationError
		authorization  *cloudflare.AuthorizationError
		notFound       *cloudflare.NotFoundError
		ratelimit      *cloudflare.RatelimitError
		service        *cloudflare.ServiceError
		generic        *cloudflare.Error
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &request):
		return http.StatusBadRequest
	case errors.As(err, &authentication):
		return http.StatusUnauthorized
	case errors.As(err, &authorization):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &ratelimit):
		return http.StatusTooManyRequests
	case errors.As(err, &service):
		return http.StatusInternalServerError
	case errors.As(err, &generic):
		return generic.StatusCode
	default:
		return 0
	}
}

// toFQDN turns a name relative to the zone into a fully qualified one.
func toFQDN(zone Zone, name string) string {
	if name == "@" || name == "" {
		return zone.Name
	}
	return name + "." + zone.Name
}

// fromFQDN turns a fully qualified name into one relative to the zone.
func fromFQDN(zone Zone, fqdn string) string {
	if fqdn == zone.Name {
		return "@"
	}
	return strings.TrimSuffix(fqdn, "."+zone.Name)
}

// ListZones calls cloudflare.ListZonesContext.
func (h CloudflareHandle) ListZones(ctx context.Context, ppfmt pp.PP) ([]Zone, bool) {
	if zones := h.cache.listZones.Get(struct{}{}); zones != nil {
		return zones.Value(), true
	}

	res, err := h.cf.ListZonesContext(ctx)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to list zones: %v", err)
		hintCloudflarePermission(ppfmt, err)
		return nil, false
	}

	zones := make([]Zone, 0, len(res.Result))
	for _, z := range res.Result {
		zones = append(zones, Zone{ID: ID(z.ID), Name: z.Name})
	}

	h.cache.listZones.DeleteExpired()
	h.cache.listZones.Set(struct{}{}, zones, ttlcache.DefaultTTL)

	return zones, true
}

// ListRecords calls cloudflare.ListDNSRecords.
func (h CloudflareHandle) ListRecords(ctx context.Context, ppfmt pp.PP, zone Zone) ([]Record, bool) {
	if rs, ok := h.cache.getRecords(zone.ID); ok {
		return rs, true
	}

	//nolint:exhaustruct // Other fields are intentionally unspecified
	raw, _, err := h.cf.ListDNSRecords(ctx,
		cloudflare.ZoneIdentifier(string(zone.ID)),
		cloudflare.ListDNSRecordsParams{})
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to list records of the zone %s: %v", zone.Name, err)
		hintCloudflarePermission(ppfmt, err)
		return nil, false
	}

	rs := make([]Record, 0, len(raw))
	for _, r := range raw {
		rs = append(rs, Record{
			ID:    ID(r.ID),
			Type:  r.Type,
			Name:  fromFQDN(zone, r.Name),
			Value: r.Content,
			TTL:   r.TTL,
		})
	}

	h.cache.setRecords(zone.ID, rs)

	return slices.Clone(rs), true
}

// CreateRecord calls cloudflare.CreateDNSRecord.
func (h CloudflareHandle) CreateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) (ID, int) {
	//nolint:exhaustruct // Other fields are intentionally omitted
	params := cloudflare.CreateDNSRecordParams{
		Type:    r.Type,
		Name:    toFQDN(zone, r.Name),
		Content: r.Value,
		TTL:     r.TTL,
	}

	res, err := h.cf.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(string(zone.ID)), params)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to add a new %s record %s: %v", r.Type, r.Name, err)
		hintCloudflarePermission(ppfmt, err)
		code := cloudflareStatusCode(err)
		h.cache.writeFailed(zone.ID, "", code)
		return "", code
	}

	r.ID = ID(res.ID)
	h.cache.recordCreated(zone.ID, r)

	return r.ID, http.StatusOK
}

// UpdateRecord calls cloudflare.UpdateDNSRecord.
func (h CloudflareHandle) UpdateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, r Record) int {
	//nolint:exhaustruct // Other fields are intentionally omitted
	params := cloudflare.UpdateDNSRecordParams{
		ID:      string(r.ID),
		Type:    r.Type,
		Name:    toFQDN(zone, r.Name),
		Content: r.Value,
		TTL:     r.TTL,
	}

	_, err := h.cf.UpdateDNSRecord(ctx, cloudflare.ZoneIdentifier(string(zone.ID)), params)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to update the %s record %s (ID: %s): %v", r.Type, r.Name, r.ID, err)
		hintCloudflarePermission(ppfmt, err)
		code := cloudflareStatusCode(err)
		h.cache.writeFailed(zone.ID, r.ID, code)
		return code
	}

	h.cache.recordUpdated(zone.ID, r)

	return http.StatusOK
}

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/mocks"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

const mockHetznerToken = "hdns-token123"

func newHetznerServerHandle(t *testing.T, ppfmt pp.PP) (*http.ServeMux, api.DNSHandle) {
	t.Helper()

	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	h, ok := api.HetznerDNSAuth{Token: mockHetznerToken, BaseURL: ts.URL}.New(ppfmt, time.Hour)
	require.True(t, ok)
	require.NotNil(t, h)

	return mux, h
}

func checkHetznerToken(t *testing.T, r *http.Request) bool {
	t.Helper()
	return assert.Equal(t, []string{mockHetznerToken}, r.Header["Auth-Api-Token"])
}

func writeJSON(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprint(w, body)
}

func TestHetznerDNSNewEmptyToken(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiUserError, "The Hetzner DNS API token is empty")

	h, ok := api.HetznerDNSAuth{Token: "", BaseURL: ""}.New(mockPP, time.Hour)
	require.False(t, ok)
	require.Nil(t, h)
}

func TestHetznerDNSListZonesPaginated(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	requests := 0
	mux.HandleFunc("GET /zones", func(w http.ResponseWriter, r *http.Request) {
		if !checkHetznerToken(t, r) {
			panic(http.ErrAbortHandler)
		}
		requests++
		switch r.URL.Query().Get("page") {
		case "1":
			assert.Equal(t, url.Values{"page": {"1"}, "per_page": {"100"}}, r.URL.Query())
			writeJSON(w, http.StatusOK, `{"zones":[{"id":"z1","name":"example.org"}],
				"meta":{"pagination":{"page":1,"per_page":100,"last_page":2,"total_entries":2}}}`)
		case "2":
			writeJSON(w, http.StatusOK, `{"zones":[{"id":"z2","name":"example.com"}],
				"meta":{"pagination":{"page":2,"per_page":100,"last_page":2,"total_entries":2}}}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			panic(http.ErrAbortHandler)
		}
	})

	expected := []api.Zone{{ID: "z1", Name: "example.org"}, {ID: "z2", Name: "example.com"}}

	zones, ok := h.ListZones(context.Background(), mockPP)
	require.True(t, ok)
	require.Equal(t, expected, zones)
	require.Equal(t, 2, requests)

	// cached
	zones, ok = h.ListZones(context.Background(), mockPP)
	require.True(t, ok)
	require.Equal(t, expected, zones)
	require.Equal(t, 2, requests)
}

func TestHetznerDNSListZonesUnauthorized(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("GET /zones", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid authentication credentials"}`)
	})

	gomock.InOrder(
		mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to list zones: %v", gomock.Any()),
		mockPP.EXPECT().Hintf(pp.HintRecordPermissions,
			"Double check your Hetzner DNS API token; it can be created at https://dns.hetzner.com/settings/api-token"),
	)

	zones, ok := h.ListZones(context.Background(), mockPP)
	require.False(t, ok)
	require.Nil(t, zones)
}

func TestHetznerDNSListRecords(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("GET /records", func(w http.ResponseWriter, r *http.Request) {
		if !checkHetznerToken(t, r) ||
			!assert.Equal(t, url.Values{"zone_id": {"z1"}, "page": {"1"}, "per_page": {"100"}}, r.URL.Query()) {
			panic(http.ErrAbortHandler)
		}
		writeJSON(w, http.StatusOK, `{"records":[
			{"id":"r1","type":"A","name":"home","value":"1.2.3.4","zone_id":"z1","ttl":120},
			{"id":"r2","type":"AAAA","name":"home","value":"2001:db8::1","zone_id":"z1"}],
			"meta":{"pagination":{"page":1,"per_page":100,"last_page":1,"total_entries":2}}}`)
	})

	rs, ok := h.ListRecords(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"})
	require.True(t, ok)
	require.Equal(t, []api.Record{
		{ID: "r1", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120},
		{ID: "r2", Type: "AAAA", Name: "home", Value: "2001:db8::1", TTL: 0},
	}, rs)
}

func TestHetznerDNSListRecordsInvalidJSON(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("GET /records", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"records":`)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to list records of the zone %s: %v", "example.org", gomock.Any())

	rs, ok := h.ListRecords(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"})
	require.False(t, ok)
	require.Nil(t, rs)
}

type hetznerRecordBody struct {
	Value  string `json:"value"`
	TTL    int    `json:"ttl"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	ZoneID string `json:"zone_id"`
}

func readRecordBody(t *testing.T, r *http.Request) hetznerRecordBody {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body hetznerRecordBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHetznerDNSCreateRecord(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("POST /records", func(w http.ResponseWriter, r *http.Request) {
		if !checkHetznerToken(t, r) ||
			!assert.Equal(t, hetznerRecordBody{
				Value: "1.2.3.4", TTL: 120, Type: "A", Name: "home", ZoneID: "z1",
			}, readRecordBody(t, r)) {
			panic(http.ErrAbortHandler)
		}
		writeJSON(w, http.StatusOK, `{"record":{"id":"r9","type":"A","name":"home","value":"1.2.3.4","zone_id":"z1","ttl":120}}`)
	})

	id, code := h.CreateRecord(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"},
		api.Record{ID: "", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120})
	require.Equal(t, api.ID("r9"), id)
	require.Equal(t, http.StatusOK, code)
}

func TestHetznerDNSCreateRecordFailed(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("POST /records", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"error":{"message":"invalid value","code":422}}`)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to add a new %s record %s: %v", "A", "home",
		&api.HetznerDNSError{StatusCode: http.StatusUnprocessableEntity, Message: "invalid value"})

	id, code := h.CreateRecord(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"},
		api.Record{ID: "", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120})
	require.Equal(t, api.ID(""), id)
	require.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestHetznerDNSUpdateRecord(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	mux.HandleFunc("PUT /records/r2", func(w http.ResponseWriter, r *http.Request) {
		if !checkHetznerToken(t, r) ||
			!assert.Equal(t, hetznerRecordBody{
				Value: "2001:db8::2", TTL: 120, Type: "AAAA", Name: "home", ZoneID: "z1",
			}, readRecordBody(t, r)) {
			panic(http.ErrAbortHandler)
		}
		writeJSON(w, http.StatusOK, `{"record":{"id":"r2"}}`)
	})

	code := h.UpdateRecord(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"},
		api.Record{ID: "r2", Type: "AAAA", Name: "home", Value: "2001:db8::2", TTL: 120})
	require.Equal(t, http.StatusOK, code)
}

func TestHetznerDNSUpdateRecordServerError(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	calls := 0
	mux.HandleFunc("PUT /records/r2", func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to update the %s record %s (ID: %s): %v",
		"AAAA", "home", api.ID("r2"), gomock.Any())

	code := h.UpdateRecord(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"},
		api.Record{ID: "r2", Type: "AAAA", Name: "home", Value: "2001:db8::2", TTL: 120})
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, 1, calls)
}

func TestHetznerDNSUnreachable(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	h, ok := api.HetznerDNSAuth{Token: mockHetznerToken, BaseURL: ts.URL}.New(mockPP, time.Hour)
	require.True(t, ok)

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to update the %s record %s (ID: %s): %v",
		"A", "home", api.ID("r1"), gomock.Any())

	code := h.UpdateRecord(context.Background(), mockPP, api.Zone{ID: "z1", Name: "example.org"},
		api.Record{ID: "r1", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120})
	require.Equal(t, 0, code)
}

func TestHetznerDNSListRecordsCachedAcrossFailedCreations(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	lists, creations := 0, 0
	mux.HandleFunc("GET /records", func(w http.ResponseWriter, _ *http.Request) {
		lists++
		writeJSON(w, http.StatusOK, `{"records":[{"id":"r0","type":"TXT","name":"home","value":"hi","zone_id":"z1"}],
			"meta":{"pagination":{"page":1,"per_page":100,"last_page":1,"total_entries":1}}}`)
	})
	mux.HandleFunc("POST /records", func(w http.ResponseWriter, _ *http.Request) {
		creations++
		writeJSON(w, http.StatusInternalServerError, `{"message":"internal error"}`)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to add a new %s record %s: %v", "A", "home", gomock.Any()).Times(3)

	zone := api.Zone{ID: "z1", Name: "example.org"}
	for range 3 {
		rs, ok := h.ListRecords(context.Background(), mockPP, zone)
		require.True(t, ok)
		require.Equal(t, []api.Record{{ID: "r0", Type: "TXT", Name: "home", Value: "hi", TTL: 0}}, rs)

		id, code := h.CreateRecord(context.Background(), mockPP, zone,
			api.Record{ID: "", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120})
		require.Equal(t, api.ID(""), id)
		require.Equal(t, http.StatusInternalServerError, code)
	}
	require.Equal(t, 1, lists)
	require.Equal(t, 3, creations)
}

func TestHetznerDNSCacheFollowsWrites(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	lists := 0
	mux.HandleFunc("GET /records", func(w http.ResponseWriter, _ *http.Request) {
		lists++
		writeJSON(w, http.StatusOK, `{"records":[
			{"id":"r1","type":"A","name":"home","value":"1.2.3.4","zone_id":"z1","ttl":120},
			{"id":"r2","type":"AAAA","name":"home","value":"2001:db8::1","zone_id":"z1","ttl":120}],
			"meta":{"pagination":{"page":1,"per_page":100,"last_page":1,"total_entries":2}}}`)
	})
	mux.HandleFunc("PUT /records/r1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"record":{"id":"r1"}}`)
	})
	mux.HandleFunc("PUT /records/r2", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"record not found"}`)
	})
	mux.HandleFunc("POST /records", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"record":{"id":"r3","type":"AAAA","name":"home","value":"2001:db8::2","zone_id":"z1"}}`)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to update the %s record %s (ID: %s): %v",
		"AAAA", "home", api.ID("r2"), gomock.Any())

	zone := api.Zone{ID: "z1", Name: "example.org"}
	_, ok := h.ListRecords(context.Background(), mockPP, zone)
	require.True(t, ok)

	require.Equal(t, http.StatusOK, h.UpdateRecord(context.Background(), mockPP, zone,
		api.Record{ID: "r1", Type: "A", Name: "home", Value: "5.6.7.8", TTL: 120}))
	require.Equal(t, http.StatusNotFound, h.UpdateRecord(context.Background(), mockPP, zone,
		api.Record{ID: "r2", Type: "AAAA", Name: "home", Value: "2001:db8::2", TTL: 120}))
	id, code := h.CreateRecord(context.Background(), mockPP, zone,
		api.Record{ID: "", Type: "AAAA", Name: "home", Value: "2001:db8::2", TTL: 120})
	require.Equal(t, api.ID("r3"), id)
	require.Equal(t, http.StatusOK, code)

	rs, ok := h.ListRecords(context.Background(), mockPP, zone)
	require.True(t, ok)
	require.Equal(t, []api.Record{
		{ID: "r1", Type: "A", Name: "home", Value: "5.6.7.8", TTL: 120},
		{ID: "r3", Type: "AAAA", Name: "home", Value: "2001:db8::2", TTL: 120},
	}, rs)
	require.Equal(t, 1, lists)
}

func TestHetznerDNSCacheDroppedWithoutAnswer(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHetznerServerHandle(t, mockPP)

	lists := 0
	mux.HandleFunc("GET /records", func(w http.ResponseWriter, _ *http.Request) {
		lists++
		writeJSON(w, http.StatusOK, `{"records":[],
			"meta":{"pagination":{"page":1,"per_page":100,"last_page":1,"total_entries":0}}}`)
	})
	mux.HandleFunc("POST /records", func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	mockPP.EXPECT().Warningf(pp.EmojiError, "Failed to add a new %s record %s: %v", "A", "home", gomock.Any())

	zone := api.Zone{ID: "z1", Name: "example.org"}
	_, ok := h.ListRecords(context.Background(), mockPP, zone)
	require.True(t, ok)

	id, code := h.CreateRecord(context.Background(), mockPP, zone,
		api.Record{ID: "", Type: "A", Name: "home", Value: "1.2.3.4", TTL: 120})
	require.Equal(t, api.ID(""), id)
	require.Equal(t, 0, code)

	_, ok = h.ListRecords(context.Background(), mockPP, zone)
	require.True(t, ok)
	require.Equal(t, 2, lists)
}

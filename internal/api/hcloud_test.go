package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/mocks"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

const mockHCloudToken = "hcloud-token123"

func newHCloudServerHandle(t *testing.T, ppfmt pp.PP) (*http.ServeMux, api.FirewallHandle) {
	t.Helper()

	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	h, ok := api.HCloudAuth{Token: mockHCloudToken, Endpoint: ts.URL}.New(ppfmt, "test")
	require.True(t, ok)

	return mux, h
}

func checkHCloudToken(t *testing.T, r *http.Request) bool {
	t.Helper()
	return assert.Equal(t, []string{"Bearer " + mockHCloudToken}, r.Header["Authorization"])
}

func mockFirewallJSON(id int64, name string) string {
	return fmt.Sprintf(`{"id":%d,"name":%q,"labels":{},"created":"2016-01-30T23:55:00+00:00","rules":[],"applied_to":[]}`,
		id, name)
}

const emptyHCloudMeta = `"meta":{"pagination":{"page":1,"per_page":25,"previous_page":null,"next_page":null,"last_page":1,"total_entries":%d}}` //nolint:lll

func TestHCloudNewEmptyToken(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiUserError, "The Hetzner Cloud API token is empty")

	h, ok := api.HCloudAuth{Token: "", Endpoint: ""}.New(mockPP, "test")
	require.False(t, ok)
	require.Nil(t, h)
}

func TestHCloudGetFirewall(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		firewalls string
		total     int
		expected  api.Firewall
		found     bool
	}{
		"found":   {mockFirewallJSON(42, "home"), 1, api.Firewall{ID: 42, Name: "home"}, true},
		"missing": {"", 0, api.Firewall{}, false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mux, h := newHCloudServerHandle(t, mockPP)

			mux.HandleFunc("GET /firewalls", func(w http.ResponseWriter, r *http.Request) {
				if !checkHCloudToken(t, r) || !assert.Equal(t, "home", r.URL.Query().Get("name")) {
					panic(http.ErrAbortHandler)
				}
				writeJSON(w, http.StatusOK,
					fmt.Sprintf(`{"firewalls":[%s],`+emptyHCloudMeta+`}`, tc.firewalls, tc.total))
			})

			fw, found, ok := h.GetFirewall(context.Background(), mockPP, "home")
			require.True(t, ok)
			require.Equal(t, tc.found, found)
			require.Equal(t, tc.expected, fw)
		})
	}
}

func TestHCloudGetFirewallUnauthorized(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHCloudServerHandle(t, mockPP)

	mux.HandleFunc("GET /firewalls", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized,
			`{"error":{"code":"unauthorized","message":"unable to authenticate","details":null}}`)
	})

	gomock.InOrder(
		mockPP.EXPECT().Errorf(pp.EmojiError, "Failed to look up the firewall %q: %v", "home", gomock.Any()),
		mockPP.EXPECT().Hintf(pp.HintFirewallPermissions,
			"Double check your Hetzner Cloud API token. "+
				`Make sure it belongs to the right project and has the "Read & Write" permission`),
	)

	fw, found, ok := h.GetFirewall(context.Background(), mockPP, "home")
	require.False(t, ok)
	require.False(t, found)
	require.Equal(t, api.Firewall{}, fw)
}

func TestHCloudCreateFirewall(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHCloudServerHandle(t, mockPP)

	mux.HandleFunc("POST /firewalls", func(w http.ResponseWriter, r *http.Request) {
		if !checkHCloudToken(t, r) {
			panic(http.ErrAbortHandler)
		}
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		if !assert.Equal(t, "home", body["name"]) {
			panic(http.ErrAbortHandler)
		}
		writeJSON(w, http.StatusCreated, fmt.Sprintf(`{"firewall":%s,"actions":[]}`, mockFirewallJSON(42, "home")))
	})

	require.True(t, h.CreateFirewall(context.Background(), mockPP, "home"))
}

type hcloudRuleBody struct {
	Direction      string   `json:"direction"`
	Protocol       string   `json:"protocol"`
	Port           *string  `json:"port"`
	Description    *string  `json:"description"`
	SourceIPs      []string `json:"source_ips"`
	DestinationIPs []string `json:"destination_ips"`
}

func TestHCloudSetFirewallRules(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHCloudServerHandle(t, mockPP)

	var got []hcloudRuleBody
	mux.HandleFunc("POST /firewalls/42/actions/set_rules", func(w http.ResponseWriter, r *http.Request) {
		if !checkHCloudToken(t, r) {
			panic(http.ErrAbortHandler)
		}
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body struct {
			Rules []hcloudRuleBody `json:"rules"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		for _, rule := range body.Rules {
			if len(rule.SourceIPs) == 0 {
				rule.SourceIPs = nil
			}
			if len(rule.DestinationIPs) == 0 {
				rule.DestinationIPs = nil
			}
			got = append(got, rule)
		}
		writeJSON(w, http.StatusCreated, `{"actions":[{"id":13,"command":"set_firewall_rules","status":"success",
			"progress":100,"started":"2016-01-30T23:55:00+00:00","finished":"2016-01-30T23:56:00+00:00",
			"resources":[{"id":42,"type":"firewall"}],"error":null}]}`)
	})

	prefixes := []netip.Prefix{
		netip.MustParsePrefix("1.2.3.4/32"),
		netip.MustParsePrefix("2001:db8::1/128"),
	}
	ok := h.SetFirewallRules(context.Background(), mockPP, api.Firewall{ID: 42, Name: "home"}, []api.FirewallRule{
		{Direction: api.DirectionIn, Protocol: api.ProtocolTCP, Port: "22", Description: "ssh", SourceIPs: prefixes},
		{Direction: api.DirectionIn, Protocol: api.ProtocolICMP, Port: "", Description: "", SourceIPs: prefixes},
		{Direction: api.DirectionOut, Protocol: api.ProtocolUDP, Port: "80-85", Description: "", SourceIPs: prefixes},
	})
	require.True(t, ok)

	port22, port80, ssh := "22", "80-85", "ssh"
	require.Equal(t, []hcloudRuleBody{
		{
			Direction: "in", Protocol: "tcp", Port: &port22, Description: &ssh,
			SourceIPs: []string{"1.2.3.4/32", "2001:db8::1/128"}, DestinationIPs: nil,
		},
		{
			Direction: "in", Protocol: "icmp", Port: nil, Description: nil,
			SourceIPs: []string{"1.2.3.4/32", "2001:db8::1/128"}, DestinationIPs: nil,
		},
		{
			Direction: "out", Protocol: "udp", Port: &port80, Description: nil,
			SourceIPs: nil, DestinationIPs: []string{"1.2.3.4/32", "2001:db8::1/128"},
		},
	}, got)
}

func TestHCloudSetFirewallRulesFailed(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mux, h := newHCloudServerHandle(t, mockPP)

	mux.HandleFunc("POST /firewalls/42/actions/set_rules", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity,
			`{"error":{"code":"invalid_input","message":"invalid input in field 'rules'","details":null}}`)
	})

	mockPP.EXPECT().Errorf(pp.EmojiError, "Failed to set the rules of the firewall %q: %v", "home", gomock.Any())

	ok := h.SetFirewallRules(context.Background(), mockPP, api.Firewall{ID: 42, Name: "home"}, nil)
	require.False(t, ok)
}

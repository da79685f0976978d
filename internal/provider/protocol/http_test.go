package protocol_test

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/mocks"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/provider/protocol"
)

func TestHTTPName(t *testing.T) {
	t.Parallel()

	p := &protocol.HTTP{
		ProviderName: "very secret name",
		URLs:         nil,
	}

	require.Equal(t, "very secret name", p.Name())
}

func writer(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, body)
	}
}

func TestHTTPGetIP4(t *testing.T) {
	t.Parallel()

	ip4 := netip.MustParseAddr("1.2.3.4")

	good := newSplitServer(t, ipnet.IP4, writer("1.2.3.4\n"))
	good2 := newSplitServer(t, ipnet.IP4, writer("5.6.7.8"))
	empty := newSplitServer(t, ipnet.IP4, writer("  \n"))
	hello := newSplitServer(t, ipnet.IP4, writer("hello"))
	ip6 := newSplitServer(t, ipnet.IP4, writer("2001:db8::1"))
	broken := newSplitServer(t, ipnet.IP4, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for name, tc := range map[string]struct {
		urls          []string
		expected      netip.Addr
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"first": {[]string{good.URL, good2.URL}, ip4, true, nil},
		"trimmed": {[]string{good.URL}, ip4, true, nil},
		"fallback/empty": {
			[]string{empty.URL, good.URL}, ip4, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiError, "The response of %q is empty", empty.URL)
			},
		},
		"fallback/illformed": {
			[]string{hello.URL, good.URL}, ip4, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiError, `Failed to parse the IP address in the response of %q: %s`, hello.URL, "hello")
			},
		},
		"fallback/status": {
			[]string{broken.URL, good.URL}, ip4, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiError, "Failed to send HTTP(S) request to %q: %v", broken.URL, gomock.Any())
			},
		},
		"fallback/wrong-family": {
			[]string{ip6.URL, good.URL}, ip4, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiError, "%q is not a valid IPv4 address", "2001:db8::1")
			},
		},
		"all-fail": {
			[]string{empty.URL, hello.URL}, netip.Addr{}, false,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Warningf(pp.EmojiError, "The response of %q is empty", empty.URL),
					m.EXPECT().Warningf(pp.EmojiError, `Failed to parse the IP address in the response of %q: %s`, hello.URL, "hello"),
					m.EXPECT().Warningf(pp.EmojiError, "Failed to detect the %s address using any of the %d endpoint(s)", "IPv4", 2),
				)
			},
		},
		"request-fail": {
			[]string{""}, netip.Addr{}, false,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Warningf(pp.EmojiError, "Failed to send HTTP(S) request to %q: %v", "", gomock.Any()),
					m.EXPECT().Warningf(pp.EmojiError, "Failed to detect the %s address using any of the %d endpoint(s)", "IPv4", 1),
				)
			},
		},
		"not-handled": {
			nil, netip.Addr{}, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiImpossible, "Unhandled IP network: %s", "IPv4")
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)

			provider := &protocol.HTTP{
				ProviderName: "",
				URLs:         map[ipnet.Type][]string{ipnet.IP4: tc.urls},
			}

			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ip, ok := provider.GetIP(context.Background(), mockPP, ipnet.IP4)
			require.Equal(t, tc.expected, ip)
			require.Equal(t, tc.ok, ok)
		})
	}
}

func TestHTTPGetIPStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	var secondHits atomic.Int32
	first := newSplitServer(t, ipnet.IP4, writer("1.2.3.4"))
	second := newSplitServer(t, ipnet.IP4, func(w http.ResponseWriter, _ *http.Request) {
		secondHits.Add(1)
		fmt.Fprint(w, "5.6.7.8")
	})

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	p := &protocol.HTTP{
		ProviderName: "",
		URLs:         map[ipnet.Type][]string{ipnet.IP4: {first.URL, second.URL}},
	}
	ip, ok := p.GetIP(context.Background(), mockPP, ipnet.IP4)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("1.2.3.4"), ip)
	require.Zero(t, secondHits.Load())
}

func TestHTTPGetIP6(t *testing.T) {
	t.Parallel()

	server := newSplitServer(t, ipnet.IP6, writer("2001:db8::1"))

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	p := &protocol.HTTP{
		ProviderName: "",
		URLs:         map[ipnet.Type][]string{ipnet.IP6: {server.URL}},
	}
	ip, ok := p.GetIP(context.Background(), mockPP, ipnet.IP6)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("2001:db8::1"), ip)
}

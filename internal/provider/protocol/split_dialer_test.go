package protocol_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/hetzner-ddns/internal/ipnet"
	"github.com/favonia/hetzner-ddns/internal/provider/protocol"
)

func mustListen(t *testing.T, ipNet ipnet.Type) net.Listener {
	t.Helper()

	var (
		l   net.Listener
		err error
	)
	switch ipNet {
	case ipnet.IP4:
		l, err = net.Listen("tcp4", "127.0.0.1:0") //nolint:noctx
	case ipnet.IP6:
		l, err = net.Listen("tcp6", "[::1]:0") //nolint:noctx
	default:
		t.Fatalf("unhandled IP network %d", ipNet)
	}
	if err != nil {
		t.Skipf("cannot listen on the %s loopback address: %v", ipNet.Describe(), err)
	}
	return l
}

func newSplitServer(t *testing.T, ipNet ipnet.Type, h http.HandlerFunc) *httptest.Server {
	t.Helper()

	s := &httptest.Server{ //nolint:exhaustruct
		Listener: mustListen(t, ipNet),
		Config:   &http.Server{Handler: h, ReadHeaderTimeout: time.Minute}, //nolint:exhaustruct
	}
	s.Start()
	t.Cleanup(s.Close)
	return s
}

func TestSharedSplitClient(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		dialerNet ipnet.Type
		serverNet ipnet.Type
		ok        bool
		output    []byte
	}{
		"4":    {ipnet.IP4, ipnet.IP4, true, []byte("hello")},
		"6":    {ipnet.IP6, ipnet.IP6, true, []byte("hello")},
		"4to6": {ipnet.IP4, ipnet.IP6, false, []byte{}},
		"6to4": {ipnet.IP6, ipnet.IP4, false, []byte{}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := newSplitServer(t, tc.serverNet, func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, "hello")
			})

			client := protocol.SharedSplitClient(tc.dialerNet)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			output := []byte{}
			if err == nil {
				output, _ = io.ReadAll(resp.Body)
				defer resp.Body.Close()
			}

			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
			require.Equal(t, tc.output, output)
		})
	}
}

func TestSharedSplitRetryableClient(t *testing.T) {
	t.Parallel()

	c := protocol.SharedSplitRetryableClient(ipnet.IP4)
	require.Equal(t, 0, c.RetryMax)
	require.Nil(t, c.Logger)
	require.Same(t, protocol.SharedSplitClient(ipnet.IP4), c.HTTPClient)

	protocol.CloseIdleConnections()
}

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/mocks"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func TestPrintRedactsTokens(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ppfmt := pp.New(&buf)

	c := validConfig()
	c.FirewallRules = append(c.FirewallRules,
		api.FirewallRule{Direction: api.DirectionOut, Protocol: api.ProtocolICMP, Port: "", Description: "", SourceIPs: nil})
	c.ShoutrrrURLs = []string{"generic://localhost/"}
	require.True(t, c.Normalize(ppfmt))

	buf.Reset()
	c.Print(ppfmt)

	out := buf.String()
	require.NotContains(t, out, "hc-token")
	require.NotContains(t, out, "dns-token")
	require.Contains(t, out, "(redacted)")
	require.Contains(t, out, "in tcp 22 (ssh)")
	require.Contains(t, out, "out icmp")
	require.Contains(t, out, "home")
	require.Contains(t, out, "example.com")
	require.Contains(t, out, "@every 10m0s")
	require.Contains(t, out, "Notifiers (via shoutrrr):")
	require.NotContains(t, out, "Monitors:")
}

func TestPrintHidden(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().IsShowing(pp.Info).Return(false)

	validConfig().Print(mockPP)
}

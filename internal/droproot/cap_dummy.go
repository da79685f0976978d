//go:build !linux || nocapdrop

package droproot

import (
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func tryRaiseCapabilitySETUID() {}
func tryRaiseCapabilitySETGID() {}

func dropCapabilities(ppfmt pp.PP) {
	ppfmt.Infof(pp.EmojiDisabled, "Support of Linux capabilities was disabled")
}

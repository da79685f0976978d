//go:build linux && !nocapdrop

package droproot

import (
	"kernel.org/pub/linux/libs/security/libcap/cap"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// tryRaiseCapability attempts to raise the capability val.
//
// The newly gained capability (if any) will be dropped by dropCapabilities later.
// Some setups allow raising SETUID or SETGID even when they are not effective.
func tryRaiseCapability(val cap.Value) {
	c, err := cap.GetPID(0)
	if err != nil {
		return
	}

	if err := c.SetFlag(cap.Effective, true, val); err != nil {
		return
	}

	_ = c.SetProc()
}

func tryRaiseCapabilitySETUID() { tryRaiseCapability(cap.SETUID) }
func tryRaiseCapabilitySETGID() { tryRaiseCapability(cap.SETGID) }

// dropCapabilities drops all capabilities as the last step.
func dropCapabilities(ppfmt pp.PP) {
	_ = cap.NewSet().SetProc()
	checkCapabilities(ppfmt)
}

func checkCapabilities(ppfmt pp.PP) {
	now := cap.GetProc()
	diff, err := now.Cf(cap.NewSet())
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to check Linux capabilities: %v", err)
	case diff != 0:
		ppfmt.Warningf(pp.EmojiWarning, "Failed to drop all Linux capabilities; current ones: %v", now)
	}
}

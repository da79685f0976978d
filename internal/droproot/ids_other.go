//go:build !linux

package droproot

import (
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func setGroups(ppfmt pp.PP, _ int) {
	ppfmt.Infof(pp.EmojiDisabled, "Changing group IDs is only supported on Linux")
}

func setUser(ppfmt pp.PP, _ int) {
	ppfmt.Infof(pp.EmojiDisabled, "Changing user IDs is only supported on Linux")
}

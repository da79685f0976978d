//go:build linux

package droproot

import (
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

func checkUserID(ppfmt pp.PP, uid int) {
	if euid := syscall.Geteuid(); euid != uid {
		ppfmt.Warningf(pp.EmojiUserWarning, "Failed to reset user ID to %d; current one: %d", uid, euid)
	}
}

func checkGroupIDs(ppfmt pp.PP, gid int) {
	egid := syscall.Getegid()
	groups, err := syscall.Getgroups()
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to get supplementary group IDs: %v", err)
		return
	}

	if egid == gid && !slices.ContainsFunc(groups, func(g int) bool { return g != gid }) {
		return
	}

	descriptions := make([]string, 1, len(groups)+1)
	descriptions[0] = strconv.Itoa(egid)
	for _, g := range groups {
		if g != egid {
			descriptions = append(descriptions, strconv.Itoa(g))
		}
	}
	ppfmt.Warningf(pp.EmojiUserWarning,
		"Failed to reset group IDs to only %d; current ones: %s",
		gid, strings.Join(descriptions, ", "))
}

// setGroups erases all supplementary groups and sets all group IDs at once.
// Setresgid is used directly because cap.SetGroups fails without SETGID even when Setresgid would work.
func setGroups(ppfmt pp.PP, gid int) {
	tryRaiseCapabilitySETGID()

	_ = syscall.Setgroups([]int{})
	_ = syscall.Setresgid(gid, gid, gid)

	checkGroupIDs(ppfmt, gid)
}

// setUser sets all user IDs at once.
func setUser(ppfmt pp.PP, uid int) {
	tryRaiseCapabilitySETUID()

	_ = syscall.Setresuid(uid, uid, uid)

	checkUserID(ppfmt, uid)
}

// Package droproot drops root privileges.
package droproot

import (
	"os"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// DefaultID computes the fallback user or group ID: the effective one, then the real one, then 1000.
func DefaultID(effective, realID int) int {
	switch {
	case effective != 0:
		return effective
	case realID != 0:
		return realID
	default:
		return 1000
	}
}

// DefaultUserID is the fallback of PUID for the current process.
func DefaultUserID() int { return DefaultID(os.Geteuid(), os.Getuid()) }

// DefaultGroupID is the fallback of PGID for the current process.
func DefaultGroupID() int { return DefaultID(os.Getegid(), os.Getgid()) }

// DropPrivileges switches to the given user and group and then drops all capabilities.
// The group is changed first because the user ID may be what grants the power to do so.
func DropPrivileges(ppfmt pp.PP, uid, gid int) {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiPrivileges, "Dropping privileges . . .")
		ppfmt = ppfmt.Indent()
	}

	setGroups(ppfmt, gid)
	setUser(ppfmt, uid)
	dropCapabilities(ppfmt)
}

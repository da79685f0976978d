package cron

import (
	"fmt"
	"time"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

const (
	// lateThreshold is how far behind the schedule a cycle must be before it is mentioned.
	lateThreshold = 5 * time.Second

	// clockThreshold is the wait from which the wall-clock time is also shown.
	clockThreshold = time.Minute
)

// DescribeTime formats the target in the local time zone, omitting the date parts it shares with now.
func DescribeTime(now, target time.Time) string {
	now, target = now.Local(), target.Local()

	switch {
	case now.Year() != target.Year():
		return target.Format("Jan 2 2006 15:04")
	case now.YearDay() != target.YearDay():
		return target.Format("Jan 2 15:04")
	default:
		return target.Format("15:04")
	}
}

func describeWait(now, target time.Time) (pp.Emoji, string) {
	wait := target.Sub(now).Round(time.Second)

	switch {
	case wait < -lateThreshold:
		return pp.EmojiNow, fmt.Sprintf("now (%v behind schedule)", -wait)
	case wait < time.Second:
		return pp.EmojiNow, "now"
	case wait < clockThreshold:
		return pp.EmojiAlarm, fmt.Sprintf("in %v", wait)
	default:
		return pp.EmojiAlarm, fmt.Sprintf("in %v (at %s)", wait, DescribeTime(now, target))
	}
}

// PrintCountdown logs when the activity will happen next.
func PrintCountdown(ppfmt pp.PP, activity string, now, target time.Time) {
	emoji, wait := describeWait(now, target)
	ppfmt.Infof(emoji, "%s %s . . .", activity, wait)
}

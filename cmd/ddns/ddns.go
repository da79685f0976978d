// Package main is the entry point of the Hetzner DDNS updater.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/favonia/hetzner-ddns/internal/api"
	"github.com/favonia/hetzner-ddns/internal/config"
	"github.com/favonia/hetzner-ddns/internal/cron"
	"github.com/favonia/hetzner-ddns/internal/droproot"
	"github.com/favonia/hetzner-ddns/internal/message"
	"github.com/favonia/hetzner-ddns/internal/pp"
	"github.com/favonia/hetzner-ddns/internal/setter"
	"github.com/favonia/hetzner-ddns/internal/signal"
	"github.com/favonia/hetzner-ddns/internal/updater"
)

// Version is the version of the updater that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "Hetzner DDNS"
	}
	return fmt.Sprintf("Hetzner DDNS (%s)", Version)
}

// handles bundles everything that talks to the providers.
type handles struct {
	dns      api.DNSHandle
	firewall api.FirewallHandle
	setter   setter.Setter
}

func initHandles(ppfmt pp.PP, c *config.Config) (handles, bool) {
	var h handles

	dns, ok := c.DNSAuth().New(ppfmt, c.CacheExpiration)
	if !ok {
		return h, false
	}

	fw, ok := c.FirewallAuth().New(ppfmt, Version)
	if !ok {
		return h, false
	}

	s, ok := setter.New(ppfmt, dns, fw)
	if !ok {
		return h, false
	}

	return handles{dns: dns, firewall: fw, setter: s}, true
}

// reportCycle passes the outcome of one cycle to the monitors and the notifiers.
// It returns false if the updater should stop.
func reportCycle(ctx context.Context, ppfmt pp.PP, c *config.Config, result updater.Result, msg message.Message) bool {
	c.Notifier.Send(ctx, ppfmt, msg.NotifierMessage)

	if result == updater.ResultFatal {
		c.Monitor.ExitStatus(ctx, ppfmt, 1, msg.MonitorMessage.Format())
		return false
	}

	c.Monitor.Ping(ctx, ppfmt, msg.MonitorMessage)
	return true
}

func stopUpdating(ctx context.Context, ppfmt pp.PP, c *config.Config, code int, reason string) int {
	c.Monitor.ExitStatus(ctx, ppfmt, code, reason)
	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return code
}

func main() {
	os.Exit(realMain())
}

func realMain() int { //nolint:funlen
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji(config.EmojiKey, &ppfmt) || !config.ReadQuiet(config.QuietKey, &ppfmt) {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the updater
	ppfmt.Noticef(pp.EmojiStar, formatName())

	// Catch signals SIGINT and SIGTERM
	sig := signal.Setup()
	ctx := context.Background()

	// Read the config and drop the privileges as soon as the token files are read
	c, ok := config.Read(ppfmt, config.ConfigFile())
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	ppfmt = ppfmt.Redact(c.Secrets()...)
	droproot.DropPrivileges(ppfmt, c.UID, c.GID)
	c.Print(ppfmt)

	h, ok := initHandles(ppfmt, c)
	c.Monitor.Start(ctx, ppfmt, formatName())
	if !ok {
		return stopUpdating(ctx, ppfmt, c, 1, "Config errors")
	}

	// The zone and the firewall are resolved once at startup
	s := updater.NewState()
	{
		ctxWithSignals, cancel := signal.NotifyContext(ctx)
		ok = updater.ResolveIdentifiers(ctxWithSignals, ppfmt, c, h.dns, h.firewall, s)
		cancel()
	}
	if sig.Caught(ppfmt) {
		return stopUpdating(ctx, ppfmt, c, 0, "Terminated")
	}
	if !ok {
		msg := message.NewFailuref("Failed to look up the firewall %q or the zone %s.", c.FirewallName, c.ZoneName)
		c.Notifier.Send(ctx, ppfmt, msg.NotifierMessage)
		return stopUpdating(ctx, ppfmt, c, 1, "Failed to look up the firewall or the zone")
	}

	for {
		// The next time to run the updater.
		// This is called before running the updater so that the timer would not be delayed by the updating.
		next := cron.Next(c.UpdateCron)

		ctxWithSignals, cancel := signal.NotifyContext(ctx)
		result, msg := updater.UpdateIPs(ctxWithSignals, ppfmt, c, s, h.dns, h.firewall, h.setter)
		cancel()

		// A signal during the cycle is not a failure of the cycle
		if sig.Caught(ppfmt) {
			return stopUpdating(ctx, ppfmt, c, 0, "Terminated")
		}

		if !reportCycle(ctx, ppfmt, c, result, msg) {
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 1
		}

		// Display the remaining time interval
		cron.PrintCountdown(ppfmt, "Checking the IP addresses", time.Now(), next)

		// Wait for the next signal or the alarm, whichever comes first
		if !sig.SleepUntil(ppfmt, next) {
			return stopUpdating(ctx, ppfmt, c, 0, "Terminated")
		}
	}
}

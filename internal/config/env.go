package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/favonia/hetzner-ddns/internal/file"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

// Keys of environment variables.
const (
	ConfigFileKey      = "CONFIG_FILE"
	HCloudTokenKey     = "HCLOUD_TOKEN"
	HCloudTokenFileKey = "HCLOUD_TOKEN_FILE"
	DNSTokenKey        = "HDNS_TOKEN"
	DNSTokenFileKey    = "HDNS_TOKEN_FILE"
	EmojiKey           = "EMOJI"
	QuietKey           = "QUIET"
	UserIDKey          = "PUID"
	GroupIDKey         = "PGID"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ConfigFile gives the path of the configuration file.
func ConfigFile() string {
	if path := Getenv(ConfigFileKey); path != "" {
		return path
	}
	return DefaultConfigFile
}

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	valEmoji := Getenv(key)
	if valEmoji == "" {
		return true
	}

	emoji, err := strconv.ParseBool(valEmoji)
	if err != nil {
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, valEmoji, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)

	return true
}

// ReadQuiet reads an environment variable as quiet/verbose.
func ReadQuiet(key string, ppfmt *pp.PP) bool {
	valQuiet := Getenv(key)
	if valQuiet == "" {
		return true
	}

	quiet, err := strconv.ParseBool(valQuiet)
	if err != nil {
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, valQuiet, err)
		return false
	}

	if quiet {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Quiet)
	} else {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Verbose)
	}

	return true
}

// ReadLinuxID reads an environment variable as a user or group ID.
func ReadLinuxID(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	id, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case id < 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) is negative", key, id)
		return false

	case id == 0:
		ppfmt.Warningf(pp.EmojiUserWarning, "%s (%d) is 0 (root); the updater will keep the root privileges", key, id)
		*field = id
		return true

	default:
		*field = id
		return true
	}
}

// ReadToken overrides the token with the environment variable key
// or the file named by the environment variable fileKey.
func ReadToken(ppfmt pp.PP, key, fileKey string, field *string) bool {
	token := Getenv(key)

	if path := Getenv(fileKey); path != "" {
		tokenFromFile, ok := file.ReadString(ppfmt, path)
		if !ok {
			return false
		}
		if tokenFromFile == "" {
			ppfmt.Errorf(pp.EmojiUserError, "The file specified by %s does not contain a token", fileKey)
			return false
		}
		if token != "" && token != tokenFromFile {
			ppfmt.Errorf(pp.EmojiUserError,
				"The values of %s and %s do not match; they must specify the same token", key, fileKey)
			return false
		}
		token = tokenFromFile
	}

	if token != "" {
		*field = token
	}
	return true
}

// ReadEnv reads the environment variables that override the configuration file.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	return ReadToken(ppfmt, HCloudTokenKey, HCloudTokenFileKey, &c.HCloudToken) &&
		ReadToken(ppfmt, DNSTokenKey, DNSTokenFileKey, &c.DNSToken) &&
		ReadLinuxID(ppfmt, UserIDKey, &c.UID) &&
		ReadLinuxID(ppfmt, GroupIDKey, &c.GID)
}

// Package file reads configuration and secret files through a swappable file system.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/favonia/hetzner-ddns/internal/pp"
)

// FS is the file system used by all readers in this package.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadBytes reads the whole file.
func ReadBytes(ppfmt pp.PP, path string) ([]byte, bool) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return nil, false
	}

	return body, true
}

// ReadString reads the file and trims the surrounding spaces.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	body, ok := ReadBytes(ppfmt, path)
	if !ok {
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}

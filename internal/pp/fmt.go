package pp

import (
	"fmt"
	"io"
	"strings"
)

// Redacted replaces secrets in the output of a printer made by [PP.Redact].
const Redacted = "[redacted]"

type formatter struct {
	writer    io.Writer
	emoji     bool
	prefix    string // accumulated indentation
	hintShown map[Hint]bool
	verbosity Verbosity
	redactor  *strings.Replacer // nil when there is nothing to redact
}

// New creates a new pretty printer.
func New(writer io.Writer) PP {
	return formatter{
		writer:    writer,
		emoji:     true,
		prefix:    "",
		hintShown: map[Hint]bool{},
		verbosity: DefaultVerbosity,
		redactor:  nil,
	}
}

// SetEmoji sets whether emojis should be printed.
func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

// SetVerbosity sets messages of what verbosity levels should be printed.
func (f formatter) SetVerbosity(v Verbosity) PP {
	f.verbosity = v
	return f
}

// IsShowing checks whether a message of verbosity level v will be printed.
func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

// Indent returns a new printer that indents the messages more than the input printer.
func (f formatter) Indent() PP {
	f.prefix += indentPrefix
	return f
}

// Redact returns a new printer that hides the secrets. Longer secrets are replaced first
// so that a token inside a URL does not leave the rest of the URL behind.
func (f formatter) Redact(secrets ...string) PP {
	oldnew := make([]string, 0, 2*len(secrets)) //nolint:mnd
	for _, secret := range sortByLengthDesc(secrets) {
		if secret != "" {
			oldnew = append(oldnew, secret, Redacted)
		}
	}
	if len(oldnew) > 0 {
		f.redactor = strings.NewReplacer(oldnew...)
	}
	return f
}

func (f formatter) output(v Verbosity, emoji Emoji, msg string) {
	if !f.IsShowing(v) {
		return
	}

	msg = strings.TrimSuffix(msg, "\n")
	if f.redactor != nil {
		msg = f.redactor.Replace(msg)
	}

	var line strings.Builder
	line.WriteString(f.prefix)
	if f.emoji {
		line.WriteString(string(emoji))
		line.WriteString(" ")
	}
	line.WriteString(msg)
	line.WriteString("\n")

	io.WriteString(f.writer, line.String()) //nolint:errcheck
}

func (f formatter) printf(v Verbosity, emoji Emoji, format string, args ...any) {
	f.output(v, emoji, fmt.Sprintf(format, args...))
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.printf(Info, emoji, format, args...)
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.printf(Notice, emoji, format, args...)
}

// Warningf formats and sends a message at the level [Warning].
func (f formatter) Warningf(emoji Emoji, format string, args ...any) {
	f.printf(Warning, emoji, format, args...)
}

// Errorf formats and sends a message at the level [Error].
func (f formatter) Errorf(emoji Emoji, format string, args ...any) {
	f.printf(Error, emoji, format, args...)
}

// SuppressHint marks the hint as shown. The map is shared by all printers derived from the same [New].
func (f formatter) SuppressHint(hint Hint) {
	f.hintShown[hint] = true
}

// Hintf prints the hint with [EmojiHint] at the level [Info], once per hint.
func (f formatter) Hintf(hint Hint, format string, args ...any) {
	if f.hintShown[hint] {
		return
	}
	f.hintShown[hint] = true
	f.Infof(EmojiHint, format, args...)
}

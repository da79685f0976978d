// Package domain normalizes zone and record names.
package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

// Apex is the record name of the zone apex.
const Apex = "@"

// Wildcard is the leading label of a wildcard record name.
const Wildcard = "*"

// profileDroppingLeadingDots does C2 in UTS#46 with all checks on + removing leading dots.
//
//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
	// Record names may hold service labels such as "_dmarc".
	profileRecordNames = idna.New(
		idna.MapForLookup(),
		idna.StrictDomainName(false),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
)

// ErrNotFQDN means a zone name is not fully qualified.
var ErrNotFQDN = errors.New("not fully qualified")

// ErrEmpty means a name is empty.
var ErrEmpty = errors.New("empty name")

// ErrInvalidRune means a record name has a character other than letters, digits,
// hyphens, underscores, and a leading wildcard label.
var ErrInvalidRune = errors.New("invalid character in name")

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToU := profileKeepingLeadingDots.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

func toASCII(name string) (string, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(name)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	return normalized, err
}

// NormalizeZone converts a zone name to its ASCII form. A zone must contain at least one dot.
func NormalizeZone(zone string) (string, error) {
	normalized, err := toASCII(zone)
	switch {
	case err != nil:
		return normalized, err
	case normalized == "":
		return "", ErrEmpty
	case !strings.Contains(normalized, "."):
		return normalized, ErrNotFQDN
	default:
		return normalized, nil
	}
}

func isRecordNameRune(r rune) bool {
	return r == '.' || r == '-' || r == '_' ||
		('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}

// NormalizeRecordName converts a record name relative to its zone to its ASCII form.
// An empty name or "@" denotes the zone apex. The name may start with the label "*".
func NormalizeRecordName(name string) (string, error) {
	if name == "" || name == Apex {
		return Apex, nil
	}
	if name == Wildcard {
		return Wildcard, nil
	}

	prefix := ""
	if rest, ok := strings.CutPrefix(name, Wildcard+"."); ok {
		prefix, name = Wildcard+".", rest
	}

	normalized, err := profileRecordNames.ToASCII(name)
	normalized = strings.TrimRight(normalized, ".")
	switch {
	case err != nil:
		return prefix + normalized, err
	case normalized == "":
		return "", ErrEmpty
	case strings.IndexFunc(normalized, func(r rune) bool { return !isRecordNameRune(r) }) >= 0:
		return prefix + normalized, ErrInvalidRune
	default:
		return prefix + normalized, nil
	}
}

// FQDN joins a normalized record name and a normalized zone.
func FQDN(name, zone string) string {
	if name == Apex {
		return zone
	}
	return name + "." + zone
}

// Describe gives a human-readable form of a normalized name.
func Describe(ascii string) string {
	if ascii == Apex || ascii == Wildcard {
		return ascii
	}
	if rest, ok := strings.CutPrefix(ascii, Wildcard+"."); ok {
		return Wildcard + "." + safelyToUnicode(rest)
	}
	return safelyToUnicode(ascii)
}

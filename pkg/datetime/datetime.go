// Package datetime converts epoch timestamps and date strings to ISO-8601.
//
// Conversion is best-effort: an unparseable value or unknown timezone
// identifier yields ("", false) rather than an error, and callers are
// expected to check the boolean.
package datetime

import (
	"time"
)

// ISOLayout renders an explicit UTC offset, e.g. 2024-10-27T12:00:00+00:00.
const ISOLayout = "2006-01-02T15:04:05-07:00"

// parseLayouts are tried in order when converting a date string. All are
// locale-agnostic.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ISOFromUnix formats POSIX epoch seconds as ISO-8601 in the given zone.
// An empty zone means the process default. Returns ("", false) for an
// unknown zone identifier.
func ISOFromUnix(sec int64, zone string) (string, bool) {
	loc, ok := resolveZone(zone)
	if !ok {
		return "", false
	}
	return time.Unix(sec, 0).In(loc).Format(ISOLayout), true
}

// ISOFromString parses a date/time string and formats it as ISO-8601 in the
// given zone. Strings without an explicit offset are interpreted in that
// zone. Returns ("", false) when the value does not parse or the zone is
// unknown.
func ISOFromString(value, zone string) (string, bool) {
	loc, ok := resolveZone(zone)
	if !ok {
		return "", false
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc).Format(ISOLayout), true
		}
	}
	return "", false
}

// ValidZone reports whether name is a known IANA timezone identifier.
func ValidZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func resolveZone(zone string) (*time.Location, bool) {
	if zone == "" {
		return time.Local, true
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, false
	}
	return loc, true
}

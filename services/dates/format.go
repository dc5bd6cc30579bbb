package dates

import (
	"strconv"
	"strings"
	"time"
)

// Style selects a display format.
type Style string

const (
	// StyleShort renders 12/23/2024
	StyleShort Style = "short"
	// StyleLong renders Mon, December 23, 2024
	StyleLong Style = "long"
	// StyleCompact renders Dec 23
	StyleCompact Style = "compact"
)

// ParseStyle maps a query or template value to a Style, defaulting to StyleShort.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleLong:
		return StyleLong
	case StyleCompact:
		return StyleCompact
	default:
		return StyleShort
	}
}

// FormatForDisplay renders a date for people. The day is rebuilt from its
// numeric year, month and day fields rather than parsed as a timestamp, so the
// rendered day is the stored day.
func FormatForDisplay(s string, style Style) string {
	parts := strings.Split(Canonicalize(s), "-")
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	d := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)

	switch style {
	case StyleLong:
		return d.Format("Mon, January 2, 2006")
	case StyleCompact:
		return d.Format("Jan 2")
	default:
		return d.Format("1/2/2006")
	}
}

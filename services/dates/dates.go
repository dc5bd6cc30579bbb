// Package dates handles booking dates as calendar days.
//
// A booking date is a calendar day, not a moment in time: "Dec 23" means Dec 23
// wherever the code runs. Every input is reduced to a canonical YYYY-MM-DD
// string, fields are always read in UTC, and whenever a time.Time is needed it
// is anchored at 12:00 UTC so that no realistic offset (±12h) can push it into
// a neighbouring day. All hotels in this system are in PST (UTC-8), which is
// exactly the offset that breaks midnight-anchored dates.
//
// Nothing in this package returns an error to its callers. Malformed input is
// logged and replaced with a documented fallback (usually today).
package dates

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
)

// Layout is the canonical calendar-date layout.
const Layout = "2006-01-02"

// Bounds of the four-digit year range.
const (
	MinDay = "0000-01-01"
	MaxDay = "9999-12-31"
)

var (
	// ErrUnparseable reports input that no supported layout accepts
	ErrUnparseable = errors.New("unparseable date")
	// ErrOutOfRange reports a date whose year cannot be written as four digits
	ErrOutOfRange = errors.New("date out of range")
)

// DateLike is anything that can denote a calendar day.
type DateLike interface {
	string | time.Time
}

// Result is the outcome of Parse. When Fallback is set, Value holds the
// fallback day and Reason explains why the input was rejected.
type Result struct {
	Value    string
	Fallback bool
	Reason   error
}

// Logger receives diagnostics for recovered parse failures.
type Logger interface {
	Printf(format string, v ...any)
}

var (
	canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Layouts carrying a time of day. Zone-less values are read as UTC.
	timestampLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04Z07:00",
		"2006-01-02 15:04",
		time.RFC1123,
		time.RFC1123Z,
		time.RFC850,
		// Date.prototype.toString with the zone name stripped
		"Mon Jan 2 2006 15:04:05 GMT-0700",
	}

	// Trailing "(Pacific Standard Time)" style zone names.
	zoneNameSuffix = regexp.MustCompile(`\s*\([^()]*\)$`)

	// Layouts without a time of day. Matches are anchored at 12:00 UTC.
	calendarLayouts = []string{
		"Jan 2, 2006",
		"January 2, 2006",
		"Mon, Jan 2, 2006",
		"Mon, January 2, 2006",
		"Monday, January 2, 2006",
		"Jan 2 2006",
		"January 2 2006",
		"2 Jan 2006",
		"2 January 2006",
		"1/2/2006",
		"2006/1/2",
		"20060102",
	}

	now             = time.Now
	logger   Logger = log.Default()
)

// SetLogger replaces the diagnostic logger. A nil logger restores the
// standard logger. Call it during startup, before serving requests.
func SetLogger(l Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// Today returns the current UTC calendar day.
func Today() string {
	return format(now().UTC())
}

// Parse reduces v to a canonical date, reporting whether a fallback was used.
func Parse[T DateLike](v T) Result {
	switch x := any(v).(type) {
	case time.Time:
		return fromTime(x)
	case string:
		return fromString(x)
	}
	return fallback(fmt.Errorf("%w: unsupported input %T", ErrUnparseable, v))
}

// Canonicalize converts v to its YYYY-MM-DD form. Unparseable input is
// logged and replaced by today's date.
func Canonicalize[T DateLike](v T) string {
	r := Parse(v)
	if r.Fallback {
		logger.Printf("[WARNING] dates: %v; using %s", r.Reason, r.Value)
	}
	return r.Value
}

// ToPointInTime returns 12:00:00 UTC on the calendar day denoted by v.
func ToPointInTime[T DateLike](v T) time.Time {
	return noon(Canonicalize(v))
}

// Normalize canonicalizes s. Empty or unparseable input yields today shifted
// by fallbackOffset days.
func Normalize(s string, fallbackOffset int) string {
	if strings.TrimSpace(s) == "" {
		return AddDays(Today(), fallbackOffset)
	}

	r := Parse(s)
	if r.Fallback {
		fb := AddDays(Today(), fallbackOffset)
		logger.Printf("[WARNING] dates: error normalizing date: %v; using %s", r.Reason, fb)
		return fb
	}
	return r.Value
}

func fromString(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback(fmt.Errorf("%w: empty input", ErrUnparseable))
	}

	if canonicalPattern.MatchString(trimmed) {
		if _, err := time.Parse(Layout, trimmed); err != nil {
			return fallback(fmt.Errorf("%w: %q is not a calendar day", ErrUnparseable, trimmed))
		}
		return Result{Value: trimmed}
	}

	if hasTimeComponent(trimmed) {
		stamp := zoneNameSuffix.ReplaceAllString(trimmed, "")
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, stamp); err == nil {
				return fromTime(t)
			}
		}
	}

	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return fromTime(anchorNoon(t))
		}
	}

	return fallback(fmt.Errorf("%w: %q", ErrUnparseable, trimmed))
}

func fromTime(t time.Time) Result {
	if t.IsZero() {
		return fallback(fmt.Errorf("%w: zero time", ErrUnparseable))
	}
	if y := t.UTC().Year(); y < 0 || y > 9999 {
		return fallback(fmt.Errorf("%w: year %d", ErrOutOfRange, y))
	}
	return Result{Value: format(t)}
}

func fallback(reason error) Result {
	return Result{Value: Today(), Fallback: true, Reason: reason}
}

// hasTimeComponent reports whether s looks like a timestamp rather than a bare day.
func hasTimeComponent(s string) bool {
	return strings.Contains(s, "T") || strings.Contains(s, ":")
}

func anchorNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// format writes the UTC calendar fields of t.
func format(t time.Time) string {
	y, m, d := t.UTC().Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// noon expects a canonical string.
func noon(canonical string) time.Time {
	t, err := time.Parse(Layout, canonical)
	if err != nil {
		return anchorNoon(now().UTC())
	}
	return anchorNoon(t)
}

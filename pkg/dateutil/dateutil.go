package dateutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical layout for normalized dates.
const ISODate = "2006-01-02"

// SlashDate is the DD/MM/YYYY layout accepted from locale-formatted input.
const SlashDate = "02/01/2006"

var slashShape = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

// fallbackLayouts are tried, in order, for input that is neither ISO nor
// slash-shaped. Time-of-day components are stripped after parsing.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// Normalize parses a user-entered date string into a canonical calendar
// date. It accepts ISO YYYY-MM-DD, locale DD/MM/YYYY, or any string that
// matches one of the fallback layouts. The zero time.Time is the "invalid
// or empty" sentinel; Normalize never returns an error.
func Normalize(input string) time.Time {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}
	}

	if strings.Contains(s, "/") {
		if slashShape.MatchString(s) {
			parts := strings.Split(s, "/")
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(parts[2])
			return rebuild(year, month, day)
		}
		// Looks like a slash date but is not DD/MM/YYYY shaped. The one
		// exception carried by the fallback layouts is YYYY/MM/DD.
		if t, err := time.Parse("2006/01/02", s); err == nil {
			return Truncate(t)
		}
		return time.Time{}
	}

	if t, err := time.Parse(ISODate, s); err == nil {
		return rebuild(t.Year(), int(t.Month()), t.Day())
	}
	if len(s) == len(ISODate) && strings.Count(s, "-") == 2 {
		// ISO-shaped but unparseable, e.g. 2024-02-30.
		return time.Time{}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t)
		}
	}
	return time.Time{}
}

// rebuild constructs a date from its components and verifies that the
// components survive the round-trip. time.Date normalizes out-of-range
// values (Feb 30 becomes Mar 1 or 2), so a mismatch means the input was
// not a real calendar date.
func rebuild(year, month, day int) time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}
	}
	return t
}

// Truncate strips the time-of-day, leaving a pure UTC calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsInFuture reports whether date falls strictly after ref, comparing
// calendar dates only. A date equal to ref is not "future".
func IsInFuture(date, ref time.Time) bool {
	return Truncate(date).After(Truncate(ref))
}

// MonthsRemainingInYear returns the number of whole months between ref and
// December 31 of ref's year. It feeds first-year contribution proration for
// an account funded partway through the calendar year. It returns 0 when
// date is in the future relative to ref (nothing to prorate yet), or when
// year-end has already passed. One extra month is dropped when fewer than a
// full month remains in the terminal partial month, i.e. when Dec 31's
// day-of-month is below ref's.
func MonthsRemainingInYear(date, ref time.Time) int {
	if date.IsZero() || IsInFuture(date, ref) {
		return 0
	}

	yearEnd := EndOfYear(ref)
	if yearEnd.Before(Truncate(ref)) {
		return 0
	}

	months := int(yearEnd.Month()) - int(ref.Month())
	if yearEnd.Day() < ref.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
}

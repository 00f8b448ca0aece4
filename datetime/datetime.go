package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTime is an absolute point in time tagged with the granularity at
// which it was originally specified. A DateTime produced by Parse has
// all fields finer than its granularity zeroed; NewDateTime carries the
// given instant through unchanged, so the caller is responsible for
// truncation if it matters.
//
// DateTime is an immutable value and safe for concurrent use.
type DateTime struct {
	t time.Time
	g Granularity
}

// NewDateTime creates a date-time from an instant and the granularity
// it was specified at.
func NewDateTime(t time.Time, g Granularity) DateTime {
	return DateTime{t: t, g: g}
}

// Time returns the underlying instant.
func (d DateTime) Time() time.Time { return d.t }

// Granularity returns the granularity the date-time was specified at.
func (d DateTime) Granularity() Granularity { return d.g }

// String returns a debugging representation of the date-time.
func (d DateTime) String() string {
	return fmt.Sprintf("%s (%s)", d.t.Format(time.RFC3339Nano), d.g)
}

// next returns the instant advanced by exactly one unit of the
// granularity. Month and year arithmetic clamps the day of month to the
// length of the target month, so the result never rolls over into the
// following month.
func (d DateTime) next() time.Time {
	switch d.g {
	case Nanosecond:
		return d.t.Add(time.Nanosecond)
	case Second:
		return d.t.Add(time.Second)
	case Minute:
		return d.t.Add(time.Minute)
	case Hour:
		return d.t.Add(time.Hour)
	case Day:
		return d.t.AddDate(0, 0, 1)
	case Month:
		return addMonths(d.t, 1)
	case Year:
		return addMonths(d.t, 12)
	default:
		// The granularity vocabulary is closed and fully handled above.
		// Hitting this means the date-time was built from a zero or
		// corrupted granularity value.
		panic(fmt.Errorf("unsupported granularity %v", d.g))
	}
}

// addMonths advances t by the given number of calendar months, clamping
// the day of month to the length of the target month. Jan 31 plus one
// month is Feb 28 (or 29 in a leap year), never Mar 2; Feb 29 plus
// twelve months is Feb 28 of the next year.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + months
	year += m / 12
	month = time.Month(m%12 + 1)
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to the last day of
	// the given month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Textual layouts supported by Parse, one per granularity. A date may
// additionally carry a trailing "Z" or "±hh:mm" offset; without one it
// is taken as UTC.
var isoLayouts = map[int]struct {
	layout      string
	granularity Granularity
}{
	4:  {"2006", Year},
	7:  {"2006-01", Month},
	10: {"2006-01-02", Day},
	13: {"2006-01-02T15", Hour},
	16: {"2006-01-02T15:04", Minute},
	19: {"2006-01-02T15:04:05", Second},
}

const fractionLayout = "2006-01-02T15:04:05.999999999"

// Parse decodes a textual date of variable precision into a date-time
// tagged with the granularity the text was given at.
//
// Two families of input are accepted: ISO-8601 prefixes ("2016",
// "2016-02", "2016-02-15", "2016-02-15T10:00:30.5Z") where the length
// of the prefix determines the granularity, and all-digit web archive
// timestamps ("20160215103059") which are prefixes of yyyyMMddHHmmss
// optionally followed by fractional second digits.
func Parse(str string) (DateTime, error) {
	if isDigits(str) && len(str) > 4 {
		return parseTimestamp(str)
	}

	base, loc, err := splitOffset(str)
	if err != nil {
		return DateTime{}, err
	}

	if strings.IndexByte(base, '.') >= 0 {
		t, err := time.ParseInLocation(fractionLayout, base, loc)
		if err != nil {
			return DateTime{}, fmt.Errorf("invalid date-time string: %s", str)
		}
		return DateTime{t: t, g: Nanosecond}, nil
	}

	l, exists := isoLayouts[len(base)]
	if !exists {
		return DateTime{}, fmt.Errorf("invalid date-time string: %s", str)
	}
	t, err := time.ParseInLocation(l.layout, base, loc)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date-time string: %s", str)
	}
	return DateTime{t: t, g: l.granularity}, nil
}

// splitOffset strips a trailing "Z" or "±hh:mm" offset off the date
// string, returning the remainder and the location the offset denotes.
// A date without an offset is located in UTC.
func splitOffset(str string) (string, *time.Location, error) {
	if strings.HasSuffix(str, "Z") {
		return str[:len(str)-1], time.UTC, nil
	}
	// A numeric offset can only follow a time component, so "-" in the
	// date part is never mistaken for one.
	ti := strings.IndexByte(str, 'T')
	if ti < 0 {
		return str, time.UTC, nil
	}
	si := strings.LastIndexAny(str[ti:], "+-")
	if si < 0 {
		return str, time.UTC, nil
	}
	off := str[ti+si:]
	if len(off) != 6 || off[3] != ':' || !isDigits(off[1:3]) || !isDigits(off[4:6]) {
		return "", nil, fmt.Errorf("invalid offset in date-time string: %s", str)
	}
	hours, _ := strconv.Atoi(off[1:3])
	mins, _ := strconv.Atoi(off[4:6])
	secs := hours*3600 + mins*60
	if off[0] == '-' {
		secs = -secs
	}
	return str[:ti+si], time.FixedZone(off, secs), nil
}

// parseTimestamp decodes an all-digit web archive timestamp. The first
// up to 14 digits are a prefix of yyyyMMddHHmmss whose length gives the
// granularity; digits beyond the 14th are a fractional second.
func parseTimestamp(str string) (DateTime, error) {
	var (
		digits = str
		nanos  int
		g      Granularity
	)
	if len(str) > 14 {
		frac := str[14:]
		if len(frac) > 9 {
			return DateTime{}, fmt.Errorf("invalid timestamp string: %s", str)
		}
		n, err := strconv.Atoi(frac)
		if err != nil {
			return DateTime{}, fmt.Errorf("invalid timestamp string: %s", str)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nanos = n
		digits = str[:14]
		g = Nanosecond
	} else {
		switch len(str) {
		case 6:
			g = Month
		case 8:
			g = Day
		case 10:
			g = Hour
		case 12:
			g = Minute
		case 14:
			g = Second
		default:
			return DateTime{}, fmt.Errorf("invalid timestamp string: %s", str)
		}
	}

	year := mustAtoi(digits[0:4])
	month, day := 1, 1
	var hour, min, sec int
	if len(digits) >= 6 {
		month = mustAtoi(digits[4:6])
	}
	if len(digits) >= 8 {
		day = mustAtoi(digits[6:8])
	}
	if len(digits) >= 10 {
		hour = mustAtoi(digits[8:10])
	}
	if len(digits) >= 12 {
		min = mustAtoi(digits[10:12])
	}
	if len(digits) >= 14 {
		sec = mustAtoi(digits[12:14])
	}

	if month < 1 || month > 12 ||
		day < 1 || day > daysInMonth(year, time.Month(month)) ||
		hour > 23 || min > 59 || sec > 59 {
		return DateTime{}, fmt.Errorf("invalid timestamp string: %s", str)
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, nanos, time.UTC)
	return DateTime{t: t, g: g}, nil
}

func isDigits(str string) bool {
	if len(str) == 0 {
		return false
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return true
}

func mustAtoi(str string) int {
	n, err := strconv.Atoi(str)
	if err != nil {
		panic(err)
	}
	return n
}

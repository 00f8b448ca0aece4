package datetime

import (
	"fmt"
	"time"
)

// DateTimeRange is a date range used for searching a timestamp index.
//
// As dates are allowed to be of variable precision, a range can be
// widened from a single imprecise date into the interval covering every
// finer-precision instant consistent with it. A range can also be built
// from explicit start and end dates, either of which may be absent to
// leave that side of the range unbounded.
//
// The start bound is inclusive and the end bound exclusive. Both bounds
// are held at full nanosecond precision regardless of the granularity
// of the dates they were derived from. An absent bound is represented
// as such, never as a sentinel instant.
//
// DateTimeRange is immutable and safe for concurrent use.
type DateTimeRange struct {
	start *time.Time
	end   *time.Time
}

func newDateTimeRange(start, end *DateTime) DateTimeRange {
	var r DateTimeRange
	if start != nil {
		t := start.Time()
		r.start = &t
	}
	if end != nil {
		t := end.Time()
		r.end = &t
	}
	return r
}

// FromSingleInstant widens a single date into the range it covers. The
// range starts at the date's instant and ends one unit of the date's
// granularity later, so e.g. a day-granularity 2016-02-15 covers
// [2016-02-15T00:00:00Z, 2016-02-16T00:00:00Z).
//
// FromSingleInstant panics if the date carries an unknown granularity.
func FromSingleInstant(v DateTime) DateTimeRange {
	end := NewDateTime(v.next(), Nanosecond)
	return newDateTimeRange(&v, &end)
}

// Between creates a range from two optional dates, the start inclusive
// and the end exclusive. A nil date leaves that side of the range
// unbounded. The instants are carried through unchanged and no ordering
// between them is enforced; an inverted pair produces a range that is
// simply empty when used against an index.
func Between(startInclusive, endExclusive *DateTime) DateTimeRange {
	return newDateTimeRange(startInclusive, endExclusive)
}

// StartOnly creates a range beginning at the given date with an
// unbounded end.
func StartOnly(startInclusive DateTime) DateTimeRange {
	return newDateTimeRange(&startInclusive, nil)
}

// EndOnly creates a range ending at the given date with an unbounded
// start.
func EndOnly(endExclusive DateTime) DateTimeRange {
	return newDateTimeRange(nil, &endExclusive)
}

// ParseSingle decodes a single textual date and widens it into the
// range it covers.
func ParseSingle(str string) (DateTimeRange, error) {
	d, err := Parse(str)
	if err != nil {
		return DateTimeRange{}, err
	}
	return FromSingleInstant(d), nil
}

// ParseBetween decodes two textual dates into a range with the first as
// the inclusive start and the second as the exclusive end.
func ParseBetween(startInclusive, endExclusive string) (DateTimeRange, error) {
	start, err := Parse(startInclusive)
	if err != nil {
		return DateTimeRange{}, err
	}
	end, err := Parse(endExclusive)
	if err != nil {
		return DateTimeRange{}, err
	}
	return Between(&start, &end), nil
}

// ParseStartOnly decodes a textual date into a range beginning at it
// with an unbounded end.
func ParseStartOnly(startInclusive string) (DateTimeRange, error) {
	start, err := Parse(startInclusive)
	if err != nil {
		return DateTimeRange{}, err
	}
	return StartOnly(start), nil
}

// ParseEndOnly decodes a textual date into a range ending at it with an
// unbounded start.
func ParseEndOnly(endExclusive string) (DateTimeRange, error) {
	end, err := Parse(endExclusive)
	if err != nil {
		return DateTimeRange{}, err
	}
	return EndOnly(end), nil
}

// HasStart returns true if the range has a start bound. A range without
// one extends infinitely into the past.
func (r DateTimeRange) HasStart() bool { return r.start != nil }

// HasEnd returns true if the range has an end bound. A range without
// one extends infinitely into the future.
func (r DateTimeRange) HasEnd() bool { return r.end != nil }

// Start returns the inclusive start bound of the range, or false if the
// start is unbounded.
func (r DateTimeRange) Start() (time.Time, bool) {
	if r.start == nil {
		return time.Time{}, false
	}
	return *r.start, true
}

// End returns the exclusive end bound of the range, or false if the end
// is unbounded.
func (r DateTimeRange) End() (time.Time, bool) {
	if r.end == nil {
		return time.Time{}, false
	}
	return *r.end, true
}

// String returns a debugging representation of the range.
func (r DateTimeRange) String() string {
	start, end := "-inf", "+inf"
	if r.start != nil {
		start = r.start.Format(time.RFC3339Nano)
	}
	if r.end != nil {
		end = r.end.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("[%s, %s)", start, end)
}

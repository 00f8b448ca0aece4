package query

import (
	"errors"
	"time"

	"github.com/lockss/webarchive-commons/datetime"
	xtime "github.com/lockss/webarchive-commons/x/time"

	"github.com/m3db/m3x/clock"
)

var (
	errNoTimeInQuery            = errors.New("no date, start time, end time, or time range provided in query")
	errDateWithExplicitBounds   = errors.New("both date and explicit start or end time specified in query")
	errDateWithTimeRange        = errors.New("both date and time range specified in query")
	errStartAndEndWithTimeRange = errors.New("start time, end time and time range all specified in query")
	errNonPositiveTimeRange     = errors.New("query time range must be positive")
	errStartAfterEnd            = errors.New("query start time is after end time")
)

// UnparsedTimeRangeQuery is an unparsed time window for a range query
// against a timestamp index. Exactly one of the following shapes must
// be provided:
//
//   - date: a single variable precision date whose granularity decides
//     how wide the window is;
//   - start and/or end: explicit bounds, either of which may be left
//     out for an open-ended window;
//   - time_range plus an optional anchor: a window of fixed width
//     extending forward from start, or backward from end (or from the
//     current time when neither is given).
type UnparsedTimeRangeQuery struct {
	Date      *string         `json:"date"`
	StartTime *string         `json:"start"`
	EndTime   *string         `json:"end"`
	TimeRange *xtime.Duration `json:"time_range"`
}

// ParseOptions provide a set of options for parsing a time range query.
type ParseOptions struct {
	// NowFn anchors relative windows. Defaults to time.Now.
	NowFn clock.NowFn
}

// ParsedTimeRangeQuery is a validated time window with nanosecond
// bounds for querying a timestamp index. A nil bound means the
// corresponding side of the window is unbounded.
type ParsedTimeRangeQuery struct {
	Range               datetime.DateTimeRange
	StartNanosInclusive *int64
	EndNanosExclusive   *int64
}

// Parse parses the unparsed query into a time window, returning any
// errors encountered.
func (q *UnparsedTimeRangeQuery) Parse(opts ParseOptions) (ParsedTimeRangeQuery, error) {
	if err := q.validateTime(); err != nil {
		return ParsedTimeRangeQuery{}, err
	}
	nowFn := opts.NowFn
	if nowFn == nil {
		nowFn = time.Now
	}
	r, err := q.parseRange(nowFn)
	if err != nil {
		return ParsedTimeRangeQuery{}, err
	}

	parsed := ParsedTimeRangeQuery{Range: r}
	if start, ok := r.Start(); ok {
		nanos := start.UnixNano()
		parsed.StartNanosInclusive = &nanos
	}
	if end, ok := r.End(); ok {
		nanos := end.UnixNano()
		parsed.EndNanosExclusive = &nanos
	}
	return parsed, nil
}

func (q *UnparsedTimeRangeQuery) validateTime() error {
	if q.Date != nil {
		if q.StartTime != nil || q.EndTime != nil {
			return errDateWithExplicitBounds
		}
		if q.TimeRange != nil {
			return errDateWithTimeRange
		}
		return nil
	}
	if q.TimeRange != nil && q.StartTime != nil && q.EndTime != nil {
		return errStartAndEndWithTimeRange
	}
	if q.TimeRange != nil && *q.TimeRange <= 0 {
		return errNonPositiveTimeRange
	}
	if q.TimeRange == nil && q.StartTime == nil && q.EndTime == nil {
		return errNoTimeInQuery
	}
	return nil
}

func (q *UnparsedTimeRangeQuery) parseRange(nowFn clock.NowFn) (datetime.DateTimeRange, error) {
	if q.Date != nil {
		return datetime.ParseSingle(*q.Date)
	}

	var startDate, endDate *datetime.DateTime
	if q.StartTime != nil {
		d, err := datetime.Parse(*q.StartTime)
		if err != nil {
			return datetime.DateTimeRange{}, err
		}
		startDate = &d
	}
	if q.EndTime != nil {
		d, err := datetime.Parse(*q.EndTime)
		if err != nil {
			return datetime.DateTimeRange{}, err
		}
		endDate = &d
	}

	if q.TimeRange == nil {
		if startDate != nil && endDate != nil && endDate.Time().Before(startDate.Time()) {
			return datetime.DateTimeRange{}, errStartAfterEnd
		}
		return datetime.Between(startDate, endDate), nil
	}

	window := time.Duration(*q.TimeRange)
	if startDate != nil {
		end := datetime.NewDateTime(startDate.Time().Add(window), datetime.Nanosecond)
		return datetime.Between(startDate, &end), nil
	}
	endInstant := nowFn()
	if endDate != nil {
		endInstant = endDate.Time()
	}
	start := datetime.NewDateTime(endInstant.Add(-window), datetime.Nanosecond)
	end := datetime.NewDateTime(endInstant, datetime.Nanosecond)
	return datetime.Between(&start, &end), nil
}

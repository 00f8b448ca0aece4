package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromSingleInstantWidensByOneUnit(t *testing.T) {
	base := time.Date(2016, 2, 15, 10, 30, 59, 0, time.UTC)
	inputs := []struct {
		granularity Granularity
		expectedEnd time.Time
	}{
		{
			granularity: Nanosecond,
			expectedEnd: base.Add(time.Nanosecond),
		},
		{
			granularity: Second,
			expectedEnd: base.Add(time.Second),
		},
		{
			granularity: Minute,
			expectedEnd: base.Add(time.Minute),
		},
		{
			granularity: Hour,
			expectedEnd: base.Add(time.Hour),
		},
		{
			granularity: Day,
			expectedEnd: time.Date(2016, 2, 16, 10, 30, 59, 0, time.UTC),
		},
		{
			granularity: Month,
			expectedEnd: time.Date(2016, 3, 15, 10, 30, 59, 0, time.UTC),
		},
		{
			granularity: Year,
			expectedEnd: time.Date(2017, 2, 15, 10, 30, 59, 0, time.UTC),
		},
	}

	for _, input := range inputs {
		r := FromSingleInstant(NewDateTime(base, input.granularity))
		start, ok := r.Start()
		require.True(t, ok)
		require.True(t, base.Equal(start), "granularity %v", input.granularity)
		end, ok := r.End()
		require.True(t, ok)
		require.True(t, input.expectedEnd.Equal(end), "granularity %v", input.granularity)
	}
}

func TestParseSingleDay(t *testing.T) {
	r, err := ParseSingle("2016-02-15")
	require.NoError(t, err)
	start, ok := r.Start()
	require.True(t, ok)
	require.True(t, time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC).Equal(start))
	end, ok := r.End()
	require.True(t, ok)
	require.True(t, time.Date(2016, 2, 16, 0, 0, 0, 0, time.UTC).Equal(end))
}

func TestParseSingleMonthYearRollover(t *testing.T) {
	r, err := ParseSingle("2016-12")
	require.NoError(t, err)
	start, ok := r.Start()
	require.True(t, ok)
	require.True(t, time.Date(2016, 12, 1, 0, 0, 0, 0, time.UTC).Equal(start))
	end, ok := r.End()
	require.True(t, ok)
	require.True(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC).Equal(end))
}

func TestParseSingleLeapYear(t *testing.T) {
	r, err := ParseSingle("2016-02")
	require.NoError(t, err)
	end, ok := r.End()
	require.True(t, ok)
	require.True(t, time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC).Equal(end))

	r, err = ParseSingle("2016")
	require.NoError(t, err)
	end, ok = r.End()
	require.True(t, ok)
	require.True(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC).Equal(end))
}

func TestParseSingleError(t *testing.T) {
	_, err := ParseSingle("not-a-date")
	require.Error(t, err)
}

func TestBetween(t *testing.T) {
	start := NewDateTime(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Day)
	end := NewDateTime(time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC), Day)

	r := Between(&start, &end)
	require.True(t, r.HasStart())
	require.True(t, r.HasEnd())
	s, ok := r.Start()
	require.True(t, ok)
	require.True(t, start.Time().Equal(s))
	e, ok := r.End()
	require.True(t, ok)
	require.True(t, end.Time().Equal(e))
}

func TestBetweenOpenEnded(t *testing.T) {
	r := Between(nil, nil)
	require.False(t, r.HasStart())
	require.False(t, r.HasEnd())
	_, ok := r.Start()
	require.False(t, ok)
	_, ok = r.End()
	require.False(t, ok)
}

func TestBetweenInvertedAccepted(t *testing.T) {
	start := NewDateTime(time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC), Day)
	end := NewDateTime(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Day)

	// Ordering is not enforced; the inverted pair is carried through.
	r := Between(&start, &end)
	s, _ := r.Start()
	e, _ := r.End()
	require.True(t, s.After(e))
}

func TestBetweenIdempotent(t *testing.T) {
	r, err := ParseSingle("2016-02-15T10:00")
	require.NoError(t, err)

	s, ok := r.Start()
	require.True(t, ok)
	e, ok := r.End()
	require.True(t, ok)
	start := NewDateTime(s, Nanosecond)
	end := NewDateTime(e, Nanosecond)

	rederived := Between(&start, &end)
	s2, _ := rederived.Start()
	e2, _ := rederived.End()
	require.True(t, s.Equal(s2))
	require.True(t, e.Equal(e2))
}

func TestStartOnly(t *testing.T) {
	d := NewDateTime(time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC), Day)
	r := StartOnly(d)
	require.True(t, r.HasStart())
	require.False(t, r.HasEnd())
}

func TestEndOnly(t *testing.T) {
	d := NewDateTime(time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC), Day)
	r := EndOnly(d)
	require.False(t, r.HasStart())
	require.True(t, r.HasEnd())
}

func TestParseStartOnly(t *testing.T) {
	r, err := ParseStartOnly("2016-02-15")
	require.NoError(t, err)
	require.True(t, r.HasStart())
	require.False(t, r.HasEnd())
	start, ok := r.Start()
	require.True(t, ok)
	require.True(t, time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC).Equal(start))
}

func TestParseEndOnly(t *testing.T) {
	r, err := ParseEndOnly("2016-02-15")
	require.NoError(t, err)
	require.False(t, r.HasStart())
	require.True(t, r.HasEnd())
}

func TestParseBetween(t *testing.T) {
	r, err := ParseBetween("2016-01-01", "2016-02-01")
	require.NoError(t, err)
	s, _ := r.Start()
	e, _ := r.End()
	require.True(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC).Equal(s))
	require.True(t, time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC).Equal(e))

	_, err = ParseBetween("bogus", "2016-02-01")
	require.Error(t, err)
	_, err = ParseBetween("2016-01-01", "bogus")
	require.Error(t, err)
}

func TestRangeImmutableAgainstCallerMutation(t *testing.T) {
	start := NewDateTime(time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC), Day)
	r := Between(&start, nil)

	// The range snapshots the instant at construction, so overwriting
	// the caller's date afterwards must not leak into it.
	start = NewDateTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Day)
	s, _ := r.Start()
	require.True(t, time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC).Equal(s))
}

func TestRangeString(t *testing.T) {
	r, err := ParseSingle("2016-02-15")
	require.NoError(t, err)
	require.Equal(t, "[2016-02-15T00:00:00Z, 2016-02-16T00:00:00Z)", r.String())

	require.Equal(t, "[-inf, +inf)", Between(nil, nil).String())
}

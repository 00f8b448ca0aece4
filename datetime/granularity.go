package datetime

import (
	"encoding/json"
	"fmt"
	"time"

	m3xtime "github.com/m3db/m3x/time"
)

// Granularity is the precision at which a date-time was originally
// specified.
type Granularity int

// A list of supported granularities, ordered from finest to coarsest.
const (
	UnknownGranularity Granularity = iota
	Nanosecond
	Second
	Minute
	Hour
	Day
	Month
	Year
)

func newGranularity(str string) (Granularity, error) {
	if g, exists := stringToGranularities[str]; exists {
		return g, nil
	}
	return UnknownGranularity, fmt.Errorf("unknown granularity string: %s", str)
}

// Duration returns the fixed duration of one unit of the granularity.
// Month and year have no fixed duration and return false.
func (g Granularity) Duration() (time.Duration, bool) {
	var unit m3xtime.Unit
	switch g {
	case Nanosecond:
		unit = m3xtime.Nanosecond
	case Second:
		unit = m3xtime.Second
	case Minute:
		unit = m3xtime.Minute
	case Hour:
		unit = m3xtime.Hour
	case Day:
		unit = m3xtime.Day
	default:
		return 0, false
	}
	v, err := unit.Value()
	if err != nil {
		return 0, false
	}
	return v, true
}

// String returns the string representation of the granularity.
func (g Granularity) String() string {
	if s, exists := granularityStrings[g]; exists {
		return s
	}
	// nolint: goconst
	return "unknown"
}

// MarshalJSON marshals the granularity as a JSON string.
func (g Granularity) MarshalJSON() ([]byte, error) {
	s, exists := granularityStrings[g]
	if !exists {
		return nil, fmt.Errorf("invalid granularity %v", g)
	}
	return json.Marshal(s)
}

// UnmarshalJSON unmarshals a JSON object as a granularity.
func (g *Granularity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := newGranularity(str)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

var (
	granularityStrings = map[Granularity]string{
		Nanosecond: "nanosecond",
		Second:     "second",
		Minute:     "minute",
		Hour:       "hour",
		Day:        "day",
		Month:      "month",
		Year:       "year",
	}
	stringToGranularities map[string]Granularity
)

func init() {
	stringToGranularities = make(map[string]Granularity, len(granularityStrings))
	for k, v := range granularityStrings {
		stringToGranularities[v] = k
	}
}

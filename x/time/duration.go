package time

import (
	"bytes"
	"encoding/json"
	"time"
)

// Duration is a time duration that can be unmarshalled from JSON,
// either from a duration string (e.g. "24h") or from an integer number
// of nanoseconds.
type Duration time.Duration

// String returns the duration string.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalJSON marshals the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON unmarshals the raw bytes into a duration.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] != '"' {
		var nanos int64
		if err := json.Unmarshal(b, &nanos); err != nil {
			return err
		}
		*d = Duration(nanos)
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	dur, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// UnmarshalText unmarshals text into a duration.
func (d *Duration) UnmarshalText(b []byte) error {
	dur, err := time.ParseDuration(string(bytes.TrimSpace(b)))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

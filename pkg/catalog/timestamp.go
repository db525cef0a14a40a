package catalog

import (
	"strings"
	"time"
)

// TimestampLayout is the canonical text form for publication timestamps,
// second precision, local wall-clock time.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a second-precision wall-clock time. The zero value means
// "not set" and serializes as an empty string, so an unpublished article
// carries no timestamp.
type Timestamp struct {
	time.Time
}

// Now returns the current wall-clock time truncated to second precision.
func Now() Timestamp {
	return At(time.Now())
}

// At returns t truncated to second precision.
func At(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Second)}
}

// ParseTimestamp parses the canonical text form in local time.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t}, nil
}

// String returns the canonical text form, or the empty string for the
// zero value.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// Equal reports whether two timestamps represent the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler so documents
// render the same text form in YAML exports as in the JSON file.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

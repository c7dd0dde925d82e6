package finbook

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the canonical layout for timestamps persisted to the
// transaction file. It is the only format ever written to disk.
const TimeFormat = "2006/01/02 15:04"

// DateOnlyFormat accepts a bare date; the time of day is assumed midnight.
const DateOnlyFormat = "2006/01/02"

// Timestamp represents a transaction time with minute-level granularity.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a Timestamp for the given moment, truncated to the minute.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)}
}

// ParseTimestamp parses a canonical `yyyy/MM/dd HH:mm` timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q want format %q: %w", s, TimeFormat, err)
	}
	return Timestamp{t: t}, nil
}

// MustParseTimestamp is like ParseTimestamp but panics on error. Test helper.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// String formats the timestamp in the canonical layout.
func (ts Timestamp) String() string { return ts.t.Format(TimeFormat) }

// Year returns the year component.
func (ts Timestamp) Year() int { return ts.t.Year() }

// Month returns the month component.
func (ts Timestamp) Month() time.Month { return ts.t.Month() }

// Day returns the day of the month.
func (ts Timestamp) Day() int { return ts.t.Day() }

// Time returns the underlying time value.
func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero returns true for the zero timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// SameMonth reports whether ts falls in the calendar month of t.
func (ts Timestamp) SameMonth(t time.Time) bool {
	return ts.t.Year() == t.Year() && ts.t.Month() == t.Month()
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// CalendarDateFormat is the wire format for calendar dates (ISO-8601 date).
const CalendarDateFormat = "2006-01-02"

// CalendarDate is a date with day granularity and no time-of-day component.
// It is the grouping key for every date-keyed record (ledger entries, daily
// balances), replacing ad hoc midnight normalization of time.Time values.
// The zero value is the zero date; comparable, usable as a map key.
type CalendarDate struct {
	y int
	m time.Month
	d int
}

// NewCalendarDate returns a normalized CalendarDate for the given year, month and day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	d := CalendarDate{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// CalendarDateOf truncates t to its calendar day. This is the single place
// where midnight normalization happens.
func CalendarDateOf(t time.Time) CalendarDate {
	return NewCalendarDate(t.Date())
}

// Today returns the current calendar date.
func Today() CalendarDate {
	return CalendarDateOf(time.Now())
}

// ParseCalendarDate parses an ISO-8601 date string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q, want format %q: %w", s, CalendarDateFormat, err)
	}
	return CalendarDateOf(t), nil
}

// Time returns the canonical time.Time for the date (midnight UTC).
func (d CalendarDate) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d CalendarDate) Year() int { return d.y }

// Month returns the month of the date.
func (d CalendarDate) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d CalendarDate) Day() int { return d.d }

// IsZero reports whether d is the zero date.
func (d CalendarDate) IsZero() bool { return d == CalendarDate{} }

// Before reports whether d is before x.
func (d CalendarDate) Before(x CalendarDate) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d CalendarDate) After(x CalendarDate) bool { return d.Time().After(x.Time()) }

// AddDays returns a new date with the given number of days added.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.y, d.m, d.d+n)
}

// String formats the date in its standard format.
func (d CalendarDate) String() string { return d.Time().Format(CalendarDateFormat) }

// MarshalJSON encodes the date as a "2006-01-02" JSON string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes the date from a "2006-01-02" JSON string.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

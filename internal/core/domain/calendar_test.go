package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, "2024-03-05", d.String())

	_, err = ParseCalendarDate("05/03/2024")
	assert.Error(t, err)
}

func TestCalendarDateOfTruncatesTimeOfDay(t *testing.T) {
	late := time.Date(2024, time.March, 5, 23, 59, 58, 0, time.UTC)
	early := time.Date(2024, time.March, 5, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, CalendarDateOf(late), CalendarDateOf(early))
}

func TestCalendarDateComparisonsAndMapKey(t *testing.T) {
	a := NewCalendarDate(2024, time.March, 5)
	b := NewCalendarDate(2024, time.March, 6)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.IsZero())
	assert.True(t, CalendarDate{}.IsZero())

	seen := map[CalendarDate]int{a: 1}
	seen[NewCalendarDate(2024, time.March, 5)]++
	assert.Equal(t, 2, seen[a])
}

func TestCalendarDateAddDaysNormalizes(t *testing.T) {
	d := NewCalendarDate(2024, time.January, 31)
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	// 2024 is a leap year.
	assert.Equal(t, "2024-02-29", NewCalendarDate(2024, time.February, 28).AddDays(1).String())
	assert.Equal(t, "2023-12-31", NewCalendarDate(2024, time.January, 1).AddDays(-1).String())
}

func TestCalendarDateJSONRoundTrip(t *testing.T) {
	d := NewCalendarDate(2024, time.March, 5)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(raw))

	var back CalendarDate
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &back))
}

package types

import (
	"fmt"
	"strings"
	"time"
)

// Week is an ISO-8601 week: it starts on Monday and belongs to the year
// that contains its Thursday.
//
// A Week is normalized to the first instant of its Monday in UTC. Weeks are
// never split: a time instant belongs to exactly one Week, regardless of
// month or year boundaries.
type Week time.Time

// WeekOf returns the Week in which a time instant occurs, evaluated in UTC.
func WeekOf(t time.Time) Week {
	u := t.UTC()

	// time.Weekday counts from Sunday, ISO weeks from Monday
	offset := (int(u.Weekday()) + 6) % 7
	monday := u.AddDate(0, 0, -offset)

	return Week(time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC))
}

// NewWeek returns the Week for an ISO week year and week number.
func NewWeek(year, week int) Week {
	// January 4 is always in week 1 of its ISO year
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	return Week(time.Time(WeekOf(jan4)).AddDate(0, 0, (week-1)*7))
}

// ISOWeek returns the ISO week year and week number.
func (w Week) ISOWeek() (year, week int) {
	return time.Time(w).ISOWeek()
}

// String returns the week formatted as YYYY-Www, e.g. 2024-W35.
func (w Week) String() string {
	year, week := w.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeek parses an ISO week label as produced by String, e.g. 2024-W35.
func ParseWeek(value string) (Week, error) {
	var year, week int
	if _, err := fmt.Sscanf(strings.TrimSpace(value), "%04d-W%02d", &year, &week); err != nil {
		return Week{}, fmt.Errorf("parsing week %q failed: %w", value, err)
	}

	return NewWeek(year, week), nil
}

// MarshalJSON implements the json.Marshaler interface.
// Weeks are represented by their ISO week label.
func (w Week) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", w.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (w *Week) UnmarshalJSON(data []byte) error {
	week, err := ParseWeek(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}

	*w = week
	return nil
}

// Next returns the week following w.
func (w Week) Next() Week {
	return Week(time.Time(w).AddDate(0, 0, 7))
}

// Before reports whether the week instant w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// After reports whether the week instant w is after v.
func (w Week) After(v Week) bool {
	return time.Time(w).After(time.Time(v))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return w.Equal(WeekOf(t))
}

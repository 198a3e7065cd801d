package types

import (
	"strings"
	"time"
)

// Date is a civil date without a time component. It is the type for every
// date stored in the planning document: the wedding date, transaction dates,
// payment due dates and task due dates.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, t.Location()))
}

// ParseDate parses a string in RFC3339 full-date format ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface. The zero value
// marshals as null so that an unset date stays unset in the document.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both full-date
// and RFC3339 strings are accepted, everything below day precision is
// dropped.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = "2006-01-02T15:04:05Z07:00"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Time returns the time instant at midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Month returns the month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// In reports whether the date falls into the month.
func (d Date) In(m Month) bool {
	return m.Contains(time.Time(d))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// AddMonths adds a number of months to the date. When the target month is
// shorter than the day of the month, the day is clamped to the last day of
// the target month, so the 31st of January plus one month is the 28th (or
// 29th) of February, not the 2nd of March.
func (d Date) AddMonths(months int) Date {
	t := time.Time(d)
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)

	day := t.Day()
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return NewDate(firstOfTarget.Year(), firstOfTarget.Month(), day)
}

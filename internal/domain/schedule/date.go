package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. Slots are opaque date+time-label
// pairs; no timezone normalization happens at this layer, and no relation to
// "today" is required (past-date policy belongs to callers).
type Date struct {
	value string
}

func NewDate(value string) (Date, error) {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: value}, nil
}

func (d Date) String() string {
	return d.value
}

func (d Date) IsZero() bool {
	return d.value == ""
}

// IsBefore reports whether the date falls strictly before the calendar day of t.
func (d Date) IsBefore(t time.Time) bool {
	parsed, err := time.Parse(dateLayout, d.value)
	if err != nil {
		return false
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return parsed.Before(day)
}

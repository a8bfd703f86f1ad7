package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "02/01/2006"

// isoLayout is how repositories persist dates; callers never see it.
const isoLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals as
// DD/MM/YYYY on the wire regardless of how the store represents it.
type Date struct {
	t time.Time
}

// ParseDate parses a DD/MM/YYYY string. Any other format, including
// ISO dates, fails with ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// ISO returns the YYYY-MM-DD form used by the persistence layer.
func (d Date) ISO() string {
	return d.t.Format(isoLayout)
}

// ParseISODate restores a Date from its persisted YYYY-MM-DD form.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the textual form dates take at the HTTP boundary.
const DateLayout = "02/01/2006"

// Date is a calendar date with no time-of-day component. It serializes as
// dd/MM/yyyy in JSON and maps to a SQL DATE column.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a dd/MM/yyyy string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected dd/MM/yyyy", s)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether two dates name the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON renders the date as a quoted dd/MM/yyyy string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted dd/MM/yyyy string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the layout used when a Date is serialized
	DateLayout = "2006-01-02"
	// RequestDateLayout is the layout clients use in order request bodies
	RequestDateLayout = "2006/01/02"
)

// Date is a calendar date without a time component
type Date time.Time

// NewDate returns the Date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate accepts either YYYY/MM/DD or YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{RequestDateLayout, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY/MM/DD", s)
}

// Time returns the date as midnight UTC
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether the date is 0001-01-01
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD". The zero Date is the valid
// calendar date 0001-01-01 and is written like any other.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a date string in either accepted layout
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as an ISO date string
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan reads a date column; drivers return either time.Time or text
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("invalid date value %q", s)
	}
	t, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return fmt.Errorf("invalid date value %q: %w", s, err)
	}
	*d = Date(t)
	return nil
}

// GormDataType maps Date to a date column
func (Date) GormDataType() string {
	return "date"
}

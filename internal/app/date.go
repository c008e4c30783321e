package app

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar day as typed by the user.
//
// Month and Day are range checked by Validate, not by ParseDate. Day is never
// checked against the length of the month, so 2024-02-31 is a valid Date.
type Date struct {
	Year  uint
	Month uint
	Day   uint
}

// ParseDate parses "year-month-day" without any range checks
func ParseDate(text string) (Date, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDateFormat, text)
	}

	var fields [3]uint
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 0)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidDateValue, part)
		}
		fields[i] = uint(n)
	}

	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

// ParseValidDate parses text and validates the result
func ParseValidDate(text string) (Date, error) {
	d, err := ParseDate(text)
	if err != nil {
		return Date{}, err
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate checks month and day ranges
func (d Date) Validate() error {
	if d.Month == 0 || d.Month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, d.Month)
	}
	if d.Day == 0 || d.Day > 31 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, d.Day)
	}
	return nil
}

// Compare returns -1, 0 or +1 ordering by year, then month, then day
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmp.Compare(d.Year, other.Year)
	case d.Month != other.Month:
		return cmp.Compare(d.Month, other.Month)
	default:
		return cmp.Compare(d.Day, other.Day)
	}
}

// Before reports whether d sorts strictly before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText encodes the canonical form, so dates serialize as "YYYY-MM-DD"
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the same input as ParseValidDate
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseValidDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

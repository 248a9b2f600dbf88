package jdate

import "fmt"

// IsValidJalaliDate reports whether month/day/year is a Jalali calendar date
// with a positive year.
func IsValidJalaliDate(month, day, year int) bool {
	return ValidateJalaliDate(month, day, year) == nil
}

// ValidateJalaliDate is IsValidJalaliDate with an ErrInvalidDate naming the
// offending field.
func ValidateJalaliDate(month, day, year int) error {
	if year <= 0 {
		return fmt.Errorf("%w: year %d must be positive", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d outside 1..12", ErrInvalidDate, month)
	}
	if limit := JalaliMonthDays(year, month); day < 1 || day > limit {
		return fmt.Errorf("%w: day %d outside 1..%d for %04d/%02d", ErrInvalidDate, day, limit, year, month)
	}
	return nil
}

package jdate

import (
	"fmt"
	"time"
)

const maxTimeFields = 6

// MakeTime builds an epoch from Jalali wall clock fields given in the order
// hour, minute, second, month, day, year. Omitted trailing fields default to
// now as seen in loc, the date ones in Jalali terms. Out of range values are
// not rejected; they normalize the way time.Date does.
func MakeTime(loc *time.Location, now time.Time, fields ...int) (int64, error) {
	t, err := makeTime(loc, now, false, fields)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// MakeTimeStrict is MakeTime that first validates the resolved Jalali date.
func MakeTimeStrict(loc *time.Location, now time.Time, fields ...int) (int64, error) {
	t, err := makeTime(loc, now, true, fields)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// MakeTime is the package level MakeTime in the formatter's location and clock.
func (f *Formatter) MakeTime(fields ...int) (int64, error) {
	return MakeTime(f.location, f.clock(), fields...)
}

// MakeTimeStrict is the package level MakeTimeStrict in the formatter's
// location and clock.
func (f *Formatter) MakeTimeStrict(fields ...int) (int64, error) {
	return MakeTimeStrict(f.location, f.clock(), fields...)
}

func makeTime(loc *time.Location, now time.Time, strict bool, fields []int) (time.Time, error) {
	if loc == nil {
		return time.Time{}, ErrNilLocation
	}
	if len(fields) > maxTimeFields {
		return time.Time{}, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyFields, len(fields), maxTimeFields)
	}

	now = now.In(loc)
	if len(fields) == 0 {
		return now, nil
	}

	jy, jm, jd := ToJalali(now.Year(), int(now.Month()), now.Day())
	values := [maxTimeFields]int{now.Hour(), now.Minute(), now.Second(), jm, jd, jy}
	copy(values[:], fields)
	hour, minute, second := values[0], values[1], values[2]
	jm, jd, jy = values[3], values[4], values[5]

	if strict {
		if err := ValidateJalaliDate(jm, jd, jy); err != nil {
			return time.Time{}, err
		}
	}

	gy, gm, gd := ToGregorian(jy, jm, jd)
	return time.Date(gy, time.Month(gm), gd, hour, minute, second, 0, loc), nil
}

package jdate

import "fmt"

const (
	gregorianEpochYear = 1600
	jalaliEpochYear    = 979
	// days between 1600-01-01 and 979-01-01 (Jalali)
	jalaliEpochOffset = 79

	daysPer33Years  = 12053
	daysPer4Years   = 1461
	daysPer400Years = 146097
	daysPer100Years = 36524
)

var (
	gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	jalaliMonthDays    = [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
)

// Date is a year/month/day triple. Whether it is Gregorian or Jalali depends
// on where it came from; the converter functions work on plain ints.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// ToJalali converts a Gregorian date to the Jalali calendar.
//
// The input is not validated: any triple produces a deterministic result.
// Months outside 1..12 are clamped to the table for the day count.
func ToJalali(gy, gm, gd int) (jy, jm, jd int) {
	y := gy - gregorianEpochYear
	m := gm - 1
	d := gd - 1

	days := 365*y + floorDiv(y+3, 4) - floorDiv(y+99, 100) + floorDiv(y+399, 400)
	for i := 0; i < m && i < len(gregorianMonthDays); i++ {
		days += gregorianMonthDays[i]
	}
	if m > 1 && isGregorianLeap(y) {
		days++
	}
	days += d

	days -= jalaliEpochOffset

	cycles := floorDiv(days, daysPer33Years)
	days = floorMod(days, daysPer33Years)

	jy = jalaliEpochYear + 33*cycles + 4*(days/daysPer4Years)
	days %= daysPer4Years

	if days >= 366 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	i := 0
	for ; i < 11 && days >= jalaliMonthDays[i]; i++ {
		days -= jalaliMonthDays[i]
	}

	return jy, i + 1, days + 1
}

// ToGregorian converts a Jalali date to the Gregorian calendar. It is the
// exact inverse of ToJalali for every valid date.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	y := jy - jalaliEpochYear
	m := jm - 1
	d := jd - 1

	days := 365*y + floorDiv(y, 33)*8 + floorDiv(floorMod(y, 33)+3, 4)
	for i := 0; i < m && i < len(jalaliMonthDays); i++ {
		days += jalaliMonthDays[i]
	}
	days += d

	days += jalaliEpochOffset

	gy = gregorianEpochYear + 400*floorDiv(days, daysPer400Years)
	days = floorMod(days, daysPer400Years)

	leap := true
	if days >= daysPer100Years+1 {
		days--
		gy += 100 * (days / daysPer100Years)
		days %= daysPer100Years
		if days >= 365 {
			days++
		} else {
			leap = false
		}
	}

	gy += 4 * (days / daysPer4Years)
	days %= daysPer4Years

	if days >= 366 {
		leap = false
		days--
		gy += days / 365
		days %= 365
	}

	i := 0
	for ; i < 11; i++ {
		length := gregorianMonthDays[i]
		if i == 1 && leap {
			length++
		}
		if days < length {
			break
		}
		days -= length
	}

	return gy, i + 1, days + 1
}

// IsLeapJalaliYear reports whether the Jalali year has 366 days under the
// 33-year arithmetic rule.
func IsLeapJalaliYear(year int) bool {
	r := floorMod(year, 33)
	return (r%4)-1 == int(float64(r)*0.05)
}

// JalaliMonthDays returns the number of days of a Jalali month, or 0 when the
// month is outside 1..12.
func JalaliMonthDays(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month == 12:
		if IsLeapJalaliYear(year) {
			return 30
		}
		return 29
	default:
		return 31 - int(float64(month)/6.5)
	}
}

// JalaliYearDay returns the 0-based day of year of a Jalali month/day.
func JalaliYearDay(month, day int) int {
	if month < 7 {
		return (month-1)*31 + day - 1
	}
	return (month-7)*30 + day + 185
}

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

package jdate

import (
	"fmt"
	"strconv"
	"time"
)

// moment is an instant resolved once per formatting call: the wall clock in
// its location plus the Jalali fields every specifier reads from.
type moment struct {
	t     time.Time
	epoch int64
	words *WordTable

	jy, jm, jd int
	doy        int // 0-based day of the Jalali year
	kab        int // 1 in a leap year
	jdw        int // Jalali weekday, Saturday=0
}

func newMoment(t time.Time, words *WordTable) *moment {
	if words == nil {
		words = defaultWordTable
	}
	jy, jm, jd := ToJalali(t.Year(), int(t.Month()), t.Day())

	m := &moment{
		t:     t,
		epoch: t.Unix(),
		words: words,
		jy:    jy,
		jm:    jm,
		jd:    jd,
		doy:   JalaliYearDay(jm, jd),
		jdw:   jalaliWeekday(t.Weekday()),
	}
	if IsLeapJalaliYear(jy) {
		m.kab = 1
	}
	return m
}

func jalaliWeekday(w time.Weekday) int {
	if w == time.Saturday {
		return 0
	}
	return int(w) + 1
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func (m *moment) hour12() int {
	h := m.t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func (m *moment) meridiem(short bool) string {
	am := m.t.Hour() < 12
	switch {
	case short && am:
		return m.words.Meridiem.AMShort
	case short:
		return m.words.Meridiem.PMShort
	case am:
		return m.words.Meridiem.AM
	default:
		return m.words.Meridiem.PM
	}
}

// offset renders the UTC offset as +hhmm, or +hh:mm when colon is set.
func (m *moment) offset(colon bool) string {
	_, secs := m.t.Zone()
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	hh, mm := secs/3600, secs%3600/60
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, hh, mm)
	}
	return fmt.Sprintf("%c%02d%02d", sign, hh, mm)
}

func (m *moment) zoneAbbr() string {
	name, _ := m.t.Zone()
	return name
}

func (m *moment) daysInMonth() int {
	return JalaliMonthDays(m.jy, m.jm)
}

func (m *moment) clock24() string {
	return pad2(m.t.Hour()) + ":" + pad2(m.t.Minute()) + ":" + pad2(m.t.Second())
}

func (m *moment) clock12() string {
	return pad2(m.hour12()) + ":" + pad2(m.t.Minute()) + ":" + pad2(m.t.Second())
}

func (m *moment) weekdayName() string {
	return m.words.Weekdays[m.jdw]
}

func (m *moment) monthName() string {
	return m.words.Months[m.jm-1]
}

// longDate is "<weekday>، <day> <month> <year>".
func (m *moment) longDate() string {
	return m.weekdayName() + "، " + strconv.Itoa(m.jd) + " " + m.monthName() + " " + strconv.Itoa(m.jy)
}

// yearProgress is the share of the year elapsed, in tenths of a percent.
func (m *moment) yearProgress() int {
	return int(float64(m.doy) / (float64(m.kab) + 365.24) * 1000)
}

// swatchBeats is Biel Mean Time expressed in 1/1000 of a day.
func (m *moment) swatchBeats() string {
	secs := floorMod(int(m.epoch)+3600, 86400)
	return fmt.Sprintf("%03d", int(float64(secs)/86.4))
}

// weekYear is the year owning the current Saturday-start week.
func (m *moment) weekYear() int {
	remaining := 364 + m.kab - m.doy
	switch {
	case m.jdw > m.doy+3 && m.doy < 3:
		return m.jy - 1
	case 3-remaining > m.jdw && remaining < 3:
		return m.jy + 1
	default:
		return m.jy
	}
}

// jalaliWeek numbers Saturday-start weeks so that week 1 holds the year's
// first four-day run, the way ISO 8601 does for Monday weeks.
func (m *moment) jalaliWeek() string {
	avs := m.jdw - m.doy%7
	if avs < 0 {
		avs += 7
	}

	num := (m.doy + avs) / 7
	if avs < 4 {
		num++
	} else if num < 1 {
		r := floorMod(m.jy, 33)
		alt := 4
		if r%4-2 == int(float64(r)*0.05) {
			alt = 5
		}
		if avs == 4 || avs == alt {
			num = 53
		} else {
			num = 52
		}
	}

	aks := avs + m.kab
	if aks == 7 {
		aks = 0
	}
	if m.kab+363-m.doy < aks && aks < 3 {
		return "01"
	}
	return pad2(num)
}

// sundayWeek is the strftime %U week, anchored on the first Sunday.
func (m *moment) sundayWeek() string {
	w := int(m.t.Weekday())
	if w < 5 {
		w += 2
	} else {
		w -= 5
	}
	avs := w - m.doy%7
	if avs < 0 {
		avs += 7
	}
	num := (m.doy+avs)/7 + 1
	if avs > 3 || avs == 1 {
		num--
	}
	return pad2(num)
}

// saturdayWeek is the strftime %W week, anchored on the first Saturday.
func (m *moment) saturdayWeek() string {
	avs := m.jdw - m.doy%7
	if avs < 0 {
		avs += 7
	}
	num := (m.doy+avs)/7 + 1
	if avs > 3 {
		num--
	}
	return pad2(num)
}

package jdate

import (
	"fmt"
	"strconv"
)

// specifier renders one field of a moment.
type specifier func(m *moment) string

func itoa(n int) string { return strconv.Itoa(n) }

// dateSpecifiers is the single character vocabulary used by Format.
var dateSpecifiers = map[rune]specifier{
	// day
	'd': func(m *moment) string { return pad2(m.jd) },
	'j': func(m *moment) string { return itoa(m.jd) },
	'J': func(m *moment) string { return m.words.SpellNumber(m.jd) },
	'D': func(m *moment) string { return m.words.WeekdaysShort[m.jdw] },
	'l': func(m *moment) string { return m.weekdayName() },
	'N': func(m *moment) string { return itoa(m.jdw + 1) },
	'w': func(m *moment) string { return itoa(m.jdw) },
	'S': func(m *moment) string { return m.words.OrdinalSuffix },
	'z': func(m *moment) string { return itoa(m.doy) },
	'Q': func(m *moment) string { return itoa(m.kab + 364 - m.doy) },

	// week
	'W': func(m *moment) string { return m.jalaliWeek() },
	'o': func(m *moment) string { return itoa(m.weekYear()) },

	// month
	'm': func(m *moment) string { return pad2(m.jm) },
	'n': func(m *moment) string { return itoa(m.jm) },
	'M': func(m *moment) string { return m.words.MonthsShort[m.jm-1] },
	'F': func(m *moment) string { return m.monthName() },
	'p': func(m *moment) string { return m.words.MonthsAlternate[m.jm-1] },
	'f': func(m *moment) string { return m.words.Seasons[(m.jm-1)/3] },
	'b': func(m *moment) string { return itoa(int(float64(m.jm)/3.1) + 1) },
	't': func(m *moment) string { return itoa(m.daysInMonth()) },

	// year
	'L': func(m *moment) string { return itoa(m.kab) },
	'Y': func(m *moment) string { return itoa(m.jy) },
	'y': func(m *moment) string { return pad2(floorMod(m.jy, 100)) },
	'C': func(m *moment) string { return itoa(floorDiv(m.jy+99, 100)) },
	'q': func(m *moment) string { return m.words.Zodiac[floorMod(m.jy, 12)] },
	'V': func(m *moment) string { return m.words.SpellNumber(m.jy) },
	'v': func(m *moment) string { return m.words.SpellNumber(floorMod(m.jy, 100)) },
	'K': func(m *moment) string {
		return strconv.FormatFloat(float64(m.yearProgress())/10, 'f', -1, 64)
	},
	'k': func(m *moment) string {
		return strconv.FormatFloat(float64(1000-m.yearProgress())/10, 'f', -1, 64)
	},

	// time
	'a': func(m *moment) string { return m.meridiem(true) },
	'A': func(m *moment) string { return m.meridiem(false) },
	'B': func(m *moment) string { return m.swatchBeats() },
	'g': func(m *moment) string { return itoa(m.hour12()) },
	'G': func(m *moment) string { return itoa(m.t.Hour()) },
	'h': func(m *moment) string { return pad2(m.hour12()) },
	'H': func(m *moment) string { return pad2(m.t.Hour()) },
	'i': func(m *moment) string { return pad2(m.t.Minute()) },
	's': func(m *moment) string { return pad2(m.t.Second()) },
	'u': func(m *moment) string { return fmt.Sprintf("%06d", m.t.Nanosecond()/1000) },

	// zone
	'e': func(m *moment) string { return m.t.Location().String() },
	'T': func(m *moment) string { return m.zoneAbbr() },
	'I': func(m *moment) string {
		if m.t.IsDST() {
			return "1"
		}
		return "0"
	},
	'O': func(m *moment) string { return m.offset(false) },
	'P': func(m *moment) string { return m.offset(true) },
	'Z': func(m *moment) string {
		_, secs := m.t.Zone()
		return itoa(secs)
	},

	// full stamps
	'c': func(m *moment) string {
		return itoa(m.jy) + "/" + itoa(m.jm) + "/" + itoa(m.jd) + " ،" + m.clock24() + " " + m.offset(true)
	},
	'r': func(m *moment) string {
		return m.clock24() + " " + m.offset(false) + " " + m.longDate()
	},
	'U': func(m *moment) string { return strconv.FormatInt(m.epoch, 10) },
}

// strftimeSpecifiers is the percent prefixed vocabulary used by Strftime.
// Zone fields are shared with dateSpecifiers.
var strftimeSpecifiers = map[rune]specifier{
	// day
	'a': func(m *moment) string { return m.words.WeekdaysShort[m.jdw] },
	'A': func(m *moment) string { return m.weekdayName() },
	'd': func(m *moment) string { return pad2(m.jd) },
	'e': func(m *moment) string { return fmt.Sprintf("%2d", m.jd) },
	'j': func(m *moment) string { return fmt.Sprintf("%03d", m.doy+1) },
	'u': func(m *moment) string { return itoa(m.jdw + 1) },
	'w': func(m *moment) string { return itoa(m.jdw) },

	// week
	'U': func(m *moment) string { return m.sundayWeek() },
	'V': func(m *moment) string { return m.jalaliWeek() },
	'W': func(m *moment) string { return m.saturdayWeek() },

	// month
	'b': func(m *moment) string { return m.words.MonthsShort[m.jm-1] },
	'h': func(m *moment) string { return m.words.MonthsShort[m.jm-1] },
	'B': func(m *moment) string { return m.monthName() },
	'm': func(m *moment) string { return pad2(m.jm) },

	// year
	'C': func(m *moment) string { return pad2(floorDiv(m.jy, 100)) },
	'g': func(m *moment) string { return pad2(floorMod(m.weekYear(), 100)) },
	'G': func(m *moment) string { return itoa(m.weekYear()) },
	'y': func(m *moment) string { return pad2(floorMod(m.jy, 100)) },
	'Y': func(m *moment) string { return itoa(m.jy) },

	// time
	'H': func(m *moment) string { return pad2(m.t.Hour()) },
	'I': func(m *moment) string { return pad2(m.hour12()) },
	'l': func(m *moment) string { return fmt.Sprintf("%2d", m.hour12()) },
	'M': func(m *moment) string { return pad2(m.t.Minute()) },
	'S': func(m *moment) string { return pad2(m.t.Second()) },
	'p': func(m *moment) string { return m.meridiem(false) },
	'P': func(m *moment) string { return m.meridiem(true) },
	'r': func(m *moment) string { return m.clock12() + " " + m.meridiem(false) },
	'R': func(m *moment) string { return pad2(m.t.Hour()) + ":" + pad2(m.t.Minute()) },
	'T': func(m *moment) string { return m.clock24() },
	'X': func(m *moment) string { return m.clock12() },
	'z': func(m *moment) string { return dateSpecifiers['O'](m) },
	'Z': func(m *moment) string { return dateSpecifiers['T'](m) },

	// full stamps
	'c': func(m *moment) string {
		return m.clock24() + " " + dateSpecifiers['P'](m) + " " + m.longDate()
	},
	'D': func(m *moment) string { return shortDate(m) },
	'x': func(m *moment) string { return shortDate(m) },
	'F': func(m *moment) string { return itoa(m.jy) + "-" + pad2(m.jm) + "-" + pad2(m.jd) },
	's': func(m *moment) string { return strconv.FormatInt(m.epoch, 10) },

	// whitespace
	'n': func(*moment) string { return "\n" },
	't': func(*moment) string { return "\t" },
	'%': func(*moment) string { return "%" },
}

func shortDate(m *moment) string {
	return pad2(floorMod(m.jy, 100)) + "/" + pad2(m.jm) + "/" + pad2(m.jd)
}

package jdate

import (
	"fmt"
	"strings"
)

// WordKind selects which vocabulary Spell draws from.
type WordKind int

const (
	WeekdayShort WordKind = iota
	WeekdayFull
	MonthShort
	MonthFull
	MonthAlternate
	Season
	ZodiacYear
	OrdinalDay
	YearWords
)

var wordKindNames = map[WordKind]string{
	WeekdayShort:   "weekday-short",
	WeekdayFull:    "weekday-full",
	MonthShort:     "month-short",
	MonthFull:      "month-full",
	MonthAlternate: "month-alternate",
	Season:         "season",
	ZodiacYear:     "zodiac-year",
	OrdinalDay:     "ordinal-day",
	YearWords:      "year",
}

func (k WordKind) String() string {
	if name, ok := wordKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("WordKind(%d)", int(k))
}

// ParseWordKind maps a name produced by WordKind.String back to its kind.
func ParseWordKind(name string) (WordKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, candidate := range wordKindNames {
		if candidate == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWordKind, name)
}

// Spell renders a calendar quantity as Persian words using the built-in
// vocabulary. Weekdays are 0 (Saturday) through 6 (Friday); months, seasons
// (given as a month) and alternate months are 1 through 12; ordinal days are
// 1 through 31; zodiac years and year words take any non-negative year.
func Spell(kind WordKind, value int) (string, error) {
	return defaultWordTable.Spell(kind, value)
}

// SpellNumber spells a non-negative integer with the built-in vocabulary.
// Zero spells as the empty string.
func SpellNumber(value int) string {
	return defaultWordTable.SpellNumber(value)
}

// Spell is the table-bound form of the package level Spell.
func (t *WordTable) Spell(kind WordKind, value int) (string, error) {
	switch kind {
	case WeekdayShort:
		return lookupWord(kind, t.WeekdaysShort, value)
	case WeekdayFull:
		return lookupWord(kind, t.Weekdays, value)
	case MonthShort:
		return lookupWord(kind, t.MonthsShort, value-1)
	case MonthFull:
		return lookupWord(kind, t.Months, value-1)
	case MonthAlternate:
		return lookupWord(kind, t.MonthsAlternate, value-1)
	case Season:
		if value < 1 || value > 12 {
			return "", outOfRange(kind, value)
		}
		return lookupWord(kind, t.Seasons, (value-1)/3)
	case ZodiacYear:
		if value < 0 {
			return "", outOfRange(kind, value)
		}
		return lookupWord(kind, t.Zodiac, value%12)
	case OrdinalDay:
		if value < 1 || value > 31 {
			return "", outOfRange(kind, value)
		}
		return t.SpellNumber(value), nil
	case YearWords:
		if value < 0 {
			return "", outOfRange(kind, value)
		}
		return t.SpellNumber(value), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownWordKind, int(kind))
	}
}

// SpellNumber composes the words for value from thousands, hundreds, tens and
// units groups joined by the conjunction. Negative values and zero yield "".
func (t *WordTable) SpellNumber(value int) string {
	if value <= 0 {
		return ""
	}

	n := t.Numbers
	var head, rest string

	switch {
	case value >= 1000:
		thousands := value / 1000
		if thousands == 1 {
			head = n.Thousand
		} else {
			head = t.SpellNumber(thousands) + " " + n.Thousand
		}
		rest = t.SpellNumber(value % 1000)
	case value >= 100:
		head = n.Hundreds[value/100]
		rest = t.SpellNumber(value % 100)
	case value >= 20:
		head = n.Tens[value/10]
		rest = t.SpellNumber(value % 10)
	case value >= 10:
		return n.Teens[value-10]
	default:
		return n.Units[value]
	}

	if rest == "" {
		return head
	}
	return head + n.Conjunction + rest
}

func lookupWord(kind WordKind, words []string, index int) (string, error) {
	if index < 0 || index >= len(words) {
		return "", outOfRange(kind, index)
	}
	return words[index], nil
}

func outOfRange(kind WordKind, value int) error {
	return fmt.Errorf("%w: %s %d", ErrWordOutOfRange, kind, value)
}

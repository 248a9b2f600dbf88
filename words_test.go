package jdate

import (
	"errors"
	"testing"
)

func TestSpellOrdinalDay(t *testing.T) {
	if got, _ := Spell(OrdinalDay, 1); got != "یک" {
		t.Fatalf("Spell(OrdinalDay, 1) = %q", got)
	}
	if got, _ := Spell(OrdinalDay, 31); got != "سی و یک" {
		t.Fatalf("Spell(OrdinalDay, 31) = %q", got)
	}

	for day := 1; day <= 31; day++ {
		got, err := Spell(OrdinalDay, day)
		if err != nil {
			t.Fatalf("Spell(OrdinalDay, %d): %v", day, err)
		}
		if got == "" {
			t.Fatalf("Spell(OrdinalDay, %d) is empty", day)
		}
	}
}

func TestSpellNumber(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{0, ""},
		{-4, ""},
		{1, "یک"},
		{10, "ده"},
		{11, "یازده"},
		{19, "نوزده"},
		{20, "بیست"},
		{21, "بیست و یک"},
		{30, "سی"},
		{99, "نود و نه"},
		{100, "صد"},
		{101, "صد و یک"},
		{110, "صد و ده"},
		{120, "صد و بیست"},
		{200, "دویست"},
		{305, "سیصد و پنج"},
		{999, "نهصد و نود و نه"},
		{1000, "هزار"},
		{1001, "هزار و یک"},
		{1100, "هزار و صد"},
		{1403, "هزار و چهارصد و سه"},
		{2000, "دو هزار"},
		{2024, "دو هزار و بیست و چهار"},
		{12345, "دوازده هزار و سیصد و چهل و پنج"},
		{100000, "صد هزار"},
	}

	for _, tc := range cases {
		if got := SpellNumber(tc.value); got != tc.want {
			t.Errorf("SpellNumber(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestSpellKinds(t *testing.T) {
	cases := []struct {
		kind  WordKind
		value int
		want  string
	}{
		{WeekdayFull, 0, "شنبه"},
		{WeekdayFull, 6, "جمعه"},
		{WeekdayShort, 4, "چ"},
		{MonthFull, 1, "فروردین"},
		{MonthFull, 12, "اسفند"},
		{MonthShort, 10, "دی"},
		{MonthAlternate, 1, "حمل"},
		{Season, 1, "بهار"},
		{Season, 6, "تابستان"},
		{Season, 12, "زمستان"},
		{ZodiacYear, 1403, "نهنگ"},
		{ZodiacYear, 1378, "خرگوش"},
		{YearWords, 1403, "هزار و چهارصد و سه"},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got, err := Spell(tc.kind, tc.value)
			if err != nil {
				t.Fatalf("Spell(%s, %d): %v", tc.kind, tc.value, err)
			}
			if got != tc.want {
				t.Fatalf("Spell(%s, %d) = %q, want %q", tc.kind, tc.value, got, tc.want)
			}
		})
	}
}

func TestSpellOutOfRange(t *testing.T) {
	cases := []struct {
		kind  WordKind
		value int
	}{
		{WeekdayFull, 7},
		{WeekdayShort, -1},
		{MonthFull, 0},
		{MonthShort, 13},
		{MonthAlternate, 13},
		{Season, 0},
		{ZodiacYear, -1},
		{OrdinalDay, 0},
		{OrdinalDay, 32},
		{YearWords, -1},
	}

	for _, tc := range cases {
		if _, err := Spell(tc.kind, tc.value); !errors.Is(err, ErrWordOutOfRange) {
			t.Errorf("Spell(%s, %d) error = %v, want ErrWordOutOfRange", tc.kind, tc.value, err)
		}
	}

	if _, err := Spell(WordKind(99), 1); !errors.Is(err, ErrUnknownWordKind) {
		t.Fatalf("expected ErrUnknownWordKind, got %v", err)
	}
}

func TestParseWordKind(t *testing.T) {
	for kind := WeekdayShort; kind <= YearWords; kind++ {
		got, err := ParseWordKind(kind.String())
		if err != nil {
			t.Fatalf("ParseWordKind(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Fatalf("ParseWordKind(%q) = %s", kind.String(), got)
		}
	}

	if _, err := ParseWordKind("planet"); !errors.Is(err, ErrUnknownWordKind) {
		t.Fatalf("expected ErrUnknownWordKind, got %v", err)
	}
}

package jdate

import (
	"testing"
	"time"
)

func TestStrftimeSpecifiers(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		pattern string
		epoch   int64
		want    string
	}{
		{"%a", nowruz1403, "چ"},
		{"%A", nowruz1403, "چهارشنبه"},
		{"%d", nowruz1403, "01"},
		{"%e", nowruz1403, " 1"},
		{"%j", nowruz1403, "001"},
		{"%u", nowruz1403, "5"},
		{"%w", nowruz1403, "4"},
		{"%U", nowruz1403, "00"},
		{"%V", nowruz1403, "53"},
		{"%W", nowruz1403, "00"},
		{"%b", nowruz1403, "فر"},
		{"%h", nowruz1403, "فر"},
		{"%B", nowruz1403, "فروردین"},
		{"%m", nowruz1403, "01"},
		{"%C", nowruz1403, "14"},
		{"%g", nowruz1403, "02"},
		{"%G", nowruz1403, "1402"},
		{"%y", nowruz1403, "03"},
		{"%Y", nowruz1403, "1403"},
		{"%H", nowruz1403, "14"},
		{"%I", nowruz1403, "02"},
		{"%l", nowruz1403, " 2"},
		{"%M", nowruz1403, "05"},
		{"%S", nowruz1403, "09"},
		{"%p", nowruz1403, "بعد از ظهر"},
		{"%P", nowruz1403, "ب.ظ"},
		{"%r", nowruz1403, "02:05:09 بعد از ظهر"},
		{"%R", nowruz1403, "14:05"},
		{"%T", nowruz1403, "14:05:09"},
		{"%X", nowruz1403, "02:05:09"},
		{"%z", nowruz1403, "+0000"},
		{"%Z", nowruz1403, "UTC"},
		{"%c", nowruz1403, "14:05:09 +00:00 چهارشنبه، 1 فروردین 1403"},
		{"%D", nowruz1403, "03/01/01"},
		{"%x", nowruz1403, "03/01/01"},
		{"%F", nowruz1403, "1403-01-01"},
		{"%s", nowruz1403, "1710943509"},
		{"%n%t%%", nowruz1403, "\n\t%"},

		{"%a %A %u %w", millennium, "ش شنبه 1 0"},
		{"%j %U %V %W", millennium, "287 42 42 42"},
		{"%I %l %p", millennium, "12 12 قبل از ظهر"},
		{"%F %D", millennium, "1378-10-11 78/10/11"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			if got := f.Strftime(tc.pattern, tc.epoch); got != tc.want {
				t.Fatalf("Strftime(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestStrftimeLiteralsAndUnknown(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		pattern string
		want    string
	}{
		{"Y-m-d", "Y-m-d"},
		{"%Y-%m-%d", "1403-01-01"},
		{"%q%Q", "qQ"},
		{"100%", "100"},
		{"%", ""},
		{"امروز %A", "امروز چهارشنبه"},
	}

	for _, tc := range cases {
		if got := f.Strftime(tc.pattern, nowruz1403); got != tc.want {
			t.Errorf("Strftime(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestStrftimeSharesZoneFieldsWithFormat(t *testing.T) {
	f := newTestFormatter(t, WithLocation(time.FixedZone("IRST", 12600)))

	if got, want := f.Strftime("%z %Z", nowruz1403), f.Format("O T", nowruz1403); got != want {
		t.Fatalf("Strftime zone = %q, Format zone = %q", got, want)
	}
}

func TestStrftimeWeekNumberingDiffersFromFormat(t *testing.T) {
	f := newTestFormatter(t)

	// On Nowruz 1403 the three week numbers disagree: %V follows the date
	// vocabulary's W, %U and %W count from the year's first Sunday and
	// Saturday.
	if got := f.Format("W", nowruz1403); got != "53" {
		t.Fatalf("W = %q", got)
	}
	if got := f.Strftime("%V|%U|%W", nowruz1403); got != "53|00|00" {
		t.Fatalf("strftime weeks = %q", got)
	}
}

func TestStrftimePersianAndTimeVariants(t *testing.T) {
	fixed := time.Date(2024, time.March, 20, 14, 5, 9, 0, time.UTC)
	f := newTestFormatter(t, WithScript(ScriptPersian), WithClock(func() time.Time { return fixed }))

	if got := f.StrftimeTime("%Y/%m/%d", fixed); got != "۱۴۰۳/۰۱/۰۱" {
		t.Fatalf("StrftimeTime = %q", got)
	}
	if got := f.StrftimeNow("%H:%M"); got != "۱۴:۰۵" {
		t.Fatalf("StrftimeNow = %q", got)
	}
	if got := Strftime("%Y", nowruz1403, time.UTC, ScriptLatin); got != "1403" {
		t.Fatalf("package Strftime = %q", got)
	}
}

package jdate

import (
	"errors"
	"testing"
)

func TestIsValidJalaliDate(t *testing.T) {
	cases := []struct {
		name             string
		month, day, year int
		want             bool
	}{
		{"nowruz", 1, 1, 1403, true},
		{"last day of month six", 6, 31, 1403, true},
		{"month seven has thirty days", 7, 31, 1403, false},
		{"esfand 30 in leap year", 12, 30, 1403, true},
		{"esfand 30 in common year", 12, 30, 1404, false},
		{"esfand 29 in common year", 12, 29, 1404, true},
		{"month zero", 0, 1, 1403, false},
		{"month thirteen", 13, 1, 1403, false},
		{"day zero", 1, 0, 1403, false},
		{"year zero", 1, 1, 0, false},
		{"negative year", 1, 1, -5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidJalaliDate(tc.month, tc.day, tc.year); got != tc.want {
				t.Fatalf("IsValidJalaliDate(%d, %d, %d) = %v, want %v", tc.month, tc.day, tc.year, got, tc.want)
			}
		})
	}
}

func TestEsfandLengthFollowsLeapRule(t *testing.T) {
	for year := 1; year <= 3000; year++ {
		leap := IsLeapJalaliYear(year)
		if got := IsValidJalaliDate(12, 30, year); got != leap {
			t.Fatalf("year %d: esfand 30 valid = %v, leap = %v", year, got, leap)
		}
		if !IsValidJalaliDate(12, 29, year) {
			t.Fatalf("year %d: esfand 29 rejected", year)
		}
		if IsValidJalaliDate(12, 31, year) {
			t.Fatalf("year %d: esfand 31 accepted", year)
		}
	}
}

func TestValidateJalaliDateError(t *testing.T) {
	err := ValidateJalaliDate(7, 31, 1403)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	if err := ValidateJalaliDate(1, 1, 1403); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

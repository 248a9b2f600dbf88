package jdate

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeBase returns the lowercase base language of a locale, falling back
// to the leading subtag when x/text cannot parse it.
func localeBase(locale string) string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		value := base.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.Index(locale, "-"); idx > 0 {
		locale = locale[:idx]
	}
	return strings.ToLower(locale)
}

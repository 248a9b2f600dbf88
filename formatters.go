package jdate

import "time"

// Format renders epoch in loc with the single character vocabulary. A nil loc
// renders in DefaultTimezone.
func Format(pattern string, epoch int64, loc *time.Location, script Script) string {
	return statelessFormatter(loc, script).Format(pattern, epoch)
}

// Strftime renders epoch in loc with the percent prefixed vocabulary. A nil
// loc renders in DefaultTimezone.
func Strftime(pattern string, epoch int64, loc *time.Location, script Script) string {
	return statelessFormatter(loc, script).Strftime(pattern, epoch)
}

// GetDate decomposes epoch in loc into its Jalali fields. A nil loc reads the
// fields in DefaultTimezone.
func GetDate(epoch int64, loc *time.Location) (DateInfo, error) {
	return statelessFormatter(loc, ScriptLatin).GetDate(epoch)
}

// FormatLocale renders t with the digit script of locale.
func FormatLocale(locale, pattern string, t time.Time) string {
	return statelessFormatter(t.Location(), ScriptForLocale(locale)).FormatTime(pattern, t)
}

// StrftimeLocale is FormatLocale for the percent prefixed vocabulary.
func StrftimeLocale(locale, pattern string, t time.Time) string {
	return statelessFormatter(t.Location(), ScriptForLocale(locale)).StrftimeTime(pattern, t)
}

func statelessFormatter(loc *time.Location, script Script) *Formatter {
	if loc == nil {
		// LoadLocation falls back to a fixed zone for the default name.
		loc, _ = LoadLocation(DefaultTimezone)
	}
	return &Formatter{
		location: loc,
		script:   script,
		decimal:  '.',
		clock:    time.Now,
		words:    defaultWordTable,
	}
}

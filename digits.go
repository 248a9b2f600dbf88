package jdate

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Script selects the numeral glyphs used for formatted output.
type Script int

const (
	ScriptPersian Script = iota
	ScriptLatin
)

func (s Script) String() string {
	switch s {
	case ScriptPersian:
		return "persian"
	case ScriptLatin:
		return "latin"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// ParseScript accepts the names produced by Script.String plus the short
// forms "fa" and "en".
func ParseScript(name string) (Script, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "persian", "fa":
		return ScriptPersian, nil
	case "latin", "en":
		return ScriptLatin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScript, name)
	}
}

// persianDigitLanguages are base languages conventionally written with
// Extended Arabic-Indic digits.
var persianDigitLanguages = map[string]struct{}{
	"fa":  {},
	"ps":  {},
	"ur":  {},
	"ckb": {},
}

// ScriptForLocale picks the digit script for a BCP 47 locale. Locales whose
// base language is written with Persian digits map to ScriptPersian, any
// other locale (including unparseable ones) to ScriptLatin.
func ScriptForLocale(locale string) Script {
	if _, ok := persianDigitLanguages[localeBase(locale)]; ok {
		return ScriptPersian
	}
	return ScriptLatin
}

// Direction is the transliteration direction.
type Direction int

const (
	ToPersian Direction = iota
	ToLatin
)

// DefaultDecimalSeparator is the Persian decimal separator (momayyez).
const DefaultDecimalSeparator = '٫'

var (
	latinDigits   = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}
	persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}
)

// Transliterate substitutes digits 0-9 and the decimal point between Latin
// and Persian numeral glyphs. decimal is the glyph that stands for '.' on the
// Persian side. No numeric parsing takes place.
func Transliterate(text string, dir Direction, decimal rune) string {
	if text == "" {
		return text
	}
	out, _, err := transform.String(digitTransformer(dir, decimal), text)
	if err != nil {
		return text
	}
	return out
}

// ToPersianDigits is Transliterate(text, ToPersian, DefaultDecimalSeparator).
func ToPersianDigits(text string) string {
	return Transliterate(text, ToPersian, DefaultDecimalSeparator)
}

// ToLatinDigits is Transliterate(text, ToLatin, DefaultDecimalSeparator).
func ToLatinDigits(text string) string {
	return Transliterate(text, ToLatin, DefaultDecimalSeparator)
}

func digitTransformer(dir Direction, decimal rune) transform.Transformer {
	if dir == ToLatin {
		return runes.Map(func(r rune) rune {
			if r >= persianDigits[0] && r <= persianDigits[9] {
				return latinDigits[r-persianDigits[0]]
			}
			if r == decimal {
				return '.'
			}
			return r
		})
	}
	return runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianDigits[r-'0']
		}
		if r == '.' {
			return decimal
		}
		return r
	})
}

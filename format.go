package jdate

import (
	"strings"
	"time"
)

// Formatter renders instants with a fixed location, digit script and word
// table. It is immutable and safe for concurrent use.
type Formatter struct {
	location *time.Location
	script   Script
	decimal  rune
	clock    func() time.Time
	words    *WordTable
	hooks    []FormatHook
}

// Location returns the zone instants are rendered in.
func (f *Formatter) Location() *time.Location { return f.location }

// Script returns the digit script of rendered output.
func (f *Formatter) Script() Script { return f.script }

// Words returns a copy of the formatter's word table.
func (f *Formatter) Words() *WordTable { return f.words.clone() }

// Spell looks up kind/value in the formatter's word table.
func (f *Formatter) Spell(kind WordKind, value int) (string, error) {
	return f.words.Spell(kind, value)
}

// Now returns the formatter clock reading in its location.
func (f *Formatter) Now() time.Time { return f.clock().In(f.location) }

// Format renders epoch with the single character vocabulary. A backslash
// emits the next character literally; unrecognized characters pass through.
func (f *Formatter) Format(pattern string, epoch int64) string {
	return f.render(VocabularyDate, pattern, time.Unix(epoch, 0))
}

// FormatTime is Format for a time.Time, keeping sub-second precision.
func (f *Formatter) FormatTime(pattern string, t time.Time) string {
	return f.render(VocabularyDate, pattern, t)
}

// FormatNow is Format for the formatter clock.
func (f *Formatter) FormatNow(pattern string) string {
	return f.render(VocabularyDate, pattern, f.clock())
}

func (f *Formatter) render(vocab Vocabulary, pattern string, t time.Time) string {
	t = t.In(f.location)
	ctx := &FormatHookContext{
		Vocabulary: vocab,
		Pattern:    pattern,
		Epoch:      t.Unix(),
		Location:   f.location,
		Script:     f.script,
	}

	return runHooked(f.hooks, ctx, func(ctx *FormatHookContext) (string, []string) {
		m := newMoment(t, f.words)

		var out string
		var unknown []string
		if vocab == VocabularyStrftime {
			out, unknown = scanStrftime(ctx.Pattern, m)
		} else {
			out, unknown = scanDate(ctx.Pattern, m)
		}
		return f.Localize(out), unknown
	})
}

// Localize applies the formatter's digit script to text, the same pass every
// render ends with.
func (f *Formatter) Localize(out string) string {
	if f.script != ScriptPersian {
		return out
	}
	return Transliterate(out, ToPersian, f.decimal)
}

func scanDate(pattern string, m *moment) (string, []string) {
	var (
		b       strings.Builder
		unknown []string
	)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		if spec, ok := dateSpecifiers[r]; ok {
			b.WriteString(spec(m))
			continue
		}
		if isASCIILetter(r) {
			unknown = append(unknown, string(r))
		}
		b.WriteRune(r)
	}
	return b.String(), unknown
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

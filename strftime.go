package jdate

import (
	"strings"
	"time"
)

// Strftime renders epoch with the percent prefixed vocabulary. Text outside
// specifiers is literal, an unknown %x emits x and a trailing % emits nothing.
func (f *Formatter) Strftime(pattern string, epoch int64) string {
	return f.render(VocabularyStrftime, pattern, time.Unix(epoch, 0))
}

// StrftimeTime is Strftime for a time.Time.
func (f *Formatter) StrftimeTime(pattern string, t time.Time) string {
	return f.render(VocabularyStrftime, pattern, t)
}

// StrftimeNow is Strftime for the formatter clock.
func (f *Formatter) StrftimeNow(pattern string) string {
	return f.render(VocabularyStrftime, pattern, f.clock())
}

func scanStrftime(pattern string, m *moment) (string, []string) {
	var (
		b       strings.Builder
		unknown []string
	)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '%' {
			b.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		i++
		c := runes[i]
		if spec, ok := strftimeSpecifiers[c]; ok {
			b.WriteString(spec(m))
			continue
		}
		unknown = append(unknown, "%"+string(c))
		b.WriteRune(c)
	}
	return b.String(), unknown
}

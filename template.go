package jdate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is the field or map key holding the locale in template data.
	// Defaults to "Locale".
	LocaleKey string
}

// TemplateHelpers exposes formatter helpers for text/template and html/template.
//
// Values accepted as instants are time.Time, *time.Time, integer epochs,
// numeric strings and nil (the formatter clock).
func TemplateHelpers(f *Formatter, cfg HelperConfig) map[string]any {
	if f == nil {
		f = statelessFormatter(nil, ScriptPersian)
	}

	return map[string]any{
		"jdate": func(pattern string, value any) (string, error) {
			t, err := helperTime(f, value)
			if err != nil {
				return "", err
			}
			return f.FormatTime(pattern, t), nil
		},

		"jstrftime": func(pattern string, value any) (string, error) {
			t, err := helperTime(f, value)
			if err != nil {
				return "", err
			}
			return f.StrftimeTime(pattern, t), nil
		},

		// jdate_for picks the digit script from the locale carried by data.
		"jdate_for": func(data any, pattern string, value any) (string, error) {
			t, err := helperTime(f, value)
			if err != nil {
				return "", err
			}
			return f.withScript(ScriptForLocale(extractLocale(data, cfg.LocaleKey))).FormatTime(pattern, t), nil
		},

		"jdigits": func(value any) string {
			return ToPersianDigits(fmt.Sprint(value))
		},

		"jspell": func(kind string, value int) (string, error) {
			wordKind, err := ParseWordKind(kind)
			if err != nil {
				return "", err
			}
			return f.Spell(wordKind, value)
		},

		"jgetdate": func(value any) (DateInfo, error) {
			t, err := helperTime(f, value)
			if err != nil {
				return DateInfo{}, err
			}
			return f.GetDate(t.Unix())
		},

		"jscript": func(data any) string {
			return ScriptForLocale(extractLocale(data, cfg.LocaleKey)).String()
		},
	}
}

func (f *Formatter) withScript(script Script) *Formatter {
	if f.script == script {
		return f
	}
	clone := *f
	clone.script = script
	return &clone
}

func helperTime(f *Formatter, value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return f.clock(), nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return f.clock(), nil
		}
		return *v, nil
	case int:
		return time.Unix(int64(v), 0), nil
	case int32:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case uint32:
		return time.Unix(int64(v), 0), nil
	case string:
		epoch, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("jdate: template value %q is not an epoch: %w", v, err)
		}
		return time.Unix(epoch, 0), nil
	default:
		return time.Time{}, fmt.Errorf("jdate: unsupported template value %T", value)
	}
}

// extractLocale extracts the locale from template data using the configured key.
// It handles strings, maps and struct types (like PageData).
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case string:
		return d
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
		return ""
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}

package jdate

import (
	"bytes"
	"errors"
	"testing"
	"text/template"
	"time"
)

type pageData struct {
	Lang string
	When time.Time
}

func TestTemplateHelpersRender(t *testing.T) {
	f := newTestFormatter(t, WithScript(ScriptPersian))
	helpers := TemplateHelpers(f, HelperConfig{LocaleKey: "Lang"})

	tmpl, err := template.New("page").Funcs(helpers).Parse(
		`{{ jdate "Y/m/d" .When }}|{{ jstrftime "%A" .When }}|{{ jdate_for . "Y" .When }}|{{ jscript . }}`)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}

	data := pageData{Lang: "en", When: time.Unix(nowruz1403, 0)}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("execute template: %v", err)
	}

	if got, want := buf.String(), "۱۴۰۳/۰۱/۰۱|چهارشنبه|1403|latin"; got != want {
		t.Fatalf("template output = %q, want %q", got, want)
	}
}

func TestTemplateHelpersValues(t *testing.T) {
	now := time.Unix(millennium, 0)
	f := newTestFormatter(t, WithClock(func() time.Time { return now }))
	helpers := TemplateHelpers(f, HelperConfig{})

	jdate := helpers["jdate"].(func(string, any) (string, error))

	values := []any{nil, now, &now, int(millennium), int64(millennium), "946684800"}
	for _, value := range values {
		got, err := jdate("Y/m/d", value)
		if err != nil {
			t.Fatalf("jdate(%T): %v", value, err)
		}
		if got != "1378/10/11" {
			t.Fatalf("jdate(%T) = %q", value, got)
		}
	}

	if _, err := jdate("Y", 1.5); err == nil {
		t.Fatal("expected unsupported value error")
	}
	if _, err := jdate("Y", "yesterday"); err == nil {
		t.Fatal("expected epoch parse error")
	}
}

func TestTemplateHelpersSpellDigitsAndGetDate(t *testing.T) {
	helpers := TemplateHelpers(newTestFormatter(t), HelperConfig{})

	spell := helpers["jspell"].(func(string, int) (string, error))
	if got, err := spell("ordinal-day", 31); err != nil || got != "سی و یک" {
		t.Fatalf("jspell = %q, %v", got, err)
	}
	if _, err := spell("comet", 1); !errors.Is(err, ErrUnknownWordKind) {
		t.Fatalf("jspell unknown kind error = %v", err)
	}

	digits := helpers["jdigits"].(func(any) string)
	if got := digits(12.5); got != "۱۲٫۵" {
		t.Fatalf("jdigits = %q", got)
	}

	getdate := helpers["jgetdate"].(func(any) (DateInfo, error))
	info, err := getdate(nowruz1403)
	if err != nil {
		t.Fatalf("jgetdate: %v", err)
	}
	if info.Year != 1403 || info.Month != 1 || info.MonthDay != 1 {
		t.Fatalf("jgetdate = %+v", info)
	}
}

func TestTemplateHelpersLocaleFromData(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{LocaleKey: "locale"})
	script := helpers["jscript"].(func(any) string)

	cases := []struct {
		name string
		data any
		want string
	}{
		{"map any", map[string]any{"locale": "fa-IR"}, "persian"},
		{"map string", map[string]string{"locale": "en"}, "latin"},
		{"string", "ps", "persian"},
		{"nil", nil, "latin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := script(tc.data); got != tc.want {
				t.Fatalf("jscript = %q, want %q", got, tc.want)
			}
		})
	}
}

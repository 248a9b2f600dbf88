package jdate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultWordTableIsCopy(t *testing.T) {
	table := DefaultWordTable()
	table.Months[0] = "changed"

	if got, _ := Spell(MonthFull, 1); got != "فروردین" {
		t.Fatalf("built-in table mutated through DefaultWordTable: %q", got)
	}
}

func TestFormatterWordsIsCopy(t *testing.T) {
	f := newTestFormatter(t)
	words := f.Words()
	words.Months[0] = "changed"
	words.Numbers.Units[1] = "changed"

	if got := f.Format("F", nowruz1403); got != "فروردین" {
		t.Fatalf("formatter mutated through Words: %q", got)
	}
	if got := newTestFormatter(t).Format("F J", nowruz1403); got != "فروردین یک" {
		t.Fatalf("new formatter sees mutated words: %q", got)
	}
	if got, _ := Spell(MonthFull, 1); got != "فروردین" {
		t.Fatalf("built-in table mutated through Words: %q", got)
	}
	if got, err := f.Spell(MonthFull, 1); err != nil || got != "فروردین" {
		t.Fatalf("Formatter.Spell = %q, %v", got, err)
	}
}

func TestLoadWordTableYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dari.yaml")
	content := "months: [حمل, ثور, جوزا, سرطان, اسد, سنبله, میزان, عقرب, قوس, جدی, دلو, حوت]\nordinal_suffix: م\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	table, err := LoadWordTable(path)
	if err != nil {
		t.Fatalf("LoadWordTable: %v", err)
	}

	if got, _ := table.Spell(MonthFull, 1); got != "حمل" {
		t.Fatalf("overridden month = %q", got)
	}
	if table.OrdinalSuffix != "م" {
		t.Fatalf("overridden suffix = %q", table.OrdinalSuffix)
	}
	if got, _ := table.Spell(WeekdayFull, 0); got != "شنبه" {
		t.Fatalf("untouched weekday = %q", got)
	}
}

func TestLoadWordTableJSONOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meridiem.json")
	content := `{"meridiem": {"am": "صبح", "pm": "عصر"}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	table, err := LoadWordTable(path)
	if err != nil {
		t.Fatalf("LoadWordTable: %v", err)
	}
	if table.Meridiem.AM != "صبح" || table.Meridiem.PM != "عصر" {
		t.Fatalf("meridiem override = %+v", table.Meridiem)
	}
	if table.Meridiem.AMShort != "ق.ظ" {
		t.Fatalf("short meridiem should keep default, got %q", table.Meridiem.AMShort)
	}
}

func TestLoadWordTableTOMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.toml")
	content := "ordinal_suffix = \"م\"\n\n[numbers]\nthousand = \"هزار\"\nconjunction = \" و \"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	table, err := LoadWordTable(path)
	if err != nil {
		t.Fatalf("LoadWordTable: %v", err)
	}
	if table.OrdinalSuffix != "م" {
		t.Fatalf("ordinal suffix = %q", table.OrdinalSuffix)
	}
	if got := table.SpellNumber(1403); got != "هزار و چهارصد و سه" {
		t.Fatalf("SpellNumber after toml override = %q", got)
	}
}

func TestLoadWordTableErrors(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.yaml")
	if err := os.WriteFile(short, []byte("weekdays: [a, b]\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := LoadWordTable(short); err == nil || !strings.Contains(err.Error(), "weekdays") {
		t.Fatalf("expected size error naming weekdays, got %v", err)
	}

	txt := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := LoadWordTable(txt); err == nil {
		t.Fatal("expected unsupported extension error")
	}

	if _, err := LoadWordTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected missing file error")
	}
}

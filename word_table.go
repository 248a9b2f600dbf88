package jdate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWordsYAML []byte

// WordTable holds the fixed vocabulary used by the word composer and the
// formatters. A table is read-only once built and shared by all calls.
type WordTable struct {
	Weekdays        []string      `yaml:"weekdays" json:"weekdays" toml:"weekdays"`
	WeekdaysShort   []string      `yaml:"weekdays_short" json:"weekdays_short" toml:"weekdays_short"`
	Months          []string      `yaml:"months" json:"months" toml:"months"`
	MonthsShort     []string      `yaml:"months_short" json:"months_short" toml:"months_short"`
	MonthsAlternate []string      `yaml:"months_alternate" json:"months_alternate" toml:"months_alternate"`
	Seasons         []string      `yaml:"seasons" json:"seasons" toml:"seasons"`
	Zodiac          []string      `yaml:"zodiac" json:"zodiac" toml:"zodiac"`
	Numbers         NumberWords   `yaml:"numbers" json:"numbers" toml:"numbers"`
	Meridiem        MeridiemWords `yaml:"meridiem" json:"meridiem" toml:"meridiem"`
	OrdinalSuffix   string        `yaml:"ordinal_suffix" json:"ordinal_suffix" toml:"ordinal_suffix"`
}

// NumberWords are the building blocks of spelled-out numbers.
type NumberWords struct {
	Units       []string `yaml:"units" json:"units" toml:"units"`
	Teens       []string `yaml:"teens" json:"teens" toml:"teens"`
	Tens        []string `yaml:"tens" json:"tens" toml:"tens"`
	Hundreds    []string `yaml:"hundreds" json:"hundreds" toml:"hundreds"`
	Thousand    string   `yaml:"thousand" json:"thousand" toml:"thousand"`
	Conjunction string   `yaml:"conjunction" json:"conjunction" toml:"conjunction"`
}

// MeridiemWords are the before/after noon markers.
type MeridiemWords struct {
	AMShort string `yaml:"am_short" json:"am_short" toml:"am_short"`
	PMShort string `yaml:"pm_short" json:"pm_short" toml:"pm_short"`
	AM      string `yaml:"am" json:"am" toml:"am"`
	PM      string `yaml:"pm" json:"pm" toml:"pm"`
}

var defaultWordTable = mustParseWordTable(defaultWordsYAML)

// DefaultWordTable returns a copy of the built-in Persian vocabulary.
func DefaultWordTable() *WordTable {
	return defaultWordTable.clone()
}

// LoadWordTable reads override files (YAML, JSON or TOML, chosen by
// extension) and merges them, in order, over the built-in table. Only the fields present in
// a file replace the defaults.
func LoadWordTable(paths ...string) (*WordTable, error) {
	table := defaultWordTable.clone()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("jdate: read word table %s: %w", path, err)
		}

		override, err := decodeWordTable(path, data)
		if err != nil {
			return nil, fmt.Errorf("jdate: decode word table %s: %w", path, err)
		}
		table.merge(override)
	}

	if err := table.validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func decodeWordTable(path string, data []byte) (*WordTable, error) {
	var table WordTable
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return &table, nil
}

func mustParseWordTable(data []byte) *WordTable {
	var table WordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		panic(fmt.Sprintf("jdate: parse built-in word table: %v", err))
	}
	if err := table.validate(); err != nil {
		panic(err.Error())
	}
	return &table
}

func (t *WordTable) validate() error {
	checks := []struct {
		name  string
		words []string
		size  int
	}{
		{"weekdays", t.Weekdays, 7},
		{"weekdays_short", t.WeekdaysShort, 7},
		{"months", t.Months, 12},
		{"months_short", t.MonthsShort, 12},
		{"months_alternate", t.MonthsAlternate, 12},
		{"seasons", t.Seasons, 4},
		{"zodiac", t.Zodiac, 12},
		{"numbers.units", t.Numbers.Units, 10},
		{"numbers.teens", t.Numbers.Teens, 10},
		{"numbers.tens", t.Numbers.Tens, 10},
		{"numbers.hundreds", t.Numbers.Hundreds, 10},
	}
	for _, check := range checks {
		if len(check.words) != check.size {
			return fmt.Errorf("jdate: word table %s has %d entries, want %d", check.name, len(check.words), check.size)
		}
	}
	return nil
}

func (t *WordTable) merge(src *WordTable) {
	if src == nil {
		return
	}
	mergeWords(&t.Weekdays, src.Weekdays)
	mergeWords(&t.WeekdaysShort, src.WeekdaysShort)
	mergeWords(&t.Months, src.Months)
	mergeWords(&t.MonthsShort, src.MonthsShort)
	mergeWords(&t.MonthsAlternate, src.MonthsAlternate)
	mergeWords(&t.Seasons, src.Seasons)
	mergeWords(&t.Zodiac, src.Zodiac)
	mergeWords(&t.Numbers.Units, src.Numbers.Units)
	mergeWords(&t.Numbers.Teens, src.Numbers.Teens)
	mergeWords(&t.Numbers.Tens, src.Numbers.Tens)
	mergeWords(&t.Numbers.Hundreds, src.Numbers.Hundreds)
	mergeWord(&t.Numbers.Thousand, src.Numbers.Thousand)
	mergeWord(&t.Numbers.Conjunction, src.Numbers.Conjunction)
	mergeWord(&t.Meridiem.AMShort, src.Meridiem.AMShort)
	mergeWord(&t.Meridiem.PMShort, src.Meridiem.PMShort)
	mergeWord(&t.Meridiem.AM, src.Meridiem.AM)
	mergeWord(&t.Meridiem.PM, src.Meridiem.PM)
	mergeWord(&t.OrdinalSuffix, src.OrdinalSuffix)
}

func mergeWords(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = append([]string(nil), src...)
	}
}

func mergeWord(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func (t *WordTable) clone() *WordTable {
	if t == nil {
		return nil
	}
	out := *t
	out.Weekdays = append([]string(nil), t.Weekdays...)
	out.WeekdaysShort = append([]string(nil), t.WeekdaysShort...)
	out.Months = append([]string(nil), t.Months...)
	out.MonthsShort = append([]string(nil), t.MonthsShort...)
	out.MonthsAlternate = append([]string(nil), t.MonthsAlternate...)
	out.Seasons = append([]string(nil), t.Seasons...)
	out.Zodiac = append([]string(nil), t.Zodiac...)
	out.Numbers.Units = append([]string(nil), t.Numbers.Units...)
	out.Numbers.Teens = append([]string(nil), t.Numbers.Teens...)
	out.Numbers.Tens = append([]string(nil), t.Numbers.Tens...)
	out.Numbers.Hundreds = append([]string(nil), t.Numbers.Hundreds...)
	return &out
}

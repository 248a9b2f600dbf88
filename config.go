package jdate

import (
	"fmt"
	"time"
)

// Config captures formatter setup
type Config struct {
	Timezone string
	Location *time.Location
	Script   Script
	Decimal  rune
	Clock    func() time.Time
	Words    *WordTable
	Hooks    []FormatHook

	wordTableFiles []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Unset fields take the
// defaults: DefaultTimezone, Persian digits, '.' as the decimal glyph, the
// system clock and the built-in word table.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Script:  ScriptPersian,
		Decimal: '.',
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Location == nil {
		loc, err := LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, err
		}
		cfg.Location = loc
	}
	cfg.Timezone = cfg.Location.String()

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	if len(cfg.wordTableFiles) > 0 {
		words, err := cfg.loadWordTable()
		if err != nil {
			return nil, err
		}
		cfg.Words = words
	}
	if cfg.Words == nil {
		cfg.Words = defaultWordTable
	}

	return cfg, nil
}

// NewFormatter builds a Formatter via supplied options
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter()
}

// WithTimezone selects the zone by IANA name
func WithTimezone(name string) Option {
	return func(c *Config) error {
		c.Timezone = name
		c.Location = nil
		return nil
	}
}

// WithLocation selects an already resolved zone
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		if loc == nil {
			return ErrNilLocation
		}
		c.Location = loc
		return nil
	}
}

// WithScript selects the digit script of rendered output
func WithScript(script Script) Option {
	return func(c *Config) error {
		switch script {
		case ScriptPersian, ScriptLatin:
			c.Script = script
			return nil
		default:
			return fmt.Errorf("%w: %d", ErrUnknownScript, int(script))
		}
	}
}

// WithLocale derives the digit script from a BCP 47 locale, see ScriptForLocale
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Script = ScriptForLocale(locale)
		return nil
	}
}

// WithDecimalSeparator sets the glyph '.' becomes in Persian output
func WithDecimalSeparator(decimal rune) Option {
	return func(c *Config) error {
		if decimal == 0 {
			return fmt.Errorf("jdate: empty decimal separator")
		}
		c.Decimal = decimal
		return nil
	}
}

// WithClock replaces time.Now as the source of the current instant
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithWordTable replaces the built-in words with a validated copy of words
func WithWordTable(words *WordTable) Option {
	return func(c *Config) error {
		if words == nil {
			return nil
		}
		if err := words.validate(); err != nil {
			return err
		}
		c.Words = words.clone()
		c.wordTableFiles = nil
		return nil
	}
}

// WithWordTableFiles merges YAML, JSON or TOML override files over the built-in words
func WithWordTableFiles(paths ...string) Option {
	return func(c *Config) error {
		c.wordTableFiles = append(c.wordTableFiles, paths...)
		return nil
	}
}

// WithHooks appends render hooks; nil hooks are dropped
func WithHooks(hooks ...FormatHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// BuildFormatter creates a Formatter from the resolved configuration
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("jdate: nil config")
	}
	if cfg.Location == nil {
		return nil, ErrNilLocation
	}

	f := &Formatter{
		location: cfg.Location,
		script:   cfg.Script,
		decimal:  cfg.Decimal,
		clock:    cfg.Clock,
		words:    cfg.Words,
		hooks:    filterHooks(cfg.Hooks),
	}
	if f.clock == nil {
		f.clock = time.Now
	}
	if f.words == nil {
		f.words = defaultWordTable
	}
	if f.decimal == 0 {
		f.decimal = '.'
	}
	return f, nil
}

func (cfg *Config) loadWordTable() (*WordTable, error) {
	words, err := LoadWordTable(cfg.wordTableFiles...)
	if err != nil {
		return nil, fmt.Errorf("jdate: word table: %w", err)
	}
	return words, nil
}

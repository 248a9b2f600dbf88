package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/goliatone/go-jdate"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "JDATE"

// Config holds all configuration for the CLI
type Config struct {
	Timezone   string       `mapstructure:"timezone" validate:"required"`
	Script     string       `mapstructure:"script" validate:"required,oneof=persian latin fa en"`
	Decimal    string       `mapstructure:"decimal" validate:"required,len=1"`
	WordTables []string     `mapstructure:"word_tables" validate:"dive,file"`
	Metrics    bool         `mapstructure:"metrics"`
	Logger     LoggerConfig `mapstructure:"logger"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", jdate.DefaultTimezone)
	v.SetDefault("script", "persian")
	v.SetDefault("decimal", ".")
	v.SetDefault("word_tables", []string{})
	v.SetDefault("metrics", false)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
}

// LoadConfig reads configuration from defaults, an optional config file, the
// .env file and JDATE_* environment variables, in increasing precedence.
// Flags bound to v take precedence over all of them.
func LoadConfig(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// FormatterOptions translates the configuration into formatter options.
func (c *Config) FormatterOptions() ([]jdate.Option, error) {
	script, err := jdate.ParseScript(c.Script)
	if err != nil {
		return nil, err
	}

	decimal := []rune(c.Decimal)
	opts := []jdate.Option{
		jdate.WithTimezone(c.Timezone),
		jdate.WithScript(script),
		jdate.WithDecimalSeparator(decimal[0]),
	}
	if len(c.WordTables) > 0 {
		opts = append(opts, jdate.WithWordTableFiles(c.WordTables...))
	}
	return opts, nil
}

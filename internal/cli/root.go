// Package cli implements the jdate command line tool.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-jdate"
	"github.com/goliatone/go-jdate/metrics"
)

type app struct {
	v          *viper.Viper
	configFile string
	envFile    string
	clock      func() time.Time

	cfg       *Config
	logger    *zap.Logger
	registry  *prometheus.Registry
	formatter *jdate.Formatter
}

// NewRootCommand creates the jdate root command with all subcommands.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(clock func() time.Time) *cobra.Command {
	a := &app{v: viper.New(), clock: clock}

	root := &cobra.Command{
		Use:           "jdate",
		Short:         "Jalali calendar conversion and date formatting",
		Long:          "Convert between the Gregorian and Jalali calendars and render instants with Persian or Latin digits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "env file loaded before reading JDATE_* variables")
	flags.String("timezone", "", "IANA timezone (default "+jdate.DefaultTimezone+")")
	flags.String("script", "", "digit script: persian or latin")
	flags.String("decimal", "", "decimal glyph used in Persian output")
	flags.StringSlice("word-table", nil, "word table override files (yaml, json or toml)")
	flags.Bool("metrics", false, "print Prometheus metrics to stderr after the command")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	bindings := map[string]string{
		"timezone":     "timezone",
		"script":       "script",
		"decimal":      "decimal",
		"word_tables":  "word-table",
		"metrics":      "metrics",
		"logger.level": "log-level",
	}
	for key, flag := range bindings {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newFormatCommand(a),
		newStrftimeCommand(a),
		newConvertCommand(a),
		newValidateCommand(a),
		newMktimeCommand(a),
		newGetdateCommand(a),
		newSpellCommand(a),
		newDigitsCommand(a),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup() error {
	cfg, err := LoadConfig(a.v, a.configFile, a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	a.logger = logger

	opts, err := cfg.FormatterOptions()
	if err != nil {
		return err
	}
	opts = append(opts, jdate.WithClock(a.clock), jdate.WithHooks(LogHook(logger)))

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		opts = append(opts, jdate.WithHooks(metrics.NewHook(a.registry)))
	}

	formatter, err := jdate.NewFormatter(opts...)
	if err != nil {
		return err
	}
	a.formatter = formatter

	logger.Debug("formatter ready",
		zap.String("timezone", formatter.Location().String()),
		zap.Stringer("script", formatter.Script()),
	)
	return nil
}

func (a *app) teardown(w io.Writer) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.registry == nil {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
